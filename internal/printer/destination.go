// Package printer discovers output destinations and dispatches rendered
// worksheets to them.
package printer

import (
	"errors"
	"strings"

	"github.com/abhisek/worksheetz/internal/render"
)

var (
	// ErrUnknownDestination is returned when a job targets a destination
	// that is neither a printer queue nor the file destination.
	ErrUnknownDestination = errors.New("unknown destination")

	// ErrScanInProgress is returned when Scan is called while another scan
	// on the same Scanner is still running.
	ErrScanInProgress = errors.New("destination scan already in progress")
)

// Kind distinguishes physical printers from file output.
type Kind string

const (
	KindPrinter Kind = "printer"
	KindFile    Kind = "file"
)

// Destination is somewhere a worksheet can be sent.
type Destination struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// SaveAsPDF is the virtual destination that writes a PDF file. It is
// always available.
var SaveAsPDF = Destination{ID: "save-as-pdf", Name: "Save as PDF", Kind: KindFile}

// PrinterDestination builds a destination for a print queue name.
func PrinterDestination(queue string) Destination {
	return Destination{
		ID:   queue,
		Name: strings.ReplaceAll(queue, "_", " "),
		Kind: KindPrinter,
	}
}

// Resolve maps a user-supplied printer name or ID to a destination.
// Empty input and the file destination's ID or name select SaveAsPDF.
func Resolve(name string) Destination {
	name = strings.TrimSpace(name)
	if name == "" || name == SaveAsPDF.ID || strings.EqualFold(name, SaveAsPDF.Name) {
		return SaveAsPDF
	}
	return PrinterDestination(name)
}

// Options are the print settings chosen on the preview screen.
type Options struct {
	Color     bool
	PageSize  render.PageSize
	Copies    int
	AnswerKey bool
}

// DefaultOptions returns colour, Letter, one copy.
func DefaultOptions() Options {
	return Options{Color: true, PageSize: render.PageLetter, Copies: 1}
}

func (o Options) normalized() Options {
	if o.Copies < 1 {
		o.Copies = 1
	}
	if o.PageSize != render.PageA4 {
		o.PageSize = render.PageLetter
	}
	return o
}
