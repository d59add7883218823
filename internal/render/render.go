// Package render turns a worksheet.Document into printable output.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/worksheetz/internal/worksheet"
)

// ErrUnknownFormat is returned for output formats with no renderer.
var ErrUnknownFormat = errors.New("unknown output format")

// ErrUnknownPageSize is returned for page sizes the PDF renderer cannot lay out.
var ErrUnknownPageSize = errors.New("unknown page size")

// Renderer writes a document in one output format.
type Renderer interface {
	Render(w io.Writer, doc worksheet.Document, style worksheet.Style) error
}

// Format names an output format.
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatHTML, FormatPDF, FormatJSON:
		return f, nil
	case "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// PageSize is the paper size used for PDF output and print jobs.
type PageSize string

const (
	PageLetter PageSize = "letter"
	PageA4     PageSize = "a4"
)

// ParsePageSize validates a page size name.
func ParsePageSize(s string) (PageSize, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "letter", "us-letter", "na_letter":
		return PageLetter, nil
	case "a4", "iso_a4":
		return PageA4, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPageSize, s)
	}
}

// DisplayName returns the label shown in print settings.
func (p PageSize) DisplayName() string {
	if p == PageA4 {
		return "ISO A4"
	}
	return "Letter (8.5x11)"
}

// Options configures the renderer returned by ForFormat.
type Options struct {
	PageSize  PageSize
	AnswerKey bool
	FontPath  string
	Width     int
}

// ForFormat returns the renderer for f.
func ForFormat(f Format, opts Options) (Renderer, error) {
	switch f {
	case FormatText:
		return Text{Width: opts.Width, AnswerKey: opts.AnswerKey}, nil
	case FormatHTML:
		return HTML{AnswerKey: opts.AnswerKey}, nil
	case FormatPDF:
		return PDF{PageSize: opts.PageSize, AnswerKey: opts.AnswerKey, FontPath: opts.FontPath}, nil
	case FormatJSON:
		return JSON{Indent: true}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// panelCaption is the line printed inside the trailing panel.
func panelCaption(p worksheet.Panel) string {
	switch p.Kind {
	case worksheet.PanelScore:
		return fmt.Sprintf("Score: ______ / %d", p.MaxScore)
	case worksheet.PanelDrawing:
		return fmt.Sprintf("Draw and color: %s %s", p.ItemLabel, p.ItemEmoji)
	case worksheet.PanelEmptyDrawing:
		return "Drawing Time: draw anything you like!"
	default:
		return ""
	}
}

// answerLines returns "n. problem answer" lines for arithmetic items.
// Identification items have nothing to key and are skipped.
func answerLines(doc worksheet.Document) []string {
	var lines []string
	for i, p := range doc.Problems {
		if ans, ok := p.Answer(); ok {
			lines = append(lines, fmt.Sprintf("%d. %s %d", i+1, p, ans))
		}
	}
	return lines
}

// nameLine is the handwriting line under the subtitle.
func nameLine(doc worksheet.Document) string {
	name := doc.StudentName
	if name == "" {
		name = "________________"
	}
	return "Name: " + name + "      Date: __________"
}

func columns(doc worksheet.Document) int {
	if doc.GridColumns <= 0 {
		return worksheet.GridColumns
	}
	return doc.GridColumns
}
