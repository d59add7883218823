package printer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/abhisek/worksheetz/internal/render"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

// Job is one request to print a worksheet.
type Job struct {
	Document    worksheet.Document
	Destination Destination
	Options     Options
}

// Receipt describes a dispatched job.
type Receipt struct {
	JobID       string
	Destination Destination
	Copies      int
	// Path is set for file destinations.
	Path string
	// SpoolID is the spooler's request ID, when it reports one.
	SpoolID string
}

// SpoolRequest carries the queue settings passed to a Spooler.
type SpoolRequest struct {
	Queue    string
	Title    string
	Copies   int
	PageSize render.PageSize
	Color    bool
}

// Spooler hands a PDF to a print queue and returns the queue's request ID.
type Spooler interface {
	Submit(ctx context.Context, req SpoolRequest, pdf io.Reader) (string, error)
}

// Dispatcher renders jobs to PDF and delivers them.
type Dispatcher struct {
	OutDir   string
	Spooler  Spooler
	FontPath string
	Logger   *slog.Logger
}

// Print renders job and sends it to its destination.
func (d *Dispatcher) Print(ctx context.Context, job Job) (Receipt, error) {
	dest := job.Destination
	if dest.ID == "" || (dest.Kind != KindFile && dest.Kind != KindPrinter) {
		return Receipt{}, fmt.Errorf("%w: %q", ErrUnknownDestination, dest.ID)
	}
	opts := job.Options.normalized()

	style := worksheet.DefaultStyle()
	if !opts.Color {
		style = style.Monochrome()
	}
	var buf bytes.Buffer
	pdf := render.PDF{PageSize: opts.PageSize, AnswerKey: opts.AnswerKey, FontPath: d.FontPath}
	if err := pdf.Render(&buf, job.Document, style); err != nil {
		return Receipt{}, fmt.Errorf("render job: %w", err)
	}

	receipt := Receipt{
		JobID:       uuid.NewString(),
		Destination: dest,
		Copies:      opts.Copies,
	}
	log := logger(d.Logger).With("job", receipt.JobID, "destination", dest.ID)

	if dest.Kind == KindFile {
		path, err := d.save(receipt.JobID, job.Document, buf.Bytes())
		if err != nil {
			return Receipt{}, err
		}
		receipt.Path = path
		log.Info("worksheet saved", "path", path)
		return receipt, nil
	}

	spooler := d.Spooler
	if spooler == nil {
		spooler = LPSpooler{}
	}
	id, err := spooler.Submit(ctx, SpoolRequest{
		Queue:    dest.ID,
		Title:    job.Document.Title,
		Copies:   opts.Copies,
		PageSize: opts.PageSize,
		Color:    opts.Color,
	}, &buf)
	if err != nil {
		return Receipt{}, fmt.Errorf("spool to %s: %w", dest.Name, err)
	}
	receipt.SpoolID = id
	log.Info("worksheet spooled", "copies", opts.Copies, "request", id)
	return receipt, nil
}

func (d *Dispatcher) save(jobID string, doc worksheet.Document, data []byte) (string, error) {
	dir := d.OutDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s.pdf", FileSlug(doc), jobID[:8])
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}

// FileSlug turns the document subtitle into a lowercase, dash-separated
// file name stem.
func FileSlug(doc worksheet.Document) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(doc.Subtitle) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	if b.Len() == 0 {
		return "worksheet"
	}
	return b.String()
}

// LPSpooler submits jobs through the CUPS `lp` command.
type LPSpooler struct{}

var lpRequestID = regexp.MustCompile(`request id is (\S+)`)

func (LPSpooler) Submit(ctx context.Context, req SpoolRequest, pdf io.Reader) (string, error) {
	cmd := exec.CommandContext(ctx, "lp", lpArgs(req)...)
	cmd.Stdin = pdf
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("lp: %w: %s", err, msg)
		}
		return "", fmt.Errorf("lp: %w", err)
	}
	if m := lpRequestID.FindSubmatch(out); m != nil {
		return string(m[1]), nil
	}
	return "", nil
}

func lpArgs(req SpoolRequest) []string {
	media := "Letter"
	if req.PageSize == render.PageA4 {
		media = "A4"
	}
	args := []string{"-d", req.Queue, "-n", strconv.Itoa(max(req.Copies, 1)), "-o", "media=" + media}
	if req.Title != "" {
		args = append(args, "-t", req.Title)
	}
	if !req.Color {
		args = append(args, "-o", "ColorModel=Gray")
	}
	return args
}
