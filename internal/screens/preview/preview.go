package preview

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetz/internal/printer"
	"github.com/abhisek/worksheetz/internal/render"
	"github.com/abhisek/worksheetz/internal/screen"
	"github.com/abhisek/worksheetz/internal/screens/destinations"
	"github.com/abhisek/worksheetz/internal/ui/layout"
	"github.com/abhisek/worksheetz/internal/ui/theme"
	"github.com/abhisek/worksheetz/internal/wizard"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

const (
	maxCopies    = 99
	maxTextWidth = 90
)

type printedMsg struct {
	receipt printer.Receipt
	err     error
}

// PreviewScreen shows the composed worksheet and its print settings.
type PreviewScreen struct {
	env  *wizard.Env
	req  worksheet.Request
	ws   worksheet.Worksheet
	opts printer.Options
	dest printer.Destination

	printing bool
	status   string
	err      error
}

var _ screen.Screen = (*PreviewScreen)(nil)

// New builds the worksheet for req and previews it.
func New(env *wizard.Env, req worksheet.Request) *PreviewScreen {
	if req.Seed == "" {
		req.Seed = env.Seed
	}
	opts := env.PrintDefaults
	if opts.Copies < 1 {
		opts.Copies = 1
	}
	if opts.PageSize == "" {
		opts.PageSize = render.PageLetter
	}
	p := &PreviewScreen{
		env:  env,
		req:  req,
		opts: opts,
		dest: printer.SaveAsPDF,
	}
	p.ws = env.Builder.Build(req)
	return p
}

func (p *PreviewScreen) Title() string {
	return "Preview"
}

func (p *PreviewScreen) Init() tea.Cmd {
	return nil
}

// Worksheet returns the worksheet being previewed.
func (p *PreviewScreen) Worksheet() worksheet.Worksheet {
	return p.ws
}

// Options returns the current print settings.
func (p *PreviewScreen) Options() printer.Options {
	return p.opts
}

// Destination returns where the worksheet will be sent.
func (p *PreviewScreen) Destination() printer.Destination {
	return p.dest
}

func (p *PreviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case printedMsg:
		p.printing = false
		p.err = msg.err
		if msg.err != nil {
			p.status = ""
			return p, nil
		}
		if msg.receipt.Path != "" {
			p.status = "Saved to " + msg.receipt.Path
		} else {
			p.status = fmt.Sprintf("Sent %d %s to %s", msg.receipt.Copies, plural(msg.receipt.Copies, "copy", "copies"), msg.receipt.Destination.Name)
		}
		return p, nil

	case tea.KeyMsg:
		if p.printing {
			return p, nil
		}
		switch msg.String() {
		case "r":
			// A fresh seed gives a new problem set with the same choices.
			req := p.req
			req.Seed = worksheet.NewSeed()
			p.ws = p.env.Builder.Build(req)
			p.status = "New problems generated"
		case "c":
			p.opts.Color = !p.opts.Color
		case "s":
			if p.opts.PageSize == render.PageA4 {
				p.opts.PageSize = render.PageLetter
			} else {
				p.opts.PageSize = render.PageA4
			}
		case "+", "=":
			p.opts.Copies = min(p.opts.Copies+1, maxCopies)
		case "-":
			p.opts.Copies = max(p.opts.Copies-1, 1)
		case "a":
			p.opts.AnswerKey = !p.opts.AnswerKey
		case "p":
			return p, wizard.Push(destinations.New(p.env, p.dest, func(d printer.Destination) {
				p.dest = d
				p.status = ""
			}))
		case "n":
			return p, wizard.Restart()
		case "enter":
			return p, p.print()
		}
	}
	return p, nil
}

func (p *PreviewScreen) print() tea.Cmd {
	if p.env.Dispatcher == nil {
		p.err = fmt.Errorf("printing is not configured")
		return nil
	}
	p.printing = true
	p.err = nil
	p.status = "Printing…"

	dispatcher := p.env.Dispatcher
	job := printer.Job{Document: p.ws.Document, Destination: p.dest, Options: p.opts}
	return func() tea.Msg {
		receipt, err := dispatcher.Print(context.Background(), job)
		return printedMsg{receipt: receipt, err: err}
	}
}

func (p *PreviewScreen) View(width, height int) string {
	style := worksheet.DefaultStyle()
	if !p.opts.Color {
		style = style.Monochrome()
	}
	textWidth := min(max(width-8, 30), maxTextWidth)
	sheet := render.Text{Width: textWidth, AnswerKey: p.opts.AnswerKey}.String(p.ws.Document, style)

	footer := []string{p.settingsLine()}
	switch {
	case p.err != nil:
		footer = append(footer, theme.Incorrect.Render(p.err.Error()))
	case p.status != "":
		footer = append(footer, theme.Correct.Render(p.status))
	}

	// Keep the settings visible by trimming the sheet to what fits.
	room := height - len(footer) - 3
	lines := strings.Split(sheet, "\n")
	if room > 0 && len(lines) > room {
		lines = append(lines[:room-1], theme.Hint.Render("…"))
	}
	framed := theme.Sheet.Render(strings.Join(lines, "\n"))

	content := lipgloss.JoinVertical(lipgloss.Center, append([]string{framed}, footer...)...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func (p *PreviewScreen) settingsLine() string {
	chip := func(label string) string { return theme.Chip.Render(label) }
	colour := "Color"
	if !p.opts.Color {
		colour = "B&W"
	}
	key := "no key"
	if p.opts.AnswerKey {
		key = "answer key"
	}
	return strings.Join([]string{
		chip(p.dest.Name),
		chip(p.opts.PageSize.DisplayName()),
		chip(colour),
		chip(fmt.Sprintf("%d %s", p.opts.Copies, plural(p.opts.Copies, "copy", "copies"))),
		chip(key),
	}, theme.Hint.Render("·"))
}

// Message returns the last print outcome, or "".
func (p *PreviewScreen) Message() string {
	return p.status
}

// Status shows the problem count and seed in the header.
func (p *PreviewScreen) Status() string {
	return fmt.Sprintf("%d problems · seed %s", len(p.ws.Document.Problems), p.ws.Seed)
}

func (p *PreviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Print"},
		{Key: "p", Description: "Printer"},
		{Key: "r", Description: "New problems"},
		{Key: "c/s/a", Description: "Color/Size/Key"},
		{Key: "+/-", Description: "Copies"},
		{Key: "n", Description: "New sheet"},
		{Key: "Esc", Description: "Back"},
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
