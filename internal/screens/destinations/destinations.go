package destinations

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetz/internal/printer"
	"github.com/abhisek/worksheetz/internal/screen"
	"github.com/abhisek/worksheetz/internal/ui/components"
	"github.com/abhisek/worksheetz/internal/ui/layout"
	"github.com/abhisek/worksheetz/internal/ui/theme"
	"github.com/abhisek/worksheetz/internal/wizard"
)

type foundMsg struct {
	dest printer.Destination
	ch   <-chan printer.Destination
	gen  int
}

type doneMsg struct{ gen int }

// DestinationsScreen lists printers as they are discovered and reports
// the chosen one back to the caller.
type DestinationsScreen struct {
	env      *wizard.Env
	current  printer.Destination
	onSelect func(printer.Destination)

	found    []printer.Destination
	menu     components.Menu
	scanning bool
	gen      int
	cancel   context.CancelFunc
	err      error
}

var (
	_ screen.Screen = (*DestinationsScreen)(nil)
	_ screen.Closer = (*DestinationsScreen)(nil)
)

// New creates the screen. onSelect runs with the chosen destination just
// before the screen pops itself.
func New(env *wizard.Env, current printer.Destination, onSelect func(printer.Destination)) *DestinationsScreen {
	return &DestinationsScreen{
		env:      env,
		current:  current,
		onSelect: onSelect,
	}
}

func (s *DestinationsScreen) Title() string {
	return "Choose Printer"
}

func (s *DestinationsScreen) Init() tea.Cmd {
	return s.scan()
}

// scan starts a new discovery pass. Results from earlier passes are
// ignored by generation number.
func (s *DestinationsScreen) scan() tea.Cmd {
	s.gen++
	s.found = nil
	s.err = nil
	s.rebuildMenu()

	if s.env.Scanner == nil {
		s.found = []printer.Destination{printer.SaveAsPDF}
		s.rebuildMenu()
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := s.env.Scanner.Scan(ctx, s.env.ScanWindow)
	if err != nil {
		cancel()
		s.err = err
		return nil
	}
	s.cancel = cancel
	s.scanning = true
	return waitFor(ch, s.gen)
}

func waitFor(ch <-chan printer.Destination, gen int) tea.Cmd {
	return func() tea.Msg {
		d, ok := <-ch
		if !ok {
			return doneMsg{gen: gen}
		}
		return foundMsg{dest: d, ch: ch, gen: gen}
	}
}

func (s *DestinationsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case foundMsg:
		if msg.gen != s.gen {
			return s, nil
		}
		s.found = append(s.found, msg.dest)
		s.rebuildMenu()
		return s, waitFor(msg.ch, msg.gen)

	case doneMsg:
		if msg.gen == s.gen {
			s.scanning = false
			s.stop()
		}
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "r" {
			if s.scanning {
				return s, nil
			}
			return s, s.scan()
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// Close cancels a running scan when the screen leaves the stack.
func (s *DestinationsScreen) Close() {
	s.stop()
	s.scanning = false
}

func (s *DestinationsScreen) stop() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *DestinationsScreen) rebuildMenu() {
	selected := s.menu.Selected
	items := make([]components.MenuItem, 0, len(s.found))
	for _, d := range s.found {
		hint := "printer"
		if d.Kind == printer.KindFile {
			hint = "saves a PDF file"
		}
		if d.ID == s.current.ID {
			hint += " · current"
		}
		items = append(items, components.MenuItem{
			Label: d.Name,
			Hint:  hint,
			Action: func() tea.Cmd {
				s.stop()
				if s.onSelect != nil {
					s.onSelect(d)
				}
				return wizard.Pop()
			},
		})
	}
	s.menu = components.NewMenu(items)
	if selected < len(items) {
		s.menu.Selected = selected
	}
}

// Found returns the destinations discovered so far.
func (s *DestinationsScreen) Found() []printer.Destination {
	return s.found
}

func (s *DestinationsScreen) View(width, height int) string {
	var status string
	switch {
	case s.err != nil:
		status = theme.Incorrect.Render(s.err.Error())
	case s.scanning:
		status = theme.Hint.Render("Searching for printers…")
	default:
		status = theme.Hint.Render(fmt.Sprintf("Found %d destination(s). Press r to search again.", len(s.found)))
	}

	sections := []string{
		theme.Title.Render("Where should the worksheet go?"),
		"",
		strings.TrimRight(s.menu.View(), "\n"),
		"",
		status,
	}
	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *DestinationsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "r", Description: "Rescan"},
		{Key: "Esc", Description: "Back"},
	}
}
