// Package wizard holds what the worksheet screens share while a request
// is assembled step by step.
package wizard

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/worksheetz/internal/printer"
	"github.com/abhisek/worksheetz/internal/router"
	"github.com/abhisek/worksheetz/internal/screen"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

// Env carries the services every wizard screen may need.
type Env struct {
	Builder    *worksheet.Builder
	Scanner    *printer.Scanner
	Dispatcher *printer.Dispatcher

	// ScanWindow bounds each destination scan.
	ScanWindow time.Duration

	// PrintDefaults seeds the preview's print settings.
	PrintDefaults printer.Options

	// Seed, when set, makes the first build of every worksheet reproducible.
	Seed string
}

// Push returns a command that pushes s onto the router stack.
func Push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

// Pop returns a command that pops the active screen.
func Pop() tea.Cmd {
	return func() tea.Msg {
		return router.PopScreenMsg{}
	}
}

// Restart returns a command that unwinds to the first wizard step.
func Restart() tea.Cmd {
	return func() tea.Msg {
		return router.PopToRootMsg{}
	}
}
