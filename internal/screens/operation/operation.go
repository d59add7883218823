package operation

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetz/internal/problemgen"
	"github.com/abhisek/worksheetz/internal/screen"
	"github.com/abhisek/worksheetz/internal/screens/personalize"
	"github.com/abhisek/worksheetz/internal/ui/components"
	"github.com/abhisek/worksheetz/internal/ui/theme"
	"github.com/abhisek/worksheetz/internal/wizard"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

// OperationScreen picks the drill for the chosen grade.
type OperationScreen struct {
	req  worksheet.Request
	menu components.Menu
}

var _ screen.Screen = (*OperationScreen)(nil)

// New creates the picker for req.Grade.
func New(env *wizard.Env, req worksheet.Request) *OperationScreen {
	var items []components.MenuItem
	for _, o := range worksheet.Operations(req.Grade) {
		items = append(items, components.MenuItem{
			Label: o.Icon + "  " + o.Label,
			Action: func() tea.Cmd {
				next := req
				next.Operation = o.Operation
				next.Difficulty = ""
				return wizard.Push(personalize.New(env, next))
			},
		})
	}
	return &OperationScreen{req: req, menu: components.NewMenu(items)}
}

func (s *OperationScreen) Title() string {
	return "Choose Topic"
}

func (s *OperationScreen) Init() tea.Cmd {
	return nil
}

func (s *OperationScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *OperationScreen) View(width, height int) string {
	heading := "What should we practice?"
	if s.req.Grade == problemgen.GradePreschool {
		heading = "What should we learn to spot?"
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render(heading),
		theme.Subtitle.Render(s.req.Grade.DisplayName()),
		"",
		strings.TrimRight(s.menu.View(), "\n"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
