package grade

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetz/internal/screen"
	"github.com/abhisek/worksheetz/internal/screens/subject"
	"github.com/abhisek/worksheetz/internal/ui/components"
	"github.com/abhisek/worksheetz/internal/ui/theme"
	"github.com/abhisek/worksheetz/internal/wizard"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

// GradeScreen is the first wizard step.
type GradeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*GradeScreen)(nil)

// New creates the grade picker.
func New(env *wizard.Env) *GradeScreen {
	var items []components.MenuItem
	for _, g := range worksheet.Grades() {
		items = append(items, components.MenuItem{
			Label: g.Name,
			Hint:  g.Ages,
			Action: func() tea.Cmd {
				return wizard.Push(subject.New(env, worksheet.Request{Grade: g.Grade}))
			},
		})
	}
	return &GradeScreen{menu: components.NewMenu(items)}
}

func (s *GradeScreen) Title() string {
	return "Choose Grade"
}

func (s *GradeScreen) Init() tea.Cmd {
	return nil
}

func (s *GradeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *GradeScreen) View(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Who is this worksheet for?"),
		"",
		strings.TrimRight(s.menu.View(), "\n"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
