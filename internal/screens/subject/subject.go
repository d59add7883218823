package subject

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetz/internal/screen"
	"github.com/abhisek/worksheetz/internal/screens/operation"
	"github.com/abhisek/worksheetz/internal/screens/placeholder"
	"github.com/abhisek/worksheetz/internal/ui/components"
	"github.com/abhisek/worksheetz/internal/ui/theme"
	"github.com/abhisek/worksheetz/internal/wizard"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

// SubjectScreen picks the learning area. Only math has worksheets; other
// subjects lead to a coming-soon page.
type SubjectScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*SubjectScreen)(nil)

// New creates the picker.
func New(env *wizard.Env, req worksheet.Request) *SubjectScreen {
	var items []components.MenuItem
	for _, o := range worksheet.Subjects() {
		item := components.MenuItem{Label: o.Name}
		if o.Available {
			item.Action = func() tea.Cmd {
				next := req
				next.Subject = o.Subject
				return wizard.Push(operation.New(env, next))
			}
		} else {
			item.Hint = "coming soon"
			item.Action = func() tea.Cmd {
				return wizard.Push(placeholder.New(o.Name))
			}
		}
		items = append(items, item)
	}
	return &SubjectScreen{menu: components.NewMenu(items)}
}

func (s *SubjectScreen) Title() string {
	return "Choose Subject"
}

func (s *SubjectScreen) Init() tea.Cmd {
	return nil
}

func (s *SubjectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SubjectScreen) View(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Pick a subject"),
		"",
		strings.TrimRight(s.menu.View(), "\n"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
