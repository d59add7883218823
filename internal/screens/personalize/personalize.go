package personalize

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetz/internal/screen"
	"github.com/abhisek/worksheetz/internal/screens/preview"
	"github.com/abhisek/worksheetz/internal/ui/components"
	"github.com/abhisek/worksheetz/internal/ui/layout"
	"github.com/abhisek/worksheetz/internal/ui/theme"
	"github.com/abhisek/worksheetz/internal/wizard"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

const maxNameLen = 40

type field int

const (
	fieldDifficulty field = iota
	fieldLayout
	fieldColoring
	fieldName
	fieldCreate
)

// PersonalizeScreen collects difficulty, layout, coloring item and the
// student's name.
type PersonalizeScreen struct {
	env *wizard.Env
	req worksheet.Request

	difficulty components.Selector
	layout     components.Selector
	coloring   components.Selector
	name       components.TextInput

	focus field
}

var _ screen.Screen = (*PersonalizeScreen)(nil)

// New creates the screen for a request with grade and operation chosen.
func New(env *wizard.Env, req worksheet.Request) *PersonalizeScreen {
	var diff []components.SelectorOption
	for _, o := range worksheet.DifficultyOptions(req.Grade, req.Operation) {
		diff = append(diff, components.SelectorOption{Value: o.Tag, Label: o.Label})
	}
	var layouts []components.SelectorOption
	for _, o := range worksheet.LayoutOptions() {
		layouts = append(layouts, components.SelectorOption{Value: string(o.Layout), Label: o.Title})
	}
	coloring := []components.SelectorOption{{Value: worksheet.ColoringNone, Label: "Free drawing"}}
	for _, cat := range worksheet.ColoringItems() {
		for _, item := range cat.Items {
			coloring = append(coloring, components.SelectorOption{Value: item, Label: item})
		}
	}

	s := &PersonalizeScreen{
		env:        env,
		req:        req,
		difficulty: components.NewSelector(diff, req.Difficulty),
		layout:     components.NewSelector(layouts, string(worksheet.LayoutWorksheetOnly)),
		coloring:   components.NewSelector(coloring, worksheet.DefaultColoringItem),
		name:       components.NewTextInput("Student name (optional)", maxNameLen),
	}
	s.focus = s.fields()[0]
	return s
}

func (s *PersonalizeScreen) Title() string {
	return "Personalize"
}

func (s *PersonalizeScreen) Init() tea.Cmd {
	return nil
}

// fields lists the focusable rows in order; hidden rows are skipped.
func (s *PersonalizeScreen) fields() []field {
	var fs []field
	if worksheet.ShowDifficulty(s.req.Grade, s.req.Operation) && len(s.difficulty.Options) > 0 {
		fs = append(fs, fieldDifficulty)
	}
	fs = append(fs, fieldLayout)
	if worksheet.Layout(s.layout.Value()) == worksheet.LayoutDrawingArea {
		fs = append(fs, fieldColoring)
	}
	return append(fs, fieldName, fieldCreate)
}

func (s *PersonalizeScreen) move(delta int) tea.Cmd {
	fs := s.fields()
	idx := 0
	for i, f := range fs {
		if f == s.focus {
			idx = i
		}
	}
	idx = (idx + delta + len(fs)) % len(fs)
	s.focus = fs[idx]

	if s.focus == fieldName {
		return s.name.Focus()
	}
	s.name.Blur()
	return nil
}

func (s *PersonalizeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.focus == fieldName {
			var cmd tea.Cmd
			s.name, cmd = s.name.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch kmsg.String() {
	case "down", "tab":
		return s, s.move(1)
	case "up", "shift+tab":
		return s, s.move(-1)
	case "enter":
		if s.focus == fieldName {
			return s, s.move(1)
		}
		return s, wizard.Push(preview.New(s.env, s.Request()))
	}

	switch s.focus {
	case fieldDifficulty:
		s.difficulty, _ = s.difficulty.Update(msg)
	case fieldLayout:
		s.layout, _ = s.layout.Update(msg)
	case fieldColoring:
		s.coloring, _ = s.coloring.Update(msg)
	case fieldName:
		var cmd tea.Cmd
		s.name, cmd = s.name.Update(msg)
		return s, cmd
	}
	return s, nil
}

// Request returns the request assembled from the current choices.
func (s *PersonalizeScreen) Request() worksheet.Request {
	req := s.req
	if len(s.difficulty.Options) > 0 {
		// A hidden picker still contributes its first option.
		req.Difficulty = s.difficulty.Value()
	}
	req.Layout = worksheet.Layout(s.layout.Value())
	req.ColoringItem = ""
	if req.Layout == worksheet.LayoutDrawingArea {
		req.ColoringItem = s.coloring.Value()
	}
	req.StudentName = strings.TrimSpace(s.name.Value())
	req.Count = 0
	return req.Normalize()
}

func (s *PersonalizeScreen) View(width, height int) string {
	label := func(f field, text string) string {
		if f == s.focus {
			return theme.Selected.Render("▸ " + text)
		}
		return theme.Body.Render("  " + text)
	}

	var rows []string
	for _, f := range s.fields() {
		focused := f == s.focus
		switch f {
		case fieldDifficulty:
			rows = append(rows, label(f, "Difficulty"), "  "+s.difficulty.View(focused), "")
		case fieldLayout:
			rows = append(rows, label(f, "Page layout"), "  "+s.layout.View(focused))
			if o := worksheet.LayoutOptions()[s.layout.Selected]; o.Description != "" {
				rows = append(rows, "  "+theme.Hint.Render(o.Description))
			}
			rows = append(rows, "")
		case fieldColoring:
			rows = append(rows, label(f, "Coloring item"), "  "+s.coloring.ViewCompact(focused), "")
		case fieldName:
			rows = append(rows, label(f, "Name on the sheet"), "  "+s.name.View(), "")
		case fieldCreate:
			btn := theme.Chip.Render("Create Worksheet")
			if focused {
				btn = theme.ChipActive.Render("Create Worksheet")
			}
			rows = append(rows, "  "+btn)
		}
	}

	count := worksheet.ProblemCount(s.req.Grade, s.req.Operation, worksheet.Layout(s.layout.Value()))
	summary := theme.Subtitle.Render(fmt.Sprintf("%s · %d problems",
		worksheet.Subtitle(s.req.Grade, s.req.Operation, s.difficulty.Value()), count))
	content := lipgloss.JoinVertical(lipgloss.Left, append([]string{summary, ""}, rows...)...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *PersonalizeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Create"},
		{Key: "Esc", Description: "Back"},
	}
}
