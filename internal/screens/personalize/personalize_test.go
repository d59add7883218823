package personalize

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/worksheetz/internal/problemgen"
	"github.com/abhisek/worksheetz/internal/router"
	"github.com/abhisek/worksheetz/internal/screens/preview"
	"github.com/abhisek/worksheetz/internal/wizard"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

func newScreen(grade problemgen.Grade, op problemgen.Operation) *PersonalizeScreen {
	env := &wizard.Env{Builder: worksheet.NewBuilder(nil)}
	return New(env, worksheet.Request{Grade: grade, Subject: worksheet.SubjectMath, Operation: op})
}

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func hasField(fs []field, f field) bool {
	for _, x := range fs {
		if x == f {
			return true
		}
	}
	return false
}

func TestDefaultsToFirstDifficulty(t *testing.T) {
	s := newScreen(problemgen.Grade1, problemgen.OpAdd)
	if s.focus != fieldDifficulty {
		t.Fatalf("expected focus on difficulty, got %d", s.focus)
	}

	req := s.Request()
	if req.Difficulty != "1-20" {
		t.Errorf("expected 1-20, got %q", req.Difficulty)
	}
	if req.Layout != worksheet.LayoutWorksheetOnly {
		t.Errorf("expected worksheet only, got %q", req.Layout)
	}
	if req.ColoringItem != "" {
		t.Errorf("coloring item should be empty without a drawing area, got %q", req.ColoringItem)
	}
}

func TestArrowKeysChangeDifficulty(t *testing.T) {
	s := newScreen(problemgen.Grade2, problemgen.OpSubtract)
	s.Update(key(tea.KeyRight))
	if got := s.Request().Difficulty; got != "1-200" {
		t.Errorf("expected 1-200, got %q", got)
	}
	s.Update(key(tea.KeyLeft))
	s.Update(key(tea.KeyLeft))
	if got := s.Request().Difficulty; got != "1-500" {
		t.Errorf("left should wrap to the last tag, got %q", got)
	}
}

func TestColoringFieldOnlyWithDrawingArea(t *testing.T) {
	s := newScreen(problemgen.GradeKindergarten, problemgen.OpAdd)
	if hasField(s.fields(), fieldColoring) {
		t.Fatal("coloring should be hidden for worksheet only")
	}

	s.Update(key(tea.KeyDown)) // layout
	s.Update(key(tea.KeyRight))
	s.Update(key(tea.KeyRight))

	if !hasField(s.fields(), fieldColoring) {
		t.Fatal("coloring should be shown for the drawing area")
	}
	req := s.Request()
	if req.Layout != worksheet.LayoutDrawingArea {
		t.Errorf("expected drawing area, got %q", req.Layout)
	}
	if req.ColoringItem != worksheet.DefaultColoringItem {
		t.Errorf("expected default coloring item, got %q", req.ColoringItem)
	}

	s.Update(key(tea.KeyDown)) // coloring
	s.Update(key(tea.KeyLeft))
	if got := s.Request().ColoringItem; got != worksheet.ColoringNone {
		t.Errorf("expected free drawing, got %q", got)
	}
}

func TestFocusWraps(t *testing.T) {
	s := newScreen(problemgen.Grade1, problemgen.OpDivide)
	s.Update(key(tea.KeyUp))
	if s.focus != fieldCreate {
		t.Errorf("up from the first field should wrap to create, got %d", s.focus)
	}
	s.Update(key(tea.KeyTab))
	if s.focus != fieldDifficulty {
		t.Errorf("tab from create should wrap to the first field, got %d", s.focus)
	}
}

func TestStudentNameIsTrimmed(t *testing.T) {
	s := newScreen(problemgen.GradePreschool, problemgen.OpShapes)
	s.name.SetValue("  Mia  ")
	if got := s.Request().StudentName; got != "Mia" {
		t.Errorf("expected trimmed name, got %q", got)
	}
}

func TestEnterOnNameAdvances(t *testing.T) {
	s := newScreen(problemgen.GradePreschool, problemgen.OpColors)
	for s.focus != fieldName {
		s.Update(key(tea.KeyDown))
	}
	_, cmd := s.Update(key(tea.KeyEnter))
	if s.focus != fieldCreate {
		t.Errorf("enter on the name should move to create, got %d", s.focus)
	}
	if cmd != nil {
		t.Error("advancing past the name should not push a screen")
	}
}

func TestEnterPushesPreview(t *testing.T) {
	s := newScreen(problemgen.GradePreschool, problemgen.OpAlphabets)
	s.Update(key(tea.KeyRight)) // lowercase

	_, cmd := s.Update(key(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	pv, ok := push.Screen.(*preview.PreviewScreen)
	if !ok {
		t.Fatalf("expected preview screen, got %T", push.Screen)
	}

	doc := pv.Worksheet().Document
	if len(doc.Problems) != worksheet.CountIdentification {
		t.Errorf("expected %d items, got %d", worksheet.CountIdentification, len(doc.Problems))
	}
	for _, p := range doc.Problems {
		if p.Display < "a" || p.Display > "z" {
			t.Errorf("expected a lowercase letter, got %q", p.Display)
		}
	}
}
