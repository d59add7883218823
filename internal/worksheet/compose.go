package worksheet

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/abhisek/worksheetz/internal/problemgen"
)

const (
	// Title is the fixed banner printed on every worksheet.
	Title = "Practice Worksheet"

	// GridColumns is the number of problem columns on the page.
	GridColumns = 3

	subtitleSeparator = " • "
)

// Compose turns a problem set and the worksheet choices into a Document.
// It is pure: identical inputs always give structurally identical output.
func Compose(problems []problemgen.Problem, grade problemgen.Grade, op problemgen.Operation, p Personalization) Document {
	// Panel and font size must agree on how an unknown layout degrades.
	p.Layout = ParseLayout(string(p.Layout))
	return Document{
		Title:       Title,
		Subtitle:    Subtitle(grade, op, p.DifficultyTag),
		StudentName: strings.TrimSpace(p.StudentName),
		Problems:    slices.Clone(problems),
		Panel:       buildPanel(p.Layout, p.ColoringItem, len(problems)),
		GridColumns: GridColumns,
		FontSize:    fontSizeFor(grade, op, p.Layout),
	}
}

// IsIdentificationStyle reports whether a worksheet targets pre-readers.
// Such sheets use fewer, larger items.
func IsIdentificationStyle(grade problemgen.Grade, op problemgen.Operation) bool {
	return grade == problemgen.GradePreschool || op.Family() == problemgen.FamilyIdentification
}

// Subtitle combines the operation label, difficulty tag and grade name,
// e.g. "Multiply • 1-10 • 1st Grade".
func Subtitle(grade problemgen.Grade, op problemgen.Operation, tag string) string {
	parts := []string{OperationLabel(op)}
	if tag = strings.TrimSpace(tag); tag != "" {
		parts = append(parts, tag)
	}
	parts = append(parts, grade.DisplayName())
	return strings.Join(parts, subtitleSeparator)
}

// OperationLabel returns the title-cased operation name.
func OperationLabel(op problemgen.Operation) string {
	if op == problemgen.OpUnknown {
		return "Math"
	}
	return cases.Title(language.English).String(string(op))
}

func fontSizeFor(grade problemgen.Grade, op problemgen.Operation, layout Layout) FontSize {
	switch {
	case IsIdentificationStyle(grade, op):
		return FontLarge
	case layout == LayoutWorksheetOnly:
		return FontMedium
	default:
		return FontSmall
	}
}

func buildPanel(layout Layout, coloringItem string, count int) Panel {
	switch layout {
	case LayoutScoreBox:
		return Panel{Kind: PanelScore, MaxScore: count}
	case LayoutDrawingArea:
		item := strings.TrimSpace(coloringItem)
		if item == "" || strings.EqualFold(item, ColoringNone) {
			return Panel{Kind: PanelEmptyDrawing}
		}
		label, emoji := ParseColoringItem(item)
		return Panel{Kind: PanelDrawing, ItemLabel: label, ItemEmoji: emoji}
	default:
		return Panel{Kind: PanelNone}
	}
}
