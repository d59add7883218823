package worksheet

import "github.com/abhisek/worksheetz/internal/problemgen"

// Problem counts chosen upstream of the generator.
const (
	CountIdentification = 12
	CountWithPanel      = 18
	CountFullPage       = 30
)

// GradeOption describes a grade on the picker.
type GradeOption struct {
	Grade problemgen.Grade `json:"id"`
	Name  string           `json:"name"`
	Ages  string           `json:"ages"`
}

// Grades returns the selectable grades in order.
func Grades() []GradeOption {
	return []GradeOption{
		{problemgen.GradePreschool, problemgen.GradePreschool.DisplayName(), "Ages 3-4"},
		{problemgen.GradeKindergarten, problemgen.GradeKindergarten.DisplayName(), "Ages 5-6"},
		{problemgen.Grade1, problemgen.Grade1.DisplayName(), "Ages 6-7"},
		{problemgen.Grade2, problemgen.Grade2.DisplayName(), "Ages 7-8"},
	}
}

// Subject is a learning area. Only math has worksheets today.
type Subject string

const (
	SubjectMath    Subject = "math"
	SubjectReading Subject = "english"
	SubjectScience Subject = "science"
	SubjectArt     Subject = "art"
	SubjectWriting Subject = "writing"
	SubjectSocial  Subject = "social"
)

// SubjectOption describes a subject on the picker.
type SubjectOption struct {
	Subject   Subject `json:"id"`
	Name      string  `json:"name"`
	Available bool    `json:"available"`
}

// Subjects returns every subject; unavailable ones are shown as coming soon.
func Subjects() []SubjectOption {
	return []SubjectOption{
		{SubjectMath, "Math", true},
		{SubjectReading, "Reading", false},
		{SubjectScience, "Science", false},
		{SubjectArt, "Art", false},
		{SubjectWriting, "Writing", false},
		{SubjectSocial, "Social Studies", false},
	}
}

// OperationOption describes an operation on the picker.
type OperationOption struct {
	Operation problemgen.Operation `json:"id"`
	Label     string               `json:"label"`
	Icon      string               `json:"icon"`
}

// Operations returns the operations offered for a grade. Preschool gets
// identification drills; every other grade gets the four operators.
func Operations(grade problemgen.Grade) []OperationOption {
	if grade == problemgen.GradePreschool {
		return []OperationOption{
			{problemgen.OpNumbers, "Numbers", "🔢"},
			{problemgen.OpAlphabets, "Alphabets", "🔤"},
			{problemgen.OpShapes, "Shapes", "🔺"},
			{problemgen.OpColors, "Colors", "🎨"},
		}
	}
	return []OperationOption{
		{problemgen.OpAdd, "Add", "➕"},
		{problemgen.OpSubtract, "Subtract", "➖"},
		{problemgen.OpMultiply, "Multiply", "✖️"},
		{problemgen.OpDivide, "Divide", "➗"},
	}
}

// DifficultyOption is one selectable difficulty tag.
type DifficultyOption struct {
	Tag   string `json:"id"`
	Label string `json:"label"`
}

// DifficultyOptions returns the tags offered for a grade and operation.
// The first entry is the default.
func DifficultyOptions(grade problemgen.Grade, op problemgen.Operation) []DifficultyOption {
	if grade == problemgen.GradePreschool {
		switch op {
		case problemgen.OpAlphabets:
			return []DifficultyOption{
				{problemgen.TagUppercase, "Uppercase (A-Z)"},
				{problemgen.TagLowercase, "Lowercase (a-z)"},
				{problemgen.TagBoth, "Both Mixed"},
			}
		case problemgen.OpShapes:
			return []DifficultyOption{{"basic_shapes", "Basic Shapes"}}
		case problemgen.OpColors:
			return []DifficultyOption{{"basic_colors", "Basic Colors"}}
		default:
			return []DifficultyOption{
				{"1-5", "Level 1: 1-5"},
				{"5-10", "Level 2: 5-10"},
				{"1-10", "Level 3: 1-10"},
				{"1-20", "Level 4: 1-20"},
			}
		}
	}

	switch grade {
	case problemgen.GradeKindergarten:
		return []DifficultyOption{{"1-10", "Level 1: 1-10"}, {"1-20", "Level 2: 1-20"}}
	case problemgen.Grade1:
		return []DifficultyOption{{"1-20", "Level 1: 1-20"}, {"1-50", "Level 2: 1-50"}, {"1-100", "Level 3: 1-100"}}
	case problemgen.Grade2:
		return []DifficultyOption{{"1-100", "Level 1: 1-100"}, {"1-200", "Level 2: 1-200"}, {"1-500", "Level 3: 1-500"}}
	default:
		return []DifficultyOption{{"1-10", "Level 1: 1-10"}, {"1-20", "Level 2: 1-20"}}
	}
}

// ShowDifficulty reports whether the difficulty picker is offered. A
// preschool sheet outside the identification drills has nothing to pick.
func ShowDifficulty(grade problemgen.Grade, op problemgen.Operation) bool {
	if grade != problemgen.GradePreschool {
		return true
	}
	switch op {
	case problemgen.OpNumbers, problemgen.OpAlphabets, problemgen.OpShapes, problemgen.OpColors:
		return true
	}
	return false
}

// LayoutOption describes a layout on the picker.
type LayoutOption struct {
	Layout      Layout `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// LayoutOptions returns the selectable layouts in order.
func LayoutOptions() []LayoutOption {
	return []LayoutOption{
		{LayoutWorksheetOnly, "Worksheet Only", "Full page of math problems"},
		{LayoutScoreBox, "Score Rating Box", "Adds a score section at the bottom"},
		{LayoutDrawingArea, "Drawing Area", "Adds a fun drawing zone for kids"},
	}
}

// ProblemCount returns how many problems fit a single page: fewer, larger
// items for pre-readers, and fewer rows when a panel takes the bottom.
func ProblemCount(grade problemgen.Grade, op problemgen.Operation, layout Layout) int {
	switch {
	case IsIdentificationStyle(grade, op):
		return CountIdentification
	case layout == LayoutScoreBox || layout == LayoutDrawingArea:
		return CountWithPanel
	default:
		return CountFullPage
	}
}
