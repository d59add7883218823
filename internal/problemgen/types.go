package problemgen

import (
	"fmt"
	"strings"
)

// Grade is the school level a worksheet targets. The zero value is
// GradeUnknown, which resolves to the default ranges.
type Grade string

const (
	GradeUnknown      Grade = ""
	GradePreschool    Grade = "pre"
	GradeKindergarten Grade = "k"
	Grade1            Grade = "1"
	Grade2            Grade = "2"
)

// ParseGrade maps a wire key or a display name to a Grade.
// Unrecognised input yields GradeUnknown.
func ParseGrade(s string) Grade {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pre", "preschool", "prek", "pre-k":
		return GradePreschool
	case "k", "kg", "kindergarten":
		return GradeKindergarten
	case "1", "grade1", "grade 1", "1st", "1st grade":
		return Grade1
	case "2", "grade2", "grade 2", "2nd", "2nd grade":
		return Grade2
	default:
		return GradeUnknown
	}
}

// DisplayName returns a human-readable name for the grade.
func (g Grade) DisplayName() string {
	switch g {
	case GradePreschool:
		return "Preschool"
	case GradeKindergarten:
		return "Kindergarten"
	case Grade1:
		return "1st Grade"
	case Grade2:
		return "2nd Grade"
	default:
		return "Any Grade"
	}
}

// Family groups operations into arithmetic drills and identification drills.
type Family string

const (
	FamilyArithmetic     Family = "arithmetic"
	FamilyIdentification Family = "identification"
)

// Operation selects what kind of problems are generated.
type Operation string

const (
	OpUnknown Operation = ""

	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"

	OpNumbers   Operation = "numbers"
	OpAlphabets Operation = "alphabets"
	OpShapes    Operation = "shapes"
	OpColors    Operation = "colors"

	// OpIdentification is the generic marker for "some identification
	// drill". It classifies a worksheet as identification-style but has no
	// generator of its own.
	OpIdentification Operation = "identification"
)

// ParseOperation maps a wire key (or a common alias) to an Operation.
// Unrecognised input yields OpUnknown.
func ParseOperation(s string) Operation {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "addition", "plus", "+":
		return OpAdd
	case "subtract", "sub", "subtraction", "minus", "-":
		return OpSubtract
	case "multiply", "mul", "multiplication", "times", "×", "x", "*":
		return OpMultiply
	case "divide", "div", "division", "÷", "/":
		return OpDivide
	case "numbers":
		return OpNumbers
	case "alphabets", "alphabet", "letters":
		return OpAlphabets
	case "shapes":
		return OpShapes
	case "colors", "colours":
		return OpColors
	case "identification":
		return OpIdentification
	default:
		return OpUnknown
	}
}

// Family reports which drill family the operation belongs to. Unknown
// operations are treated as arithmetic.
func (o Operation) Family() Family {
	switch o {
	case OpNumbers, OpAlphabets, OpShapes, OpColors, OpIdentification:
		return FamilyIdentification
	default:
		return FamilyArithmetic
	}
}

// Symbol returns the operator glyph printed between operands.
// Anything that is not subtract, multiply or divide prints as addition.
func (o Operation) Symbol() string {
	switch o {
	case OpSubtract:
		return SymbolSubtract
	case OpMultiply:
		return SymbolMultiply
	case OpDivide:
		return SymbolDivide
	default:
		return SymbolAdd
	}
}

// Operator glyphs.
const (
	SymbolAdd      = "+"
	SymbolSubtract = "-"
	SymbolMultiply = "×"
	SymbolDivide   = "÷"
)

// Problem is a single worksheet item. Exactly one form is populated:
// the arithmetic form (A, B, Operator) or the identification form (Display).
type Problem struct {
	A        int    `json:"a,omitempty"`
	B        int    `json:"b,omitempty"`
	Operator string `json:"operator,omitempty"`
	Display  string `json:"display,omitempty"`
}

// IsArithmetic reports whether p carries the arithmetic form.
func (p Problem) IsArithmetic() bool {
	return p.Operator != ""
}

// String returns the text printed on the worksheet, e.g. "7 + 5 =" or "Star ⭐".
func (p Problem) String() string {
	if !p.IsArithmetic() {
		return p.Display
	}
	return fmt.Sprintf("%d %s %d =", p.A, p.Operator, p.B)
}

// Range is an inclusive integer interval.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Size returns the number of integers in the range.
func (r Range) Size() int {
	if r.Max < r.Min {
		return 0
	}
	return r.Max - r.Min + 1
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Min, r.Max)
}

// GenerateInput holds everything needed to generate a problem set.
type GenerateInput struct {
	Grade     Grade
	Operation Operation

	// DifficultyTag is an opaque key such as "1-10" or "uppercase".
	// Empty means "derive from grade".
	DifficultyTag string

	// Count is the exact number of problems to produce. Non-positive
	// counts produce an empty set.
	Count int
}

// identification reports whether the input is routed to an identification
// generator rather than the arithmetic one.
func (in GenerateInput) identification() bool {
	if in.Grade != GradePreschool {
		return false
	}
	switch in.Operation {
	case OpNumbers, OpAlphabets, OpShapes, OpColors:
		return true
	}
	return false
}
