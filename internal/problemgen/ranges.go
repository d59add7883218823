package problemgen

// DefaultTag is used for identification drills when no tag is supplied.
const DefaultTag = "1-10"

var tagRanges = map[string]Range{
	"1-5":   {1, 5},
	"5-10":  {5, 10},
	"1-10":  {1, 10},
	"1-20":  {1, 20},
	"1-50":  {1, 50},
	"1-100": {1, 100},
	"1-200": {1, 200},
	"1-500": {1, 500},
}

// fallbackTagRange applies to any tag missing from tagRanges, including
// character and category variants such as "uppercase".
var fallbackTagRange = Range{1, 10}

// ResolveRange returns the operand range for a request. A non-empty tag
// always wins over the grade; unknown tags resolve to [1,10].
func ResolveRange(grade Grade, op Operation, tag string) Range {
	if tag != "" {
		return RangeForTag(tag)
	}
	return RangeForGrade(grade, op)
}

// RangeForTag looks a difficulty tag up in the fixed tag table.
func RangeForTag(tag string) Range {
	if r, ok := tagRanges[tag]; ok {
		return r
	}
	return fallbackTagRange
}

// RangeForGrade returns the grade-derived range. Multiplication and
// division use times-table bounds; everything else uses addition bounds.
func RangeForGrade(grade Grade, op Operation) Range {
	if op == OpMultiply || op == OpDivide {
		switch grade {
		case GradePreschool:
			return Range{0, 2}
		case GradeKindergarten:
			return Range{0, 5}
		case Grade1:
			return Range{1, 5}
		case Grade2:
			return Range{1, 10}
		default:
			return Range{1, 10}
		}
	}

	switch grade {
	case GradePreschool:
		return Range{0, 5}
	case GradeKindergarten:
		return Range{0, 10}
	case Grade1:
		return Range{0, 20}
	case Grade2:
		return Range{0, 100}
	default:
		return Range{0, 20}
	}
}
