package problemgen

import (
	"strconv"
	"strings"
)

// Answer returns the correct result of an arithmetic problem. The second
// value is false for identification items and for malformed division.
func (p Problem) Answer() (int, bool) {
	switch p.Operator {
	case SymbolAdd:
		return p.A + p.B, true
	case SymbolSubtract:
		return p.A - p.B, true
	case SymbolMultiply:
		return p.A * p.B, true
	case SymbolDivide:
		if p.B == 0 {
			return 0, false
		}
		return p.A / p.B, true
	default:
		return 0, false
	}
}

// CheckAnswer compares a learner's written answer against the problem.
//
// Normalization rules:
// - Whitespace is trimmed
// - Leading zeros and a leading "+" are ignored ("007" matches "7")
// - Identification items are compared case-sensitively against the
//   display value's first word, so "Star" matches "Star ⭐" but "a"
//   does not match "A"
func CheckAnswer(input string, p Problem) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}

	if !p.IsArithmetic() {
		fields := strings.Fields(p.Display)
		return len(fields) > 0 && (input == p.Display || input == fields[0])
	}

	want, ok := p.Answer()
	if !ok {
		return false
	}
	got, err := strconv.Atoi(input)
	if err != nil {
		return false
	}
	return got == want
}

// Score counts correct answers; answers[i] is matched against problems[i].
// Missing answers count as wrong.
func Score(problems []Problem, answers []string) int {
	score := 0
	for i, p := range problems {
		if i < len(answers) && CheckAnswer(answers[i], p) {
			score++
		}
	}
	return score
}
