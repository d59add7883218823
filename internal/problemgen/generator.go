package problemgen

import (
	"math/rand/v2"
)

// Generate produces exactly in.Count problems using rng as the only source
// of randomness. It never fails: unknown grades, operations and tags
// degrade to documented defaults, and non-positive counts yield an empty
// slice.
func Generate(rng *rand.Rand, in GenerateInput) []Problem {
	if in.Count <= 0 {
		return []Problem{}
	}

	if in.identification() {
		tag := in.DifficultyTag
		if tag == "" {
			tag = DefaultTag
		}
		return generateIdentification(rng, in.Operation, tag, in.Count)
	}

	r := ResolveRange(in.Grade, in.Operation, in.DifficultyTag)
	problems := make([]Problem, 0, in.Count)
	for range in.Count {
		problems = append(problems, arithmeticProblem(rng, r, in.Operation))
	}
	return problems
}

// arithmeticProblem builds one item. Subtraction swaps operands so the
// result is never negative; division builds the dividend from a drawn
// quotient so the result is always an exact integer.
func arithmeticProblem(rng *rand.Rand, r Range, op Operation) Problem {
	p := Problem{Operator: op.Symbol()}

	switch op {
	case OpSubtract:
		p.A, p.B = draw(rng, r), draw(rng, r)
		if p.B > p.A {
			p.A, p.B = p.B, p.A
		}
	case OpDivide:
		result := draw(rng, r)
		divisor := max(draw(rng, r), 1)
		p.A, p.B = result*divisor, divisor
	default:
		// Add, Multiply, and anything unrecognised.
		p.A, p.B = draw(rng, r), draw(rng, r)
	}
	return p
}
