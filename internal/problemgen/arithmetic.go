package problemgen

import (
	"fmt"
	"strconv"
)

// ArithmeticValidator independently re-checks the safety guarantees the
// generator builds in: non-negative differences and exact division by a
// non-zero divisor. With CheckRange set it also verifies that the drawn
// values stay inside the range resolved for the input.
type ArithmeticValidator struct {
	CheckRange bool
}

func (v *ArithmeticValidator) Name() string { return "arithmetic" }

func (v *ArithmeticValidator) Validate(p Problem, input GenerateInput) *ValidationError {
	if !p.IsArithmetic() {
		return v.validateIdentification(p, input)
	}

	switch p.Operator {
	case SymbolSubtract:
		if p.B > p.A {
			return v.fail("%d - %d has a negative result", p.A, p.B)
		}
	case SymbolDivide:
		if p.B < 1 {
			return v.fail("divisor %d must be at least 1", p.B)
		}
		if p.A%p.B != 0 {
			return v.fail("%d ÷ %d is not an exact division", p.A, p.B)
		}
	}

	if !v.CheckRange {
		return nil
	}

	if want := input.Operation.Symbol(); p.Operator != want {
		return v.fail("operator %q does not match operation %q", p.Operator, input.Operation)
	}

	r := ResolveRange(input.Grade, input.Operation, input.DifficultyTag)
	if p.Operator == SymbolDivide {
		// The divisor is floored to 1 and the dividend is quotient × divisor.
		quotient := p.A / p.B
		if !r.Contains(quotient) {
			return v.fail("quotient %d outside %s", quotient, r)
		}
		if p.B != 1 && !r.Contains(p.B) {
			return v.fail("divisor %d outside %s", p.B, r)
		}
		return nil
	}
	if !r.Contains(p.A) || !r.Contains(p.B) {
		return v.fail("operands %d and %d outside %s", p.A, p.B, r)
	}
	return nil
}

// validateIdentification range-checks number drills; other identification
// items carry no arithmetic.
func (v *ArithmeticValidator) validateIdentification(p Problem, input GenerateInput) *ValidationError {
	if !v.CheckRange || input.Operation != OpNumbers {
		return nil
	}
	n, err := strconv.Atoi(p.Display)
	if err != nil {
		return v.fail("number item %q is not an integer", p.Display)
	}
	tag := input.DifficultyTag
	if tag == "" {
		tag = DefaultTag
	}
	if r := RangeForTag(tag); !r.Contains(n) {
		return v.fail("number %d outside %s", n, r)
	}
	return nil
}

func (v *ArithmeticValidator) fail(format string, args ...any) *ValidationError {
	return &ValidationError{
		Validator: v.Name(),
		Message:   fmt.Sprintf(format, args...),
	}
}
