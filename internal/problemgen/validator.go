package problemgen

import "fmt"

// Validator checks a single problem for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error
	// messages and logging), e.g. "structural", "arithmetic".
	Name() string

	// Validate checks the problem and returns nil if it passes. The
	// validator receives the GenerateInput the set was produced for, so
	// range checks can be applied to generated sets.
	Validate(p Problem, input GenerateInput) *ValidationError
}

// ValidationError describes why a problem failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Index     int    // Position of the offending problem in the set
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("problem %d: validator %q: %s", e.Index+1, e.Validator, e.Message)
}

// Validate runs every validator over every problem, in order, and returns
// the first failure. A nil result means the whole set passed.
func Validate(problems []Problem, input GenerateInput, validators []Validator) *ValidationError {
	for i, p := range problems {
		for _, v := range validators {
			if verr := v.Validate(p, input); verr != nil {
				verr.Index = i
				return verr
			}
		}
	}
	return nil
}
