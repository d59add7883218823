package problemgen

// Config controls which checks are applied to a problem set.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// problem. They execute in order; the first failure stops the pipeline.
	Validators []Validator
}

// DefaultConfig returns the checks applied to freshly generated sets:
// structure, arithmetic safety, and operands within the resolved range.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&ArithmeticValidator{CheckRange: true},
		},
	}
}

// ClientConfig returns the checks applied to problem sets supplied by a
// caller. Ranges are not enforced because the caller chose the operands.
func ClientConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&ArithmeticValidator{},
		},
	}
}
