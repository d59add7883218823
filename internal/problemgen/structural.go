package problemgen

// maxDisplayLen bounds identification labels so they fit a grid cell.
const maxDisplayLen = 64

// StructuralValidator checks that exactly one problem form is populated
// and that the operator is one of the four printable glyphs.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p Problem, _ GenerateInput) *ValidationError {
	if p.Operator == "" && p.Display == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "neither operator nor display is set",
		}
	}
	if p.Operator != "" && p.Display != "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "both arithmetic and identification forms are set",
		}
	}
	if !p.IsArithmetic() {
		if len(p.Display) > maxDisplayLen {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "display exceeds 64 bytes",
			}
		}
		return nil
	}
	switch p.Operator {
	case SymbolAdd, SymbolSubtract, SymbolMultiply, SymbolDivide:
	default:
		return &ValidationError{
			Validator: v.Name(),
			Message:   "operator must be one of \"+\", \"-\", \"×\", \"÷\"",
		}
	}
	if p.A < 0 || p.B < 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "operands must be non-negative",
		}
	}
	return nil
}
