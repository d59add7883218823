package problemgen

import (
	"sort"
	"strconv"
	"testing"
)

func TestGenerate_ExactCountAllArithmetic(t *testing.T) {
	ops := []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}
	grades := []Grade{GradePreschool, GradeKindergarten, Grade1, Grade2, GradeUnknown}
	counts := []int{1, 12, 18, 30, 250}

	rng := NewRand(1)
	for _, op := range ops {
		for _, g := range grades {
			for _, n := range counts {
				got := Generate(rng, GenerateInput{Grade: g, Operation: op, Count: n})
				if len(got) != n {
					t.Fatalf("%s/%s count=%d: got %d problems", g, op, n, len(got))
				}
			}
		}
	}
}

func TestGenerate_NonPositiveCount(t *testing.T) {
	for _, n := range []int{0, -1, -30} {
		got := Generate(NewRand(1), GenerateInput{Grade: Grade1, Operation: OpAdd, Count: n})
		if got == nil {
			t.Fatalf("count=%d: expected empty slice, got nil", n)
		}
		if len(got) != 0 {
			t.Fatalf("count=%d: expected 0 problems, got %d", n, len(got))
		}
	}
}

func TestGenerate_SubtractNeverNegative(t *testing.T) {
	rng := NewRand(7)
	for _, tag := range []string{"", "1-5", "1-100", "1-500"} {
		for _, p := range Generate(rng, GenerateInput{Grade: Grade2, Operation: OpSubtract, DifficultyTag: tag, Count: 500}) {
			if p.A < p.B {
				t.Fatalf("tag %q: %s has a negative result", tag, p)
			}
			if p.Operator != "-" {
				t.Fatalf("expected operator -, got %q", p.Operator)
			}
		}
	}
}

func TestGenerate_DivideExact(t *testing.T) {
	rng := NewRand(11)
	// Preschool and kindergarten ranges include zero, which exercises the
	// divisor floor.
	for _, g := range []Grade{GradePreschool, GradeKindergarten, Grade1, Grade2} {
		for _, p := range Generate(rng, GenerateInput{Grade: g, Operation: OpDivide, Count: 500}) {
			if p.B < 1 {
				t.Fatalf("grade %s: divisor %d < 1", g, p.B)
			}
			if p.A%p.B != 0 {
				t.Fatalf("grade %s: %s is not exact", g, p)
			}
			if p.Operator != "÷" {
				t.Fatalf("expected operator ÷, got %q", p.Operator)
			}
		}
	}
}

func TestGenerate_Grade1MultiplyScenario(t *testing.T) {
	got := Generate(NewRand(3), GenerateInput{Grade: Grade1, Operation: OpMultiply, Count: 30})
	if len(got) != 30 {
		t.Fatalf("expected 30 problems, got %d", len(got))
	}
	for _, p := range got {
		if p.A < 1 || p.A > 5 || p.B < 1 || p.B > 5 {
			t.Fatalf("operands of %s outside [1,5]", p)
		}
		if p.Operator != "×" {
			t.Fatalf("expected ×, got %q", p.Operator)
		}
	}
}

func TestGenerate_UnknownTagFallsBackToOneToTen(t *testing.T) {
	got := Generate(NewRand(5), GenerateInput{Grade: Grade2, Operation: OpAdd, DifficultyTag: "bogus", Count: 1000})
	for _, p := range got {
		if p.A < 1 || p.A > 10 || p.B < 1 || p.B > 10 {
			t.Fatalf("operands of %s outside [1,10]", p)
		}
	}
}

func TestGenerate_TagOverridesGrade(t *testing.T) {
	got := Generate(NewRand(9), GenerateInput{Grade: GradePreschool, Operation: OpAdd, DifficultyTag: "5-10", Count: 300})
	for _, p := range got {
		if p.A < 5 || p.A > 10 || p.B < 5 || p.B > 10 {
			t.Fatalf("operands of %s outside [5,10]", p)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	in := GenerateInput{Grade: Grade2, Operation: OpDivide, Count: 30}
	a := Generate(NewRand(42), in)
	b := Generate(NewRand(42), in)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("item %d differs: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestGenerate_NumbersFullCoverage(t *testing.T) {
	got := Generate(NewRand(2), GenerateInput{Grade: GradePreschool, Operation: OpNumbers, DifficultyTag: "1-10", Count: 10})
	if len(got) != 10 {
		t.Fatalf("expected 10 items, got %d", len(got))
	}
	var values []int
	for _, p := range got {
		if p.IsArithmetic() {
			t.Fatalf("expected identification form, got %s", p)
		}
		n, err := strconv.Atoi(p.Display)
		if err != nil {
			t.Fatalf("display %q is not a number", p.Display)
		}
		values = append(values, n)
	}
	sort.Ints(values)
	for i, v := range values {
		if v != i+1 {
			t.Fatalf("expected exactly 1..10, got %v", values)
		}
	}
}

func TestGenerate_NumbersCoverageWithPadding(t *testing.T) {
	got := Generate(NewRand(4), GenerateInput{Grade: GradePreschool, Operation: OpNumbers, DifficultyTag: "1-5", Count: 12})
	if len(got) != 12 {
		t.Fatalf("expected 12 items, got %d", len(got))
	}
	seen := map[string]int{}
	for _, p := range got {
		seen[p.Display]++
	}
	for v := 1; v <= 5; v++ {
		if seen[strconv.Itoa(v)] == 0 {
			t.Errorf("value %d missing from %v", v, seen)
		}
	}
	for k := range seen {
		n, _ := strconv.Atoi(k)
		if n < 1 || n > 5 {
			t.Errorf("value %q outside [1,5]", k)
		}
	}
}

func TestGenerate_NumbersCountBelowRange(t *testing.T) {
	got := Generate(NewRand(8), GenerateInput{Grade: GradePreschool, Operation: OpNumbers, DifficultyTag: "1-20", Count: 12})
	seen := map[string]bool{}
	for _, p := range got {
		if seen[p.Display] {
			t.Fatalf("duplicate %q before the range was exhausted", p.Display)
		}
		seen[p.Display] = true
	}
}

func TestGenerate_NumbersDefaultTag(t *testing.T) {
	got := Generate(NewRand(8), GenerateInput{Grade: GradePreschool, Operation: OpNumbers, Count: 10})
	seen := map[string]bool{}
	for _, p := range got {
		seen[p.Display] = true
	}
	if len(seen) != 10 {
		t.Fatalf("expected full 1-10 coverage with the default tag, got %v", seen)
	}
}

func TestGenerate_Alphabets(t *testing.T) {
	tests := []struct {
		tag     string
		isValid func(r rune) bool
	}{
		{"uppercase", func(r rune) bool { return r >= 'A' && r <= 'Z' }},
		{"", func(r rune) bool { return r >= 'A' && r <= 'Z' }},
		{"1-10", func(r rune) bool { return r >= 'A' && r <= 'Z' }},
		{"lowercase", func(r rune) bool { return r >= 'a' && r <= 'z' }},
		{"both", func(r rune) bool { return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') }},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got := Generate(NewRand(6), GenerateInput{Grade: GradePreschool, Operation: OpAlphabets, DifficultyTag: tt.tag, Count: 200})
			if len(got) != 200 {
				t.Fatalf("expected 200 items, got %d", len(got))
			}
			for _, p := range got {
				r := []rune(p.Display)
				if len(r) != 1 || !tt.isValid(r[0]) {
					t.Fatalf("unexpected letter %q", p.Display)
				}
			}
		})
	}
}

func TestGenerate_BothDrawsFromBothCases(t *testing.T) {
	got := Generate(NewRand(12), GenerateInput{Grade: GradePreschool, Operation: OpAlphabets, DifficultyTag: "both", Count: 300})
	var upper, lower bool
	for _, p := range got {
		c := p.Display[0]
		upper = upper || (c >= 'A' && c <= 'Z')
		lower = lower || (c >= 'a' && c <= 'z')
	}
	if !upper || !lower {
		t.Fatalf("expected both cases, upper=%v lower=%v", upper, lower)
	}
}

func TestGenerate_ShapesAndColorsFromCatalog(t *testing.T) {
	tests := []struct {
		op      Operation
		catalog []string
	}{
		{OpShapes, Shapes},
		{OpColors, Colors},
	}
	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			allowed := map[string]bool{}
			for _, c := range tt.catalog {
				allowed[c] = true
			}
			got := Generate(NewRand(10), GenerateInput{Grade: GradePreschool, Operation: tt.op, Count: 18})
			if len(got) != 18 {
				t.Fatalf("expected 18 items, got %d", len(got))
			}
			for _, p := range got {
				if !allowed[p.Display] {
					t.Fatalf("%q not in catalog", p.Display)
				}
			}
		})
	}
}

func TestGenerate_CatalogSizes(t *testing.T) {
	if len(Shapes) != 8 {
		t.Errorf("expected 8 shapes, got %d", len(Shapes))
	}
	if len(Colors) != 10 {
		t.Errorf("expected 10 colors, got %d", len(Colors))
	}
}

func TestGenerate_IdentificationOutsidePreschoolIsArithmetic(t *testing.T) {
	got := Generate(NewRand(1), GenerateInput{Grade: Grade1, Operation: OpShapes, Count: 30})
	for _, p := range got {
		if !p.IsArithmetic() || p.Operator != "+" {
			t.Fatalf("expected addition fallback, got %+v", p)
		}
		if p.A < 0 || p.A > 20 || p.B < 0 || p.B > 20 {
			t.Fatalf("operands of %s outside grade 1 addition range", p)
		}
	}
}

func TestGenerate_UnknownOperationIsAddition(t *testing.T) {
	got := Generate(NewRand(1), GenerateInput{Grade: GradeUnknown, Operation: ParseOperation("modulo"), Count: 50})
	for _, p := range got {
		if p.Operator != "+" {
			t.Fatalf("expected +, got %q", p.Operator)
		}
		if p.A < 0 || p.A > 20 {
			t.Fatalf("operand %d outside default [0,20]", p.A)
		}
	}
}

func TestGenerate_ExactlyOneFormPopulated(t *testing.T) {
	inputs := []GenerateInput{
		{Grade: GradePreschool, Operation: OpNumbers, Count: 20},
		{Grade: GradePreschool, Operation: OpColors, Count: 20},
		{Grade: Grade2, Operation: OpMultiply, Count: 20},
	}
	for _, in := range inputs {
		for _, p := range Generate(NewRand(1), in) {
			if (p.Operator == "") == (p.Display == "") {
				t.Fatalf("%s: exactly one form must be set, got %+v", in.Operation, p)
			}
		}
	}
}

func TestGenerate_PassesDefaultValidators(t *testing.T) {
	cfg := DefaultConfig()
	rng := NewRand(99)
	for _, g := range []Grade{GradePreschool, GradeKindergarten, Grade1, Grade2, GradeUnknown} {
		for _, op := range []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide, OpNumbers, OpAlphabets, OpShapes, OpColors} {
			for _, tag := range []string{"", "1-5", "5-10", "bogus"} {
				in := GenerateInput{Grade: g, Operation: op, DifficultyTag: tag, Count: 40}
				if verr := Validate(Generate(rng, in), in, cfg.Validators); verr != nil {
					t.Fatalf("%s/%s/%q: %v", g, op, tag, verr)
				}
			}
		}
	}
}
