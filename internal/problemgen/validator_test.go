package problemgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuralValidator(t *testing.T) {
	tests := []struct {
		name    string
		problem Problem
		wantErr string
	}{
		{"arithmetic ok", Problem{A: 3, B: 4, Operator: "+"}, ""},
		{"identification ok", Problem{Display: "Star ⭐"}, ""},
		{"empty", Problem{}, "neither"},
		{"both forms", Problem{A: 1, B: 1, Operator: "+", Display: "1"}, "both"},
		{"bad operator", Problem{A: 1, B: 1, Operator: "%"}, "operator"},
		{"negative operand", Problem{A: -1, B: 1, Operator: "+"}, "non-negative"},
		{"long display", Problem{Display: strings.Repeat("x", 65)}, "64"},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := v.Validate(tt.problem, GenerateInput{})
			if tt.wantErr == "" {
				assert.Nil(t, verr)
				return
			}
			require.NotNil(t, verr)
			assert.Equal(t, "structural", verr.Validator)
			assert.Contains(t, verr.Message, tt.wantErr)
		})
	}
}

func TestArithmeticValidator_Safety(t *testing.T) {
	tests := []struct {
		name    string
		problem Problem
		wantErr bool
	}{
		{"subtract ok", Problem{A: 9, B: 3, Operator: "-"}, false},
		{"subtract equal", Problem{A: 3, B: 3, Operator: "-"}, false},
		{"subtract negative", Problem{A: 3, B: 9, Operator: "-"}, true},
		{"divide exact", Problem{A: 12, B: 4, Operator: "÷"}, false},
		{"divide inexact", Problem{A: 13, B: 4, Operator: "÷"}, true},
		{"divide by zero", Problem{A: 0, B: 0, Operator: "÷"}, true},
		{"multiply anything", Problem{A: 400, B: 400, Operator: "×"}, false},
		{"identification skipped", Problem{Display: "Q"}, false},
	}

	v := &ArithmeticValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := v.Validate(tt.problem, GenerateInput{})
			if tt.wantErr {
				require.NotNil(t, verr)
				assert.Equal(t, "arithmetic", verr.Validator)
			} else {
				assert.Nil(t, verr)
			}
		})
	}
}

func TestArithmeticValidator_Range(t *testing.T) {
	v := &ArithmeticValidator{CheckRange: true}
	in := GenerateInput{Grade: Grade1, Operation: OpMultiply}

	assert.Nil(t, v.Validate(Problem{A: 5, B: 1, Operator: "×"}, in))
	assert.NotNil(t, v.Validate(Problem{A: 6, B: 1, Operator: "×"}, in), "6 is outside [1,5]")
	assert.NotNil(t, v.Validate(Problem{A: 2, B: 2, Operator: "+"}, in), "operator mismatch")

	div := GenerateInput{Grade: Grade2, Operation: OpDivide}
	assert.Nil(t, v.Validate(Problem{A: 100, B: 10, Operator: "÷"}, div))
	assert.NotNil(t, v.Validate(Problem{A: 110, B: 10, Operator: "÷"}, div), "quotient 11 outside [1,10]")

	nums := GenerateInput{Grade: GradePreschool, Operation: OpNumbers, DifficultyTag: "1-5"}
	assert.Nil(t, v.Validate(Problem{Display: "5"}, nums))
	assert.NotNil(t, v.Validate(Problem{Display: "6"}, nums))
	assert.NotNil(t, v.Validate(Problem{Display: "six"}, nums))
}

func TestValidate_ReportsIndex(t *testing.T) {
	problems := []Problem{
		{A: 1, B: 1, Operator: "+"},
		{A: 2, B: 1, Operator: "-"},
		{A: 1, B: 2, Operator: "-"},
	}
	verr := Validate(problems, GenerateInput{}, ClientConfig().Validators)
	require.NotNil(t, verr)
	assert.Equal(t, 2, verr.Index)
	assert.Contains(t, verr.Error(), "problem 3")
}

func TestAnswerAndScore(t *testing.T) {
	tests := []struct {
		problem Problem
		want    int
		ok      bool
	}{
		{Problem{A: 7, B: 5, Operator: "+"}, 12, true},
		{Problem{A: 7, B: 5, Operator: "-"}, 2, true},
		{Problem{A: 7, B: 5, Operator: "×"}, 35, true},
		{Problem{A: 35, B: 5, Operator: "÷"}, 7, true},
		{Problem{A: 35, B: 0, Operator: "÷"}, 0, false},
		{Problem{Display: "A"}, 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.problem.Answer()
		assert.Equal(t, tt.ok, ok, tt.problem.String())
		assert.Equal(t, tt.want, got, tt.problem.String())
	}

	problems := []Problem{
		{A: 2, B: 2, Operator: "+"},
		{A: 9, B: 3, Operator: "÷"},
		{Display: "Star ⭐"},
		{Display: "a"},
	}
	assert.Equal(t, 4, Score(problems, []string{"4", " 003 ", "Star", "a"}))
	assert.Equal(t, 1, Score(problems, []string{"4", "4", "Circle"}))
	assert.Equal(t, 0, Score(problems, []string{"", "", "", "A"}))
}
