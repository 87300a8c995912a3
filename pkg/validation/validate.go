package validation

import (
	"fmt"
	"strconv"
)

// Violation describes one failed constraint.
type Violation struct {
	Constraint string `json:"constraint"`
	Limit      string `json:"limit,omitempty"`
	Actual     string `json:"actual,omitempty"`
	Message    string `json:"message"`
}

func (v Violation) String() string {
	return v.Constraint + ": " + v.Message
}

// Validate reports whether every declared constraint that applies to the
// value's kind holds. Bounds are exclusive: a text of exactly MinLength or
// MaxLength characters fails, as does a number equal to Min or Max.
func Validate(set ConstraintSet) bool {
	return len(Check(set)) == 0
}

// Check evaluates the set and returns every violation. Constraints of the
// wrong kind for the value (e.g. MinLength on a number) are skipped.
func Check(set ConstraintSet) []Violation {
	var out []Violation
	value := set.Value

	if set.Required && trimSpace(value.String()) == "" {
		out = append(out, Violation{
			Constraint: ConstraintRequired,
			Message:    "value is required",
		})
	}

	if value.IsText() {
		length := textLength(value.text)
		if set.MinLength != nil && !(length > *set.MinLength) {
			out = append(out, Violation{
				Constraint: ConstraintMinLength,
				Limit:      strconv.Itoa(*set.MinLength),
				Actual:     strconv.Itoa(length),
				Message:    fmt.Sprintf("length must be greater than %d (got %d)", *set.MinLength, length),
			})
		}
		if set.MaxLength != nil && !(length < *set.MaxLength) {
			out = append(out, Violation{
				Constraint: ConstraintMaxLength,
				Limit:      strconv.Itoa(*set.MaxLength),
				Actual:     strconv.Itoa(length),
				Message:    fmt.Sprintf("length must be less than %d (got %d)", *set.MaxLength, length),
			})
		}
	}

	if value.IsNumber() {
		// NaN compares false both ways, so it fails any declared bound.
		if set.Min != nil && !(value.number > *set.Min) {
			out = append(out, Violation{
				Constraint: ConstraintMin,
				Limit:      formatFloat(*set.Min),
				Actual:     value.String(),
				Message:    fmt.Sprintf("must be greater than %s (got %s)", formatFloat(*set.Min), value.String()),
			})
		}
		if set.Max != nil && !(value.number < *set.Max) {
			out = append(out, Violation{
				Constraint: ConstraintMax,
				Limit:      formatFloat(*set.Max),
				Actual:     value.String(),
				Message:    fmt.Sprintf("must be less than %s (got %s)", formatFloat(*set.Max), value.String()),
			})
		}
	}

	return out
}

func formatFloat(n float64) string {
	return Number(n).String()
}
