package validation_test

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formview/pkg/validation"
)

func TestValidate_RequiredOnly(t *testing.T) {
	cases := []struct {
		name  string
		value validation.Value
		want  bool
	}{
		{name: "empty text", value: validation.Text(""), want: false},
		{name: "whitespace text", value: validation.Text(" \t\n "), want: false},
		{name: "byte order mark", value: validation.Text("\uFEFF"), want: false},
		{name: "no-break and ideographic spaces", value: validation.Text("\u00A0\u3000\u2028"), want: false},
		{name: "next line is content", value: validation.Text("\u0085"), want: true},
		{name: "text", value: validation.Text("Build App"), want: true},
		{name: "padded text", value: validation.Text("  x  "), want: true},
		{name: "zero number", value: validation.Number(0), want: true},
		{name: "nan number", value: validation.Number(math.NaN()), want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := validation.Validate(validation.ConstraintSet{Value: tc.value, Rule: validation.Rule{Required: true}})
			if got != tc.want {
				t.Fatalf("Validate(%q) = %v, want %v", tc.value.String(), got, tc.want)
			}
		})
	}
}

func TestValidate_MinLengthIsExclusive(t *testing.T) {
	const k = 10
	for length := 0; length <= 15; length++ {
		set := validation.Rule{MinLength: validation.Length(k)}.With(validation.Text(strings.Repeat("a", length)))
		want := length > k
		if got := validation.Validate(set); got != want {
			t.Fatalf("minLength=%d len=%d: got %v want %v", k, length, got, want)
		}
	}
}

func TestValidate_MaxLengthIsExclusive(t *testing.T) {
	const k = 20
	for length := 15; length <= 25; length++ {
		set := validation.Rule{MaxLength: validation.Length(k)}.With(validation.Text(strings.Repeat("b", length)))
		want := length < k
		if got := validation.Validate(set); got != want {
			t.Fatalf("maxLength=%d len=%d: got %v want %v", k, length, got, want)
		}
	}
}

func TestValidate_LengthCountsUTF16Units(t *testing.T) {
	rule := validation.Rule{MinLength: validation.Length(10), MaxLength: validation.Length(20)}
	cases := []struct {
		name string
		text string
		want bool
	}{
		{name: "multi-byte latin", text: "äöüßäöüßäöü", want: true},
		{name: "six emoji count twelve", text: strings.Repeat("\U0001F600", 6), want: true},
		{name: "five emoji count ten", text: strings.Repeat("\U0001F600", 5), want: false},
		{name: "ten emoji count twenty", text: strings.Repeat("\U0001F600", 10), want: false},
		{name: "mixed", text: "plan \U00020000 ahead", want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := validation.Validate(rule.With(validation.Text(tc.text))); got != tc.want {
				t.Fatalf("Validate(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}

	violations := validation.Check(validation.Rule{MaxLength: validation.Length(2)}.With(validation.Text("\U0001F600")))
	want := []validation.Violation{{
		Constraint: validation.ConstraintMaxLength,
		Limit:      "2",
		Actual:     "2",
		Message:    "length must be less than 2 (got 2)",
	}}
	if diff := cmp.Diff(want, violations); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_NumericBoundsAreExclusive(t *testing.T) {
	rule := validation.Rule{Min: validation.Bound(3), Max: validation.Bound(10)}
	cases := map[float64]bool{
		2:    false,
		3:    false,
		3.5:  true,
		5:    true,
		9.99: true,
		10:   false,
		11:   false,
	}
	for n, want := range cases {
		if got := validation.Validate(rule.With(validation.Number(n))); got != want {
			t.Fatalf("Validate(%v) = %v, want %v", n, got, want)
		}
	}
}

func TestValidate_NaNFailsNumericBounds(t *testing.T) {
	if validation.Validate(validation.Rule{Min: validation.Bound(3)}.With(validation.Number(math.NaN()))) {
		t.Fatalf("expected NaN to fail min")
	}
	if validation.Validate(validation.Rule{Max: validation.Bound(10)}.With(validation.Number(math.NaN()))) {
		t.Fatalf("expected NaN to fail max")
	}
}

func TestValidate_SkipsConstraintsOfOtherKind(t *testing.T) {
	numeric := validation.Rule{MinLength: validation.Length(100), MaxLength: validation.Length(1)}.With(validation.Number(5))
	if !validation.Validate(numeric) {
		t.Fatalf("length constraints must not apply to numbers")
	}

	textual := validation.Rule{Min: validation.Bound(100), Max: validation.Bound(1)}.With(validation.Text("5"))
	if !validation.Validate(textual) {
		t.Fatalf("numeric constraints must not apply to text")
	}
}

func TestValidate_NoConstraints(t *testing.T) {
	if !validation.Validate(validation.ConstraintSet{}) {
		t.Fatalf("empty set must pass")
	}
}

func TestCheck_ReportsEveryViolation(t *testing.T) {
	set := validation.Rule{
		Required:  true,
		MinLength: validation.Length(10),
		MaxLength: validation.Length(0),
	}.With(validation.Text(""))

	got := validation.Check(set)
	want := []validation.Violation{
		{Constraint: validation.ConstraintRequired, Message: "value is required"},
		{Constraint: validation.ConstraintMinLength, Limit: "10", Actual: "0", Message: "length must be greater than 10 (got 0)"},
		{Constraint: validation.ConstraintMaxLength, Limit: "0", Actual: "0", Message: "length must be less than 0 (got 0)"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
}

func TestCheck_NumericViolation(t *testing.T) {
	got := validation.Check(validation.Rule{Required: true, Min: validation.Bound(3), Max: validation.Bound(10)}.With(validation.Number(10)))
	want := []validation.Violation{
		{Constraint: validation.ConstraintMax, Limit: "10", Actual: "10", Message: "must be less than 10 (got 10)"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
}

func TestParseNumber(t *testing.T) {
	cases := map[string]float64{
		"5":          5,
		" 7 ":        7,
		"\uFEFF8\n": 8,
		"":           0,
		"   ":        0,
		"2.5":        2.5,
		"-3":         -3,
		"+4":         4,
		".5":         0.5,
		"5.":         5,
		"1e1":        10,
		"10.0":       10,
		"0x5":        5,
		"0XfF":       255,
		"0o17":       15,
		"0b101":      5,
	}
	for raw, want := range cases {
		if got := validation.ParseNumber(raw); got != want {
			t.Fatalf("ParseNumber(%q) = %v, want %v", raw, got, want)
		}
	}
	for raw, want := range map[string]float64{
		"Infinity":  math.Inf(1),
		"+Infinity": math.Inf(1),
		"-Infinity": math.Inf(-1),
		"1e400":     math.Inf(1),
	} {
		if got := validation.ParseNumber(raw); got != want {
			t.Fatalf("ParseNumber(%q) = %v, want %v", raw, got, want)
		}
	}
	for _, raw := range []string{"abc", "5 people", "0x", "0x1g", "-0x5", "0b2", "inf", "NaN", "infinity", "1_000", "0x1p-2", "\u00855", "1e", "."} {
		if got := validation.ParseNumber(raw); !math.IsNaN(got) {
			t.Fatalf("ParseNumber(%q) = %v, want NaN", raw, got)
		}
	}
}

func TestValueString(t *testing.T) {
	cases := []struct {
		value validation.Value
		want  string
	}{
		{validation.Text("abc"), "abc"},
		{validation.Number(5), "5"},
		{validation.Number(2.5), "2.5"},
		{validation.Number(0), "0"},
		{validation.Number(math.NaN()), "NaN"},
		{validation.Number(math.Inf(1)), "Infinity"},
	}
	for _, tc := range cases {
		if got := tc.value.String(); got != tc.want {
			t.Fatalf("String() = %q, want %q", got, tc.want)
		}
	}
}
