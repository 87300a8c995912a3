package validation

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Constraint names reported in Violations. They match the keys accepted in
// YAML rule files.
const (
	ConstraintRequired  = "required"
	ConstraintMinLength = "minLength"
	ConstraintMaxLength = "maxLength"
	ConstraintMin       = "min"
	ConstraintMax       = "max"
)

// Kind tells whether a Value carries text or a number.
type Kind uint8

const (
	KindText Kind = iota
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	default:
		return "text"
	}
}

// Value is the field value a constraint set applies to. The zero value is
// empty text.
type Value struct {
	kind   Kind
	text   string
	number float64
}

// Text wraps a textual field value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Number wraps a numeric field value.
func Number(n float64) Value {
	return Value{kind: KindNumber, number: n}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsText() bool { return v.kind == KindText }

func (v Value) IsNumber() bool { return v.kind == KindNumber }

// Float returns the numeric payload. Text values report NaN.
func (v Value) Float() float64 {
	if v.kind != KindNumber {
		return math.NaN()
	}
	return v.number
}

// String renders the value the way it is checked by the required constraint:
// text verbatim, numbers in shortest decimal form ("5", "2.5", "NaN").
func (v Value) String() string {
	if v.kind == KindText {
		return v.text
	}
	switch {
	case math.IsNaN(v.number):
		return "NaN"
	case math.IsInf(v.number, 1):
		return "Infinity"
	case math.IsInf(v.number, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v.number, 'f', -1, 64)
}

// ParseNumber converts raw field text into a number using unary-plus rules:
// surrounding whitespace is ignored and blank text is 0. Decimal literals,
// "Infinity" with an optional sign and unsigned 0x/0o/0b integers are
// accepted. Anything else, including Go-only forms such as "inf" or "1_000",
// is NaN.
func ParseNumber(raw string) float64 {
	s := trimSpace(raw)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return parseRadix(s[2:], 16)
		case 'o', 'O':
			return parseRadix(s[2:], 8)
		case 'b', 'B':
			return parseRadix(s[2:], 2)
		}
	}
	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return n
}

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

func parseRadix(digits string, base int) float64 {
	if digits == "" {
		return math.NaN()
	}
	var n float64
	for _, r := range digits {
		d := digitValue(r)
		if d < 0 || d >= base {
			return math.NaN()
		}
		n = n*float64(base) + float64(d)
	}
	return n
}

func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return -1
}

// trimSpace strips the characters a browser treats as whitespace when
// trimming a string. Unlike strings.TrimSpace it strips U+FEFF and keeps
// U+0085.
func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\uFEFF', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// textLength counts UTF-16 code units, so a character outside the Basic
// Multilingual Plane counts as two.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
			continue
		}
		n++
	}
	return n
}

// Rule is the declarative half of a constraint set. Nil bounds are absent.
type Rule struct {
	Required  bool     `json:"required,omitempty" yaml:"required"`
	MinLength *int     `json:"minLength,omitempty" yaml:"minLength"`
	MaxLength *int     `json:"maxLength,omitempty" yaml:"maxLength"`
	Min       *float64 `json:"min,omitempty" yaml:"min"`
	Max       *float64 `json:"max,omitempty" yaml:"max"`
}

// With binds the rule to a value.
func (r Rule) With(value Value) ConstraintSet {
	return ConstraintSet{Value: value, Rule: r}
}

// ConstraintSet is a value plus the constraints it must satisfy.
type ConstraintSet struct {
	Value Value
	Rule
}

// Length returns a pointer suitable for MinLength/MaxLength.
func Length(n int) *int { return &n }

// Bound returns a pointer suitable for Min/Max.
func Bound(n float64) *float64 { return &n }
