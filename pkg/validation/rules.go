package validation

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rules maps field names to their declarative constraints.
type Rules map[string]Rule

// Result captures the outcome of checking several fields. Fields only holds
// entries for fields that failed.
type Result struct {
	Valid  bool                   `json:"valid"`
	Fields map[string][]Violation `json:"fields,omitempty"`
}

// Failed returns the failing field names in sorted order.
func (r Result) Failed() []string {
	if len(r.Fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(r.Fields))
	for name := range r.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseRules decodes a JSON or YAML document of the form
//
//	title:
//	  required: true
//	description:
//	  required: true
//	  minLength: 10
//	  maxLength: 20
func ParseRules(data []byte) (Rules, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("validation: rules document is empty")
	}

	var rules Rules
	if err := json.Unmarshal(data, &rules); err == nil {
		return rules.normalise()
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("validation: parse rules: %w", err)
	}
	return rules.normalise()
}

func (r Rules) normalise() (Rules, error) {
	out := make(Rules, len(r))
	for name, rule := range r {
		key := strings.TrimSpace(name)
		if key == "" {
			return nil, fmt.Errorf("validation: rule with empty field name")
		}
		if _, exists := out[key]; exists {
			return nil, fmt.Errorf("validation: duplicate rule for field %q", key)
		}
		out[key] = rule
	}
	return out, nil
}

// Rule returns the rule declared for field. Undeclared fields get the empty
// rule, which accepts any value.
func (r Rules) Rule(field string) Rule {
	if r == nil {
		return Rule{}
	}
	return r[field]
}

// Check validates each value against its field rule. Every field is checked;
// a failure in one does not short-circuit the others.
func (r Rules) Check(values map[string]Value) Result {
	result := Result{Valid: true}
	for name, value := range values {
		violations := Check(r.Rule(name).With(value))
		if len(violations) == 0 {
			continue
		}
		if result.Fields == nil {
			result.Fields = make(map[string][]Violation)
		}
		result.Fields[name] = violations
		result.Valid = false
	}
	return result
}
