package render

import (
	"strings"

	"github.com/goliatone/go-formview/pkg/validation"
)

// FieldErrors flattens a validation result into messages keyed by field
// name. Valid results map to nil.
func FieldErrors(result validation.Result) map[string][]string {
	if result.Valid || len(result.Fields) == 0 {
		return nil
	}
	out := make(map[string][]string, len(result.Fields))
	for _, name := range result.Failed() {
		messages := make([]string, 0, len(result.Fields[name]))
		for _, v := range result.Fields[name] {
			messages = append(messages, v.Message)
		}
		if messages = normalizeMessages(messages); len(messages) > 0 {
			out[name] = messages
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// MergeMessages concatenates and normalises message slices, trimming
// whitespace and removing duplicates while preserving order.
func MergeMessages(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
