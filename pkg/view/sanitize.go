package view

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	templatePolicyOnce sync.Once
	templatePolicy     *bluemonday.Policy
)

// SanitizeMarkup strips anything from component markup that the view layer
// does not render: scripts, event-handler attributes, styles, embeds.
func SanitizeMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(templateSanitizer().Sanitize(trimmed))
}

func templateSanitizer() *bluemonday.Policy {
	templatePolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements(
			"html", "head", "title", "body", "main", "template",
			"div", "section", "header", "footer", "p", "span",
			"h1", "h2", "h3", "ul", "ol", "li",
			"form", "label", "input", "textarea", "button",
		)

		policy.AllowAttrs("id", "class").Globally()
		policy.AllowAttrs("for").OnElements("label")
		policy.AllowAttrs(
			"type", "name", "value", "placeholder", "step", "min", "max",
		).OnElements("input")
		policy.AllowAttrs("name", "rows", "placeholder").OnElements("textarea")
		policy.AllowAttrs("type").OnElements("button")
		policy.AllowAttrs("method", "action").OnElements("form")

		templatePolicy = policy
	})
	return templatePolicy
}
