package template

import (
	"io"
)

// TemplateRenderer renders named templates or inline template strings with
// a data context. When writers are supplied the rendered output is also
// written to each of them.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
