package formview

import (
	"io/fs"

	"github.com/goliatone/go-formview/pkg/projects"
)

// EmbeddedTemplates exposes the built-in component and layout templates so
// callers can reuse or extend them without importing the projects package
// directly.
func EmbeddedTemplates() fs.FS {
	return projects.TemplatesFS()
}
