package projects

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// Template names inside TemplatesFS.
const (
	ComponentsTemplate = "components"
	PageTemplate       = "page"
)

// TemplatesFS exposes the bundled templates: "components.tpl" defines the
// project-input and project-list templates plus the #app container,
// "page.tpl" is the layout the mounted container is rendered into.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// The embed directive guarantees the subpath exists, so panic is
		// acceptable here.
		panic(err)
	}
	return sub
}
