package render

import (
	"context"

	"github.com/goliatone/go-formview/pkg/projects"
)

// Renderer converts a mounted page into a byte representation (full HTML,
// an HTML fragment, JSON).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, page *projects.Page, options Options) ([]byte, error)
}
