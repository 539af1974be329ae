package render

import (
	"io"
)

// TemplateRenderer is the engine seam widgets render through. The contract
// mirrors the pongo2-backed engine in pkg/render/pongo while leaving room for
// alternative implementations in tests.
type TemplateRenderer interface {
	// Render dispatches to RenderString when the name looks like inline
	// template content, otherwise to RenderTemplate.
	Render(name string, data any, out ...io.Writer) (string, error)
	// RenderTemplate renders a named template asset.
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	// RenderString renders inline template content.
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	// Placeholders reports the top-level variable names a named template
	// references. Widgets use it to fail fast on unbound placeholders.
	Placeholders(name string) ([]string, error)
	// RegisterFilter registers a template filter by name.
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	// GlobalContext seeds values available to every template.
	GlobalContext(data any) error
}
