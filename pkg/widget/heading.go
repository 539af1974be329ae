package widget

import (
	"context"

	"github.com/goliatone/go-weatherpage/pkg/forecast"
	"github.com/goliatone/go-weatherpage/pkg/render"
)

// Heading renders the page heading section.
type Heading struct {
	base
	text string
}

// NewHeading constructs the heading widget. The heading text is sanitized to
// plain text; empty input fails construction.
func NewHeading(templates render.TemplateRenderer, registry *render.Registry, text string) (*Heading, error) {
	b, err := newBase(VariantHeading, templates, registry)
	if err != nil {
		return nil, err
	}

	cleaned := sanitizeText(text)
	if cleaned == "" {
		return nil, forecast.DataFormat("heading text is required")
	}

	return &Heading{base: b, text: cleaned}, nil
}

// Render implements Widget.
func (h *Heading) Render(ctx context.Context) (string, error) {
	return h.render(ctx, map[string]any{
		"heading": h.text,
	})
}
