package widget

import (
	"context"
	"time"

	"github.com/goliatone/go-weatherpage/pkg/forecast"
	"github.com/goliatone/go-weatherpage/pkg/render"
)

// Footer renders the page footer with the site name and copyright year.
type Footer struct {
	base
	site string
	year int
}

// NewFooter constructs the footer widget. A zero year defaults to the current
// year; an empty site name fails construction.
func NewFooter(templates render.TemplateRenderer, registry *render.Registry, site string, year int) (*Footer, error) {
	b, err := newBase(VariantFooter, templates, registry)
	if err != nil {
		return nil, err
	}

	cleaned := sanitizeText(site)
	if cleaned == "" {
		return nil, forecast.DataFormat("footer site name is required")
	}
	if year <= 0 {
		year = time.Now().Year()
	}

	return &Footer{base: b, site: cleaned, year: year}, nil
}

// Render implements Widget.
func (f *Footer) Render(ctx context.Context) (string, error) {
	return f.render(ctx, map[string]any{
		"site": f.site,
		"year": f.year,
	})
}
