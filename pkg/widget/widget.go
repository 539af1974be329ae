// Package widget implements the page sections of the weather report as
// tagged variants sharing one render contract. Each widget binds its data at
// construction time and renders an HTML fragment through an injected template
// registry; there is no inheritance and no shared mutable state.
package widget

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-weatherpage/pkg/render"
)

// Built-in widget variants, one per page section.
const (
	VariantHeading        = "heading"
	VariantClock          = "clock"
	VariantDailySummary   = "daily-summary"
	VariantWeeklyForecast = "weekly-forecast"
	VariantFooter         = "footer"
	VariantHomePage       = "homepage"
)

// Widget renders a bounded piece of HTML from bound data and a template.
type Widget interface {
	// Variant identifies the template binding in the registry.
	Variant() string
	// Render resolves the variant's template and substitutes the widget's
	// attribute mapping into it. Rendering has no side effects beyond the
	// returned string.
	Render(ctx context.Context) (string, error)
}

// Styled is implemented by widgets that ship stylesheet assets. The composite
// page aggregates unique stylesheets from its children and injects them into
// the document head.
type Styled interface {
	Stylesheet() string
}

// base carries the render plumbing every variant shares: the template engine,
// the variant-to-template registry, and the strict placeholder check.
type base struct {
	variant   string
	templates render.TemplateRenderer
	registry  *render.Registry
}

func newBase(variant string, templates render.TemplateRenderer, registry *render.Registry) (base, error) {
	if templates == nil {
		return base{}, fmt.Errorf("widget: %s: template renderer is required", variant)
	}
	if registry == nil {
		return base{}, fmt.Errorf("widget: %s: template registry is required", variant)
	}
	return base{variant: variant, templates: templates, registry: registry}, nil
}

// Variant implements Widget.
func (b base) Variant() string { return b.variant }

// render resolves the variant's template, verifies every placeholder has a
// bound value, and executes the template. Template resolution failures and
// unbound placeholders are terminal for the render pass.
func (b base) render(ctx context.Context, data map[string]any) (string, error) {
	if ctx == nil {
		return "", errors.New("widget: context is required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name, err := b.registry.Resolve(b.variant)
	if err != nil {
		return "", err
	}

	placeholders, err := b.templates.Placeholders(name)
	if err != nil {
		return "", err
	}
	for _, placeholder := range placeholders {
		if _, bound := data[placeholder]; !bound {
			return "", render.MissingVariable(placeholder, name)
		}
	}

	return b.templates.RenderTemplate(name, data)
}
