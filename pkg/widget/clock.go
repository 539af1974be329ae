package widget

import (
	"context"
	"time"

	"github.com/goliatone/go-weatherpage/pkg/forecast"
	"github.com/goliatone/go-weatherpage/pkg/render"
)

// Display formats used by the clock section.
const (
	clockDateLayout = "Monday, January 2, 2006"
	clockTimeLayout = "3:04 PM"
)

// Clock renders the date-and-time section. The timestamp is injected at
// construction so output is reproducible.
type Clock struct {
	base
	at time.Time
}

// NewClock constructs the clock widget for the given instant in the given
// location. A zero timestamp fails construction.
func NewClock(templates render.TemplateRenderer, registry *render.Registry, at time.Time, loc *time.Location) (*Clock, error) {
	b, err := newBase(VariantClock, templates, registry)
	if err != nil {
		return nil, err
	}
	if at.IsZero() {
		return nil, forecast.DataFormat("clock timestamp is required")
	}
	if loc == nil {
		loc = time.UTC
	}

	return &Clock{base: b, at: at.In(loc)}, nil
}

// Render implements Widget.
func (c *Clock) Render(ctx context.Context) (string, error) {
	return c.render(ctx, map[string]any{
		"date": c.at.Format(clockDateLayout),
		"time": c.at.Format(clockTimeLayout),
	})
}
