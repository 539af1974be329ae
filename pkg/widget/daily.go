package widget

import (
	"context"
	"time"

	"github.com/goliatone/go-weatherpage/pkg/forecast"
	"github.com/goliatone/go-weatherpage/pkg/render"
)

const dailyDateLayout = "January 2, 2006"

// DailySummary renders today's forecast record.
type DailySummary struct {
	base
	record forecast.Record
}

// NewDailySummary selects today's record from the supplied sequence and binds
// it for rendering. When no record matches today the earliest record is used.
// An empty sequence or an invalid record fails construction.
func NewDailySummary(templates render.TemplateRenderer, registry *render.Registry, records []forecast.Record, today time.Time) (*DailySummary, error) {
	b, err := newBase(VariantDailySummary, templates, registry)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, forecast.DataFormat("daily summary needs at least one record")
	}

	sorted := append([]forecast.Record(nil), records...)
	forecast.SortChronological(sorted)

	record := sorted[0]
	for _, candidate := range sorted {
		if candidate.SameDay(today) {
			record = candidate
			break
		}
	}
	if err := record.Validate(); err != nil {
		return nil, forecast.DataFormat("daily summary record: %v", err)
	}
	record.Condition = sanitizeText(record.Condition)

	return &DailySummary{base: b, record: record}, nil
}

// Render implements Widget.
func (d *DailySummary) Render(ctx context.Context) (string, error) {
	return d.render(ctx, map[string]any{
		"date":      d.record.Date.Format(dailyDateLayout),
		"condition": d.record.Condition,
		"high":      forecast.FormatTemp(d.record.High),
		"low":       forecast.FormatTemp(d.record.Low),
	})
}
