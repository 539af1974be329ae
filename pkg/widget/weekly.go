package widget

import (
	"context"

	"github.com/goliatone/go-weatherpage/pkg/forecast"
	"github.com/goliatone/go-weatherpage/pkg/render"
)

const weeklyDateLayout = "Monday, January 2"

// WeeklyForecast renders one entry per record, in chronological order.
type WeeklyForecast struct {
	base
	title   string
	records []forecast.Record
}

// NewWeeklyForecast binds a titled run of forecast records. Records are
// sorted chronologically and validated; an empty sequence fails construction.
func NewWeeklyForecast(templates render.TemplateRenderer, registry *render.Registry, title string, records []forecast.Record) (*WeeklyForecast, error) {
	b, err := newBase(VariantWeeklyForecast, templates, registry)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, forecast.DataFormat("weekly forecast needs at least one record")
	}

	sorted := append([]forecast.Record(nil), records...)
	forecast.SortChronological(sorted)
	for idx := range sorted {
		if err := sorted[idx].Validate(); err != nil {
			return nil, forecast.DataFormat("weekly forecast record %d: %v", idx+1, err)
		}
		sorted[idx].Condition = sanitizeText(sorted[idx].Condition)
	}

	cleaned := sanitizeText(title)
	if cleaned == "" {
		cleaned = "Weekly Forecast"
	}

	return &WeeklyForecast{base: b, title: cleaned, records: sorted}, nil
}

// Render implements Widget.
func (w *WeeklyForecast) Render(ctx context.Context) (string, error) {
	days := make([]map[string]any, 0, len(w.records))
	for _, record := range w.records {
		days = append(days, map[string]any{
			"date":      record.Date.Format(weeklyDateLayout),
			"condition": record.Condition,
			"high":      forecast.FormatTemp(record.High),
			"low":       forecast.FormatTemp(record.Low),
		})
	}

	return w.render(ctx, map[string]any{
		"title": w.title,
		"days":  days,
	})
}
