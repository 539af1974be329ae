package widget_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-weatherpage/pkg/forecast"
	"github.com/goliatone/go-weatherpage/pkg/render"
	"github.com/goliatone/go-weatherpage/pkg/render/pongo"
	"github.com/goliatone/go-weatherpage/pkg/widget"
)

func testEngine(t *testing.T) render.TemplateRenderer {
	t.Helper()

	engine, err := pongo.New(pongo.WithFS(fstest.MapFS{
		"heading.tmpl": &fstest.MapFile{
			Data: []byte(`<h1>{{ heading }}</h1>`),
		},
		"clock.tmpl": &fstest.MapFile{
			Data: []byte(`<p class="date">{{ date }}</p><p class="time">{{ time }}</p>`),
		},
		"daily.tmpl": &fstest.MapFile{
			Data: []byte(`{{ date }} {{ condition }} {{ high }}/{{ low }}`),
		},
		"weekly.tmpl": &fstest.MapFile{
			Data: []byte(`<h2>{{ title }}</h2>{% for day in days %}<li>{{ day.date }} {{ day.condition }} {{ day.high }}/{{ day.low }}</li>{% endfor %}`),
		},
		"footer.tmpl": &fstest.MapFile{
			Data: []byte(`&copy; {{ year }} {{ site }}`),
		},
		"strict.tmpl": &fstest.MapFile{
			Data: []byte(`{{ heading }} {{ tagline }}`),
		},
	}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func testRegistry(t *testing.T) *render.Registry {
	t.Helper()

	registry := render.NewRegistry()
	registry.MustRegister(widget.VariantHeading, "heading.tmpl")
	registry.MustRegister(widget.VariantClock, "clock.tmpl")
	registry.MustRegister(widget.VariantDailySummary, "daily.tmpl")
	registry.MustRegister(widget.VariantWeeklyForecast, "weekly.tmpl")
	registry.MustRegister(widget.VariantFooter, "footer.tmpl")
	return registry
}

func weekRecords() []forecast.Record {
	records := make([]forecast.Record, 0, 7)
	conditions := []string{"Sunny", "Cloudy", "Showers", "Rainy", "Sunny", "Cloudy", "Sunny"}
	for idx, condition := range conditions {
		records = append(records, forecast.Record{
			Date:      time.Date(2024, 1, 1+idx, 0, 0, 0, 0, time.UTC),
			Condition: condition,
			High:      float64(25 + idx),
			Low:       float64(16 + idx),
		})
	}
	return records
}

func TestHeadingRender(t *testing.T) {
	engine := testEngine(t)
	registry := testRegistry(t)

	heading, err := widget.NewHeading(engine, registry, "She Codes Weather")
	if err != nil {
		t.Fatalf("new heading: %v", err)
	}
	if heading.Variant() != widget.VariantHeading {
		t.Fatalf("variant = %q", heading.Variant())
	}

	got, err := heading.Render(context.Background())
	if err != nil {
		t.Fatalf("render heading: %v", err)
	}
	if got != "<h1>She Codes Weather</h1>" {
		t.Fatalf("rendered = %q", got)
	}
}

func TestHeadingSanitizesMarkup(t *testing.T) {
	engine := testEngine(t)
	registry := testRegistry(t)

	heading, err := widget.NewHeading(engine, registry, "<b>Weather</b> Report")
	if err != nil {
		t.Fatalf("new heading: %v", err)
	}

	got, err := heading.Render(context.Background())
	if err != nil {
		t.Fatalf("render heading: %v", err)
	}
	if strings.Contains(got, "<b>") {
		t.Fatalf("markup survived sanitization: %q", got)
	}
	if !strings.Contains(got, "Weather") {
		t.Fatalf("text lost in sanitization: %q", got)
	}
}

func TestHeadingRequiresText(t *testing.T) {
	engine := testEngine(t)
	registry := testRegistry(t)

	for _, text := range []string{"", "   ", "<script>alert(1)</script>"} {
		if _, err := widget.NewHeading(engine, registry, text); !errors.Is(err, forecast.ErrDataFormat) {
			t.Fatalf("text %q: expected ErrDataFormat, got %v", text, err)
		}
	}
}

func TestClockRender(t *testing.T) {
	engine := testEngine(t)
	registry := testRegistry(t)

	at := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
	clock, err := widget.NewClock(engine, registry, at, time.UTC)
	if err != nil {
		t.Fatalf("new clock: %v", err)
	}

	got, err := clock.Render(context.Background())
	if err != nil {
		t.Fatalf("render clock: %v", err)
	}
	if !strings.Contains(got, "Monday, January 1, 2024") {
		t.Fatalf("date missing from %q", got)
	}
	if !strings.Contains(got, "9:30 AM") {
		t.Fatalf("time missing from %q", got)
	}
}

func TestClockRequiresTimestamp(t *testing.T) {
	engine := testEngine(t)
	registry := testRegistry(t)

	if _, err := widget.NewClock(engine, registry, time.Time{}, time.UTC); !errors.Is(err, forecast.ErrDataFormat) {
		t.Fatalf("expected ErrDataFormat, got %v", err)
	}
}

func TestDailySummarySelectsToday(t *testing.T) {
	engine := testEngine(t)
	registry := testRegistry(t)
	records := weekRecords()

	today := time.Date(2024, 1, 3, 14, 0, 0, 0, time.UTC)
	daily, err := widget.NewDailySummary(engine, registry, records, today)
	if err != nil {
		t.Fatalf("new daily summary: %v", err)
	}

	got, err := daily.Render(context.Background())
	if err != nil {
		t.Fatalf("render daily summary: %v", err)
	}
	if !strings.Contains(got, "January 3, 2024") {
		t.Fatalf("expected today's record, got %q", got)
	}
	if !strings.Contains(got, "Showers") {
		t.Fatalf("expected today's condition, got %q", got)
	}
	if !strings.Contains(got, "27/18") {
		t.Fatalf("expected today's temperatures, got %q", got)
	}
}

func TestDailySummaryFallsBackToEarliest(t *testing.T) {
	engine := testEngine(t)
	registry := testRegistry(t)

	outOfRange := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	daily, err := widget.NewDailySummary(engine, registry, weekRecords(), outOfRange)
	if err != nil {
		t.Fatalf("new daily summary: %v", err)
	}

	got, err := daily.Render(context.Background())
	if err != nil {
		t.Fatalf("render daily summary: %v", err)
	}
	if !strings.Contains(got, "January 1, 2024") {
		t.Fatalf("expected the earliest record, got %q", got)
	}
}

func TestDailySummaryRequiresRecords(t *testing.T) {
	engine := testEngine(t)
	registry := testRegistry(t)

	_, err := widget.NewDailySummary(engine, registry, nil, time.Now())
	if !errors.Is(err, forecast.ErrDataFormat) {
		t.Fatalf("expected ErrDataFormat, got %v", err)
	}
}

func TestWeeklyForecastRender(t *testing.T) {
	engine := testEngine(t)
	registry := testRegistry(t)

	// Reverse the input to prove rendering is chronological regardless.
	records := weekRecords()
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	weekly, err := widget.NewWeeklyForecast(engine, registry, "This Week", records)
	if err != nil {
		t.Fatalf("new weekly forecast: %v", err)
	}

	got, err := weekly.Render(context.Background())
	if err != nil {
		t.Fatalf("render weekly forecast: %v", err)
	}
	if !strings.Contains(got, "<h2>This Week</h2>") {
		t.Fatalf("title missing from %q", got)
	}
	if count := strings.Count(got, "<li>"); count != 7 {
		t.Fatalf("got %d entries, want 7", count)
	}

	first := strings.Index(got, "Monday, January 1")
	last := strings.Index(got, "Sunday, January 7")
	if first < 0 || last < 0 || first > last {
		t.Fatalf("entries out of chronological order: %q", got)
	}
}

func TestWeeklyForecastDefaultsTitle(t *testing.T) {
	engine := testEngine(t)
	registry := testRegistry(t)

	weekly, err := widget.NewWeeklyForecast(engine, registry, "  ", weekRecords())
	if err != nil {
		t.Fatalf("new weekly forecast: %v", err)
	}

	got, err := weekly.Render(context.Background())
	if err != nil {
		t.Fatalf("render weekly forecast: %v", err)
	}
	if !strings.Contains(got, "Weekly Forecast") {
		t.Fatalf("default title missing from %q", got)
	}
}

func TestWeeklyForecastRequiresRecords(t *testing.T) {
	engine := testEngine(t)
	registry := testRegistry(t)

	_, err := widget.NewWeeklyForecast(engine, registry, "This Week", nil)
	if !errors.Is(err, forecast.ErrDataFormat) {
		t.Fatalf("expected ErrDataFormat, got %v", err)
	}
}

func TestWeeklyForecastRejectsInvalidRecord(t *testing.T) {
	engine := testEngine(t)
	registry := testRegistry(t)

	records := weekRecords()
	records[2].Condition = ""

	_, err := widget.NewWeeklyForecast(engine, registry, "This Week", records)
	if !errors.Is(err, forecast.ErrDataFormat) {
		t.Fatalf("expected ErrDataFormat, got %v", err)
	}
}

func TestFooterRender(t *testing.T) {
	engine := testEngine(t)
	registry := testRegistry(t)

	footer, err := widget.NewFooter(engine, registry, "She Codes Weather", 2024)
	if err != nil {
		t.Fatalf("new footer: %v", err)
	}

	got, err := footer.Render(context.Background())
	if err != nil {
		t.Fatalf("render footer: %v", err)
	}
	if !strings.Contains(got, "2024 She Codes Weather") {
		t.Fatalf("rendered = %q", got)
	}
}

func TestFooterDefaultsYear(t *testing.T) {
	engine := testEngine(t)
	registry := testRegistry(t)

	footer, err := widget.NewFooter(engine, registry, "She Codes Weather", 0)
	if err != nil {
		t.Fatalf("new footer: %v", err)
	}

	got, err := footer.Render(context.Background())
	if err != nil {
		t.Fatalf("render footer: %v", err)
	}
	year := time.Now().Format("2006")
	if !strings.Contains(got, year) {
		t.Fatalf("expected current year %s in %q", year, got)
	}
}

func TestFooterRequiresSite(t *testing.T) {
	engine := testEngine(t)
	registry := testRegistry(t)

	if _, err := widget.NewFooter(engine, registry, "  ", 2024); !errors.Is(err, forecast.ErrDataFormat) {
		t.Fatalf("expected ErrDataFormat, got %v", err)
	}
}

func TestRenderFailsOnUnboundPlaceholder(t *testing.T) {
	engine := testEngine(t)

	// The strict template expects a tagline the heading widget never binds.
	registry := render.NewRegistry()
	registry.MustRegister(widget.VariantHeading, "strict.tmpl")

	heading, err := widget.NewHeading(engine, registry, "She Codes Weather")
	if err != nil {
		t.Fatalf("new heading: %v", err)
	}

	_, err = heading.Render(context.Background())
	if !errors.Is(err, render.ErrMissingVariable) {
		t.Fatalf("expected ErrMissingVariable, got %v", err)
	}
}

func TestRenderFailsOnUnregisteredVariant(t *testing.T) {
	engine := testEngine(t)

	registry := render.NewRegistry()
	registry.MustRegister(widget.VariantHeading, "heading.tmpl")

	clock, err := widget.NewClock(engine, registry, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), time.UTC)
	if err != nil {
		t.Fatalf("new clock: %v", err)
	}

	_, err = clock.Render(context.Background())
	if !errors.Is(err, render.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestConstructorsRequirePlumbing(t *testing.T) {
	engine := testEngine(t)
	registry := testRegistry(t)

	if _, err := widget.NewHeading(nil, registry, "x"); err == nil {
		t.Fatal("expected nil renderer to fail")
	}
	if _, err := widget.NewHeading(engine, nil, "x"); err == nil {
		t.Fatal("expected nil registry to fail")
	}
}
