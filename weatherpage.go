// Package weatherpage renders a weather-report webpage by composing HTML
// widgets. Widgets bind forecast data to templates at construction and render
// through a shared template registry; the composite homepage injects each
// child's output into the full document.
package weatherpage

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"time"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-weatherpage/pkg/forecast"
	"github.com/goliatone/go-weatherpage/pkg/page"
	"github.com/goliatone/go-weatherpage/pkg/render"
	"github.com/goliatone/go-weatherpage/pkg/render/pongo"
	"github.com/goliatone/go-weatherpage/pkg/widget"
)

// Page slot names, matching the homepage template placeholders.
const (
	SlotHeading          = "heading"
	SlotClock            = "clock"
	SlotDailySummary     = "daily_summary"
	SlotWeeklyForecast   = "weekly_forecast"
	SlotNextWeekForecast = "next_week_forecast"
	SlotFooter           = "footer"
)

// Option customises the generator configuration.
type Option func(*Generator)

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(templates render.TemplateRenderer) Option {
	return func(g *Generator) {
		if templates != nil {
			g.templates = templates
		}
	}
}

// WithTemplates builds the default pongo2 engine over an alternate template
// bundle.
func WithTemplates(files fs.FS) Option {
	return func(g *Generator) {
		g.templateFS = files
	}
}

// WithRegistry injects a custom variant-to-template registry.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Generator) {
		if registry != nil {
			g.registry = registry
		}
	}
}

// WithThemeSelector injects a go-theme selector used to resolve the requested
// theme into CSS custom properties.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(g *Generator) {
		if selector != nil {
			g.selector = selector
		}
	}
}

// WithStylesheet overrides the bundled page stylesheet.
func WithStylesheet(css string) Option {
	return func(g *Generator) {
		g.stylesheet = css
		g.stylesheetSet = true
	}
}

// Generator coordinates the full pipeline from forecast records to the
// rendered page. Missing dependencies are initialised with the built-in
// implementations so callers can start with a single constructor call.
type Generator struct {
	templates     render.TemplateRenderer
	templateFS    fs.FS
	registry      *render.Registry
	selector      theme.ThemeSelector
	stylesheet    string
	stylesheetSet bool
	initErr       error
}

// New constructs a Generator applying any provided options.
func New(options ...Option) *Generator {
	g := &Generator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

func (g *Generator) applyDefaults() {
	if g.templates == nil {
		files := g.templateFS
		if files == nil {
			files = page.TemplatesFS()
		}
		engine, err := pongo.New(pongo.WithFS(files))
		if err != nil {
			g.initErr = err
			return
		}
		g.templates = engine
	}
	if g.registry == nil {
		g.registry = page.DefaultRegistry()
	}
	if g.selector == nil {
		g.selector = page.NewManifestSelector(page.DefaultManifest())
	}
	if !g.stylesheetSet {
		g.stylesheet = page.DefaultStylesheet()
	}
}

// Request describes the inputs for one page render.
type Request struct {
	// Title is the page title, heading text, and footer site name.
	Title string

	// Now anchors the clock widget and daily summary selection. Defaults to
	// time.Now().
	Now time.Time

	// Location is the timezone the clock renders in. Defaults to UTC.
	Location *time.Location

	// ThisWeek and NextWeek are the forecast record runs rendered by the two
	// weekly sections. ThisWeek also feeds the daily summary.
	ThisWeek []forecast.Record
	NextWeek []forecast.Record

	// ThemeName and ThemeVariant select the page theme. Defaults to the
	// built-in daylight theme.
	ThemeName    string
	ThemeVariant string
}

// Generate builds every widget from the request data, composes the homepage,
// and returns the rendered HTML document.
func (g *Generator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("weatherpage: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.initErr; err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, errors.New("weatherpage: title is required")
	}

	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}
	loc := req.Location
	if loc == nil {
		loc = time.UTC
	}

	themeStyle, err := g.resolveThemeStyle(req.ThemeName, req.ThemeVariant)
	if err != nil {
		return nil, err
	}

	slots, err := g.buildSlots(req, now, loc)
	if err != nil {
		return nil, wrapExternal(err)
	}

	home, err := page.NewHome(g.templates, g.registry, req.Title, slots,
		page.WithThemeStyle(themeStyle),
		page.WithStylesheet(g.stylesheet),
	)
	if err != nil {
		return nil, err
	}

	document, err := home.Render(ctx)
	if err != nil {
		return nil, wrapExternal(err)
	}
	return []byte(document), nil
}

func (g *Generator) buildSlots(req Request, now time.Time, loc *time.Location) ([]page.Slot, error) {
	heading, err := widget.NewHeading(g.templates, g.registry, req.Title)
	if err != nil {
		return nil, err
	}

	clock, err := widget.NewClock(g.templates, g.registry, now, loc)
	if err != nil {
		return nil, err
	}

	daily, err := widget.NewDailySummary(g.templates, g.registry, req.ThisWeek, now.In(loc))
	if err != nil {
		return nil, err
	}

	thisWeek, err := widget.NewWeeklyForecast(g.templates, g.registry, "This Week", req.ThisWeek)
	if err != nil {
		return nil, err
	}

	nextWeek, err := widget.NewWeeklyForecast(g.templates, g.registry, "Next Week", req.NextWeek)
	if err != nil {
		return nil, err
	}

	footer, err := widget.NewFooter(g.templates, g.registry, req.Title, now.In(loc).Year())
	if err != nil {
		return nil, err
	}

	return []page.Slot{
		{Name: SlotHeading, Widget: heading},
		{Name: SlotClock, Widget: clock},
		{Name: SlotDailySummary, Widget: daily},
		{Name: SlotWeeklyForecast, Widget: thisWeek},
		{Name: SlotNextWeekForecast, Widget: nextWeek},
		{Name: SlotFooter, Widget: footer},
	}, nil
}

func (g *Generator) resolveThemeStyle(name, variant string) (string, error) {
	if g.selector == nil {
		return "", nil
	}
	if strings.TrimSpace(name) == "" {
		name = page.DefaultThemeName
	}
	selection, err := g.selector.Select(name, variant)
	if err != nil {
		return "", err
	}
	return page.ThemeStyle(selection), nil
}

// GenerateHTML is the simplest entry point for callers that just want the
// rendered page bytes with the built-in stack.
func GenerateHTML(ctx context.Context, req Request, options ...Option) ([]byte, error) {
	return New(options...).Generate(ctx, req)
}

func wrapExternal(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, forecast.ErrDataFormat) {
		return forecast.WrapExternal(err)
	}
	return render.WrapExternal(err)
}
