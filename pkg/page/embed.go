package page

import (
	"embed"
	"io/fs"

	"github.com/goliatone/go-weatherpage/pkg/render"
	"github.com/goliatone/go-weatherpage/pkg/widget"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/weatherpage.css
var embeddedAssets embed.FS

// StylesheetName is the bundled page stylesheet asset.
const StylesheetName = "weatherpage.css"

// TemplatesFS exposes the embedded template bundle so callers can reuse or
// extend the built-in page rendering out of the box.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// DefaultStylesheet returns the bundled page CSS.
func DefaultStylesheet() string {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+StylesheetName)
	if err != nil {
		return ""
	}
	return string(data)
}

// DefaultRegistry binds every built-in widget variant to its embedded
// template.
func DefaultRegistry() *render.Registry {
	registry := render.NewRegistry()
	registry.MustRegister(widget.VariantHeading, "templates/heading.tmpl")
	registry.MustRegister(widget.VariantClock, "templates/clock.tmpl")
	registry.MustRegister(widget.VariantDailySummary, "templates/daily_summary.tmpl")
	registry.MustRegister(widget.VariantWeeklyForecast, "templates/weekly_forecast.tmpl")
	registry.MustRegister(widget.VariantFooter, "templates/footer.tmpl")
	registry.MustRegister(widget.VariantHomePage, "templates/homepage.tmpl")
	return registry
}
