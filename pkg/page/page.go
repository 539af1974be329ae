// Package page composes rendered widgets into a full weather-report HTML
// document.
package page

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-weatherpage/pkg/render"
	"github.com/goliatone/go-weatherpage/pkg/widget"
)

// Slot binds a child widget to the attribute name the page template injects
// its rendered output through. Slot order is document order.
type Slot struct {
	Name   string
	Widget widget.Widget
}

// Option configures the composite page.
type Option func(*Home)

// WithStylesheet appends extra CSS to the aggregated style block.
func WithStylesheet(css string) Option {
	return func(h *Home) {
		if strings.TrimSpace(css) == "" {
			return
		}
		h.stylesheets = append(h.stylesheets, css)
	}
}

// WithThemeStyle injects a resolved theme's :root custom-property block ahead
// of the page stylesheet.
func WithThemeStyle(style string) Option {
	return func(h *Home) {
		h.themeStyle = strings.TrimSpace(style)
	}
}

// Home is the composite widget: its attributes are the rendered HTML of its
// children, injected into the page template in fixed order.
type Home struct {
	variant     string
	templates   render.TemplateRenderer
	registry    *render.Registry
	title       string
	slots       []Slot
	themeStyle  string
	stylesheets []string
}

// NewHome constructs the composite page widget from its child slots. Child
// order is fixed by the caller and preserved in the rendered document.
func NewHome(templates render.TemplateRenderer, registry *render.Registry, title string, slots []Slot, options ...Option) (*Home, error) {
	if templates == nil {
		return nil, errors.New("page: template renderer is required")
	}
	if registry == nil {
		return nil, errors.New("page: template registry is required")
	}
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("page: title is required")
	}
	if len(slots) == 0 {
		return nil, errors.New("page: at least one child slot is required")
	}

	seen := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		if strings.TrimSpace(slot.Name) == "" {
			return nil, errors.New("page: slot name is required")
		}
		if slot.Widget == nil {
			return nil, fmt.Errorf("page: slot %q has no widget", slot.Name)
		}
		if _, dup := seen[slot.Name]; dup {
			return nil, fmt.Errorf("page: duplicate slot %q", slot.Name)
		}
		seen[slot.Name] = struct{}{}
	}

	home := &Home{
		variant:   widget.VariantHomePage,
		templates: templates,
		registry:  registry,
		title:     strings.TrimSpace(title),
		slots:     append([]Slot(nil), slots...),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(home)
	}
	return home, nil
}

// Variant implements widget.Widget.
func (h *Home) Variant() string { return h.variant }

// Render renders each child in slot order, injects the fragments into the
// page template, and folds the aggregated stylesheets into the document head.
func (h *Home) Render(ctx context.Context) (string, error) {
	if ctx == nil {
		return "", errors.New("page: context is required")
	}

	data := map[string]any{
		"title": h.title,
	}

	styles := make([]string, 0, len(h.stylesheets)+len(h.slots)+1)
	if h.themeStyle != "" {
		styles = append(styles, h.themeStyle)
	}
	styles = append(styles, h.stylesheets...)

	for _, slot := range h.slots {
		fragment, err := slot.Widget.Render(ctx)
		if err != nil {
			return "", fmt.Errorf("page: render %q: %w", slot.Name, err)
		}
		data[slot.Name] = fragment

		if styled, ok := slot.Widget.(widget.Styled); ok {
			if css := strings.TrimSpace(styled.Stylesheet()); css != "" {
				styles = append(styles, css)
			}
		}
	}

	name, err := h.registry.Resolve(h.variant)
	if err != nil {
		return "", err
	}

	placeholders, err := h.templates.Placeholders(name)
	if err != nil {
		return "", err
	}
	for _, placeholder := range placeholders {
		if _, bound := data[placeholder]; !bound {
			return "", render.MissingVariable(placeholder, name)
		}
	}

	document, err := h.templates.RenderTemplate(name, data)
	if err != nil {
		return "", err
	}

	if css := combineStyles(styles); css != "" {
		document = InjectStylesheet(document, css)
	}
	return document, nil
}

func combineStyles(styles []string) string {
	unique := make([]string, 0, len(styles))
	seen := make(map[string]struct{}, len(styles))
	for _, css := range styles {
		if _, dup := seen[css]; dup {
			continue
		}
		seen[css] = struct{}{}
		unique = append(unique, css)
	}
	return strings.TrimSpace(strings.Join(unique, "\n\n"))
}
