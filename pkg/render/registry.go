package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps widget variants to template references. Widgets receive a
// registry at construction instead of owning a template path, so alternate
// template bundles can be swapped in without touching widget code.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]string
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		templates: make(map[string]string),
	}
}

// Register binds a variant to a template reference. Duplicate variants return
// an error so bundles cannot silently shadow one another.
func (r *Registry) Register(variant, template string) error {
	variant = strings.TrimSpace(variant)
	if variant == "" {
		return fmt.Errorf("render: variant name is required")
	}
	template = strings.TrimSpace(template)
	if template == "" {
		return fmt.Errorf("render: template reference for %q is required", variant)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.templates[variant]; exists {
		return fmt.Errorf("render: variant %q already registered", variant)
	}

	r.templates[variant] = template
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(variant, template string) {
	if err := r.Register(variant, template); err != nil {
		panic(err)
	}
}

// Resolve returns the template reference for a variant, or ErrTemplateNotFound
// when the variant has no binding.
func (r *Registry) Resolve(variant string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	template, ok := r.templates[strings.TrimSpace(variant)]
	if !ok {
		return "", TemplateNotFound(variant, nil)
	}
	return template, nil
}

// Has reports whether a variant is registered.
func (r *Registry) Has(variant string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.templates[strings.TrimSpace(variant)]
	return ok
}

// List returns the sorted variant names known to the registry.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	variants := make([]string, 0, len(r.templates))
	for variant := range r.templates {
		variants = append(variants, variant)
	}
	sort.Strings(variants)
	return variants
}
