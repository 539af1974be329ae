package page

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Built-in theme identifiers.
const (
	DefaultThemeName    = "daylight"
	DefaultThemeVariant = ""
	ThemeVariantDusk    = "dusk"
)

// DefaultManifest describes the built-in page theme. Tokens become CSS custom
// properties; the dusk variant flips the palette for dark backgrounds.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"surface": "#f4f7fb",
			"card":    "#ffffff",
			"ink":     "#1d2733",
			"accent":  "#2f6fab",
		},
		Variants: map[string]theme.Variant{
			ThemeVariantDusk: {
				Tokens: map[string]string{
					"surface": "#121a24",
					"card":    "#1c2836",
					"ink":     "#e8eef5",
					"accent":  "#6aa7dd",
				},
			},
		},
	}
}

// ManifestSelector resolves theme selections from a fixed set of manifests.
// It satisfies theme.ThemeSelector without needing an external provider.
type ManifestSelector struct {
	manifests map[string]*theme.Manifest
}

// NewManifestSelector builds a selector over the supplied manifests.
func NewManifestSelector(manifests ...*theme.Manifest) *ManifestSelector {
	selector := &ManifestSelector{manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, manifest := range manifests {
		if manifest == nil || strings.TrimSpace(manifest.Name) == "" {
			continue
		}
		selector.manifests[manifest.Name] = manifest
	}
	return selector
}

// Select implements theme.ThemeSelector.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	manifest, ok := s.manifests[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("page: theme %q not registered", name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("page: theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{
		Theme:    manifest.Name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// ThemeStyle resolves a selection into a :root CSS custom-property block.
// Variant tokens override the base manifest tokens.
func ThemeStyle(selection *theme.Selection) string {
	if selection == nil || selection.Manifest == nil {
		return ""
	}

	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if selection.Variant != "" {
		if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
			for key, value := range variant.Tokens {
				tokens[key] = value
			}
		}
	}

	return cssVarsStyle(tokens)
}

func cssVarsStyle(tokens map[string]string) string {
	if len(tokens) == 0 {
		return ""
	}
	keys := make([]string, 0, len(tokens))
	for key := range tokens {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("--")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(tokens[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
