package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-weatherpage/pkg/config"
)

func TestParse(t *testing.T) {
	raw := []byte(`
title: Brisbane Weather
timezone: UTC
theme:
  name: daylight
  variant: dusk
data:
  this_week: data/this_week.csv
  next_week: data/next_week.csv
output: dist/index.html
`)

	site, err := config.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := config.Site{
		Title:    "Brisbane Weather",
		Timezone: "UTC",
		Theme:    config.Theme{Name: "daylight", Variant: "dusk"},
		Data:     config.Data{ThisWeek: "data/this_week.csv", NextWeek: "data/next_week.csv"},
		Output:   "dist/index.html",
	}
	if diff := cmp.Diff(want, site); diff != "" {
		t.Fatalf("site mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_MissingFieldsFallBackToDefaults(t *testing.T) {
	site, err := config.Parse([]byte("timezone: UTC\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	defaults := config.Default()
	if site.Title != defaults.Title {
		t.Fatalf("title = %q, want default %q", site.Title, defaults.Title)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty title", raw: "title: \"\"\ntimezone: UTC\n"},
		{name: "unknown timezone", raw: "title: x\ntimezone: Mars/Olympus\n"},
		{name: "malformed yaml", raw: "title: [unclosed\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := config.Parse([]byte(tc.raw)); err == nil {
				t.Fatal("expected parse to fail")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte("title: Loaded\ntimezone: UTC\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	site, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if site.Title != "Loaded" {
		t.Fatalf("title = %q", site.Title)
	}

	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected missing file to fail")
	}
}

func TestLocation(t *testing.T) {
	site := config.Site{Title: "x", Timezone: "UTC"}
	loc, err := site.Location()
	if err != nil {
		t.Fatalf("location: %v", err)
	}
	if loc.String() != "UTC" {
		t.Fatalf("location = %q", loc)
	}

	site.Timezone = "Nowhere/Nothing"
	if _, err := site.Location(); err == nil {
		t.Fatal("expected unknown timezone to fail")
	}
}
