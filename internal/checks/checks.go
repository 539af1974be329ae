// Package checks implements the project's automated checks: template
// resolution, data-file validation, and a full render pass. The checks CLI
// maps an optional mode argument onto a subset and exits non-zero when any
// check fails.
package checks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	weatherpage "github.com/goliatone/go-weatherpage"
	"github.com/goliatone/go-weatherpage/pkg/config"
	"github.com/goliatone/go-weatherpage/pkg/forecast"
	"github.com/goliatone/go-weatherpage/pkg/page"
	"github.com/goliatone/go-weatherpage/pkg/render/pongo"
)

// Check modes selectable from the CLI.
const (
	ModeAll       = "all"
	ModeTemplates = "templates"
	ModeData      = "data"
	ModeRender    = "render"
)

// Modes lists the selectable check modes in display order.
func Modes() []string {
	return []string{ModeAll, ModeTemplates, ModeData, ModeRender}
}

// Logger is the minimal logging surface the runner needs. go-logger loggers
// satisfy it directly.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Check is one named verification belonging to a mode.
type Check struct {
	Name string
	Mode string
	Run  func(ctx context.Context) error
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithLogger wires a logger for per-check progress output.
func WithLogger(logger Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Runner executes registered checks for a mode and aggregates failures.
type Runner struct {
	logger Logger
	checks []Check
}

// NewRunner constructs a Runner applying any provided options.
func NewRunner(options ...RunnerOption) *Runner {
	r := &Runner{logger: nopLogger{}}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Register appends checks to the runner.
func (r *Runner) Register(checks ...Check) {
	r.checks = append(r.checks, checks...)
}

// Run executes every check matching mode. It returns an aggregate error when
// any check fails; a nil return means the selected subset passed.
func (r *Runner) Run(ctx context.Context, mode string) error {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode == "" {
		mode = ModeAll
	}
	if !validMode(mode) {
		return fmt.Errorf("checks: unknown mode %q (available: %s)", mode, strings.Join(Modes(), ", "))
	}

	var failures []error
	ran := 0
	for _, check := range r.checks {
		if mode != ModeAll && check.Mode != mode {
			continue
		}
		ran++
		if err := check.Run(ctx); err != nil {
			r.logger.Error("check.failed", "check", check.Name, "error", err)
			failures = append(failures, fmt.Errorf("%s: %w", check.Name, err))
			continue
		}
		r.logger.Info("check.passed", "check", check.Name)
	}

	if ran == 0 {
		return fmt.Errorf("checks: no checks registered for mode %q", mode)
	}
	if len(failures) > 0 {
		return fmt.Errorf("checks: %d of %d failed: %w", len(failures), ran, errors.Join(failures...))
	}
	return nil
}

func validMode(mode string) bool {
	for _, known := range Modes() {
		if mode == known {
			return true
		}
	}
	return false
}

// Default builds the project's check suite for the supplied configuration.
// Data checks are only registered for configured data files; the render check
// falls back to generated data when files are absent.
func Default(cfg config.Site, seed int64) []Check {
	checks := []Check{
		{
			Name: "templates:registry",
			Mode: ModeTemplates,
			Run:  checkTemplates,
		},
	}

	if cfg.Data.ThisWeek != "" {
		checks = append(checks, dataCheck("data:this-week", cfg.Data.ThisWeek))
	}
	if cfg.Data.NextWeek != "" {
		checks = append(checks, dataCheck("data:next-week", cfg.Data.NextWeek))
	}

	checks = append(checks, Check{
		Name: "render:homepage",
		Mode: ModeRender,
		Run: func(ctx context.Context) error {
			return checkRender(ctx, cfg, seed)
		},
	})

	return checks
}

// checkTemplates verifies that every built-in variant resolves to a template
// the engine can load and scan.
func checkTemplates(_ context.Context) error {
	engine, err := pongo.New(pongo.WithFS(page.TemplatesFS()))
	if err != nil {
		return err
	}

	registry := page.DefaultRegistry()
	for _, variant := range registry.List() {
		name, err := registry.Resolve(variant)
		if err != nil {
			return err
		}
		if _, err := engine.Placeholders(name); err != nil {
			return fmt.Errorf("variant %q: %w", variant, err)
		}
	}
	return nil
}

func dataCheck(name, path string) Check {
	return Check{
		Name: name,
		Mode: ModeData,
		Run: func(_ context.Context) error {
			records, err := forecast.LoadFile(path)
			if err != nil {
				return err
			}
			if len(records) != 7 {
				return forecast.DataFormat("%s holds %d records, want 7", path, len(records))
			}
			return nil
		},
	}
}

// checkRender performs a full page render and rejects output containing
// unresolved placeholder markers.
func checkRender(ctx context.Context, cfg config.Site, seed int64) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	now := time.Now().In(loc)

	thisWeek, nextWeek, err := loadOrGenerate(cfg, now, seed)
	if err != nil {
		return err
	}

	html, err := weatherpage.GenerateHTML(ctx, weatherpage.Request{
		Title:        cfg.Title,
		Now:          now,
		Location:     loc,
		ThisWeek:     thisWeek,
		NextWeek:     nextWeek,
		ThemeName:    cfg.Theme.Name,
		ThemeVariant: cfg.Theme.Variant,
	})
	if err != nil {
		return err
	}

	document := string(html)
	for _, marker := range []string{"{{", "}}", "{%", "%}"} {
		if strings.Contains(document, marker) {
			return fmt.Errorf("rendered page contains unresolved marker %q", marker)
		}
	}
	return nil
}

func loadOrGenerate(cfg config.Site, now time.Time, seed int64) ([]forecast.Record, []forecast.Record, error) {
	if cfg.Data.ThisWeek == "" || cfg.Data.NextWeek == "" {
		gen := forecast.NewGenerator(seed)
		return gen.Week(now), gen.NextWeek(now), nil
	}

	thisWeek, err := forecast.LoadFile(cfg.Data.ThisWeek)
	if err != nil {
		return nil, nil, err
	}
	nextWeek, err := forecast.LoadFile(cfg.Data.NextWeek)
	if err != nil {
		return nil, nil, err
	}
	return thisWeek, nextWeek, nil
}
