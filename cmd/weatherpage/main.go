package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	glog "github.com/goliatone/go-logger/glog"

	weatherpage "github.com/goliatone/go-weatherpage"
	"github.com/goliatone/go-weatherpage/pkg/config"
	"github.com/goliatone/go-weatherpage/pkg/forecast"
)

func main() {
	var (
		configFlag   = flag.String("config", "", "Path to a YAML site configuration")
		outputFlag   = flag.String("output", "", "Output file for the rendered page (stdout when empty)")
		generateFlag = flag.Bool("generate", false, "Generate forecast data instead of reading data files")
		seedFlag     = flag.Int64("seed", time.Now().UnixNano(), "Seed for generated forecast data")
		themeFlag    = flag.String("theme", "", "Theme name override")
		variantFlag  = flag.String("variant", "", "Theme variant override")
		timeoutFlag  = flag.Duration("timeout", 15*time.Second, "Generation timeout")
		levelFlag    = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	logger := newLogger(*levelFlag).GetLogger("weatherpage")

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			logger.Error("config.load.failed", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *themeFlag != "" {
		cfg.Theme.Name = *themeFlag
	}
	if *variantFlag != "" {
		cfg.Theme.Variant = *variantFlag
	}

	loc, err := cfg.Location()
	if err != nil {
		logger.Error("config.timezone.failed", "error", err)
		os.Exit(1)
	}
	now := time.Now().In(loc)

	thisWeek, nextWeek, err := resolveRecords(cfg, now, *generateFlag, *seedFlag)
	if err != nil {
		logger.Error("forecast.load.failed", "error", err)
		os.Exit(1)
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
		logger.Error("page.generate.failed", "error", err)
		os.Exit(1)
	}

	output := *outputFlag
	if output == "" {
		output = cfg.Output
	}
	if output == "" {
		fmt.Println(string(html))
		return
	}

	if err := writeFile(output, html); err != nil {
		logger.Error("page.write.failed", "error", err)
		os.Exit(1)
	}
	logger.Info("page.written", "bytes", len(html), "path", output)
}

func resolveRecords(cfg config.Site, now time.Time, generate bool, seed int64) ([]forecast.Record, []forecast.Record, error) {
	if generate || cfg.Data.ThisWeek == "" || cfg.Data.NextWeek == "" {
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

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func newLogger(level string) *glog.BaseLogger {
	return glog.NewLogger(
		glog.WithLevel(normalizeLevel(level)),
		glog.WithLoggerTypeConsole(),
	)
}

func normalizeLevel(level string) string {
	switch level {
	case "debug":
		return glog.Debug
	case "warn":
		return glog.Warn
	case "error":
		return glog.Error
	default:
		return glog.Info
	}
}
