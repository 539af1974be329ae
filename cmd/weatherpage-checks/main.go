package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"
	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-weatherpage/internal/checks"
	"github.com/goliatone/go-weatherpage/pkg/config"
)

func main() {
	var (
		modeFlag        = flag.String("mode", checks.ModeAll, "Check subset to run (all, templates, data, render)")
		configFlag      = flag.String("config", "", "Path to a YAML site configuration")
		seedFlag        = flag.Int64("seed", 1, "Seed for generated forecast data used by render checks")
		interactiveFlag = flag.Bool("interactive", false, "Prompt for the check mode")
		timeoutFlag     = flag.Duration("timeout", 30*time.Second, "Check run timeout")
		levelFlag       = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	logger := newLogger(*levelFlag).GetLogger("weatherpage.checks")

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

	// The mode can be given positionally: weatherpage-checks [mode].
	mode := *modeFlag
	if arg := flag.Arg(0); arg != "" {
		mode = arg
	}
	if *interactiveFlag {
		prompt := &survey.Select{
			Message: "Run which checks?",
			Options: checks.Modes(),
			Default: checks.ModeAll,
		}
		if err := survey.AskOne(prompt, &mode); err != nil {
			logger.Error("prompt.failed", "error", err)
			os.Exit(1)
		}
	}

	runner := checks.NewRunner(checks.WithLogger(logger))
	runner.Register(checks.Default(cfg, *seedFlag)...)

	if err := runner.Run(ctx, mode); err != nil {
		logger.Error("checks.failed", "mode", mode, "error", err)
		os.Exit(1)
	}
	logger.Info("checks.passed", "mode", mode)
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
