package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pthm-cable/mitosis/config"
	"github.com/pthm-cable/mitosis/lab"
	"github.com/pthm-cable/mitosis/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "Cell id seed (0 = use config)")
	outputDir := flag.String("output-dir", "", "Directory for CSV journal and config snapshot (empty = use config)")
	demo := flag.Bool("demo", false, "Run the scripted experiment and exit")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	logLevel := flag.String("log-level", "", "Log level override: debug, info, warn, error")

	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// CLI overrides
	if *seed != 0 {
		cfg.Lab.Seed = *seed
	}
	if *outputDir != "" {
		cfg.Telemetry.OutputDir = *outputDir
	}
	if *noColor {
		cfg.Lab.Color = false
	}
	level := cfg.Derived.LogLevel
	if *logLevel != "" {
		if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
			slog.Error("invalid log level", "error", err)
			os.Exit(1)
		}
	}

	// Logs go to stderr so they never interleave with the menu on stdout.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	output, err := telemetry.NewOutputManager(cfg.Telemetry.OutputDir)
	if err != nil {
		slog.Error("failed to open output", "error", err)
		os.Exit(1)
	}
	if err := output.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write config snapshot", "error", err)
	}

	opts := lab.OptionsFromConfig(cfg)
	opts.Output = output
	opts.Logger = logger
	l := lab.New(opts)

	slog.Info("lab ready",
		"templates", len(l.Templates()),
		"seed", cfg.Lab.Seed,
		"output_dir", output.Dir(),
	)

	console := lab.NewConsole(l, os.Stdin, os.Stdout, cfg.Lab.Color)
	if *demo {
		console.Experiment()
	} else if err := console.Run(); err != nil {
		slog.Error("reading input", "error", err)
	}

	if err := l.Close(); err != nil {
		slog.Error("failed to write results", "error", err)
		os.Exit(1)
	}
}
