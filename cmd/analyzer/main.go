package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/promptly-social/activity-analyzer/pkg/analyzer"
	"github.com/promptly-social/activity-analyzer/pkg/config"
	"github.com/promptly-social/activity-analyzer/pkg/llm"
	"github.com/promptly-social/activity-analyzer/pkg/repository"
	"github.com/promptly-social/activity-analyzer/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Printf("[WARN] can't load config from %s, using defaults: %v", opts.Config, err)
		cfg = config.Default()
	}

	setupLog(opts.Debug, apiKeys(cfg)...)

	log.Printf("[INFO] starting activity-analyzer version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		log.Printf("[ERROR] analyzer failed: %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	log.Print("[INFO] shutdown complete")
}

// run wires the repositories, AI service, analyzer and server together and
// blocks until the context is canceled
func run(ctx context.Context, cfg *config.Config, debug bool) error {
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init repositories: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	ai, err := llm.NewEnhancedServiceFromConfig(cfg.GetAIConfig())
	if err != nil {
		return fmt.Errorf("init ai service: %w", err)
	}
	ai.Monitor().Start(ctx)
	defer ai.Monitor().Stop()

	anl := analyzer.NewAnalyzer(repos.Activity, repos.Tracking, repos.Profile, ai, cfg.GetAnalysisConfig())

	sched := analyzer.NewScheduler(anl, cfg.Schedule, cfg.GetAnalysisConfig())
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(cfg, anl, repos.Tracking, ai.Monitor(), revision, debug)
	return srv.Run(ctx)
}

// apiKeys collects configured provider keys so the logger can mask them
func apiKeys(cfg *config.Config) []string {
	var keys []string
	if cfg.AI.Primary.APIKey != "" {
		keys = append(keys, cfg.AI.Primary.APIKey)
	}
	for _, p := range cfg.AI.Fallbacks {
		if p.APIKey != "" {
			keys = append(keys, p.APIKey)
		}
	}
	return keys
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
