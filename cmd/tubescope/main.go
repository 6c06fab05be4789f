package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/tubescope/tubescope/pkg/config"
	"github.com/tubescope/tubescope/pkg/llm"
	"github.com/tubescope/tubescope/pkg/ranker"
	"github.com/tubescope/tubescope/pkg/store"
	"github.com/tubescope/tubescope/pkg/youtube"
	"github.com/tubescope/tubescope/server"
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

	setupLog(opts.Debug)

	log.Printf("[INFO] starting tubescope version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	log.Print("[INFO] shutdown complete")
}

// run wires the store, the LLM client, the YouTube collaborators and
// the ranking pipeline together and starts the HTTP server
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := store.New(store.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Printf("[WARN] failed to close store: %v", closeErr)
		}
	}()

	ai := llm.New(cfg.GetLLMConfig())
	if !ai.Available() {
		log.Printf("[WARN] llm backend not configured, videos will be served unranked")
	}

	details := youtube.NewClient(cfg.YouTube.APIKey, cfg.YouTube.Timeout, cfg.YouTube.UserAgent)
	transcripts := youtube.NewTranscripts(cfg.YouTube.Timeout, cfg.YouTube.UserAgent, "")
	lister := youtube.NewLister(cfg.YouTube.Timeout, cfg.YouTube.UserAgent, cfg.YouTube.MaxPerFeed, cfg.YouTube.MaxParallel)

	rankingCfg := cfg.GetRankingConfig()
	rnk := ranker.New(ranker.Config{
		AI:          ai,
		Store:       db,
		Details:     details,
		Transcripts: transcripts,
		Params: ranker.Params{
			PoolCap:         rankingCfg.PoolCap,
			TriageBatchSize: rankingCfg.TriageBatchSize,
			ScoreBatchSize:  rankingCfg.ScoreBatchSize,
			EnrichTop:       rankingCfg.EnrichTop,
			RubricTTL:       rankingCfg.RubricTTL,
			ReputationAlpha: rankingCfg.ReputationAlpha,
			HighPassRate:    rankingCfg.HighPassRate,
			LowPassRate:     rankingCfg.LowPassRate,
			BoostFactor:     rankingCfg.BoostFactor,
			DemoteFactor:    rankingCfg.DemoteFactor,
			DiversityAfter:  rankingCfg.DiversityAfter,
			DiversityFactor: rankingCfg.DiversityFactor,
		},
	})

	srv := server.New(cfg, db, rnk, lister, details, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)} // default to discard
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
