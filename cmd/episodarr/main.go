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
	"golang.org/x/sync/errgroup"

	"github.com/episodarr/episodarr/pkg/catalog"
	"github.com/episodarr/episodarr/pkg/config"
	"github.com/episodarr/episodarr/pkg/feed"
	"github.com/episodarr/episodarr/pkg/repository"
	"github.com/episodarr/episodarr/pkg/scheduler"
	"github.com/episodarr/episodarr/pkg/service"
	"github.com/episodarr/episodarr/pkg/transmission"
	"github.com/episodarr/episodarr/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"episodarr.yml" description:"config file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

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

	setupLog(opts.Debug)

	log.Printf("[INFO] starting episodarr version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] episodarr failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires the application together and blocks until the context is canceled
// or the server fails
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	// rebuild logging with the transmission password masked
	if cfg.Transmission.Password != "" {
		setupLog(opts.Debug, cfg.Transmission.Password)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	fetcher := feed.NewFetcher(feed.Config{
		NyaaURL:       cfg.Feeds.NyaaURL,
		SubsPleaseURL: cfg.Feeds.SubsPleaseURL,
		Timeout:       cfg.Feeds.Timeout,
		UserAgent:     cfg.Feeds.UserAgent,
	})

	torrents := transmission.New(transmission.Config{
		URL:         cfg.Transmission.URL,
		Username:    cfg.Transmission.Username,
		Password:    cfg.Transmission.Password,
		DownloadDir: cfg.Transmission.DownloadDir,
		AddPaused:   cfg.Transmission.AddPaused,
	})

	cat := catalog.NewClient(catalog.Config{
		URL:     cfg.Catalog.URL,
		Timeout: cfg.Catalog.Timeout,
		PerPage: cfg.Catalog.PerPage,
	})

	trackerSvc := service.NewTrackerService(repos.Show, repos.Filter, repos.History, repos.Poll)
	webSvc := service.NewWebService(repos.Show, repos.Filter, repos.History, repos.Poll)

	tracker := scheduler.NewTracker(trackerSvc, fetcher, torrents)
	srv := server.New(cfg, webSvc, tracker, cat, torrents, revision, opts.Debug)

	// the server and the poll loop live and die together: a server failure
	// cancels the group context and stops the tracker
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		tracker.Start(gctx)
		<-gctx.Done()
		tracker.Stop()
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
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
