package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwalden3/leadkit/internal/api"
	"github.com/bwalden3/leadkit/internal/config"
	"github.com/bwalden3/leadkit/internal/export"
	"github.com/bwalden3/leadkit/internal/pipeline"
	"github.com/bwalden3/leadkit/internal/scrape"
	"github.com/bwalden3/leadkit/internal/store"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Open the lead store.
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open lead store", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}

	// Pick the scrape runner.
	var runner scrape.Runner
	if cfg.MockScraper {
		log.Info("mock scraper enabled")
		runner = scrape.NewMockRunner(uint64(time.Now().UnixNano()))
	} else {
		runner = scrape.NewClient(cfg.ApifyBaseURL, cfg.ApifyAPIKey)
	}

	var sheets *export.SheetsClient
	if cfg.SheetsURL != "" {
		sheets = export.NewSheetsClient(cfg.SheetsURL, cfg.SheetsAPIKey)
	}

	// Initialize pipeline.
	orch := pipeline.NewOrchestrator(cfg, runner, st, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, st, sheets, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		if c, ok := runner.(*scrape.Client); ok {
			c.Close()
		}
		if sheets != nil {
			sheets.Close()
		}
		st.Close()
	}()

	log.Info("starting leadkit", "port", cfg.Port, "mock_scraper", cfg.MockScraper)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
