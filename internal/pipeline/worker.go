package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"

	"github.com/bwalden3/leadkit/internal/leads"
	"github.com/bwalden3/leadkit/internal/scrape"
	"github.com/bwalden3/leadkit/internal/store"
)

// Worker processes a single scrape job: run the scraper per platform,
// enrich lead notes, then write the batch to the lead store.
type Worker struct {
	runner scrape.Runner
	store  *store.Store
	stats  *scrape.RunStats
	log    *slog.Logger
	conv   *converter.Converter
}

func NewWorker(runner scrape.Runner, st *store.Store, stats *scrape.RunStats, log *slog.Logger) *Worker {
	return &Worker{
		runner: runner,
		store:  st,
		stats:  stats,
		log:    log,
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
			),
		),
	}
}

// Process runs the full scrape pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID)
	req := job.Request()

	platforms := req.Platforms
	if len(platforms) == 0 {
		platforms = []leads.Platform{leads.PlatformLinkedIn, leads.PlatformInstagram}
	}
	job.SetPlatformsTotal(len(platforms))

	hadErrors := false
	storedTotal := 0

	for _, platform := range platforms {
		if ctx.Err() != nil {
			job.AddError(ctx.Err().Error())
			job.SetStatus(StatusFailed, "cancelled")
			return
		}

		// Phase 1: Scrape with retry on transient actor errors.
		job.SetStatus(StatusScraping, "scraping "+string(platform))
		batch, err := w.runPlatform(ctx, log, platform, req)
		if err != nil {
			log.Error("scrape failed", "platform", platform, "error", err)
			job.AddError(fmt.Sprintf("%s: %s", platform, err))
			job.IncrPlatformsDone()
			hadErrors = true
			continue
		}
		job.AddLeads(len(batch), 0)
		log.Info("scraped platform", "platform", platform, "leads", len(batch))

		// Phase 2: Enrich. Scraped bios arrive as HTML fragments; notes
		// are stored as markdown.
		job.SetStatus(StatusEnriching, "enriching "+string(platform))
		for i := range batch {
			batch[i].JobID = job.ID
			batch[i].Notes = w.enrichNotes(batch[i].Notes)
		}

		// Phase 3: Store.
		job.SetStatus(StatusStoring, "storing "+string(platform))
		if err := w.store.InsertLeads(ctx, batch); err != nil {
			log.Error("store failed", "platform", platform, "error", err)
			job.AddError(fmt.Sprintf("store %s: %s", platform, err))
			job.IncrPlatformsDone()
			hadErrors = true
			continue
		}
		job.AddLeads(0, len(batch))
		storedTotal += len(batch)
		job.IncrPlatformsDone()
	}

	if hadErrors && storedTotal > 0 {
		job.SetStatus(StatusPartial, "done")
	} else if hadErrors {
		job.SetStatus(StatusFailed, "done")
	} else {
		job.SetStatus(StatusCompleted, "done")
	}
	log.Info("job finished", "status", job.Status, "stored", storedTotal)
}

// runPlatform executes one scrape run, retrying transient failures with
// backoff, and records the run latency.
func (w *Worker) runPlatform(ctx context.Context, log *slog.Logger, platform leads.Platform, req leads.ScrapeRequest) ([]leads.Lead, error) {
	var batch []leads.Lead
	var lastErr error
	for attempt := range MaxRetries {
		start := time.Now()
		batch, lastErr = w.runner.Run(ctx, platform, req)
		if lastErr == nil {
			w.stats.Record(time.Since(start))
			return batch, nil
		}
		if !IsRetryable(lastErr) {
			break
		}
		log.Warn("retryable scrape error", "platform", platform, "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}

// enrichNotes converts an HTML bio fragment to markdown. Notes that do
// not look like HTML pass through unchanged.
func (w *Worker) enrichNotes(notes string) string {
	if !strings.Contains(notes, "<") {
		return notes
	}
	md, err := w.conv.ConvertString(notes)
	if err != nil {
		return notes
	}
	return strings.TrimSpace(md)
}
