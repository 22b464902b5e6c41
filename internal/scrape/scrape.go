// Package scrape fetches leads from platform scraping actors. A real
// HTTP client drives Apify-style actor runs; a mock runner synthesizes
// dataset items locally so the toolkit works without credentials.
package scrape

import (
	"context"
	"fmt"

	"github.com/bwalden3/leadkit/internal/leads"
)

// Runner executes one scraping run for a platform and returns the
// collected leads.
type Runner interface {
	Run(ctx context.Context, platform leads.Platform, req leads.ScrapeRequest) ([]leads.Lead, error)
}

// RetryableError indicates a transient failure that can be retried.
type RetryableError struct {
	StatusCode int
	Message    string
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable error (status %d): %s", e.StatusCode, truncate(e.Message, 200))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
