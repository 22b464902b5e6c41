package scrape

import (
	"context"

	"github.com/bwalden3/leadkit/internal/leads"
)

// MockRunner synthesizes leads locally instead of calling actors.
type MockRunner struct {
	gen *leads.MockGenerator
}

func NewMockRunner(seed uint64) *MockRunner {
	return &MockRunner{gen: leads.NewMockGenerator(seed)}
}

func (m *MockRunner) Run(ctx context.Context, platform leads.Platform, req leads.ScrapeRequest) ([]leads.Lead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := req.MaxResults
	if n <= 0 {
		n = leads.DefaultMaxResults
	}
	return m.gen.Generate(req, platform, n), nil
}
