package scrape

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bwalden3/leadkit/internal/leads"
)

// actorIDs maps each platform to the actor that scrapes it.
var actorIDs = map[leads.Platform]string{
	leads.PlatformLinkedIn:  "leadkit~linkedin-profile-scraper",
	leads.PlatformInstagram: "leadkit~instagram-profile-scraper",
	leads.PlatformTwitter:   "leadkit~twitter-profile-scraper",
	leads.PlatformFacebook:  "leadkit~facebook-profile-scraper",
}

// Client runs scraping actors over the Apify HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	// PollInterval controls how often run status is checked.
	PollInterval time.Duration
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		PollInterval: 2 * time.Second,
	}
}

type runInput struct {
	SearchQuery string   `json:"searchQuery,omitempty"`
	Industries  []string `json:"industries,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	Regions     []string `json:"regions,omitempty"`
	MaxResults  int      `json:"maxResults"`
}

type runState struct {
	Data struct {
		ID               string `json:"id"`
		Status           string `json:"status"`
		DefaultDatasetID string `json:"defaultDatasetId"`
	} `json:"data"`
}

type datasetItem struct {
	FullName string `json:"fullName"`
	Headline string `json:"headline"`
	Company  string `json:"companyName"`
	URL      string `json:"url"`
	Location string `json:"location"`
	BioHTML  string `json:"bioHtml"`
}

// Run starts the platform's actor, polls it to completion, and maps
// the dataset items to leads.
func (c *Client) Run(ctx context.Context, platform leads.Platform, req leads.ScrapeRequest) ([]leads.Lead, error) {
	actorID, ok := actorIDs[platform]
	if !ok {
		return nil, fmt.Errorf("no actor for platform %s", platform)
	}

	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = leads.DefaultMaxResults
	}

	state, err := c.startRun(ctx, actorID, runInput{
		SearchQuery: req.SearchQuery,
		Industries:  req.Industries,
		Roles:       req.Roles,
		Regions:     req.Regions,
		MaxResults:  maxResults,
	})
	if err != nil {
		return nil, err
	}

	state, err = c.waitForRun(ctx, state.Data.ID)
	if err != nil {
		return nil, err
	}

	items, err := c.datasetItems(ctx, state.Data.DefaultDatasetID)
	if err != nil {
		return nil, err
	}

	out := make([]leads.Lead, 0, len(items))
	for _, it := range items {
		out = append(out, leads.Lead{
			ID:          uuid.NewString(),
			Name:        it.FullName,
			Role:        it.Headline,
			Company:     it.Company,
			Platform:    platform,
			ContactLink: it.URL,
			Region:      it.Location,
			Notes:       it.BioHTML,
			CreatedAt:   time.Now().UTC(),
		})
	}
	return out, nil
}

func (c *Client) startRun(ctx context.Context, actorID string, input runInput) (*runState, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("marshal run input: %w", err)
	}

	u := fmt.Sprintf("%s/v2/acts/%s/runs", c.baseURL, actorID)
	var state runState
	if err := c.do(ctx, http.MethodPost, u, bytes.NewReader(body), &state); err != nil {
		return nil, fmt.Errorf("start run: %w", err)
	}
	return &state, nil
}

// waitForRun polls until the run reaches a terminal status.
func (c *Client) waitForRun(ctx context.Context, runID string) (*runState, error) {
	ticker := time.NewTicker(c.PollInterval)
	defer ticker.Stop()

	for {
		var state runState
		u := fmt.Sprintf("%s/v2/actor-runs/%s", c.baseURL, runID)
		if err := c.do(ctx, http.MethodGet, u, nil, &state); err != nil {
			return nil, fmt.Errorf("poll run %s: %w", runID, err)
		}
		switch state.Data.Status {
		case "SUCCEEDED":
			return &state, nil
		case "FAILED", "ABORTED", "TIMED-OUT":
			return nil, fmt.Errorf("run %s ended with status %s", runID, state.Data.Status)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *Client) datasetItems(ctx context.Context, datasetID string) ([]datasetItem, error) {
	u := fmt.Sprintf("%s/v2/datasets/%s/items", c.baseURL, datasetID)
	var items []datasetItem
	if err := c.do(ctx, http.MethodGet, u, nil, &items); err != nil {
		return nil, fmt.Errorf("dataset items: %w", err)
	}
	return items, nil
}

// do issues one authenticated JSON request. 429 and 5xx responses come
// back as RetryableError so the pipeline can back off.
func (c *Client) do(ctx context.Context, method, url string, body io.Reader, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<22))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return &RetryableError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
