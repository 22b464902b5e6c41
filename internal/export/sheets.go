package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bwalden3/leadkit/internal/leads"
)

// SheetsClient communicates with the sheets gateway HTTP API, which
// fronts the Google Sheets service with an API-key scheme.
type SheetsClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewSheetsClient(baseURL, apiKey string) *SheetsClient {
	return &SheetsClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Spreadsheet identifies a created sheet.
type Spreadsheet struct {
	ID  string `json:"spreadsheet_id"`
	URL string `json:"spreadsheet_url"`
}

type createRequest struct {
	Title string `json:"title"`
}

type appendRequest struct {
	Range  string     `json:"range"`
	Values [][]string `json:"values"`
}

// CreateSpreadsheet creates an empty spreadsheet with the given title.
func (c *SheetsClient) CreateSpreadsheet(ctx context.Context, title string) (*Spreadsheet, error) {
	body, err := json.Marshal(createRequest{Title: title})
	if err != nil {
		return nil, fmt.Errorf("marshal create: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/spreadsheets", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("create spreadsheet: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("create spreadsheet: status %d: %s", resp.StatusCode, string(respBody))
	}

	var sheet Spreadsheet
	if err := json.NewDecoder(resp.Body).Decode(&sheet); err != nil {
		return nil, fmt.Errorf("decode spreadsheet: %w", err)
	}
	return &sheet, nil
}

// AppendRows appends value rows to the first sheet of a spreadsheet.
func (c *SheetsClient) AppendRows(ctx context.Context, sheetID string, rows [][]string) error {
	body, err := json.Marshal(appendRequest{Range: "Sheet1", Values: rows})
	if err != nil {
		return fmt.Errorf("marshal append: %w", err)
	}
	u := fmt.Sprintf("%s/v1/spreadsheets/%s/values:append", c.baseURL, sheetID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("append rows: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("append rows to %s: status %d: %s", sheetID, resp.StatusCode, string(respBody))
	}
	return nil
}

// ExportLeads creates a spreadsheet named after title and fills it with
// a header row plus one row per lead.
func (c *SheetsClient) ExportLeads(ctx context.Context, title string, batch []leads.Lead, opts Options) (*Spreadsheet, error) {
	sheet, err := c.CreateSpreadsheet(ctx, title)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(batch)+1)
	rows = append(rows, Header(opts))
	for _, l := range batch {
		rows = append(rows, Row(l, opts))
	}
	if err := c.AppendRows(ctx, sheet.ID, rows); err != nil {
		return nil, err
	}
	return sheet, nil
}

// Close releases any resources (currently a no-op).
func (c *SheetsClient) Close() {
	c.httpClient.CloseIdleConnections()
}
