package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/bwalden3/leadkit/internal/export"
	"github.com/bwalden3/leadkit/internal/leads"
	"github.com/bwalden3/leadkit/internal/store"
)

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	batch, err := s.store.List(r.Context(), f)
	if err != nil {
		s.log.Error("list leads failed", "error", err)
		jsonError(w, "failed to list leads", http.StatusInternalServerError)
		return
	}
	total, err := s.store.Count(r.Context(), f)
	if err != nil {
		s.log.Error("count leads failed", "error", err)
		jsonError(w, "failed to count leads", http.StatusInternalServerError)
		return
	}
	if batch == nil {
		batch = []leads.Lead{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"total":  total,
		"limit":  f.Limit,
		"offset": f.Offset,
		"data":   batch,
	})
}

// exportRequest selects leads for an export and names the artifact.
type exportRequest struct {
	Platform     leads.Platform `json:"platform,omitempty"`
	JobID        string         `json:"job_id,omitempty"`
	Limit        int            `json:"limit,omitempty"`
	Offset       int            `json:"offset,omitempty"`
	IncludeNotes bool           `json:"include_notes,omitempty"`
	Title        string         `json:"title,omitempty"`
}

func (req exportRequest) filter() (store.Filter, error) {
	if req.Platform != "" && !req.Platform.Known() {
		return store.Filter{}, errUnknownPlatform(req.Platform)
	}
	limit := req.Limit
	if limit <= 0 {
		limit = 1000
	}
	return store.Filter{
		Platform: req.Platform,
		JobID:    req.JobID,
		Limit:    limit,
		Offset:   req.Offset,
	}, nil
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	f, err := req.filter()
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	batch, err := s.store.List(r.Context(), f)
	if err != nil {
		s.log.Error("list leads failed", "error", err)
		jsonError(w, "failed to list leads", http.StatusInternalServerError)
		return
	}

	title := req.Title
	if title == "" {
		title = "leads"
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName(title, time.Now())+`"`)
	if err := export.WriteCSV(w, batch, export.Options{IncludeNotes: req.IncludeNotes}); err != nil {
		s.log.Error("csv export failed", "error", err)
	}
}

func (s *Server) handleExportSheets(w http.ResponseWriter, r *http.Request) {
	if s.sheets == nil {
		jsonError(w, "sheets export is not configured", http.StatusServiceUnavailable)
		return
	}

	var req exportRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	f, err := req.filter()
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	batch, err := s.store.List(r.Context(), f)
	if err != nil {
		s.log.Error("list leads failed", "error", err)
		jsonError(w, "failed to list leads", http.StatusInternalServerError)
		return
	}

	title := req.Title
	if title == "" {
		title = "Leads " + time.Now().UTC().Format("2006-01-02")
	}
	sheet, err := s.sheets.ExportLeads(r.Context(), title, batch, export.Options{IncludeNotes: req.IncludeNotes})
	if err != nil {
		s.log.Error("sheets export failed", "error", err)
		jsonError(w, "sheets export failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"spreadsheet_id":  sheet.ID,
		"spreadsheet_url": sheet.URL,
		"rows":            len(batch),
	})
}

func filterFromQuery(r *http.Request) (store.Filter, error) {
	q := r.URL.Query()
	f := store.Filter{
		JobID:  q.Get("job_id"),
		Limit:  intQuery(q.Get("limit"), 50),
		Offset: intQuery(q.Get("offset"), 0),
	}
	if p := q.Get("platform"); p != "" {
		platform := leads.Platform(p)
		if !platform.Known() {
			return store.Filter{}, errUnknownPlatform(platform)
		}
		f.Platform = platform
	}
	return f, nil
}

func intQuery(v string, fallback int) int {
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func errUnknownPlatform(p leads.Platform) error {
	return fmt.Errorf("unknown platform: %s", p)
}
