package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/bwalden3/leadkit/internal/pricing"
	"github.com/bwalden3/leadkit/internal/report"
	"github.com/bwalden3/leadkit/internal/source"
)

type estimateRequest struct {
	LinkedInProfiles  int `json:"linkedin_profiles"`
	InstagramProfiles int `json:"instagram_profiles"`
}

func (s *Server) handleCostEstimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.LinkedInProfiles < 0 || req.InstagramProfiles < 0 {
		jsonError(w, "profile counts must not be negative", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.rates.EstimateTotal(req.LinkedInProfiles, req.InstagramProfiles))
}

func (s *Server) handleCostAnalysis(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	linkedin := intQuery(q.Get("linkedin"), 100)
	instagram := intQuery(q.Get("instagram"), 100)

	md := pricing.BreakdownReport(s.rates, s.rates.EstimateTotal(linkedin, instagram))

	if q.Get("format") == "html" {
		out, err := report.RenderHTML([]byte(md))
		if err != nil {
			s.log.Error("html render failed", "error", err)
			jsonError(w, "failed to render report", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(out)
		return
	}

	doc := report.Parse(md)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"title":    "Apify Cost Analysis",
		"status":   "ok",
		"document": report.Render(doc),
	})
}

func (s *Server) handleReportParse(w http.ResponseWriter, r *http.Request) {
	// Extra 1MB for multipart form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !source.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	extractor, err := source.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	limited := io.LimitReader(file, s.cfg.MaxUploadBytes+1)
	doc, err := extractor.Extract(limited, filename)
	if err != nil {
		s.log.Error("extract failed", "filename", filename, "error", err)
		jsonError(w, "failed to extract document: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if int64(len(doc.Markdown)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	tree := report.Parse(doc.Markdown)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"title":    doc.Title,
		"status":   "parsed",
		"document": report.Render(tree),
	})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
