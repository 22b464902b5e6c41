package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bwalden3/leadkit/internal/leads"
)

func exportLeads() []leads.Lead {
	created := time.Date(2026, 8, 15, 9, 30, 0, 0, time.UTC)
	return []leads.Lead{
		{
			ID: "l1", Name: "Ana Silva", Role: "Growth Lead", Company: "Brightline Systems",
			Platform: leads.PlatformLinkedIn, ContactLink: "https://linkedin.com/in/anasilva0",
			Region: "Berlin", Notes: "**Ana Silva** is a Growth Lead.", CreatedAt: created,
		},
		{
			ID: "l2", Name: "Ben Okoro", Role: "Founder", Company: "Atlas Grid",
			Platform: leads.PlatformInstagram, ContactLink: "https://instagram.com/benokoro_1",
			Region: "London", CreatedAt: created,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, exportLeads(), Options{}); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 rows", len(records))
	}
	wantHeader := []string{"name", "role", "company", "platform", "contact_link", "region", "created_at"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}
	if records[1][0] != "Ana Silva" || records[1][3] != "LinkedIn" {
		t.Errorf("unexpected first row: %v", records[1])
	}
	if records[1][6] != "2026-08-15T09:30:00Z" {
		t.Errorf("created_at = %q", records[1][6])
	}
}

func TestWriteCSV_IncludeNotes(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, exportLeads(), Options{IncludeNotes: true}); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got := len(records[0]); got != 8 {
		t.Fatalf("header has %d columns, want 8", got)
	}
	if records[0][7] != "notes" {
		t.Errorf("last header column = %q, want notes", records[0][7])
	}
	if !strings.Contains(records[1][7], "Ana Silva") {
		t.Errorf("notes column = %q", records[1][7])
	}
}

func TestFileName(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	if got := FileName("SaaS Founders (EU)", now); got != "saas-founders-eu-2026-08-15.csv" {
		t.Errorf("FileName = %q", got)
	}
	if got := FileName("", now); got != "leads-2026-08-15.csv" {
		t.Errorf("empty title FileName = %q", got)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Hello World", "hello-world"},
		{"  spaced  out  ", "spaced-out"},
		{"UPPER_case/mixed", "upper-case-mixed"},
		{"---", ""},
		{strings.Repeat("a", 60), strings.Repeat("a", 50)},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSheetsClient_ExportLeads(t *testing.T) {
	var gotCreate createRequest
	var gotAppend appendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer sheets-key" {
			t.Errorf("missing bearer auth: %q", r.Header.Get("Authorization"))
		}
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v1/spreadsheets":
			json.NewDecoder(r.Body).Decode(&gotCreate)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(Spreadsheet{
				ID:  "sheet-123",
				URL: "https://docs.google.com/spreadsheets/d/sheet-123",
			})
		case r.Method == http.MethodPost && r.URL.Path == "/v1/spreadsheets/sheet-123/values:append":
			json.NewDecoder(r.Body).Decode(&gotAppend)
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewSheetsClient(srv.URL, "sheets-key")
	defer client.Close()

	sheet, err := client.ExportLeads(context.Background(), "August Outreach", exportLeads(), Options{})
	if err != nil {
		t.Fatalf("ExportLeads: %v", err)
	}
	if sheet.ID != "sheet-123" {
		t.Errorf("sheet ID = %q", sheet.ID)
	}
	if gotCreate.Title != "August Outreach" {
		t.Errorf("created title = %q", gotCreate.Title)
	}
	if len(gotAppend.Values) != 3 {
		t.Fatalf("appended %d rows, want header + 2", len(gotAppend.Values))
	}
	if gotAppend.Values[0][0] != "name" {
		t.Errorf("first appended row = %v, want header", gotAppend.Values[0])
	}
	if gotAppend.Values[2][0] != "Ben Okoro" {
		t.Errorf("last appended row = %v", gotAppend.Values[2])
	}
}

func TestSheetsClient_CreateError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewSheetsClient(srv.URL, "sheets-key")
	if _, err := client.CreateSpreadsheet(context.Background(), "x"); err == nil {
		t.Fatal("expected error on 403")
	} else if !strings.Contains(err.Error(), "status 403") {
		t.Errorf("error = %v, want status 403 mentioned", err)
	}
}
