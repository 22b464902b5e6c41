// Package export turns stored leads into CSV downloads and Google
// Sheets documents via the sheets gateway.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/bwalden3/leadkit/internal/leads"
)

// Options controls which columns an export carries.
type Options struct {
	IncludeNotes bool
}

// Header returns the CSV/sheet header row.
func Header(opts Options) []string {
	h := []string{"name", "role", "company", "platform", "contact_link", "region", "created_at"}
	if opts.IncludeNotes {
		h = append(h, "notes")
	}
	return h
}

// Row flattens one lead into export columns.
func Row(l leads.Lead, opts Options) []string {
	r := []string{
		l.Name,
		l.Role,
		l.Company,
		string(l.Platform),
		l.ContactLink,
		l.Region,
		l.CreatedAt.UTC().Format(time.RFC3339),
	}
	if opts.IncludeNotes {
		r = append(r, l.Notes)
	}
	return r
}

// WriteCSV streams leads as CSV, header first.
func WriteCSV(w io.Writer, batch []leads.Lead, opts Options) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header(opts)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, l := range batch {
		if err := cw.Write(Row(l, opts)); err != nil {
			return fmt.Errorf("write lead %s: %w", l.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// FileName builds a download filename from a title, slugified, with a
// date suffix.
func FileName(title string, now time.Time) string {
	slug := Slugify(title)
	if slug == "" {
		slug = "leads"
	}
	return fmt.Sprintf("%s-%s.csv", slug, now.UTC().Format("2006-01-02"))
}
