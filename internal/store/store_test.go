package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bwalden3/leadkit/internal/leads"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "leads.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleLeads() []leads.Lead {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return []leads.Lead{
		{ID: "l1", JobID: "job-a", Name: "Ana Silva", Role: "Marketing Manager", Company: "Brightline", Platform: leads.PlatformLinkedIn, CreatedAt: base},
		{ID: "l2", JobID: "job-a", Name: "Ben Okoro", Role: "Founder", Company: "Northwind", Platform: leads.PlatformInstagram, CreatedAt: base.Add(time.Minute)},
		{ID: "l3", JobID: "job-b", Name: "Cara Lindt", Role: "Sales Lead", Company: "Quayside", Platform: leads.PlatformLinkedIn, CreatedAt: base.Add(2 * time.Minute)},
	}
}

func TestInsertAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.InsertLeads(ctx, sampleLeads()); err != nil {
		t.Fatalf("InsertLeads: %v", err)
	}

	got, err := s.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d leads, want 3", len(got))
	}
	// Newest first.
	if got[0].ID != "l3" || got[2].ID != "l1" {
		t.Errorf("unexpected order: %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
	}
	if got[0].Platform != leads.PlatformLinkedIn {
		t.Errorf("platform = %q, want linkedin", got[0].Platform)
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("created_at not round-tripped")
	}
}

func TestListFilters(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	if err := s.InsertLeads(ctx, sampleLeads()); err != nil {
		t.Fatalf("InsertLeads: %v", err)
	}

	byPlatform, err := s.List(ctx, Filter{Platform: leads.PlatformLinkedIn})
	if err != nil {
		t.Fatalf("List by platform: %v", err)
	}
	if len(byPlatform) != 2 {
		t.Errorf("linkedin leads = %d, want 2", len(byPlatform))
	}

	byJob, err := s.List(ctx, Filter{JobID: "job-a"})
	if err != nil {
		t.Fatalf("List by job: %v", err)
	}
	if len(byJob) != 2 {
		t.Errorf("job-a leads = %d, want 2", len(byJob))
	}

	both, err := s.List(ctx, Filter{Platform: leads.PlatformInstagram, JobID: "job-a"})
	if err != nil {
		t.Fatalf("List by both: %v", err)
	}
	if len(both) != 1 || both[0].ID != "l2" {
		t.Errorf("combined filter = %+v, want single l2", both)
	}
}

func TestListPagination(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	if err := s.InsertLeads(ctx, sampleLeads()); err != nil {
		t.Fatalf("InsertLeads: %v", err)
	}

	page, err := s.List(ctx, Filter{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("page size = %d, want 2", len(page))
	}
	if page[0].ID != "l2" || page[1].ID != "l1" {
		t.Errorf("page = %s, %s; want l2, l1", page[0].ID, page[1].ID)
	}
}

func TestCount(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	if err := s.InsertLeads(ctx, sampleLeads()); err != nil {
		t.Fatalf("InsertLeads: %v", err)
	}

	total, err := s.Count(ctx, Filter{})
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}

	linked, err := s.Count(ctx, Filter{Platform: leads.PlatformLinkedIn})
	if err != nil {
		t.Fatalf("Count by platform: %v", err)
	}
	if linked != 2 {
		t.Errorf("linkedin count = %d, want 2", linked)
	}
}

func TestDeleteByJob(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	if err := s.InsertLeads(ctx, sampleLeads()); err != nil {
		t.Fatalf("InsertLeads: %v", err)
	}

	n, err := s.DeleteByJob(ctx, "job-a")
	if err != nil {
		t.Fatalf("DeleteByJob: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted = %d, want 2", n)
	}

	remaining, err := s.Count(ctx, Filter{})
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if remaining != 1 {
		t.Errorf("remaining = %d, want 1", remaining)
	}
}

func TestInsertEmptyBatch(t *testing.T) {
	s := openTestStore(t)
	if err := s.InsertLeads(context.Background(), nil); err != nil {
		t.Fatalf("InsertLeads(nil): %v", err)
	}
}
