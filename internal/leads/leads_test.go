package leads

import (
	"strings"
	"testing"
)

func TestScrapeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     ScrapeRequest
		wantErr bool
	}{
		{"valid", ScrapeRequest{Platforms: []Platform{PlatformLinkedIn}, MaxResults: 100}, false},
		{"no platforms", ScrapeRequest{MaxResults: 10}, true},
		{"unknown platform", ScrapeRequest{Platforms: []Platform{"MySpace"}}, true},
		{"max results too high", ScrapeRequest{Platforms: []Platform{PlatformInstagram}, MaxResults: 501}, true},
		{"zero max results ok", ScrapeRequest{Platforms: []Platform{PlatformTwitter}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPlatform_Known(t *testing.T) {
	if !PlatformLinkedIn.Known() {
		t.Error("expected LinkedIn to be known")
	}
	if Platform("MySpace").Known() {
		t.Error("expected MySpace to be unknown")
	}
}

func TestMockGenerator_Deterministic(t *testing.T) {
	req := ScrapeRequest{Platforms: []Platform{PlatformLinkedIn}}
	a := NewMockGenerator(42).Generate(req, PlatformLinkedIn, 5)
	b := NewMockGenerator(42).Generate(req, PlatformLinkedIn, 5)

	if len(a) != 5 || len(b) != 5 {
		t.Fatalf("expected 5 leads each, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Company != b[i].Company || a[i].Region != b[i].Region {
			t.Errorf("lead %d differs between same-seed runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestMockGenerator_HonorsFilters(t *testing.T) {
	req := ScrapeRequest{
		Platforms: []Platform{PlatformInstagram},
		Roles:     []string{"Designer"},
		Regions:   []string{"Lisbon"},
	}
	out := NewMockGenerator(1).Generate(req, PlatformInstagram, 3)
	for _, l := range out {
		if l.Role != "Designer" {
			t.Errorf("expected role Designer, got %q", l.Role)
		}
		if l.Region != "Lisbon" {
			t.Errorf("expected region Lisbon, got %q", l.Region)
		}
		if l.Platform != PlatformInstagram {
			t.Errorf("expected platform Instagram, got %q", l.Platform)
		}
		if !strings.HasPrefix(l.ContactLink, "https://instagram.com/") {
			t.Errorf("unexpected contact link %q", l.ContactLink)
		}
		if l.ID == "" {
			t.Error("expected non-empty lead ID")
		}
	}
}

func TestBioHTML(t *testing.T) {
	bio := BioHTML("Ava Chen", "Founder", "Atlas Grid", "fintech")
	for _, want := range []string{"<strong>Ava Chen</strong>", "Founder", "Atlas Grid", "<em>fintech</em>"} {
		if !strings.Contains(bio, want) {
			t.Errorf("expected bio to contain %q, got %q", want, bio)
		}
	}
}
