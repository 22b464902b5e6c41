// Package leads defines the contact data model shared by the scrape
// pipeline, the lead store, and the export layer.
package leads

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Platform identifies where a lead was found.
type Platform string

const (
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformInstagram Platform = "Instagram"
	PlatformTwitter   Platform = "Twitter"
	PlatformFacebook  Platform = "Facebook"
)

// Platforms lists every supported platform.
var Platforms = []Platform{PlatformLinkedIn, PlatformInstagram, PlatformTwitter, PlatformFacebook}

// Known reports whether p is a supported platform.
func (p Platform) Known() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// Lead is one scraped contact.
type Lead struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id,omitempty"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Company     string    `json:"company"`
	Platform    Platform  `json:"platform"`
	ContactLink string    `json:"contact_link"`
	Region      string    `json:"region"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ScrapeRequest describes one scraping run.
type ScrapeRequest struct {
	Platforms   []Platform `json:"platforms"`
	Industries  []string   `json:"industries,omitempty"`
	Roles       []string   `json:"roles,omitempty"`
	Regions     []string   `json:"regions,omitempty"`
	SearchQuery string     `json:"search_query,omitempty"`
	MaxResults  int        `json:"max_results,omitempty"`
}

// DefaultMaxResults applies when a request leaves MaxResults unset.
const DefaultMaxResults = 50

// MaxResultsLimit caps results per platform.
const MaxResultsLimit = 500

// Validate checks the request before a job is submitted.
func (r ScrapeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Platforms,
			validation.Required.Error("at least one platform is required"),
			validation.Each(validation.By(validPlatform)),
		),
		validation.Field(&r.MaxResults,
			validation.Min(0),
			validation.Max(MaxResultsLimit),
		),
	)
}

func validPlatform(value any) error {
	p, ok := value.(Platform)
	if !ok || !p.Known() {
		return fmt.Errorf("unknown platform: %v", value)
	}
	return nil
}
