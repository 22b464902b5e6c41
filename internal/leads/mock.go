package leads

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Mock lead synthesis. The real actor integrations are gated behind
// credentials; without them the pipeline generates plausible demo data
// from the seed tables below so the full scrape → store → export flow
// is exercisable.

var firstNames = []string{
	"Ava", "Noah", "Mia", "Liam", "Zoe", "Ethan", "Ines", "Marco",
	"Priya", "Diego", "Hana", "Tomas", "Lena", "Omar", "Grace", "Felix",
}

var lastNames = []string{
	"Chen", "Okafor", "Silva", "Novak", "Haddad", "Kim", "Moreau",
	"Petrov", "Tanaka", "Garcia", "Lindqvist", "Banerjee",
}

var companies = []string{
	"Northwave Labs", "Cedar Analytics", "Brightline Systems", "Quanta Forge",
	"Helio Commerce", "Atlas Grid", "Mosaic Health", "Ferrohaus",
}

var defaultRoles = []string{
	"Software Engineer", "Product Manager", "Growth Lead",
	"Founder", "Marketing Director", "Data Analyst",
}

var defaultRegions = []string{
	"San Francisco, CA", "New York, NY", "Berlin", "London",
	"Singapore", "Toronto", "Austin, TX",
}

// MockGenerator produces deterministic leads for a given seed.
type MockGenerator struct {
	rng *rand.Rand
}

// NewMockGenerator seeds a generator. The same seed yields the same
// lead sequence, which keeps demo runs and tests reproducible.
func NewMockGenerator(seed uint64) *MockGenerator {
	return &MockGenerator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate synthesizes n leads for one platform, honoring the role and
// region filters from the request when present. IDs are fresh UUIDs.
func (g *MockGenerator) Generate(req ScrapeRequest, platform Platform, n int) []Lead {
	roles := req.Roles
	if len(roles) == 0 {
		roles = defaultRoles
	}
	regions := req.Regions
	if len(regions) == 0 {
		regions = defaultRegions
	}

	out := make([]Lead, 0, n)
	for i := 0; i < n; i++ {
		first := firstNames[g.rng.IntN(len(firstNames))]
		last := lastNames[g.rng.IntN(len(lastNames))]
		name := first + " " + last
		company := companies[g.rng.IntN(len(companies))]
		role := roles[g.rng.IntN(len(roles))]
		region := regions[g.rng.IntN(len(regions))]

		out = append(out, Lead{
			ID:          uuid.NewString(),
			Name:        name,
			Role:        role,
			Company:     company,
			Platform:    platform,
			ContactLink: profileLink(platform, first, last, i),
			Region:      region,
			Notes:       BioHTML(name, role, company, req.SearchQuery),
			CreatedAt:   time.Now().UTC(),
		})
	}
	return out
}

func profileLink(platform Platform, first, last string, i int) string {
	handle := strings.ToLower(first + last)
	switch platform {
	case PlatformLinkedIn:
		return fmt.Sprintf("https://linkedin.com/in/%s%d", handle, i)
	case PlatformInstagram:
		return fmt.Sprintf("https://instagram.com/%s_%d", handle, i)
	case PlatformTwitter:
		return fmt.Sprintf("https://x.com/%s%d", handle, i)
	case PlatformFacebook:
		return fmt.Sprintf("https://facebook.com/%s.%d", handle, i)
	}
	return ""
}

// BioHTML renders a profile bio the way scraped dataset items carry
// them: as an HTML fragment. The pipeline converts it to markdown
// before storing it in the lead's notes.
func BioHTML(name, role, company, query string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<p><strong>%s</strong> is a %s at %s.</p>", name, role, company)
	sb.WriteString("<ul><li>Open to outreach</li><li>Active in the last 30 days</li></ul>")
	if query != "" {
		fmt.Fprintf(&sb, "<p>Matched query: <em>%s</em></p>", query)
	}
	return sb.String()
}
