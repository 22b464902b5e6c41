// Package pricing estimates Apify scraping costs from per-platform
// compute-unit rates.
package pricing

import (
	"math"

	"github.com/bwalden3/leadkit/internal/leads"
)

// ComputeUnitsPerDollar is the Apify exchange rate: $1 buys 10 CU.
const ComputeUnitsPerDollar = 10

// Rates holds compute units consumed per scraped profile. The defaults
// are template estimates; verify current actor pricing before quoting.
type Rates struct {
	LinkedInCUPerProfile  float64
	InstagramCUPerProfile float64
}

// DefaultRates returns the template estimates.
func DefaultRates() Rates {
	return Rates{
		LinkedInCUPerProfile:  0.05,
		InstagramCUPerProfile: 0.03,
	}
}

// Breakdown is the cost estimate for one platform.
type Breakdown struct {
	NumProfiles      int            `json:"num_profiles"`
	ComputeUnits     float64        `json:"compute_units"`
	EstimatedCostUSD float64        `json:"estimated_cost_usd"`
	Platform         leads.Platform `json:"platform"`
}

// TotalBreakdown combines per-platform estimates.
type TotalBreakdown struct {
	LinkedIn          Breakdown `json:"linkedin"`
	Instagram         Breakdown `json:"instagram"`
	TotalComputeUnits float64   `json:"total_compute_units"`
	TotalCostUSD      float64   `json:"total_cost_usd"`
}

// EstimateLinkedIn estimates the cost of scraping n LinkedIn profiles.
func (r Rates) EstimateLinkedIn(n int) Breakdown {
	return estimate(n, r.LinkedInCUPerProfile, leads.PlatformLinkedIn)
}

// EstimateInstagram estimates the cost of scraping n Instagram profiles.
func (r Rates) EstimateInstagram(n int) Breakdown {
	return estimate(n, r.InstagramCUPerProfile, leads.PlatformInstagram)
}

// EstimateTotal estimates the combined cost across both platforms.
func (r Rates) EstimateTotal(linkedinProfiles, instagramProfiles int) TotalBreakdown {
	li := r.EstimateLinkedIn(linkedinProfiles)
	ig := r.EstimateInstagram(instagramProfiles)
	return TotalBreakdown{
		LinkedIn:          li,
		Instagram:         ig,
		TotalComputeUnits: round2(li.ComputeUnits + ig.ComputeUnits),
		TotalCostUSD:      round2(li.EstimatedCostUSD + ig.EstimatedCostUSD),
	}
}

func estimate(n int, cuPerProfile float64, platform leads.Platform) Breakdown {
	cu := float64(n) * cuPerProfile
	return Breakdown{
		NumProfiles:      n,
		ComputeUnits:     cu,
		EstimatedCostUSD: round2(cu / ComputeUnitsPerDollar),
		Platform:         platform,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
