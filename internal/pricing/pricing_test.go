package pricing

import (
	"strings"
	"testing"

	"github.com/bwalden3/leadkit/internal/leads"
	"github.com/bwalden3/leadkit/internal/report"
)

func TestEstimateLinkedIn(t *testing.T) {
	b := DefaultRates().EstimateLinkedIn(100)
	if b.NumProfiles != 100 {
		t.Errorf("expected 100 profiles, got %d", b.NumProfiles)
	}
	if b.ComputeUnits != 5 {
		t.Errorf("expected 5 CU, got %v", b.ComputeUnits)
	}
	if b.EstimatedCostUSD != 0.5 {
		t.Errorf("expected $0.50, got %v", b.EstimatedCostUSD)
	}
	if b.Platform != leads.PlatformLinkedIn {
		t.Errorf("expected LinkedIn, got %q", b.Platform)
	}
}

func TestEstimateInstagram(t *testing.T) {
	b := DefaultRates().EstimateInstagram(100)
	if b.ComputeUnits != 3 {
		t.Errorf("expected 3 CU, got %v", b.ComputeUnits)
	}
	if b.EstimatedCostUSD != 0.3 {
		t.Errorf("expected $0.30, got %v", b.EstimatedCostUSD)
	}
}

func TestEstimateTotal(t *testing.T) {
	tb := DefaultRates().EstimateTotal(100, 100)
	if tb.TotalComputeUnits != 8 {
		t.Errorf("expected 8 total CU, got %v", tb.TotalComputeUnits)
	}
	if tb.TotalCostUSD != 0.8 {
		t.Errorf("expected $0.80 total, got %v", tb.TotalCostUSD)
	}
}

func TestEstimateTotal_Rounding(t *testing.T) {
	// 33 * 0.05 = 1.65 CU -> $0.165, rounded to $0.17 per platform rules.
	tb := DefaultRates().EstimateTotal(33, 0)
	if tb.LinkedIn.EstimatedCostUSD != 0.17 {
		t.Errorf("expected $0.17, got %v", tb.LinkedIn.EstimatedCostUSD)
	}
	if tb.Instagram.EstimatedCostUSD != 0 {
		t.Errorf("expected $0 for zero profiles, got %v", tb.Instagram.EstimatedCostUSD)
	}
}

func TestBreakdownReport_ParsesIntoTree(t *testing.T) {
	rates := DefaultRates()
	md := BreakdownReport(rates, rates.EstimateTotal(100, 100))

	doc := report.Parse(md)
	if len(doc.Nodes) != 1 {
		t.Fatalf("expected a single title node, got %d", len(doc.Nodes))
	}
	title, ok := doc.Nodes[0].(*report.Title)
	if !ok {
		t.Fatalf("expected *report.Title, got %T", doc.Nodes[0])
	}
	if title.Text != "Apify Cost Analysis" {
		t.Errorf("unexpected title %q", title.Text)
	}
	if len(title.Children) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(title.Children))
	}

	assumptions := title.Children[0]
	list, ok := assumptions.Content[0].(*report.List)
	if !ok || len(list.Items) != 3 {
		t.Fatalf("expected 3 assumption bullets, got %#v", assumptions.Content[0])
	}

	breakdown := title.Children[1]
	var tbl *report.Table
	for _, n := range breakdown.Content {
		if candidate, ok := n.(*report.Table); ok {
			tbl = candidate
		}
	}
	if tbl == nil {
		t.Fatal("expected a table under the breakdown section")
	}
	if len(tbl.Headers) != 4 {
		t.Errorf("expected 4 table headers, got %v", tbl.Headers)
	}
	if len(tbl.Rows) != 2 {
		t.Errorf("expected 2 platform rows, got %v", tbl.Rows)
	}
	if tbl.Rows[0][0] != "LinkedIn" || tbl.Rows[1][0] != "Instagram" {
		t.Errorf("unexpected row platforms: %v", tbl.Rows)
	}
}

func TestBreakdownReport_ContainsTotals(t *testing.T) {
	rates := DefaultRates()
	md := BreakdownReport(rates, rates.EstimateTotal(100, 100))
	for _, want := range []string{"**Total compute units:** 8", "**Total cost:** $0.80"} {
		if !strings.Contains(md, want) {
			t.Errorf("expected report to contain %q\n%s", want, md)
		}
	}
}
