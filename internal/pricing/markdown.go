package pricing

import (
	"fmt"
	"strconv"
	"strings"
)

// BreakdownReport renders a total estimate as a markdown cost-analysis
// report in the toolkit's internal dialect, ready for the report
// parser.
func BreakdownReport(r Rates, tb TotalBreakdown) string {
	var sb strings.Builder

	sb.WriteString("# Apify Cost Analysis\n\n")

	sb.WriteString("## Assumptions\n")
	fmt.Fprintf(&sb, "- $1 buys %d compute units\n", ComputeUnitsPerDollar)
	fmt.Fprintf(&sb, "- LinkedIn: %s CU per profile\n", formatCU(r.LinkedInCUPerProfile))
	fmt.Fprintf(&sb, "- Instagram: %s CU per profile\n", formatCU(r.InstagramCUPerProfile))
	sb.WriteString("\n")

	sb.WriteString("## Breakdown\n\n")
	sb.WriteString("### Per Platform\n")
	sb.WriteString("| Platform | Profiles | Compute Units | Cost (USD) |\n")
	sb.WriteString("|---|---|---|---|\n")
	writeRow(&sb, tb.LinkedIn)
	writeRow(&sb, tb.Instagram)
	sb.WriteString("\n")

	sb.WriteString("### Totals\n")
	fmt.Fprintf(&sb, "**Total compute units:** %s\n", formatCU(tb.TotalComputeUnits))
	fmt.Fprintf(&sb, "**Total cost:** $%.2f\n", tb.TotalCostUSD)
	sb.WriteString("\n---\n")
	sb.WriteString("Rates are template estimates. Verify current Apify pricing before quoting.\n")

	return sb.String()
}

func writeRow(sb *strings.Builder, b Breakdown) {
	fmt.Fprintf(sb, "| %s | %d | %s | %.2f |\n",
		b.Platform, b.NumProfiles, formatCU(b.ComputeUnits), b.EstimatedCostUSD)
}

func formatCU(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
