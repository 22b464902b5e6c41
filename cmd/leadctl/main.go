// leadctl is a small companion CLI for the leadkit service: estimate
// scraping costs and parse report documents without running the server.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bwalden3/leadkit/internal/pricing"
	"github.com/bwalden3/leadkit/internal/report"
	"github.com/bwalden3/leadkit/internal/source"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:     "leadctl",
		Short:   "Outreach scraping toolkit CLI",
		Version: version,
	}

	rootCmd.AddCommand(estimateCmd())
	rootCmd.AddCommand(reportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func estimateCmd() *cobra.Command {
	var (
		linkedin  int
		instagram int
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate Apify scraping costs",
		Long: `Estimate compute-unit usage and cost for a scraping run.

Example:
  leadctl estimate --linkedin 500 --instagram 200`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if linkedin < 0 || instagram < 0 {
				return fmt.Errorf("profile counts must not be negative")
			}
			rates := pricing.DefaultRates()
			total := rates.EstimateTotal(linkedin, instagram)

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(total)
			}

			fmt.Print(pricing.BreakdownReport(rates, total))
			return nil
		},
	}
	cmd.Flags().IntVar(&linkedin, "linkedin", 0, "number of LinkedIn profiles")
	cmd.Flags().IntVar(&instagram, "instagram", 0, "number of Instagram profiles")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the breakdown as JSON")
	return cmd
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report FILE",
		Short: "Parse a report document into its structured tree",
		Long: `Parse a report (md, txt, csv, html, pdf, docx) and print the
document tree as JSON.

Example:
  leadctl report outreach-summary.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !source.IsSupportedExtension(path) {
				return fmt.Errorf("unsupported file type: %s", path)
			}
			extractor, err := source.ForFile(path)
			if err != nil {
				return err
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer f.Close()

			doc, err := extractor.Extract(f, path)
			if err != nil {
				return fmt.Errorf("extract %s: %w", path, err)
			}

			tree := report.Parse(doc.Markdown)
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"title":    doc.Title,
				"document": report.Render(tree),
			})
		},
	}
}
