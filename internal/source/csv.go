package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVExtractor rewrites a CSV file as a markdown pipe table. The first
// record becomes the header row.
type CSVExtractor struct{}

func (e *CSVExtractor) Extract(r io.Reader, filename string) (*Doc, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	doc := &Doc{Title: titleFromFilename(filename)}
	if len(records) == 0 {
		return doc, nil
	}

	var sb strings.Builder
	writePipeRow(&sb, records[0])
	sep := make([]string, len(records[0]))
	for i := range sep {
		sep[i] = "---"
	}
	writePipeRow(&sb, sep)
	for _, row := range records[1:] {
		writePipeRow(&sb, row)
	}

	doc.Markdown = sb.String()
	return doc, nil
}

func writePipeRow(sb *strings.Builder, cells []string) {
	sb.WriteString("|")
	for _, c := range cells {
		// Pipes inside a cell would split it on the way back in.
		sb.WriteString(" " + strings.ReplaceAll(c, "|", "/") + " |")
	}
	sb.WriteString("\n")
}
