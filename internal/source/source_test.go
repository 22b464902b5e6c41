package source

import (
	"strings"
	"testing"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		wantErr  bool
	}{
		{"report.md", false},
		{"report.markdown", false},
		{"notes.txt", false},
		{"data.csv", false},
		{"page.html", false},
		{"doc.pdf", false},
		{"doc.docx", false},
		{"image.png", true},
		{"noext", true},
	}
	for _, tt := range tests {
		_, err := ForFile(tt.filename)
		if (err != nil) != tt.wantErr {
			t.Errorf("ForFile(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
		}
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("Report.MD") {
		t.Error("expected extension match to be case-insensitive")
	}
	if IsSupportedExtension("archive.zip") {
		t.Error("expected .zip to be unsupported")
	}
}

func TestMarkdownExtractor_Passthrough(t *testing.T) {
	input := "# Costs\n\n## Summary\ntext"
	doc, err := (&MarkdownExtractor{}).Extract(strings.NewReader(input), "costs.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "costs" {
		t.Errorf("expected title %q, got %q", "costs", doc.Title)
	}
	if doc.Markdown != input {
		t.Errorf("expected body unchanged, got %q", doc.Markdown)
	}
}

func TestMarkdownExtractor_FrontMatter(t *testing.T) {
	input := "---\ntitle: Q1 Cost Review\n---\n# Costs\nbody"
	doc, err := (&MarkdownExtractor{}).Extract(strings.NewReader(input), "costs.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "Q1 Cost Review" {
		t.Errorf("expected front matter title, got %q", doc.Title)
	}
	if strings.Contains(doc.Markdown, "title:") {
		t.Errorf("expected front matter stripped, got %q", doc.Markdown)
	}
	if !strings.Contains(doc.Markdown, "# Costs") {
		t.Errorf("expected body retained, got %q", doc.Markdown)
	}
}

func TestTextExtractor(t *testing.T) {
	doc, err := (&TextExtractor{}).Extract(strings.NewReader("plain line"), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "notes" || doc.Markdown != "plain line" {
		t.Errorf("unexpected doc: %+v", doc)
	}
}

func TestCSVExtractor_PipeTable(t *testing.T) {
	input := "Platform,Profiles\nLinkedIn,100\nInstagram,50\n"
	doc, err := (&CSVExtractor{}).Extract(strings.NewReader(input), "estimate.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(doc.Markdown), "\n")
	want := []string{
		"| Platform | Profiles |",
		"| --- | --- |",
		"| LinkedIn | 100 |",
		"| Instagram | 50 |",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), doc.Markdown)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d: expected %q, got %q", i, w, lines[i])
		}
	}
}

func TestCSVExtractor_EscapesPipes(t *testing.T) {
	doc, err := (&CSVExtractor{}).Extract(strings.NewReader("a|b,c\n"), "odd.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(doc.Markdown, "a|b") {
		t.Errorf("expected cell pipes replaced, got %q", doc.Markdown)
	}
}

func TestCSVExtractor_Empty(t *testing.T) {
	doc, err := (&CSVExtractor{}).Extract(strings.NewReader(""), "empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Markdown != "" {
		t.Errorf("expected empty markdown, got %q", doc.Markdown)
	}
}

func TestHTMLExtractor(t *testing.T) {
	input := "<html><head><title>Cost Review</title></head><body><h2>Summary</h2><p>Two platforms.</p></body></html>"
	doc, err := (&HTMLExtractor{}).Extract(strings.NewReader(input), "review.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "Cost Review" {
		t.Errorf("expected title from <title>, got %q", doc.Title)
	}
	if !strings.Contains(doc.Markdown, "## Summary") {
		t.Errorf("expected h2 converted to markdown heading, got %q", doc.Markdown)
	}
	if !strings.Contains(doc.Markdown, "Two platforms.") {
		t.Errorf("expected body text retained, got %q", doc.Markdown)
	}
}
