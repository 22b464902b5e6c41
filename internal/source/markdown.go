package source

import (
	"bytes"
	"fmt"
	"io"

	"github.com/adrg/frontmatter"
)

// MarkdownExtractor passes markdown through, stripping YAML front
// matter. A `title` key in the front matter overrides the filename
// title.
type MarkdownExtractor struct{}

type markdownMeta struct {
	Title string `yaml:"title"`
}

func (e *MarkdownExtractor) Extract(r io.Reader, filename string) (*Doc, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var meta markdownMeta
	body, err := frontmatter.Parse(bytes.NewReader(src), &meta)
	if err != nil {
		return nil, fmt.Errorf("parse front matter: %w", err)
	}

	title := meta.Title
	if title == "" {
		title = titleFromFilename(filename)
	}
	return &Doc{Title: title, Markdown: string(body)}, nil
}
