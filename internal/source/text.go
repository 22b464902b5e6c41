package source

import "io"

// TextExtractor handles plain text files. The report parser reads the
// lines directly as paragraphs.
type TextExtractor struct{}

func (e *TextExtractor) Extract(r io.Reader, filename string) (*Doc, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &Doc{Title: titleFromFilename(filename), Markdown: string(src)}, nil
}
