// Package report parses the toolkit's internally produced markdown
// reports (cost analyses, scrape summaries) into a structured document
// tree. The dialect is narrow: `#`/`##`/`###` headings, pipe tables,
// `-`/`*` bullet lists, paragraphs, and `---` rules. It is not a general
// markdown renderer.
package report

// Document is the ordered sequence of top-level nodes from one parse.
type Document struct {
	Nodes []Node
}

// Node is any block in a parsed document.
type Node interface {
	node()
}

// Title is a level-1 heading. Sections opened after it nest under it.
type Title struct {
	Text     string
	Children []*Section
}

// Section is a level-2 heading with its attached content.
type Section struct {
	Title   string
	Content []Node
}

// Subsection is a level-3 heading. Its Content stays empty during
// parsing: later lines attach to the enclosing section, not to it.
type Subsection struct {
	Title   string
	Content []Node
}

// Table holds decoded header cells and data rows. Row widths are not
// validated against the header width.
type Table struct {
	Headers []string
	Rows    [][]string
}

// List holds bullet item texts with their markers stripped.
type List struct {
	Items []string
}

// Paragraph is a single trimmed text line.
type Paragraph struct {
	Text string
}

func (*Title) node()      {}
func (*Section) node()    {}
func (*Subsection) node() {}
func (*Table) node()      {}
func (*List) node()       {}
func (*Paragraph) node()  {}
