package report

// Rendered is the transport form of a parsed node: a type discriminant
// plus the fields of that node kind, ready for JSON encoding.
type Rendered struct {
	Type     string     `json:"type"`
	Level    int        `json:"level,omitempty"`
	Text     string     `json:"text,omitempty"`
	Title    string     `json:"title,omitempty"`
	Headers  []string   `json:"headers,omitempty"`
	Rows     [][]string `json:"rows,omitempty"`
	Items    []string   `json:"items,omitempty"`
	Children []Rendered `json:"children,omitempty"`
	Content  []Rendered `json:"content,omitempty"`
}

// Render converts a Document into its ordered, tagged transport form.
// It is purely structural and total over any parsed tree.
func Render(doc Document) []Rendered {
	out := make([]Rendered, 0, len(doc.Nodes))
	for _, n := range doc.Nodes {
		out = append(out, renderNode(n))
	}
	return out
}

func renderNode(n Node) Rendered {
	switch n := n.(type) {
	case *Title:
		r := Rendered{Type: "title", Level: 1, Text: n.Text}
		for _, s := range n.Children {
			r.Children = append(r.Children, renderNode(s))
		}
		return r
	case *Section:
		r := Rendered{Type: "section", Level: 2, Title: n.Title}
		for _, c := range n.Content {
			r.Content = append(r.Content, renderNode(c))
		}
		return r
	case *Subsection:
		r := Rendered{Type: "subsection", Level: 3, Title: n.Title}
		for _, c := range n.Content {
			r.Content = append(r.Content, renderNode(c))
		}
		return r
	case *Table:
		return Rendered{Type: "table", Headers: n.Headers, Rows: n.Rows}
	case *List:
		return Rendered{Type: "list", Items: n.Items}
	case *Paragraph:
		return Rendered{Type: "paragraph", Text: n.Text}
	}
	return Rendered{}
}
