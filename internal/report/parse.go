package report

import "strings"

// lineKind classifies one source line.
type lineKind int

const (
	lineBlank lineKind = iota // blank, `---` rule, or unmatched `#` line
	lineTitle
	lineSection
	lineSubsection
	lineTableRow
	lineBullet
	lineBoldText // contains `**`; produces the same node as lineText
	lineText
)

// classifyLine decides the block kind of a single line. First match
// wins; heading checks look at the raw line, the rest at its trimmed
// form.
func classifyLine(line string) lineKind {
	if strings.HasPrefix(line, "# ") && !strings.HasPrefix(line, "## ") {
		return lineTitle
	}
	if strings.HasPrefix(line, "## ") {
		return lineSection
	}
	if strings.HasPrefix(line, "### ") {
		return lineSubsection
	}
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "|") && strings.Contains(trimmed, "|") {
		return lineTableRow
	}
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		return lineBullet
	}
	if strings.Contains(line, "**") {
		return lineBoldText
	}
	if trimmed != "" && !strings.HasPrefix(trimmed, "#") && !strings.HasPrefix(trimmed, "---") {
		return lineText
	}
	return lineBlank
}

// Parse converts report markdown into a Document. It is total and
// best-effort: malformed constructs degrade to fewer nodes, and empty
// input yields an empty document.
func Parse(text string) Document {
	lines := strings.Split(text, "\n")

	var b builder
	i := 0
	for i < len(lines) {
		line := lines[i]
		switch classifyLine(line) {
		case lineTitle:
			b.openTitle(strings.TrimSpace(line[2:]))
			i++
		case lineSection:
			b.openSection(strings.TrimSpace(line[3:]))
			i++
		case lineSubsection:
			b.addSubsection(strings.TrimSpace(line[4:]))
			i++
		case lineTableRow:
			tbl, consumed := consumeTable(lines[i:])
			if tbl != nil {
				b.addBlock(tbl)
			}
			i += consumed
		case lineBullet:
			list, consumed := consumeList(lines[i:])
			b.addBlock(list)
			i += consumed
		case lineBoldText, lineText:
			b.addParagraph(strings.TrimSpace(line))
			i++
		default:
			i++
		}
	}

	return Document{Nodes: b.nodes}
}

// builder owns the two attachment cursors. curTitle receives new
// sections; curSection receives everything else. Only heading lines
// move a cursor, and neither is ever cleared once set.
type builder struct {
	nodes      []Node
	curTitle   *Title
	curSection *Section
}

func (b *builder) openTitle(text string) {
	t := &Title{Text: text}
	b.nodes = append(b.nodes, t)
	b.curTitle = t
	// curSection keeps its previous target: content after a new title
	// still attaches under the last open section.
}

func (b *builder) openSection(title string) {
	s := &Section{Title: title}
	if b.curTitle != nil {
		b.curTitle.Children = append(b.curTitle.Children, s)
	} else {
		b.nodes = append(b.nodes, s)
	}
	b.curSection = s
}

func (b *builder) addSubsection(title string) {
	sub := &Subsection{Title: title}
	if b.curSection != nil {
		b.curSection.Content = append(b.curSection.Content, sub)
	} else {
		b.nodes = append(b.nodes, sub)
	}
	// The new subsection does not become the attachment target; later
	// content keeps attaching to the enclosing section.
}

// addBlock attaches a table or list to the open section, or to the top
// level when no section is open.
func (b *builder) addBlock(n Node) {
	if b.curSection != nil {
		b.curSection.Content = append(b.curSection.Content, n)
	} else {
		b.nodes = append(b.nodes, n)
	}
}

// addParagraph attaches a text line to the open section. With no open
// section the line is dropped; paragraphs have no top-level fallback.
func (b *builder) addParagraph(text string) {
	if b.curSection == nil {
		return
	}
	b.curSection.Content = append(b.curSection.Content, &Paragraph{Text: text})
}
