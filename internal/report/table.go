package report

import "strings"

// consumeTable greedily takes every contiguous table-row line from the
// front of lines and returns the parsed table plus the number of lines
// consumed. Fewer than two collected lines (header + separator) yields
// no table, but the lines are still consumed. The separator line is
// discarded without inspecting its cells.
func consumeTable(lines []string) (*Table, int) {
	n := 0
	for n < len(lines) && isTableRow(lines[n]) {
		n++
	}
	if n < 2 {
		return nil, n
	}

	tbl := &Table{Headers: splitCells(lines[0])}
	for _, line := range lines[2:n] {
		cells := splitCells(line)
		if len(cells) == 0 {
			continue
		}
		tbl.Rows = append(tbl.Rows, cells)
	}
	return tbl, n
}

func isTableRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "|") && strings.Contains(trimmed, "|")
}

// splitCells decodes one pipe-delimited row: split on `|`, drop the
// first and last segments (artifacts of the outer pipes), trim the
// rest. A row without inner segments decodes to nil.
func splitCells(line string) []string {
	parts := strings.Split(line, "|")
	if len(parts) <= 2 {
		return nil
	}
	cells := make([]string, 0, len(parts)-2)
	for _, p := range parts[1 : len(parts)-1] {
		cells = append(cells, strings.TrimSpace(p))
	}
	return cells
}

// consumeList greedily takes every contiguous bullet line from the
// front of lines. Item text is the trimmed line with its two marker
// characters removed. At least one bullet line exists at the call
// site, so a list node is always produced.
func consumeList(lines []string) (*List, int) {
	list := &List{}
	n := 0
	for n < len(lines) {
		trimmed := strings.TrimSpace(lines[n])
		if !strings.HasPrefix(trimmed, "- ") && !strings.HasPrefix(trimmed, "* ") {
			break
		}
		list.Items = append(list.Items, trimmed[2:])
		n++
	}
	return list, n
}
