package gtfs

import "strings"

// table is one parsed feed member: a header-name index plus data rows.
// Fields split on plain commas; the feed format does not quote embedded
// separators, so no CSV escaping is applied. Blank lines are skipped.
type table struct {
	cols map[string]int
	rows [][]string
}

func parseTable(text string) *table {
	t := &table{cols: map[string]int{}}
	header := true
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if header {
			for i, h := range fields {
				t.cols[strings.TrimSpace(h)] = i
			}
			header = false
			continue
		}
		t.rows = append(t.rows, fields)
	}
	return t
}

// column returns the index of a named header column.
func (t *table) column(name string) (int, bool) {
	i, ok := t.cols[name]
	return i, ok
}

// field returns the trimmed value at idx, or "" when the row is short.
func (t *table) field(row []string, idx int) string {
	if idx >= 0 && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
