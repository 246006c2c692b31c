package parser

// dataBlock is the smallest 0-based, inclusive rectangle holding every non-empty cell.
type dataBlock struct {
	top, bottom int
	left, right int
}

// findDataBlock scans rows for non-empty cells; ok is false for a blank sheet.
func findDataBlock(rows [][]string) (b dataBlock, ok bool) {
	for r, row := range rows {
		for c, cell := range row {
			if cell == "" {
				continue
			}
			if !ok {
				b = dataBlock{top: r, bottom: r, left: c, right: c}
				ok = true
				continue
			}
			b.top, b.bottom = min(b.top, r), max(b.bottom, r)
			b.left, b.right = min(b.left, c), max(b.right, c)
		}
	}
	return b, ok
}

// cellAt returns rows[r][c], or "" when the row is short.
func cellAt(rows [][]string, r, c int) string {
	if r < 0 || r >= len(rows) || c < 0 || c >= len(rows[r]) {
		return ""
	}
	return rows[r][c]
}
