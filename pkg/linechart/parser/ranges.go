package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// cellRange is a rectangular block of cells on one sheet, 1-based and inclusive.
type cellRange struct {
	Sheet  string
	C1, R1 int
	C2, R2 int
}

// parseRangeRef parses a reference such as 'Sheet 1'!$A$2:$A$10 or Sheet1!$B$1.
func parseRangeRef(ref string) (cellRange, error) {
	var cr cellRange
	ref = strings.TrimSpace(ref)

	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return cr, fmt.Errorf("range %q has no sheet", ref)
	}
	cr.Sheet = strings.ReplaceAll(strings.Trim(ref[:idx], "'"), "''", "'")

	// Remove $ signs
	cells := strings.ReplaceAll(ref[idx+1:], "$", "")
	parts := strings.Split(cells, ":")
	if len(parts) > 2 {
		return cr, fmt.Errorf("range %q is not rectangular", ref)
	}

	var err error
	if cr.C1, cr.R1, err = excelize.CellNameToCoordinates(parts[0]); err != nil {
		return cr, err
	}
	cr.C2, cr.R2 = cr.C1, cr.R1
	if len(parts) == 2 {
		if cr.C2, cr.R2, err = excelize.CellNameToCoordinates(parts[1]); err != nil {
			return cr, err
		}
	}
	if cr.C2 < cr.C1 {
		cr.C1, cr.C2 = cr.C2, cr.C1
	}
	if cr.R2 < cr.R1 {
		cr.R1, cr.R2 = cr.R2, cr.R1
	}
	return cr, nil
}

// readRange returns the formatted cell values of a single-row or single-column range.
func readRange(f *excelize.File, ref string) ([]string, error) {
	cr, err := parseRangeRef(ref)
	if err != nil {
		return nil, err
	}
	if cr.C1 != cr.C2 && cr.R1 != cr.R2 {
		return nil, fmt.Errorf("range %q spans several rows and columns", ref)
	}

	var out []string
	for r := cr.R1; r <= cr.R2; r++ {
		for c := cr.C1; c <= cr.C2; c++ {
			cell, _ := excelize.CoordinatesToCellName(c, r)
			v, err := f.GetCellValue(cr.Sheet, cell)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
	return out, nil
}
