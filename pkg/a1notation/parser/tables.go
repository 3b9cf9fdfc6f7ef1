package parser

import (
	"github.com/ukaji3/a1notation-go/pkg/a1notation"
	"github.com/ukaji3/a1notation-go/pkg/a1notation/models"
	"github.com/xuri/excelize/v2"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	// DensityMin is the minimum share of non-empty cells inside a block.
	DensityMin float64
	// CoverageMin is the minimum share of the sheet's non-empty cells a block must hold.
	CoverageMin float64
	// MinNonemptyCells is the minimum number of non-empty cells in a block.
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		CoverageMin:      0.2,
		MinNonemptyCells: 3,
	}
}

// bounds is a 0-based bounding box over the rows returned by GetRows.
type bounds struct {
	minRow, maxRow, minCol, maxCol int
}

func (b bounds) toRange() (models.Range, error) {
	a1, err := a1notation.Notation(b.minRow+1, b.minCol+1, b.maxRow+1, b.maxCol+1)
	if err != nil {
		return models.Range{}, err
	}
	return models.Range{
		R1: b.minRow + 1,
		C1: b.minCol + 1,
		R2: b.maxRow + 1,
		C2: b.maxCol + 1,
		A1: a1,
	}, nil
}

// UsedRange returns the bounding box of all non-empty cells in a sheet.
// The boolean is false when the sheet has no data.
func UsedRange(f *excelize.File, sheetName string) (models.Range, bool, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.Range{}, false, err
	}

	b, ok := findDataBounds(rows, 0, len(rows)-1)
	if !ok {
		return models.Range{}, false, nil
	}
	r, err := b.toRange()
	if err != nil {
		return models.Range{}, false, err
	}
	return r, true, nil
}

// DetectTables detects table-like regions in a sheet.
// Blocks of rows separated by fully empty rows are considered separately.
// Returns a list of cell ranges (e.g., "A1:D10") that likely represent tables.
func DetectTables(f *excelize.File, sheetName string, params TableDetectionParams) ([]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	total := countNonEmptyCells(rows, bounds{0, len(rows) - 1, 0, maxWidth(rows) - 1})
	if total == 0 {
		return nil, nil
	}

	var result []string
	for _, block := range rowBlocks(rows) {
		b, ok := findDataBounds(rows, block[0], block[1])
		if !ok {
			continue
		}

		nonEmpty := countNonEmptyCells(rows, b)
		if nonEmpty < params.MinNonemptyCells {
			continue
		}

		area := (b.maxRow - b.minRow + 1) * (b.maxCol - b.minCol + 1)
		if float64(nonEmpty)/float64(area) < params.DensityMin {
			continue
		}
		if float64(nonEmpty)/float64(total) < params.CoverageMin {
			continue
		}

		r, err := b.toRange()
		if err != nil {
			return nil, err
		}
		result = append(result, r.A1)
	}

	return result, nil
}

// rowBlocks splits rows into inclusive [first, last] index pairs of
// consecutive rows that contain at least one non-empty cell.
func rowBlocks(rows [][]string) [][2]int {
	var blocks [][2]int
	start := -1
	for rowIdx, row := range rows {
		if isEmptyRow(row) {
			if start >= 0 {
				blocks = append(blocks, [2]int{start, rowIdx - 1})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = rowIdx
		}
	}
	if start >= 0 {
		blocks = append(blocks, [2]int{start, len(rows) - 1})
	}
	return blocks
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

func maxWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// findDataBounds finds the bounding box of non-empty cells between rows
// firstRow and lastRow inclusive.
func findDataBounds(rows [][]string, firstRow, lastRow int) (bounds, bool) {
	b := bounds{-1, -1, -1, -1}

	for rowIdx := firstRow; rowIdx <= lastRow && rowIdx < len(rows); rowIdx++ {
		for colIdx, cell := range rows[rowIdx] {
			if cell == "" {
				continue
			}
			if b.minRow < 0 || rowIdx < b.minRow {
				b.minRow = rowIdx
			}
			if b.maxRow < 0 || rowIdx > b.maxRow {
				b.maxRow = rowIdx
			}
			if b.minCol < 0 || colIdx < b.minCol {
				b.minCol = colIdx
			}
			if b.maxCol < 0 || colIdx > b.maxCol {
				b.maxCol = colIdx
			}
		}
	}

	return b, b.minRow >= 0
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, b bounds) int {
	count := 0
	for rowIdx := b.minRow; rowIdx <= b.maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := b.minCol; colIdx <= b.maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
