// Package parser reads cell ranges out of Excel workbooks.
package parser

import (
	"strconv"

	"github.com/ukaji3/a1notation-go/pkg/a1notation"
	"github.com/ukaji3/a1notation-go/pkg/a1notation/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells extracts cell data from a sheet.
// It returns a slice of CellRow containing non-empty rows, with each value
// keyed by its cell name.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1
		cellMap := make(map[string]interface{})

		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			name, err := a1notation.Notation(rowNum, colIdx+1)
			if err != nil {
				return nil, err
			}
			cellMap[name] = parseValue(cellValue)
		}

		if len(cellMap) > 0 {
			result = append(result, models.CellRow{
				R: rowNum,
				C: cellMap,
			})
		}
	}

	return result, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
