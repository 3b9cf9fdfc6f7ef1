package workbook

import (
	"sort"

	"github.com/samber/lo"
	"github.com/ukaji3/a1notation-go/pkg/a1notation/models"
	"github.com/xuri/excelize/v2"
)

// PrintAreaViews returns one view per print area, holding the scanned cells
// that fall inside it. Rows are only present when the scan included cells.
// Views are ordered by sheet name, then by print area order.
func PrintAreaViews(wb *models.WorkbookRanges) []models.PrintAreaView {
	sheetNames := lo.Keys(wb.Sheets)
	sort.Strings(sheetNames)

	var views []models.PrintAreaView
	for _, sheetName := range sheetNames {
		sheet := wb.Sheets[sheetName]
		for _, area := range sheet.PrintAreas {
			views = append(views, models.PrintAreaView{
				BookName:  wb.BookName,
				SheetName: sheetName,
				Area:      area,
				Rows:      rowsWithin(sheet.Rows, area),
			})
		}
	}
	return views
}

func rowsWithin(rows []models.CellRow, area models.Range) []models.CellRow {
	var result []models.CellRow
	for _, row := range rows {
		if row.R < area.R1 || row.R > area.R2 {
			continue
		}
		cells := make(map[string]interface{})
		for name, value := range row.C {
			col, r, err := excelize.CellNameToCoordinates(name)
			if err != nil || !area.Contains(r, col) {
				continue
			}
			cells[name] = value
		}
		if len(cells) > 0 {
			result = append(result, models.CellRow{R: row.R, C: cells})
		}
	}
	return result
}
