// Package output serializes scan results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/a1notation-go/pkg/a1notation/models"
)

// ToJSON serializes any result value to JSON.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// WorkbookToJSON serializes a workbook scan.
func WorkbookToJSON(wb *models.WorkbookRanges, pretty bool) ([]byte, error) {
	return ToJSON(wb, pretty)
}

// SheetToJSON serializes the ranges of a single sheet.
func SheetToJSON(sheet *models.SheetRanges, pretty bool) ([]byte, error) {
	return ToJSON(sheet, pretty)
}

// PrintAreaViewToJSON serializes a print area view.
func PrintAreaViewToJSON(view *models.PrintAreaView, pretty bool) ([]byte, error) {
	return ToJSON(view, pretty)
}
