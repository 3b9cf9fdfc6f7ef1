package models

// WorkbookRanges represents workbook-level container with per-sheet ranges.
type WorkbookRanges struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets maps sheet name to SheetRanges.
	Sheets map[string]SheetRanges `json:"sheets"`
}
