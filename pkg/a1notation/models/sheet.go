package models

// SheetRanges holds the ranges found on a single sheet.
type SheetRanges struct {
	// UsedRange is the bounding box of all non-empty cells, if any.
	UsedRange *Range `json:"used_range,omitempty"`
	// TableCandidates contains cell ranges likely representing tables.
	TableCandidates []string `json:"table_candidates,omitempty"`
	// PrintAreas contains user-defined print areas.
	PrintAreas []Range `json:"print_areas,omitempty"`
	// Rows contains non-empty rows when cell extraction is enabled.
	Rows []CellRow `json:"rows,omitempty"`
}
