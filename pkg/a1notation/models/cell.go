package models

// CellRow represents a single row of non-empty cells.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps cell name (e.g. "B5") to cell value.
	C map[string]interface{} `json:"c"`
}
