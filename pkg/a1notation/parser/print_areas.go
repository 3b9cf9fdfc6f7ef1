package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/a1notation-go/pkg/a1notation"
	"github.com/ukaji3/a1notation-go/pkg/a1notation/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas. Each area's A1 field
// is rendered as an absolute, sheet-qualified reference.
func ExtractPrintAreas(f *excelize.File) (map[string][]models.Range, error) {
	result := make(map[string][]models.Range)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName == "" || len(areas) == 0 {
			continue
		}
		opts := a1notation.Options{Sheet: sheetName, Absolute: true}
		for _, area := range areas {
			a1, err := area.ref.Format(opts)
			if err != nil {
				return nil, err
			}
			area.bounds.A1 = a1
			result[sheetName] = append(result[sheetName], area.bounds)
		}
	}

	return result, nil
}

// printArea pairs the bounds of an area with the shape it was written in.
type printArea struct {
	bounds models.Range
	ref    a1notation.Ref
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10, comma separated.
func parsePrintAreaReference(ref string) (string, []printArea) {
	var areas []printArea
	var sheetName string

	for _, part := range splitReferences(ref) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		sheet := unquoteSheetName(part[:idx])
		if sheetName == "" {
			sheetName = sheet
		}

		if area, ok := parseRange(part[idx+1:]); ok {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}

// splitReferences splits a reference list on commas outside quoted sheet
// names. A doubled quote inside a quoted name is an escaped quote.
func splitReferences(ref string) []string {
	var parts []string
	inQuote := false
	start := 0
	for i := 0; i < len(ref); i++ {
		switch ref[i] {
		case '\'':
			if inQuote && i+1 < len(ref) && ref[i+1] == '\'' {
				i++
				continue
			}
			inQuote = !inQuote
		case ',':
			if !inQuote {
				parts = append(parts, ref[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, ref[start:])
}

func unquoteSheetName(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'") {
		s = s[1 : len(s)-1]
	}
	return strings.ReplaceAll(s, "''", "'")
}

// parseRange parses a range string like $A$1:$D$10, $A:$D or $1:$3.
// Whole columns and rows are bounded by the sheet limits.
func parseRange(rangeStr string) (printArea, bool) {
	parts := strings.Split(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if len(parts) != 2 {
		return printArea{}, false
	}

	if startCol, startRow, err := excelize.CellNameToCoordinates(parts[0]); err == nil {
		endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
		if err != nil {
			return printArea{}, false
		}
		return printArea{
			bounds: models.Range{R1: startRow, C1: startCol, R2: endRow, C2: endCol},
			ref:    a1notation.AreaRef(startRow, startCol, endRow, endCol),
		}, true
	}

	if startCol, err := excelize.ColumnNameToNumber(parts[0]); err == nil {
		endCol, err := excelize.ColumnNameToNumber(parts[1])
		if err != nil {
			return printArea{}, false
		}
		return printArea{
			bounds: models.Range{R1: 1, C1: startCol, R2: excelize.TotalRows, C2: endCol},
			ref:    a1notation.ColumnBandRef(startCol, endCol),
		}, true
	}

	startRow, err := strconv.Atoi(parts[0])
	if err != nil {
		return printArea{}, false
	}
	endRow, err := strconv.Atoi(parts[1])
	if err != nil {
		return printArea{}, false
	}
	area := printArea{
		bounds: models.Range{R1: startRow, C1: 1, R2: endRow, C2: excelize.MaxColumns},
		ref:    a1notation.RowBandRef(startRow, endRow),
	}
	return area, area.ref.Validate() == nil
}
