// Package workbook scans Excel workbooks and reports their ranges in A1 notation.
package workbook

import "github.com/ukaji3/a1notation-go/pkg/a1notation/parser"

// Mode represents the scan mode.
type Mode string

const (
	// ModeLight reports used ranges only.
	ModeLight Mode = "light"
	// ModeStandard reports used ranges, table candidates and print areas.
	ModeStandard Mode = "standard"
	// ModeVerbose additionally reports every non-empty cell by name.
	ModeVerbose Mode = "verbose"
)

// ParseMode converts a flag value into a Mode.
func ParseMode(s string) (Mode, bool) {
	switch m := Mode(s); m {
	case ModeLight, ModeStandard, ModeVerbose:
		return m, true
	default:
		return "", false
	}
}

// Options configures scan behavior.
type Options struct {
	// Mode specifies the scan mode (light, standard, verbose).
	Mode Mode
	// IncludeCells specifies whether to include non-empty cells.
	// If nil, defaults to true for verbose mode, false otherwise.
	IncludeCells *bool
	// Sheets restricts the scan to the named sheets. Empty means all sheets.
	Sheets []string
	// Tables holds the table detection parameters.
	Tables parser.TableDetectionParams
}

// DefaultOptions returns default scan options.
func DefaultOptions() Options {
	return Options{
		Mode:   ModeStandard,
		Tables: parser.DefaultTableParams(),
	}
}

// ShouldIncludeCells returns whether to include non-empty cells.
func (o Options) ShouldIncludeCells() bool {
	if o.IncludeCells != nil {
		return *o.IncludeCells
	}
	return o.Mode == ModeVerbose
}

// ShouldDetectTables returns whether to look for table candidates.
func (o Options) ShouldDetectTables() bool {
	return o.Mode != ModeLight
}

// ShouldIncludePrintAreas returns whether to include print areas.
func (o Options) ShouldIncludePrintAreas() bool {
	return o.Mode != ModeLight
}
