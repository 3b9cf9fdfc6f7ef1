package a1notation

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// cellLikeName matches names Excel would read as an A1 cell, such as AB12.
	cellLikeName = regexp.MustCompile(`(?i)^[a-z]{1,3}[0-9]+$`)
	// r1c1LikeName matches R1C1 style references, including bare R and C.
	r1c1LikeName = regexp.MustCompile(`(?i)^(r[0-9]*)?(c[0-9]*)?$`)
)

// Options configures how a Ref is rendered.
type Options struct {
	// Sheet prefixes the reference with a sheet name, as in 'Sheet 1'!B5.
	// Empty means no prefix.
	Sheet string
	// Absolute marks every column and row with '$', as in $B$5.
	Absolute bool
}

// DefaultOptions returns default formatting options: relative references
// without a sheet prefix.
func DefaultOptions() Options {
	return Options{}
}

// SheetPrefix returns the sheet qualifier including the trailing '!',
// or an empty string when no sheet is set.
func (o Options) SheetPrefix() string {
	if o.Sheet == "" {
		return ""
	}
	return QuoteSheetName(o.Sheet) + "!"
}

func (o Options) marker() string {
	if o.Absolute {
		return "$"
	}
	return ""
}

// QuoteSheetName wraps name in single quotes when a formula would need them.
// Embedded quotes are doubled.
func QuoteSheetName(name string) string {
	if !needsQuoting(name) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func needsQuoting(name string) bool {
	if cellLikeName.MatchString(name) || r1c1LikeName.MatchString(name) {
		return true
	}
	if strings.EqualFold(name, "TRUE") || strings.EqualFold(name, "FALSE") {
		return true
	}
	for i, r := range name {
		if i == 0 && unicode.IsDigit(r) {
			return true
		}
		if r != '_' && r != '.' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
