package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// newTestFile saves f to a temp directory and reopens it, so tests read
// the same representation a scan of a real file would.
func newTestFile(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))
	require.NoError(t, f.Close())

	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err)
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestExtractCells(t *testing.T) {
	f := excelize.NewFile()
	sheetName := "Sheet1"
	require.NoError(t, f.SetCellValue(sheetName, "A1", "Header1"))
	require.NoError(t, f.SetCellValue(sheetName, "AB1", "Header2"))
	require.NoError(t, f.SetCellValue(sheetName, "A2", 100))
	require.NoError(t, f.SetCellValue(sheetName, "B2", 200.5))
	require.NoError(t, f.SetCellValue(sheetName, "A4", "Text"))

	rows, err := ExtractCells(newTestFile(t, f), sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, 1, rows[0].R)
	assert.Equal(t, "Header1", rows[0].C["A1"])
	assert.Equal(t, "Header2", rows[0].C["AB1"])
	assert.Len(t, rows[0].C, 2)

	assert.Equal(t, int64(100), rows[1].C["A2"])
	assert.Equal(t, 200.5, rows[1].C["B2"])

	assert.Equal(t, 4, rows[2].R)
	assert.Equal(t, "Text", rows[2].C["A4"])
}

func TestExtractCellsMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := ExtractCells(f, "Nope")
	assert.Error(t, err)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseValue(tt.input), "parseValue(%q)", tt.input)
	}
}
