package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/a1notation-go/pkg/a1notation/models"
)

func TestWorkbookToJSON(t *testing.T) {
	wb := &models.WorkbookRanges{
		BookName: "book.xlsx",
		Sheets: map[string]models.SheetRanges{
			"Sheet1": {
				UsedRange:       &models.Range{R1: 1, C1: 2, R2: 10, C2: 11, A1: "B1:K10"},
				TableCandidates: []string{"B1:K10"},
			},
		},
	}

	data, err := WorkbookToJSON(wb, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"book_name": "book.xlsx",
		"sheets": {
			"Sheet1": {
				"used_range": {"r1": 1, "c1": 2, "r2": 10, "c2": 11, "a1": "B1:K10"},
				"table_candidates": ["B1:K10"]
			}
		}
	}`, string(data))
	assert.NotContains(t, string(data), "\n")

	pretty, err := WorkbookToJSON(wb, true)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(pretty), "\n  \"sheets\""))
}

func TestSheetToJSONOmitsEmpty(t *testing.T) {
	data, err := SheetToJSON(&models.SheetRanges{}, false)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}
