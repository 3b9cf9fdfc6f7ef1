package a1notation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestNotation(t *testing.T) {
	tests := []struct {
		name     string
		args     []int
		expected string
	}{
		{"row only", []int{5}, "5:5"},
		{"cell", []int{5, 2}, "B5"},
		{"column only", []int{0, 2}, "B:B"},
		{"wide column only", []int{0, 28}, "AB:AB"},
		{"column span", []int{1, 2, 10}, "B1:B10"},
		{"area", []int{1, 2, 10, 11}, "B1:K10"},
		{"area past Z", []int{3, 26, 40, 27}, "Z3:AA40"},
		{"reversed area", []int{10, 11, 1, 2}, "K10:B1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Notation(tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNotationArgumentCount(t *testing.T) {
	_, err := Notation()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgumentCount))
	assert.Equal(t, "function expects at least one argument", err.Error())

	_, err = Notation(1, 2, 3, 4, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgumentCount))

	var countErr *ArgumentCountError
	require.True(t, errors.As(err, &countErr))
	assert.Equal(t, 5, countErr.Count)
}

func TestNotationInvalidCoordinates(t *testing.T) {
	tests := []struct {
		args  []int
		field string
		err   error
	}{
		{[]int{0}, "row", ErrInvalidRow},
		{[]int{-3}, "row", ErrInvalidRow},
		{[]int{0, 0}, "col", ErrInvalidColumn},
		{[]int{5, 0}, "col", ErrInvalidColumn},
		{[]int{-1, 2}, "row", ErrInvalidRow},
		{[]int{0, 2, 10}, "row", ErrInvalidRow},
		{[]int{1, 2, 0}, "lastRow", ErrInvalidRow},
		{[]int{1, 2, 10, 0}, "lastCol", ErrInvalidColumn},
		{[]int{1, 0, 10, 11}, "col", ErrInvalidColumn},
	}

	for _, tt := range tests {
		_, err := Notation(tt.args...)
		require.Error(t, err, "Notation(%v)", tt.args)
		assert.True(t, errors.Is(err, tt.err), "Notation(%v) error = %v", tt.args, err)

		var coordErr *CoordinateError
		require.True(t, errors.As(err, &coordErr))
		assert.Equal(t, tt.field, coordErr.Field, "Notation(%v)", tt.args)
	}
}

func TestFromArgs(t *testing.T) {
	ref, err := FromArgs(0, 3)
	require.NoError(t, err)
	assert.Equal(t, ColumnRef(3), ref)
	assert.Equal(t, KindColumnRange, ref.Kind)

	ref, err = FromArgs(4, 3)
	require.NoError(t, err)
	assert.Equal(t, CellRef(4, 3), ref)

	ref, err = FromArgs(1, 2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, "area", ref.Kind.String())

	_, err = FromArgs()
	assert.ErrorIs(t, err, ErrInvalidArgumentCount)
}

func TestFormatNotationOptions(t *testing.T) {
	tests := []struct {
		opts     Options
		args     []int
		expected string
	}{
		{Options{Absolute: true}, []int{5}, "$5:$5"},
		{Options{Absolute: true}, []int{0, 2}, "$B:$B"},
		{Options{Absolute: true}, []int{1, 2, 10, 11}, "$B$1:$K$10"},
		{Options{Sheet: "Sheet1"}, []int{5, 2}, "Sheet1!B5"},
		{Options{Sheet: "My Sheet"}, []int{1, 2, 10}, "'My Sheet'!B1:B10"},
		{Options{Sheet: "Bob's", Absolute: true}, []int{1, 1}, "'Bob''s'!$A$1"},
		{Options{Sheet: "2024"}, []int{1, 1}, "'2024'!A1"},
		{Options{Sheet: "AB12"}, []int{5, 2}, "'AB12'!B5"},
		{Options{Sheet: "xfd1048576"}, []int{5, 2}, "'xfd1048576'!B5"},
		{Options{Sheet: "R1C1"}, []int{5, 2}, "'R1C1'!B5"},
		{Options{Sheet: "rc"}, []int{5, 2}, "'rc'!B5"},
		{Options{Sheet: "R"}, []int{5, 2}, "'R'!B5"},
		{Options{Sheet: "TRUE"}, []int{5, 2}, "'TRUE'!B5"},
		{Options{Sheet: "false"}, []int{5, 2}, "'false'!B5"},
		{Options{Sheet: "ABCD12"}, []int{5, 2}, "ABCD12!B5"},
		{Options{Sheet: "Report"}, []int{5, 2}, "Report!B5"},
		{Options{Sheet: "Trueish"}, []int{5, 2}, "Trueish!B5"},
	}

	for _, tt := range tests {
		got, err := FormatNotation(tt.opts, tt.args...)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got)
	}
}

func TestCellMatchesExcelize(t *testing.T) {
	for _, c := range []struct{ row, col int }{{1, 1}, {5, 2}, {100, 27}, {1048576, 16384}} {
		want, err := excelize.CoordinatesToCellName(c.col, c.row)
		require.NoError(t, err)
		got, err := Notation(c.row, c.col)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		wantAbs, err := excelize.CoordinatesToCellName(c.col, c.row, true)
		require.NoError(t, err)
		gotAbs, err := FormatNotation(Options{Absolute: true}, c.row, c.col)
		require.NoError(t, err)
		assert.Equal(t, wantAbs, gotAbs)
	}
}

func TestBandRefs(t *testing.T) {
	assert.Equal(t, "1:3", RowBandRef(1, 3).String())
	assert.Equal(t, "A:D", ColumnBandRef(1, 4).String())
	assert.Equal(t, "B:B", ColumnBandRef(2, 2).String())

	got, err := ColumnBandRef(1, 28).Format(Options{Sheet: "Sheet1", Absolute: true})
	require.NoError(t, err)
	assert.Equal(t, "Sheet1!$A:$AB", got)

	got, err = RowBandRef(2, 5).Format(Options{Absolute: true})
	require.NoError(t, err)
	assert.Equal(t, "$2:$5", got)

	assert.ErrorIs(t, RowBandRef(0, 3).Validate(), ErrInvalidRow)
	assert.ErrorIs(t, ColumnBandRef(1, 0).Validate(), ErrInvalidColumn)
	assert.Equal(t, "column_band", ColumnBandRef(1, 4).Kind.String())
}

func TestRefString(t *testing.T) {
	assert.Equal(t, "B1:K10", AreaRef(1, 2, 10, 11).String())
	assert.Equal(t, "#REF!", CellRef(0, 1).String())
	assert.Equal(t, "#REF!", Ref{}.String())
	assert.ErrorIs(t, Ref{}.Validate(), ErrInvalidRef)
}
