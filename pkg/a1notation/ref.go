package a1notation

import "strconv"

// Kind identifies the shape of a reference.
type Kind int

const (
	// KindRowRange is a whole-row range such as "5:5".
	KindRowRange Kind = iota + 1
	// KindColumnRange is a whole-column range such as "B:B".
	KindColumnRange
	// KindCell is a single cell such as "B5".
	KindCell
	// KindColumnSpan is a vertical range within one column such as "B1:B10".
	KindColumnSpan
	// KindArea is a rectangular range such as "B1:K10".
	KindArea
	// KindRowBand is a range of whole rows such as "1:3".
	KindRowBand
	// KindColumnBand is a range of whole columns such as "A:D".
	KindColumnBand
)

func (k Kind) String() string {
	switch k {
	case KindRowRange:
		return "row_range"
	case KindColumnRange:
		return "column_range"
	case KindCell:
		return "cell"
	case KindColumnSpan:
		return "column_span"
	case KindArea:
		return "area"
	case KindRowBand:
		return "row_band"
	case KindColumnBand:
		return "column_band"
	default:
		return "unknown"
	}
}

// Ref is a reference in one of the shapes Notation can produce.
// Fields that a Kind does not use are ignored.
type Ref struct {
	Kind    Kind
	Row     int
	Col     int
	LastRow int
	LastCol int
}

// RowRef returns the whole-row range for row.
func RowRef(row int) Ref {
	return Ref{Kind: KindRowRange, Row: row}
}

// ColumnRef returns the whole-column range for col.
func ColumnRef(col int) Ref {
	return Ref{Kind: KindColumnRange, Col: col}
}

// CellRef returns the single cell at row, col.
func CellRef(row, col int) Ref {
	return Ref{Kind: KindCell, Row: row, Col: col}
}

// ColumnSpanRef returns rows row through lastRow of column col.
func ColumnSpanRef(row, col, lastRow int) Ref {
	return Ref{Kind: KindColumnSpan, Row: row, Col: col, LastRow: lastRow}
}

// AreaRef returns the rectangle from (row, col) to (lastRow, lastCol).
func AreaRef(row, col, lastRow, lastCol int) Ref {
	return Ref{Kind: KindArea, Row: row, Col: col, LastRow: lastRow, LastCol: lastCol}
}

// RowBandRef returns the whole rows row through lastRow.
func RowBandRef(row, lastRow int) Ref {
	return Ref{Kind: KindRowBand, Row: row, LastRow: lastRow}
}

// ColumnBandRef returns the whole columns col through lastCol.
func ColumnBandRef(col, lastCol int) Ref {
	return Ref{Kind: KindColumnBand, Col: col, LastCol: lastCol}
}

// Validate checks that every coordinate used by the reference is positive.
func (r Ref) Validate() error {
	switch r.Kind {
	case KindRowRange:
		return checkRow("row", r.Row)
	case KindColumnRange:
		return checkCol("col", r.Col)
	case KindCell:
		return firstErr(checkCol("col", r.Col), checkRow("row", r.Row))
	case KindColumnSpan:
		return firstErr(checkCol("col", r.Col), checkRow("row", r.Row), checkRow("lastRow", r.LastRow))
	case KindArea:
		return firstErr(checkCol("col", r.Col), checkRow("row", r.Row),
			checkCol("lastCol", r.LastCol), checkRow("lastRow", r.LastRow))
	case KindRowBand:
		return firstErr(checkRow("row", r.Row), checkRow("lastRow", r.LastRow))
	case KindColumnBand:
		return firstErr(checkCol("col", r.Col), checkCol("lastCol", r.LastCol))
	default:
		return ErrInvalidRef
	}
}

// Format renders the reference in A1 notation.
func (r Ref) Format(opts Options) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}

	m := opts.marker()
	var body string
	switch r.Kind {
	case KindRowRange:
		row := m + strconv.Itoa(r.Row)
		body = join(row, row)
	case KindColumnRange:
		col := m + letters(r.Col)
		body = join(col, col)
	case KindCell:
		body = cellName(r.Col, r.Row, m)
	case KindColumnSpan:
		body = join(cellName(r.Col, r.Row, m), cellName(r.Col, r.LastRow, m))
	case KindArea:
		body = join(cellName(r.Col, r.Row, m), cellName(r.LastCol, r.LastRow, m))
	case KindRowBand:
		body = join(m+strconv.Itoa(r.Row), m+strconv.Itoa(r.LastRow))
	case KindColumnBand:
		body = join(m+letters(r.Col), m+letters(r.LastCol))
	}
	return opts.SheetPrefix() + body, nil
}

// String renders the reference with default options.
// An invalid reference renders as "#REF!".
func (r Ref) String() string {
	s, err := r.Format(DefaultOptions())
	if err != nil {
		return "#REF!"
	}
	return s
}

func cellName(col, row int, marker string) string {
	return marker + letters(col) + marker + strconv.Itoa(row)
}

func join(a, b string) string {
	return a + ":" + b
}

func checkRow(field string, v int) error {
	if v < 1 {
		return newCoordinateError(field, v, ErrInvalidRow)
	}
	return nil
}

func checkCol(field string, v int) error {
	if v < 1 {
		return newCoordinateError(field, v, ErrInvalidColumn)
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
