package a1notation

// Notation converts coordinates to A1 notation. The number of arguments
// selects the shape of the result, read positionally as
// (row, col, lastRow, lastCol):
//
//	Notation(5)            // "5:5"
//	Notation(5, 2)         // "B5"
//	Notation(0, 2)         // "B:B", row 0 means the row was omitted
//	Notation(1, 2, 10)     // "B1:B10"
//	Notation(1, 2, 10, 11) // "B1:K10"
//
// Calling it with no arguments or more than four returns an error wrapping
// ErrInvalidArgumentCount. Non-positive coordinates are rejected with a
// *CoordinateError.
func Notation(args ...int) (string, error) {
	return FormatNotation(DefaultOptions(), args...)
}

// FormatNotation is like Notation but renders with opts.
func FormatNotation(opts Options, args ...int) (string, error) {
	ref, err := FromArgs(args...)
	if err != nil {
		return "", err
	}
	return ref.Format(opts)
}

// FromArgs maps positional arguments to the Ref that Notation renders.
// Only the two-argument form treats a zero row as absent.
func FromArgs(args ...int) (Ref, error) {
	switch len(args) {
	case 1:
		return RowRef(args[0]), nil
	case 2:
		if args[0] == 0 {
			return ColumnRef(args[1]), nil
		}
		return CellRef(args[0], args[1]), nil
	case 3:
		return ColumnSpanRef(args[0], args[1], args[2]), nil
	case 4:
		return AreaRef(args[0], args[1], args[2], args[3]), nil
	default:
		return Ref{}, &ArgumentCountError{Count: len(args)}
	}
}
