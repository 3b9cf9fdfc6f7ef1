// Package a1notation converts numeric spreadsheet coordinates into A1 notation.
package a1notation

import "strings"

const alphabetSize = 26

// OneLetter returns the single bijective base-26 digit for num.
// 1 is 'A', 25 is 'Y', and every multiple of 26 is 'Z'; larger values wrap.
func OneLetter(num int) string {
	r := num % alphabetSize
	if r < 0 {
		r += alphabetSize
	}
	if r == 0 {
		return "Z"
	}
	return string(rune('A' + r - 1))
}

// Letters converts a 1-based column number to column letters, like in Excel:
// 1 is "A", 26 is "Z", 27 is "AA", 702 is "ZZ" and 703 is "AAA".
func Letters(num int) (string, error) {
	if num < 1 {
		return "", newCoordinateError("col", num, ErrInvalidColumn)
	}
	return letters(num), nil
}

// MustLetters is like Letters but panics if num is not a valid column number.
func MustLetters(num int) string {
	s, err := Letters(num)
	if err != nil {
		panic(err)
	}
	return s
}

// letters assumes num >= 1.
func letters(num int) string {
	if num < alphabetSize+1 {
		return OneLetter(num)
	}

	var digits []string
	for num > alphabetSize {
		digits = append(digits, OneLetter(num))
		q := num / alphabetSize
		if num%alphabetSize == 0 {
			// A trailing Z borrows one unit from the higher digits.
			q--
		}
		num = q
	}
	digits = append(digits, OneLetter(num))

	var b strings.Builder
	b.Grow(len(digits))
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteString(digits[i])
	}
	return b.String()
}
