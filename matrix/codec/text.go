// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/mpp/matrix"
)

// Text format separators.
const (
	rowSeps  = ";\n"
	elemSeps = " \t,\r"
	// FormatRowSep separates rows in Format's output.
	FormatRowSep = "; "
	// FormatElemSep separates elements in Format's output.
	FormatElemSep = " "
)

// Parse reads a matrix written as rows separated by ';' or newlines, with
// elements separated by spaces, tabs or commas:
//
//	"1 2; 3 4"   "1,2\n3,4"
//
// Blank rows are ignored, so an empty or blank string gives a 0×0 matrix.
// Integer element types accept only integer literals.
//
// Errors:
//   - ErrMalformed for a token that is not a number of type T.
//   - matrix.ErrUnequalRows for ragged input.
//   - matrix.ErrIncompatibleExtents if the shape contradicts opts.
func Parse[T matrix.Number](s string, opts ...matrix.Option) (*matrix.Matrix[T], error) {
	var rows [][]T
	for r, line := range strings.FieldsFunc(s, isAny(rowSeps)) {
		fields := strings.FieldsFunc(line, isAny(elemSeps))
		if len(fields) == 0 {
			continue
		}
		row := make([]T, len(fields))
		for c, f := range fields {
			v, err := parseElem[T](f)
			if err != nil {
				return nil, codecErrorf(opParse, fmt.Errorf("%w: row %d column %d: %v", ErrMalformed, r, c, err))
			}
			row[c] = v
		}
		rows = append(rows, row)
	}

	m, err := matrix.FromRows(rows, opts...)
	if err != nil {
		return nil, codecErrorf(opParse, err)
	}

	return m, nil
}

// MustParse is Parse that panics on error. Intended for fixtures.
func MustParse[T matrix.Number](s string, opts ...matrix.Option) *matrix.Matrix[T] {
	m, err := Parse[T](s, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

func isAny(seps string) func(rune) bool {
	return func(r rune) bool { return strings.ContainsRune(seps, r) }
}

func parseElem[T matrix.Number](tok string) (T, error) {
	if matrix.IsFloat[T]() {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0, err
		}

		return T(v), nil
	}

	if strings.HasPrefix(tok, "-") {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return 0, err
		}
		if (T(v) < 0) != (v < 0) || int64(T(v)) != v {
			return 0, fmt.Errorf("%s out of range", tok)
		}

		return T(v), nil
	}
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, err
	}
	if uint64(T(v)) != v || T(v) < 0 {
		return 0, fmt.Errorf("%s out of range", tok)
	}

	return T(v), nil
}

// Format writes e in the form Parse reads: "1 2; 3 4". Floats use the
// shortest representation that round-trips. A nil e, typed or not, formats
// as "".
func Format[T matrix.Number](e matrix.Expr[T]) string {
	if matrix.ValidateNotNil(e) != nil {
		return ""
	}
	var sb strings.Builder
	for i := 0; i < e.Rows(); i++ {
		if i > 0 {
			sb.WriteString(FormatRowSep)
		}
		for j := 0; j < e.Cols(); j++ {
			if j > 0 {
				sb.WriteString(FormatElemSep)
			}
			sb.WriteString(formatElem(e.Elem(i, j)))
		}
	}

	return sb.String()
}

func formatElem[T matrix.Number](v T) string {
	if !matrix.IsFloat[T]() {
		if v < 0 {
			return strconv.FormatInt(int64(v), 10)
		}

		return strconv.FormatUint(uint64(v), 10)
	}
	bits := 64
	if matrix.Epsilon[T]() == matrix.Float32Epsilon {
		bits = 32
	}

	return strconv.FormatFloat(float64(v), 'g', -1, bits)
}
