// SPDX-License-Identifier: MIT

// Package codec serializes matrices.
//
// Two encodings are provided:
//   - a protobuf Message (github.com/gogo/protobuf) that keeps shape, extents
//     and elements, for storage and transport;
//   - a compact text form, rows separated by ';' or newlines and elements by
//     spaces or commas ("1 2; 3 4"), for command lines and fixtures.
package codec

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogo/protobuf/proto"
	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/mpp/matrix"
)

var log = logging.Logger("mpp/codec")

// ErrMalformed reports a message or text whose content cannot form a matrix.
var ErrMalformed = fmt.Errorf("%w: malformed matrix encoding", matrix.ErrInvalidArgument)

const (
	opEncode    = "Encode"
	opDecode    = "Decode"
	opMarshal   = "Marshal"
	opUnmarshal = "Unmarshal"
	opParse     = "Parse"
)

func codecErrorf(tag string, err error) error {
	return fmt.Errorf("codec.%s: %w", tag, err)
}

// Encode copies e into a Message. A *Matrix source records its extents;
// other expressions are recorded as fully dynamic.
//
// Errors:
//   - matrix.ErrNilMatrix.
func Encode[T matrix.Number](e matrix.Expr[T]) (*Message, error) {
	if err := matrix.ValidateNotNil(e); err != nil {
		return nil, codecErrorf(opEncode, err)
	}
	rows, cols := e.Rows(), e.Cols()
	msg := &Message{
		Rows:       uint64(rows),
		Cols:       uint64(cols),
		RowsExtent: int64(matrix.Dynamic),
		ColsExtent: int64(matrix.Dynamic),
	}
	if src, ok := e.(*matrix.Matrix[T]); ok {
		msg.RowsExtent, msg.ColsExtent = int64(src.RowsExtent()), int64(src.ColsExtent())
	}

	n := rows * cols
	if matrix.IsFloat[T]() {
		msg.Floats = make([]float64, 0, n)
	} else {
		msg.Ints = make([]int64, 0, n)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := e.Elem(i, j)
			if msg.Floats != nil {
				msg.Floats = append(msg.Floats, float64(v))
			} else {
				msg.Ints = append(msg.Ints, int64(v))
			}
		}
	}

	return msg, nil
}

// Decode rebuilds a matrix of T from msg, restoring its extents.
// Elements stored as floats and decoded into an integer T are rounded.
//
// Errors:
//   - matrix.ErrNilMatrix if msg is nil.
//   - ErrMalformed if the element count disagrees with the shape or both
//     element lists are set.
//   - matrix.ErrInvalidDimensions / matrix.ErrIncompatibleExtents for shapes
//     the matrix package rejects.
func Decode[T matrix.Number](msg *Message) (*matrix.Matrix[T], error) {
	if msg == nil {
		return nil, codecErrorf(opDecode, matrix.ErrNilMatrix)
	}
	if msg.Rows > math.MaxInt32 || msg.Cols > math.MaxInt32 {
		return nil, codecErrorf(opDecode, fmt.Errorf("%w: shape %dx%d", ErrMalformed, msg.Rows, msg.Cols))
	}
	rows, cols := int(msg.Rows), int(msg.Cols)
	n := rows * cols
	if len(msg.Floats) > 0 && len(msg.Ints) > 0 {
		return nil, codecErrorf(opDecode, fmt.Errorf("%w: both float and integer elements present", ErrMalformed))
	}
	if got := len(msg.Floats) + len(msg.Ints); got != n {
		return nil, codecErrorf(opDecode, fmt.Errorf("%w: %d elements for %dx%d", ErrMalformed, got, rows, cols))
	}
	re, ce, err := extents(msg)
	if err != nil {
		return nil, codecErrorf(opDecode, err)
	}

	data := make([]T, n)
	switch {
	case len(msg.Floats) > 0:
		integral := !matrix.IsFloat[T]()
		if integral {
			log.Debugf("decoding %d float elements into an integer matrix", n)
		}
		for k, v := range msg.Floats {
			if integral {
				v = math.Round(v)
			}
			data[k] = T(v)
		}
	default:
		for k, v := range msg.Ints {
			data[k] = T(v)
		}
	}

	m, err := matrix.Adopt(rows, cols, data, matrix.WithExtents(re, ce))
	if err != nil {
		return nil, codecErrorf(opDecode, err)
	}

	return m, nil
}

func extents(msg *Message) (matrix.Extent, matrix.Extent, error) {
	re, ce := matrix.Extent(msg.RowsExtent), matrix.Extent(msg.ColsExtent)
	if (re < 0 && re != matrix.Dynamic) || (ce < 0 && ce != matrix.Dynamic) {
		return 0, 0, fmt.Errorf("%w: extents %d, %d", ErrMalformed, msg.RowsExtent, msg.ColsExtent)
	}

	return re, ce, nil
}

// Marshal encodes e to protobuf bytes.
func Marshal[T matrix.Number](e matrix.Expr[T]) ([]byte, error) {
	msg, err := Encode(e)
	if err != nil {
		return nil, err
	}
	b, err := proto.Marshal(msg)
	if err != nil {
		return nil, codecErrorf(opMarshal, err)
	}

	return b, nil
}

// Unmarshal decodes protobuf bytes produced by Marshal into a matrix of T.
func Unmarshal[T matrix.Number](b []byte) (*matrix.Matrix[T], error) {
	var msg Message
	if err := proto.Unmarshal(b, &msg); err != nil {
		log.Warnf("invalid matrix message: %v", err)
		return nil, codecErrorf(opUnmarshal, errors.Join(ErrMalformed, err))
	}

	return Decode[T](&msg)
}
