// SPDX-License-Identifier: MIT

package codec

import "github.com/gogo/protobuf/proto"

// Message is the protobuf wire form of a matrix:
//
//	message Matrix {
//	  uint64 rows = 1;
//	  uint64 cols = 2;
//	  sint64 rows_extent = 3;          // -1 for dynamic
//	  sint64 cols_extent = 4;          // -1 for dynamic
//	  repeated double floats = 5;      // row-major, floating element types
//	  repeated sint64 ints = 6;        // row-major, integer element types
//	}
//
// Exactly one of Floats and Ints carries the elements of a non-empty matrix.
type Message struct {
	Rows       uint64    `protobuf:"varint,1,opt,name=rows,proto3" json:"rows,omitempty"`
	Cols       uint64    `protobuf:"varint,2,opt,name=cols,proto3" json:"cols,omitempty"`
	RowsExtent int64     `protobuf:"zigzag64,3,opt,name=rows_extent,json=rowsExtent,proto3" json:"rows_extent,omitempty"`
	ColsExtent int64     `protobuf:"zigzag64,4,opt,name=cols_extent,json=colsExtent,proto3" json:"cols_extent,omitempty"`
	Floats     []float64 `protobuf:"fixed64,5,rep,packed,name=floats,proto3" json:"floats,omitempty"`
	Ints       []int64   `protobuf:"zigzag64,6,rep,packed,name=ints,proto3" json:"ints,omitempty"`
}

// Reset implements proto.Message.
func (m *Message) Reset() { *m = Message{} }

// String implements proto.Message.
func (m *Message) String() string { return proto.CompactTextString(m) }

// ProtoMessage implements proto.Message.
func (*Message) ProtoMessage() {}

var _ proto.Message = (*Message)(nil)
