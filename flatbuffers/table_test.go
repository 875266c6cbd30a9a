package flatbuffers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTable builds { 0: int32 = 7, 1: string "hi", 2: [ubyte] {1, 2, 3},
// 3: table { 0: int16 = -3 } } and returns the finished buffer.
func sampleTable(t *testing.T) []byte {
	t.Helper()
	b := NewBuilder(0)

	s, err := b.CreateString("hi")
	require.NoError(t, err)
	v, err := b.CreateByteVector([]byte{1, 2, 3})
	require.NoError(t, err)

	require.NoError(t, b.StartObject(1))
	b.PrependInt16Slot(0, -3, 0)
	child, err := b.EndObject()
	require.NoError(t, err)

	require.NoError(t, b.StartObject(4))
	b.PrependInt32Slot(0, 7, 0)
	require.NoError(t, b.PrependUOffsetTSlot(1, s, 0))
	require.NoError(t, b.PrependUOffsetTSlot(2, v, 0))
	require.NoError(t, b.PrependUOffsetTSlot(3, child, 0))
	root, err := b.EndObject()
	require.NoError(t, err)
	require.NoError(t, b.Finish(root))

	buf, err := b.FinishedBytes()
	require.NoError(t, err)
	return buf
}

func TestTableReads(t *testing.T) {
	buf := sampleTable(t)

	var tab Table
	GetRootAs(buf, 0, &tab)

	assert.Equal(t, int32(7), tab.GetInt32Slot(4, 0))
	assert.Equal(t, "hi", tab.String(tab.Pos+UOffsetT(tab.Offset(6))))
	assert.Equal(t, []byte("hi"), tab.VectorBytes(6))

	o := UOffsetT(tab.Offset(8))
	require.NotZero(t, o)
	assert.Equal(t, 3, tab.VectorLen(o))
	assert.Equal(t, byte(2), tab.GetByte(tab.Vector(o)+1))
	assert.Equal(t, byte(3), GetVectorElem[byte](&tab, 8, 2, 0))
	assert.Equal(t, byte(9), GetVectorElem[byte](&tab, 8, 3, 9))
	assert.Equal(t, byte(9), GetVectorElem[byte](&tab, 8, -1, 9))

	var child Table
	require.True(t, tab.GetTable(10, &child))
	assert.Equal(t, int16(-3), child.GetInt16Slot(4, 0))

	// Slots past the end of the vtable read as absent.
	assert.Zero(t, tab.Offset(12))
	assert.Equal(t, int64(42), tab.GetInt64Slot(12, 42))
	assert.False(t, tab.GetTable(12, &child))
	assert.Nil(t, tab.VectorBytes(12))
	assert.Equal(t, "", tab.VectorString(12, 0))
}

func TestTableMutate(t *testing.T) {
	buf := sampleTable(t)
	size := len(buf)

	var tab Table
	GetRootAs(buf, 0, &tab)

	require.True(t, tab.MutateInt32Slot(4, 8))
	assert.Equal(t, int32(8), tab.GetInt32Slot(4, 0))

	require.True(t, MutateVectorElem[byte](&tab, 8, 0, 100))
	assert.Equal(t, []byte{100, 2, 3}, tab.VectorBytes(8))
	assert.False(t, MutateVectorElem[byte](&tab, 8, 3, 100))

	// Absent fields have no storage.
	assert.False(t, tab.MutateInt64Slot(12, 1))
	assert.Equal(t, int64(0), tab.GetInt64Slot(12, 0))

	assert.Equal(t, size, len(buf))
}

func TestTableFailSoft(t *testing.T) {
	t.Run("empty buffer", func(t *testing.T) {
		var tab Table
		GetRootAs(nil, 0, &tab)
		assert.Equal(t, int32(5), tab.GetInt32Slot(4, 5))
		assert.Equal(t, "", tab.String(0))
		assert.Nil(t, tab.ByteVector(0))
		assert.Equal(t, 0, tab.VectorLen(0))
		assert.False(t, tab.MutateInt32Slot(4, 1))
	})

	t.Run("truncated buffer", func(t *testing.T) {
		buf := sampleTable(t)
		short := buf[:len(buf)/2]

		var tab Table
		GetRootAs(short, 0, &tab)
		assert.NotPanics(t, func() {
			tab.GetInt32Slot(4, 0)
			tab.VectorBytes(6)
			tab.VectorLen(8)
			GetVectorElem[byte](&tab, 8, 1, 0)
			var child Table
			tab.GetTable(10, &child)
			child.GetInt16Slot(4, 0)
		})
	})

	t.Run("vtable outside buffer", func(t *testing.T) {
		buf := make([]byte, 8)
		WriteUOffsetT(buf, 4)
		WriteSOffsetT(buf[4:], -1000)

		var tab Table
		GetRootAs(buf, 0, &tab)
		assert.Equal(t, UOffsetT(4), tab.Pos)
		assert.Zero(t, tab.Offset(4))
		assert.Equal(t, uint16(77), tab.GetUint16Slot(4, 77))
	})

	t.Run("vector longer than buffer", func(t *testing.T) {
		buf := make([]byte, 12)
		WriteUOffsetT(buf, 4)      // offset to the vector
		WriteUOffsetT(buf[4:], 99) // claimed length

		tab := Table{Bytes: buf}
		assert.Nil(t, tab.ByteVector(0))
		assert.Equal(t, "", tab.String(0))
	})

	t.Run("union", func(t *testing.T) {
		tab := Table{Bytes: make([]byte, 4)}
		var u Table
		assert.False(t, tab.Union(&u, 0), "zero offset")
		assert.False(t, tab.Union(&u, 2), "out of range")
		assert.Nil(t, u.Bytes)
	})
}

func TestStructView(t *testing.T) {
	b := NewBuilder(0)
	require.NoError(t, b.StartObject(1))
	// struct { a int16; b int8; } padded to 4 bytes
	b.Prep(2, 4)
	b.Pad(1)
	b.PrependInt8(-2)
	b.PrependInt16(300)
	require.NoError(t, b.PrependStructSlot(0, b.Offset(), 0))
	root, err := b.EndObject()
	require.NoError(t, err)
	require.NoError(t, b.Finish(root))
	buf, err := b.FinishedBytes()
	require.NoError(t, err)

	var tab Table
	GetRootAs(buf, 0, &tab)

	var s Struct
	require.True(t, tab.GetStruct(4, &s))
	assert.Equal(t, int16(300), s.GetInt16(s.Pos))
	assert.Equal(t, int8(-2), s.GetInt8(s.Pos+2))

	var inner Struct
	s.Nested(2, &inner)
	assert.Equal(t, int8(-2), inner.GetInt8(inner.Pos))

	require.True(t, s.MutateInt16(s.Pos, 301))
	view := s.Struct()
	assert.Equal(t, int16(301), view.GetInt16(view.Pos))

	assert.False(t, tab.GetStruct(6, &s))
}

func TestNestedRoot(t *testing.T) {
	inner := NewBuilder(0)
	require.NoError(t, inner.StartObject(1))
	inner.PrependUint64Slot(0, 1234, 0)
	root, err := inner.EndObject()
	require.NoError(t, err)
	require.NoError(t, inner.Finish(root))
	innerBuf, err := inner.FinishedBytes()
	require.NoError(t, err)

	b := NewBuilder(0)
	v, err := b.CreateByteVector(innerBuf)
	require.NoError(t, err)
	empty, err := b.CreateByteVector([]byte{1, 2})
	require.NoError(t, err)
	require.NoError(t, b.StartObject(2))
	require.NoError(t, b.PrependUOffsetTSlot(0, v, 0))
	require.NoError(t, b.PrependUOffsetTSlot(1, empty, 0))
	root, err = b.EndObject()
	require.NoError(t, err)
	require.NoError(t, b.Finish(root))
	buf, err := b.FinishedBytes()
	require.NoError(t, err)

	var tab, nested Table
	GetRootAs(buf, 0, &tab)
	require.True(t, tab.NestedRoot(4, &nested))
	assert.Equal(t, uint64(1234), nested.GetUint64Slot(4, 0))
	assert.False(t, tab.NestedRoot(6, &nested), "too short to hold a root offset")
	assert.False(t, tab.NestedRoot(8, &nested), "absent")
}

func TestVectorOfStrings(t *testing.T) {
	b := NewBuilder(0)
	v, err := b.CreateVectorOfStrings([]string{"a", "bb", ""})
	require.NoError(t, err)
	require.NoError(t, b.StartObject(1))
	require.NoError(t, b.PrependUOffsetTSlot(0, v, 0))
	root, err := b.EndObject()
	require.NoError(t, err)
	require.NoError(t, b.Finish(root))
	buf, err := b.FinishedBytes()
	require.NoError(t, err)

	var tab Table
	GetRootAs(buf, 0, &tab)
	assert.Equal(t, 3, tab.VectorLen(UOffsetT(tab.Offset(4))))
	assert.Equal(t, "a", tab.VectorString(4, 0))
	assert.Equal(t, "bb", tab.VectorString(4, 1))
	assert.Equal(t, "", tab.VectorString(4, 2))
	assert.Equal(t, "", tab.VectorString(4, 3))
}
