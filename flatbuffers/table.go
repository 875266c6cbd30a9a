package flatbuffers

// 一个 table 在 buffer 中分为两部分：
//
//	vtable:
//	+-------------------+-------------------+-------------------+-------------------+-----+
//	| vtable length (2B)| object size (2B)  | field1 offset (2B)| field2 offset (2B)| ... |
//	+-------------------+-------------------+-------------------+-------------------+-----+
//
//	object:
//	+-------------------+-------------------+-------------------+-----+
//	| soffset (4B)      | data for field1   | data for field2   | ... |
//	+-------------------+-------------------+-------------------+-----+
//
// vtable 位置 = object 位置 - soffset 。字段 i 的 vtable 槽位偏移为 4 + 2*i 。
// 槽位为 0 或超出 vtable 长度都表示字段不存在，读取方返回 schema 默认值。
//
// Table 上的所有读取都是 fail-soft 的：越界的偏移按 "字段不存在" 处理，不会 panic 。

// Table wraps a byte slice and provides read access to its data.
//
// The variable `Pos` indicates the root of the FlatBuffers object therein.
type Table struct {
	Bytes []byte
	Pos   UOffsetT // Always < 1<<31.
}

// Init points the table at the object stored at i.
func (t *Table) Init(buf []byte, i UOffsetT) {
	t.Bytes = buf
	t.Pos = i
}

// Table returns the view itself, so a bare Table satisfies FlatBuffer.
func (t *Table) Table() Table {
	return *t
}

// Offset provides access into the Table's vtable.
//
// Fields which are deprecated, or unknown to the writer, are ignored by
// checking against the vtable's length. An unreadable vtable reads as an
// empty one.
func (t *Table) Offset(vtableOffset VOffsetT) VOffsetT {
	soff, err := Read[SOffsetT](t.Bytes, t.Pos)
	if err != nil {
		return 0
	}
	vtable := UOffsetT(SOffsetT(t.Pos) - soff)
	size, err := Read[VOffsetT](t.Bytes, vtable)
	if err != nil || vtableOffset >= size {
		return 0
	}
	return readOr[VOffsetT](t.Bytes, vtable+UOffsetT(vtableOffset), 0)
}

// Indirect retrieves the relative offset stored at `offset`.
func (t *Table) Indirect(off UOffsetT) UOffsetT {
	return off + readOr[UOffsetT](t.Bytes, off, 0)
}

// String gets a string from data stored inside the flatbuffer.
// The result aliases the buffer.
func (t *Table) String(off UOffsetT) string {
	return byteSliceToString(t.ByteVector(off))
}

// ByteVector gets a byte slice from data stored inside the flatbuffer.
// `off` is the position of the offset to the vector; nil is returned when
// the vector does not fit in the buffer.
func (t *Table) ByteVector(off UOffsetT) []byte {
	rel, err := Read[UOffsetT](t.Bytes, off)
	if err != nil {
		return nil
	}
	off += rel
	length, err := Read[UOffsetT](t.Bytes, off)
	if err != nil {
		return nil
	}
	b, err := ReadBytes(t.Bytes, off+SizeUOffsetT, int(length))
	if err != nil {
		return nil
	}
	return b
}

// VectorLen retrieves the length of the vector whose offset is stored at
// "off" in this object.
func (t *Table) VectorLen(off UOffsetT) int {
	off += t.Pos
	off += readOr[UOffsetT](t.Bytes, off, 0)
	return int(readOr[UOffsetT](t.Bytes, off, 0))
}

// Vector retrieves the start of data of the vector whose offset is stored
// at "off" in this object.
func (t *Table) Vector(off UOffsetT) UOffsetT {
	off += t.Pos
	x := off + readOr[UOffsetT](t.Bytes, off, 0)
	// data starts after metadata containing the vector length
	return x + UOffsetT(SizeUOffsetT)
}

// Union initializes any Table-derived type to point to the union at the
// given offset. It reports false, leaving t2 untouched, when the offset
// cannot be read.
func (t *Table) Union(t2 *Table, off UOffsetT) bool {
	off += t.Pos
	rel, err := Read[UOffsetT](t.Bytes, off)
	if err != nil || rel == 0 {
		return false
	}
	t2.Pos = off + rel
	t2.Bytes = t.Bytes
	return true
}

// GetTable points obj at the table referenced by field `slot`.
func (t *Table) GetTable(slot VOffsetT, obj FlatBuffer) bool {
	o := t.Offset(slot)
	if o == 0 {
		return false
	}
	obj.Init(t.Bytes, t.Indirect(t.Pos+UOffsetT(o)))
	return true
}

// GetStruct points obj at the struct stored inline in field `slot`.
func (t *Table) GetStruct(slot VOffsetT, obj FixedLayout) bool {
	o := t.Offset(slot)
	if o == 0 {
		return false
	}
	obj.Init(t.Bytes, t.Pos+UOffsetT(o))
	return true
}

// vectorElem returns the position of element j of the vector in field
// `slot`, whose elements are elemSize bytes wide.
func (t *Table) vectorElem(slot VOffsetT, j, elemSize int) (UOffsetT, bool) {
	o := t.Offset(slot)
	if o == 0 || j < 0 || j >= t.VectorLen(UOffsetT(o)) {
		return 0, false
	}
	return t.Vector(UOffsetT(o)) + UOffsetT(j*elemSize), true
}

// VectorTable points obj at table j of the vector of tables in field `slot`.
func (t *Table) VectorTable(slot VOffsetT, j int, obj FlatBuffer) bool {
	x, ok := t.vectorElem(slot, j, SizeUOffsetT)
	if !ok {
		return false
	}
	obj.Init(t.Bytes, t.Indirect(x))
	return true
}

// VectorStruct points obj at struct j of the vector of structs in field
// `slot`; structs are elemSize bytes wide.
func (t *Table) VectorStruct(slot VOffsetT, j, elemSize int, obj FixedLayout) bool {
	x, ok := t.vectorElem(slot, j, elemSize)
	if !ok {
		return false
	}
	obj.Init(t.Bytes, x)
	return true
}

// VectorString returns string j of the vector of strings in field `slot`.
func (t *Table) VectorString(slot VOffsetT, j int) string {
	x, ok := t.vectorElem(slot, j, SizeUOffsetT)
	if !ok {
		return ""
	}
	return t.String(x)
}

// VectorBytes returns the payload of the byte vector in field `slot`.
func (t *Table) VectorBytes(slot VOffsetT) []byte {
	o := t.Offset(slot)
	if o == 0 {
		return nil
	}
	return t.ByteVector(t.Pos + UOffsetT(o))
}

// NestedRoot roots obj at the buffer carried as a byte vector in field
// `slot`. The nested buffer shares memory with the outer one.
func (t *Table) NestedRoot(slot VOffsetT, obj FlatBuffer) bool {
	buf := t.VectorBytes(slot)
	if len(buf) < SizeUOffsetT {
		return false
	}
	GetRootAs(buf, 0, obj)
	return true
}

// GetSlot retrieves the T stored in field `slot`, or `d` when the field is
// absent or cannot be read.
func GetSlot[T Scalar](t *Table, slot VOffsetT, d T) T {
	off := t.Offset(slot)
	if off == 0 {
		return d
	}
	return readOr(t.Bytes, t.Pos+UOffsetT(off), d)
}

// MutateSlot overwrites the T stored in field `slot`. A field that was
// elided at build time has no storage, so the call is a no-op that
// reports false and later reads still return the default.
func MutateSlot[T Scalar](t *Table, slot VOffsetT, n T) bool {
	off := t.Offset(slot)
	if off == 0 {
		return false
	}
	return Put(t.Bytes, t.Pos+UOffsetT(off), n) == nil
}

// GetVectorElem retrieves element j of the scalar vector in field `slot`,
// or `d` when the field is absent or j is out of range.
func GetVectorElem[T Scalar](t *Table, slot VOffsetT, j int, d T) T {
	x, ok := t.vectorElem(slot, j, SizeOf[T]())
	if !ok {
		return d
	}
	return readOr(t.Bytes, x, d)
}

// MutateVectorElem overwrites element j of the scalar vector in field
// `slot` in place. Vectors never change length.
func MutateVectorElem[T Scalar](t *Table, slot VOffsetT, j int, n T) bool {
	x, ok := t.vectorElem(slot, j, SizeOf[T]())
	if !ok {
		return false
	}
	return Put(t.Bytes, x, n) == nil
}
