package flatbuffers

// GetBool retrieves a bool at the given offset.
func (t *Table) GetBool(off UOffsetT) bool { return readOr(t.Bytes, off, false) }

// GetByte retrieves a byte at the given offset.
func (t *Table) GetByte(off UOffsetT) byte { return readOr[byte](t.Bytes, off, 0) }

// GetUint8 retrieves a uint8 at the given offset.
func (t *Table) GetUint8(off UOffsetT) uint8 { return readOr[uint8](t.Bytes, off, 0) }

// GetUint16 retrieves a uint16 at the given offset.
func (t *Table) GetUint16(off UOffsetT) uint16 { return readOr[uint16](t.Bytes, off, 0) }

// GetUint32 retrieves a uint32 at the given offset.
func (t *Table) GetUint32(off UOffsetT) uint32 { return readOr[uint32](t.Bytes, off, 0) }

// GetUint64 retrieves a uint64 at the given offset.
func (t *Table) GetUint64(off UOffsetT) uint64 { return readOr[uint64](t.Bytes, off, 0) }

// GetInt8 retrieves a int8 at the given offset.
func (t *Table) GetInt8(off UOffsetT) int8 { return readOr[int8](t.Bytes, off, 0) }

// GetInt16 retrieves a int16 at the given offset.
func (t *Table) GetInt16(off UOffsetT) int16 { return readOr[int16](t.Bytes, off, 0) }

// GetInt32 retrieves a int32 at the given offset.
func (t *Table) GetInt32(off UOffsetT) int32 { return readOr[int32](t.Bytes, off, 0) }

// GetInt64 retrieves a int64 at the given offset.
func (t *Table) GetInt64(off UOffsetT) int64 { return readOr[int64](t.Bytes, off, 0) }

// GetFloat32 retrieves a float32 at the given offset.
func (t *Table) GetFloat32(off UOffsetT) float32 { return readOr[float32](t.Bytes, off, 0) }

// GetFloat64 retrieves a float64 at the given offset.
func (t *Table) GetFloat64(off UOffsetT) float64 { return readOr[float64](t.Bytes, off, 0) }

// GetUOffsetT retrieves a UOffsetT at the given offset.
func (t *Table) GetUOffsetT(off UOffsetT) UOffsetT { return readOr[UOffsetT](t.Bytes, off, 0) }

// GetVOffsetT retrieves a VOffsetT at the given offset.
func (t *Table) GetVOffsetT(off UOffsetT) VOffsetT { return readOr[VOffsetT](t.Bytes, off, 0) }

// GetSOffsetT retrieves a SOffsetT at the given offset.
func (t *Table) GetSOffsetT(off UOffsetT) SOffsetT { return readOr[SOffsetT](t.Bytes, off, 0) }

// GetBoolSlot retrieves the bool that the given vtable location
// points to. If the vtable value is zero, the default value `d`
// will be returned.
func (t *Table) GetBoolSlot(slot VOffsetT, d bool) bool { return GetSlot(t, slot, d) }

// GetByteSlot retrieves the byte that the given vtable location points to.
func (t *Table) GetByteSlot(slot VOffsetT, d byte) byte { return GetSlot(t, slot, d) }

// GetInt8Slot retrieves the int8 that the given vtable location points to.
func (t *Table) GetInt8Slot(slot VOffsetT, d int8) int8 { return GetSlot(t, slot, d) }

// GetUint8Slot retrieves the uint8 that the given vtable location points to.
func (t *Table) GetUint8Slot(slot VOffsetT, d uint8) uint8 { return GetSlot(t, slot, d) }

// GetInt16Slot retrieves the int16 that the given vtable location points to.
func (t *Table) GetInt16Slot(slot VOffsetT, d int16) int16 { return GetSlot(t, slot, d) }

// GetUint16Slot retrieves the uint16 that the given vtable location points to.
func (t *Table) GetUint16Slot(slot VOffsetT, d uint16) uint16 { return GetSlot(t, slot, d) }

// GetInt32Slot retrieves the int32 that the given vtable location points to.
func (t *Table) GetInt32Slot(slot VOffsetT, d int32) int32 { return GetSlot(t, slot, d) }

// GetUint32Slot retrieves the uint32 that the given vtable location points to.
func (t *Table) GetUint32Slot(slot VOffsetT, d uint32) uint32 { return GetSlot(t, slot, d) }

// GetInt64Slot retrieves the int64 that the given vtable location points to.
func (t *Table) GetInt64Slot(slot VOffsetT, d int64) int64 { return GetSlot(t, slot, d) }

// GetUint64Slot retrieves the uint64 that the given vtable location points to.
func (t *Table) GetUint64Slot(slot VOffsetT, d uint64) uint64 { return GetSlot(t, slot, d) }

// GetFloat32Slot retrieves the float32 that the given vtable location points to.
func (t *Table) GetFloat32Slot(slot VOffsetT, d float32) float32 { return GetSlot(t, slot, d) }

// GetFloat64Slot retrieves the float64 that the given vtable location points to.
func (t *Table) GetFloat64Slot(slot VOffsetT, d float64) float64 { return GetSlot(t, slot, d) }

// GetVOffsetTSlot retrieves the VOffsetT that the given vtable location
// points to. If the vtable value is zero, the default value `d`
// will be returned.
func (t *Table) GetVOffsetTSlot(slot VOffsetT, d VOffsetT) VOffsetT {
	off := t.Offset(slot)
	if off == 0 {
		return d
	}
	return off
}

// MutateBool updates a bool at the given offset.
func (t *Table) MutateBool(off UOffsetT, n bool) bool { return Put(t.Bytes, off, n) == nil }

// MutateByte updates a Byte at the given offset.
func (t *Table) MutateByte(off UOffsetT, n byte) bool { return Put(t.Bytes, off, n) == nil }

// MutateUint8 updates a Uint8 at the given offset.
func (t *Table) MutateUint8(off UOffsetT, n uint8) bool { return Put(t.Bytes, off, n) == nil }

// MutateUint16 updates a Uint16 at the given offset.
func (t *Table) MutateUint16(off UOffsetT, n uint16) bool { return Put(t.Bytes, off, n) == nil }

// MutateUint32 updates a Uint32 at the given offset.
func (t *Table) MutateUint32(off UOffsetT, n uint32) bool { return Put(t.Bytes, off, n) == nil }

// MutateUint64 updates a Uint64 at the given offset.
func (t *Table) MutateUint64(off UOffsetT, n uint64) bool { return Put(t.Bytes, off, n) == nil }

// MutateInt8 updates a Int8 at the given offset.
func (t *Table) MutateInt8(off UOffsetT, n int8) bool { return Put(t.Bytes, off, n) == nil }

// MutateInt16 updates a Int16 at the given offset.
func (t *Table) MutateInt16(off UOffsetT, n int16) bool { return Put(t.Bytes, off, n) == nil }

// MutateInt32 updates a Int32 at the given offset.
func (t *Table) MutateInt32(off UOffsetT, n int32) bool { return Put(t.Bytes, off, n) == nil }

// MutateInt64 updates a Int64 at the given offset.
func (t *Table) MutateInt64(off UOffsetT, n int64) bool { return Put(t.Bytes, off, n) == nil }

// MutateFloat32 updates a Float32 at the given offset.
func (t *Table) MutateFloat32(off UOffsetT, n float32) bool { return Put(t.Bytes, off, n) == nil }

// MutateFloat64 updates a Float64 at the given offset.
func (t *Table) MutateFloat64(off UOffsetT, n float64) bool { return Put(t.Bytes, off, n) == nil }

// MutateUOffsetT updates a UOffsetT at the given offset.
func (t *Table) MutateUOffsetT(off UOffsetT, n UOffsetT) bool { return Put(t.Bytes, off, n) == nil }

// MutateVOffsetT updates a VOffsetT at the given offset.
func (t *Table) MutateVOffsetT(off UOffsetT, n VOffsetT) bool { return Put(t.Bytes, off, n) == nil }

// MutateSOffsetT updates a SOffsetT at the given offset.
func (t *Table) MutateSOffsetT(off UOffsetT, n SOffsetT) bool { return Put(t.Bytes, off, n) == nil }

// MutateBoolSlot updates the bool at given vtable location.
// It returns false, changing nothing, when the field is absent.
func (t *Table) MutateBoolSlot(slot VOffsetT, n bool) bool { return MutateSlot(t, slot, n) }

// MutateByteSlot updates the byte at given vtable location.
func (t *Table) MutateByteSlot(slot VOffsetT, n byte) bool { return MutateSlot(t, slot, n) }

// MutateInt8Slot updates the int8 at given vtable location.
func (t *Table) MutateInt8Slot(slot VOffsetT, n int8) bool { return MutateSlot(t, slot, n) }

// MutateUint8Slot updates the uint8 at given vtable location.
func (t *Table) MutateUint8Slot(slot VOffsetT, n uint8) bool { return MutateSlot(t, slot, n) }

// MutateInt16Slot updates the int16 at given vtable location.
func (t *Table) MutateInt16Slot(slot VOffsetT, n int16) bool { return MutateSlot(t, slot, n) }

// MutateUint16Slot updates the uint16 at given vtable location.
func (t *Table) MutateUint16Slot(slot VOffsetT, n uint16) bool { return MutateSlot(t, slot, n) }

// MutateInt32Slot updates the int32 at given vtable location.
func (t *Table) MutateInt32Slot(slot VOffsetT, n int32) bool { return MutateSlot(t, slot, n) }

// MutateUint32Slot updates the uint32 at given vtable location.
func (t *Table) MutateUint32Slot(slot VOffsetT, n uint32) bool { return MutateSlot(t, slot, n) }

// MutateInt64Slot updates the int64 at given vtable location.
func (t *Table) MutateInt64Slot(slot VOffsetT, n int64) bool { return MutateSlot(t, slot, n) }

// MutateUint64Slot updates the uint64 at given vtable location.
func (t *Table) MutateUint64Slot(slot VOffsetT, n uint64) bool { return MutateSlot(t, slot, n) }

// MutateFloat32Slot updates the float32 at given vtable location.
func (t *Table) MutateFloat32Slot(slot VOffsetT, n float32) bool { return MutateSlot(t, slot, n) }

// MutateFloat64Slot updates the float64 at given vtable location.
func (t *Table) MutateFloat64Slot(slot VOffsetT, n float64) bool { return MutateSlot(t, slot, n) }
