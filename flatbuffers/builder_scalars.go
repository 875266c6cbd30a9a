package flatbuffers

// Scalars are written in three flavours:
//	PlaceX   writes x at head-size without checking for space or alignment;
//	PrependX aligns, grows the buffer if needed, then places x;
//	PrependXSlot prepends x as field `o` of the open object, unless x equals
//	             the field's default `d` and ForceDefaults is off.

func placeScalar[T Scalar](b *Builder, x T) {
	b.head -= UOffsetT(SizeOf[T]())
	if err := Put(b.Bytes, b.head, x); err != nil {
		panic(err) // Place without Prep
	}
}

func prependScalar[T Scalar](b *Builder, x T) {
	b.Prep(SizeOf[T](), 0)
	placeScalar(b, x)
}

func prependScalarSlot[T Scalar](b *Builder, o int, x, d T) error {
	if x == d && !b.forceDefaults {
		return nil
	}
	if err := b.checkSlot("scalar slot", o); err != nil {
		return err
	}
	prependScalar(b, x)
	return b.Slot(o)
}

// PrependBoolSlot prepends a bool onto the object at vtable slot `o`.
// If value `x` equals default `d`, then the slot will be set to zero and no
// other data will be written. Writing to a slot the open object does not
// have fails with ErrInvalidConstructionOrder.
func (b *Builder) PrependBoolSlot(o int, x, d bool) error { return prependScalarSlot(b, o, x, d) }

// PrependByteSlot prepends a byte onto the object at vtable slot `o`.
func (b *Builder) PrependByteSlot(o int, x, d byte) error { return prependScalarSlot(b, o, x, d) }

// PrependUint8Slot prepends a uint8 onto the object at vtable slot `o`.
func (b *Builder) PrependUint8Slot(o int, x, d uint8) error { return prependScalarSlot(b, o, x, d) }

// PrependUint16Slot prepends a uint16 onto the object at vtable slot `o`.
func (b *Builder) PrependUint16Slot(o int, x, d uint16) error { return prependScalarSlot(b, o, x, d) }

// PrependUint32Slot prepends a uint32 onto the object at vtable slot `o`.
func (b *Builder) PrependUint32Slot(o int, x, d uint32) error { return prependScalarSlot(b, o, x, d) }

// PrependUint64Slot prepends a uint64 onto the object at vtable slot `o`.
func (b *Builder) PrependUint64Slot(o int, x, d uint64) error { return prependScalarSlot(b, o, x, d) }

// PrependInt8Slot prepends a int8 onto the object at vtable slot `o`.
func (b *Builder) PrependInt8Slot(o int, x, d int8) error { return prependScalarSlot(b, o, x, d) }

// PrependInt16Slot prepends a int16 onto the object at vtable slot `o`.
func (b *Builder) PrependInt16Slot(o int, x, d int16) error { return prependScalarSlot(b, o, x, d) }

// PrependInt32Slot prepends a int32 onto the object at vtable slot `o`.
func (b *Builder) PrependInt32Slot(o int, x, d int32) error { return prependScalarSlot(b, o, x, d) }

// PrependInt64Slot prepends a int64 onto the object at vtable slot `o`.
func (b *Builder) PrependInt64Slot(o int, x, d int64) error { return prependScalarSlot(b, o, x, d) }

// PrependFloat32Slot prepends a float32 onto the object at vtable slot `o`.
func (b *Builder) PrependFloat32Slot(o int, x, d float32) error { return prependScalarSlot(b, o, x, d) }

// PrependFloat64Slot prepends a float64 onto the object at vtable slot `o`.
func (b *Builder) PrependFloat64Slot(o int, x, d float64) error { return prependScalarSlot(b, o, x, d) }

// PrependBool prepends a bool to the Builder buffer.
// Aligns and checks for space.
func (b *Builder) PrependBool(x bool) { prependScalar(b, x) }

// PrependByte prepends a byte to the Builder buffer.
func (b *Builder) PrependByte(x byte) { prependScalar(b, x) }

// PrependUint8 prepends a uint8 to the Builder buffer.
func (b *Builder) PrependUint8(x uint8) { prependScalar(b, x) }

// PrependUint16 prepends a uint16 to the Builder buffer.
func (b *Builder) PrependUint16(x uint16) { prependScalar(b, x) }

// PrependUint32 prepends a uint32 to the Builder buffer.
func (b *Builder) PrependUint32(x uint32) { prependScalar(b, x) }

// PrependUint64 prepends a uint64 to the Builder buffer.
func (b *Builder) PrependUint64(x uint64) { prependScalar(b, x) }

// PrependInt8 prepends a int8 to the Builder buffer.
func (b *Builder) PrependInt8(x int8) { prependScalar(b, x) }

// PrependInt16 prepends a int16 to the Builder buffer.
func (b *Builder) PrependInt16(x int16) { prependScalar(b, x) }

// PrependInt32 prepends a int32 to the Builder buffer.
func (b *Builder) PrependInt32(x int32) { prependScalar(b, x) }

// PrependInt64 prepends a int64 to the Builder buffer.
func (b *Builder) PrependInt64(x int64) { prependScalar(b, x) }

// PrependFloat32 prepends a float32 to the Builder buffer.
func (b *Builder) PrependFloat32(x float32) { prependScalar(b, x) }

// PrependFloat64 prepends a float64 to the Builder buffer.
func (b *Builder) PrependFloat64(x float64) { prependScalar(b, x) }

// PrependVOffsetT prepends a VOffsetT to the Builder buffer.
func (b *Builder) PrependVOffsetT(x VOffsetT) { prependScalar(b, x) }

// PlaceBool prepends a bool to the Builder, without checking for space.
func (b *Builder) PlaceBool(x bool) { placeScalar(b, x) }

// PlaceByte prepends a byte to the Builder, without checking for space.
func (b *Builder) PlaceByte(x byte) { placeScalar(b, x) }

// PlaceUint8 prepends a uint8 to the Builder, without checking for space.
func (b *Builder) PlaceUint8(x uint8) { placeScalar(b, x) }

// PlaceUint16 prepends a uint16 to the Builder, without checking for space.
func (b *Builder) PlaceUint16(x uint16) { placeScalar(b, x) }

// PlaceUint32 prepends a uint32 to the Builder, without checking for space.
func (b *Builder) PlaceUint32(x uint32) { placeScalar(b, x) }

// PlaceUint64 prepends a uint64 to the Builder, without checking for space.
func (b *Builder) PlaceUint64(x uint64) { placeScalar(b, x) }

// PlaceInt8 prepends a int8 to the Builder, without checking for space.
func (b *Builder) PlaceInt8(x int8) { placeScalar(b, x) }

// PlaceInt16 prepends a int16 to the Builder, without checking for space.
func (b *Builder) PlaceInt16(x int16) { placeScalar(b, x) }

// PlaceInt32 prepends a int32 to the Builder, without checking for space.
func (b *Builder) PlaceInt32(x int32) { placeScalar(b, x) }

// PlaceInt64 prepends a int64 to the Builder, without checking for space.
func (b *Builder) PlaceInt64(x int64) { placeScalar(b, x) }

// PlaceFloat32 prepends a float32 to the Builder, without checking for space.
func (b *Builder) PlaceFloat32(x float32) { placeScalar(b, x) }

// PlaceFloat64 prepends a float64 to the Builder, without checking for space.
func (b *Builder) PlaceFloat64(x float64) { placeScalar(b, x) }

// PlaceVOffsetT prepends a VOffsetT to the Builder, without checking for space.
func (b *Builder) PlaceVOffsetT(x VOffsetT) { placeScalar(b, x) }

// PlaceSOffsetT prepends a SOffsetT to the Builder, without checking for space.
func (b *Builder) PlaceSOffsetT(x SOffsetT) { placeScalar(b, x) }

// PlaceUOffsetT prepends a UOffsetT to the Builder, without checking for space.
func (b *Builder) PlaceUOffsetT(x UOffsetT) { placeScalar(b, x) }
