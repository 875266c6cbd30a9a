package flatbuffers

import (
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// minalign 是整个 buffer 到目前为止写入过的最大标量宽度。
// Finish 时按 minalign 对齐根偏移，这样 buffer 内所有标量都落在各自宽度的整数倍位置上。
//
// vtable 的元素都是 VOffsetT（uint16）：
//	- 第一个元素是 vtable 自身的字节数；
//	- 第二个元素是 table inline 部分的字节数（包括开头的 soffset）；
//	- 之后每个字段一个元素，值为字段相对 table 起点的偏移，0 表示字段不存在（取默认值）。

// Builder is a state machine for creating FlatBuffer objects.
// Use a Builder to construct object(s) starting from leaf nodes.
//
// A Builder constructs byte buffers in a last-first manner: `head` counts
// down from the end of Bytes and the live bytes are always Bytes[head:].
// All offsets handed out by the builder are measured from the end of the
// buffer, so they stay valid when the buffer grows at the front.
type Builder struct {
	// `Bytes` gives raw access to the buffer. Most users will want to use
	// FinishedBytes() instead.
	Bytes []byte

	minalign      int
	vtable        []UOffsetT // field offsets of the open object, indexed by slot
	objectEnd     UOffsetT
	vtables       []UOffsetT // offsets of every committed vtable, oldest first
	head          UOffsetT
	nested        bool
	inObject      bool // nested in an object rather than a vector or string
	finished      bool
	forceDefaults bool

	alloc  Allocator
	logger *zap.Logger
}

// NewBuilder initializes a Builder of size `initialSize`.
// The internal buffer is grown as needed.
func NewBuilder(initialSize int, opts ...BuilderOption) *Builder {
	if initialSize <= 0 {
		initialSize = 0
	}

	b := &Builder{
		alloc:  NewGoAllocator(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}

	b.Bytes = b.alloc.Allocate(initialSize)
	b.head = UOffsetT(initialSize)
	b.minalign = 1
	b.vtables = make([]UOffsetT, 0, 16) // sensible default capacity
	return b
}

// Reset truncates the underlying Builder buffer, facilitating alloc-free
// reuse of a Builder. It also resets bookkeeping data. ForceDefaults is kept.
func (b *Builder) Reset() {
	if b.Bytes != nil {
		b.Bytes = b.Bytes[:cap(b.Bytes)]
	}
	if b.vtables != nil {
		b.vtables = b.vtables[:0]
	}
	if b.vtable != nil {
		b.vtable = b.vtable[:0]
	}

	b.head = UOffsetT(len(b.Bytes))
	b.minalign = 1
	b.nested = false
	b.inObject = false
	b.finished = false
}

// ForceDefaults makes scalar slot writes store values equal to their
// default instead of eliding them.
func (b *Builder) ForceDefaults(force bool) {
	b.forceDefaults = force
}

// FinishedBytes returns a pointer to the written data in the byte buffer.
// It returns ErrBuilderNotFinished until Finish has been called.
func (b *Builder) FinishedBytes() ([]byte, error) {
	if !b.finished {
		return nil, xerrors.Errorf("finished bytes: must call Finish first: %w", ErrBuilderNotFinished)
	}
	return b.Bytes[b.Head():], nil
}

// StartObject initializes bookkeeping for writing a new object with
// numfields field slots.
func (b *Builder) StartObject(numfields int) error {
	if err := b.assertNotNested("start object"); err != nil {
		return err
	}
	b.nested = true
	b.inObject = true

	// vtable 复用底层数组，避免每个对象都分配一次。
	if cap(b.vtable) < numfields || b.vtable == nil {
		b.vtable = make([]UOffsetT, numfields)
	} else {
		b.vtable = b.vtable[:numfields]
		for i := range b.vtable {
			b.vtable[i] = 0
		}
	}

	b.objectEnd = b.Offset()
	return nil
}

// EndObject writes the vtable of the open object and returns the object's
// offset.
func (b *Builder) EndObject() (UOffsetT, error) {
	if err := b.assertInObject("end object"); err != nil {
		return 0, err
	}
	n := b.writeVtable()
	b.nested = false
	b.inObject = false
	return n, nil
}

// writeVtable serializes the vtable for the current object, if applicable.
//
// Before writing out the vtable, this checks pre-existing vtables for
// equality to this one. If an equal vtable is found, point the object to
// the existing vtable and return.
//
// Because vtable values are sensitive to alignment of object data, not all
// logically-equal vtables will be deduplicated.
//
// A vtable has the following format:
//
//	<VOffsetT: size of the vtable in bytes, including this value>
//	<VOffsetT: size of the object in bytes, including the vtable offset>
//	<VOffsetT: offset for a field> * N, where N is the number of fields in
//	           the schema for this type. Includes deprecated fields.
//
// Thus, a vtable is made of 2 + N elements, each SizeVOffsetT bytes wide.
//
// An object has the following format:
//
//	<SOffsetT: offset to this object's vtable (may be negative)>
//	<byte: data>+
func (b *Builder) writeVtable() UOffsetT {
	// 先为 soffset 占位，写完（或找到）vtable 后再回填。
	b.Prep(SizeSOffsetT, 0)
	b.PlaceSOffsetT(0)

	objectOffset := b.Offset()

	// 末尾未设置的字段不写入 vtable ，读取时按 "超出 vtable 长度" 处理为缺省。
	i := len(b.vtable) - 1
	for ; i >= 0 && b.vtable[i] == 0; i-- {
	}
	b.vtable = b.vtable[:i+1]

	objectStart := UOffsetT(len(b.Bytes)) - objectOffset

	if existing, ok := b.findVtable(objectOffset); ok {
		// Nothing of the new vtable has been written yet, so head already
		// sits at the object start.
		b.head = objectStart
		WriteSOffsetT(b.Bytes[b.head:], SOffsetT(existing)-SOffsetT(objectOffset))
		b.vtable = b.vtable[:0]
		return objectOffset
	}

	// Field offsets, last slot first since we are writing backwards.
	for i := len(b.vtable) - 1; i >= 0; i-- {
		var off UOffsetT
		if b.vtable[i] != 0 {
			off = objectOffset - b.vtable[i]
		}
		b.PrependVOffsetT(VOffsetT(off))
	}

	objectSize := objectOffset - b.objectEnd
	b.PrependVOffsetT(VOffsetT(objectSize))

	vBytes := (len(b.vtable) + VtableMetadataFields) * SizeVOffsetT
	b.PrependVOffsetT(VOffsetT(vBytes))

	// Writing the vtable may have grown the buffer, which moves the object.
	objectStart = UOffsetT(len(b.Bytes)) - objectOffset

	// The vtable sits below the object, so the stored soffset is
	// vtable_end_offset - object_offset, a positive value the reader
	// subtracts from the object position.
	WriteSOffsetT(b.Bytes[objectStart:], SOffsetT(b.Offset())-SOffsetT(objectOffset))

	b.vtables = append(b.vtables, b.Offset())
	b.vtable = b.vtable[:0]
	return objectOffset
}

// findVtable scans the committed vtables, most recent first, for one equal
// to the open object's vtable.
func (b *Builder) findVtable(objectOffset UOffsetT) (UOffsetT, bool) {
	metadata := VtableMetadataFields * SizeVOffsetT
	for i := len(b.vtables) - 1; i >= 0; i-- {
		vt2Offset := b.vtables[i]
		vt2Start := len(b.Bytes) - int(vt2Offset)
		vt2Len := int(GetVOffsetT(b.Bytes[vt2Start:]))
		vt2 := b.Bytes[vt2Start+metadata : vt2Start+vt2Len]

		if vtableEqual(b.vtable, objectOffset, vt2) &&
			GetVOffsetT(b.Bytes[vt2Start+SizeVOffsetT:]) == VOffsetT(objectOffset-b.objectEnd) {
			return vt2Offset, true
		}
	}
	return 0, false
}

// vtableEqual compares an unwritten vtable to a written vtable.
func vtableEqual(a []UOffsetT, objectStart UOffsetT, b []byte) bool {
	if len(a)*SizeVOffsetT != len(b) {
		return false
	}

	for i := 0; i < len(a); i++ {
		x := GetVOffsetT(b[i*SizeVOffsetT:])

		// Skip vtable entries that indicate a default value.
		if x == 0 && a[i] == 0 {
			continue
		}
		if a[i] == 0 {
			return false
		}

		y := SOffsetT(objectStart) - SOffsetT(a[i])
		if SOffsetT(x) != y {
			return false
		}
	}
	return true
}

// growByteBuffer doubles the size of the buffer (0 grows to 1) and moves
// the existing content into the upper half, since we build back to front.
func (b *Builder) growByteBuffer() {
	oldLen := len(b.Bytes)
	newLen := oldLen * 2
	if newLen == 0 {
		newLen = 1
	}
	// Keep every offset inside the positive int32 range, with headroom.
	if newLen > MaxBufferSize {
		panic(xerrors.Errorf("grow from %d to %d bytes: %w", oldLen, newLen, ErrBufferTooLarge))
	}

	if cap(b.Bytes) >= newLen {
		b.Bytes = b.Bytes[:newLen]
		copy(b.Bytes[newLen-oldLen:], b.Bytes[:oldLen])
	} else {
		bigger := b.alloc.Allocate(newLen)
		copy(bigger[newLen-oldLen:], b.Bytes)
		b.alloc.Free(b.Bytes)
		b.Bytes = bigger
	}

	b.logger.Debug("flatbuffers builder grew",
		zap.Int("from", oldLen),
		zap.Int("to", newLen),
		zap.Uint32("used", uint32(b.Offset())))
}

// Head gives the start of useful data in the underlying byte buffer.
// Note: unlike other functions, this value is interpreted as from the left.
func (b *Builder) Head() UOffsetT {
	return b.head
}

// Offset relative to the end of the buffer.
func (b *Builder) Offset() UOffsetT {
	return UOffsetT(len(b.Bytes)) - b.head
}

// MinAlign is the largest alignment requested so far.
func (b *Builder) MinAlign() int {
	return b.minalign
}

// Pad places zeros at the current offset.
func (b *Builder) Pad(n int) {
	for i := 0; i < n; i++ {
		b.head--
		b.Bytes[b.head] = 0
	}
}

// Prep prepares to write an element of `size` after `additional_bytes`
// have been written, e.g. if you write a string, you need to align such
// the int length field is aligned to SizeInt32, and the string data follows it
// directly.
// If all you need to do is align, `additionalBytes` will be 0.
func (b *Builder) Prep(size, additionalBytes int) {
	// Track the biggest thing we've ever aligned to.
	if size > b.minalign {
		b.minalign = size
	}

	// 需要补齐的字节数：使 (已用字节 + additionalBytes + pad) 是 size 的整数倍。
	alignSize := -(int(b.Offset()) + additionalBytes) & (size - 1)

	// Reallocate the buffer if needed.
	for int(b.head) <= alignSize+size+additionalBytes {
		oldBufSize := len(b.Bytes)
		b.growByteBuffer()
		b.head += UOffsetT(len(b.Bytes) - oldBufSize)
	}

	b.Pad(alignSize)
}

// PrependSOffsetT prepends an SOffsetT, relative to where it will be written.
func (b *Builder) PrependSOffsetT(off SOffsetT) error {
	b.Prep(SizeSOffsetT, 0) // Ensure alignment is already done.
	if off < 0 || UOffsetT(off) > b.Offset() {
		return xerrors.Errorf("soffset %d beyond written %d bytes: %w", off, b.Offset(), ErrUnreachableOffset)
	}
	off2 := SOffsetT(b.Offset()) - off + SOffsetT(SizeSOffsetT)
	b.PlaceSOffsetT(off2)
	return nil
}

// PrependUOffsetT prepends an UOffsetT, relative to where it will be written.
func (b *Builder) PrependUOffsetT(off UOffsetT) error {
	b.Prep(SizeUOffsetT, 0) // Ensure alignment is already done.
	if off > b.Offset() {
		return xerrors.Errorf("uoffset %d beyond written %d bytes: %w", off, b.Offset(), ErrUnreachableOffset)
	}
	off2 := b.Offset() - off + UOffsetT(SizeUOffsetT)
	b.PlaceUOffsetT(off2)
	return nil
}

// Slot sets the vtable key `voffset` to the current location in the buffer.
func (b *Builder) Slot(slotnum int) error {
	if err := b.checkSlot("slot", slotnum); err != nil {
		return err
	}
	b.vtable[slotnum] = b.Offset()
	return nil
}

// checkSlot fails unless an object is open and declared slot `slotnum`.
func (b *Builder) checkSlot(op string, slotnum int) error {
	if err := b.assertInObject(op); err != nil {
		return err
	}
	if slotnum < 0 || slotnum >= len(b.vtable) {
		b.logger.Debug("flatbuffers slot out of range", zap.String("op", op), zap.Int("slot", slotnum), zap.Int("fields", len(b.vtable)))
		return xerrors.Errorf("%s: slot %d of object with %d fields: %w", op, slotnum, len(b.vtable), ErrInvalidConstructionOrder)
	}
	return nil
}

// PrependUOffsetTSlot prepends an UOffsetT onto the object at vtable slot `o`.
// If value `x` equals default `d`, then the slot will be set to zero and no
// other data will be written, unless ForceDefaults is set. A zero offset
// refers to nothing and is never written.
func (b *Builder) PrependUOffsetTSlot(o int, x, d UOffsetT) error {
	if x == d && (!b.forceDefaults || x == 0) {
		return nil
	}
	if err := b.checkSlot("offset slot", o); err != nil {
		return err
	}
	if err := b.PrependUOffsetT(x); err != nil {
		return err
	}
	return b.Slot(o)
}

// PrependStructSlot records a struct at vtable slot `o`.
// Structs are stored inline, so nothing additional is being added; `x` must
// be the offset of the struct that was just written.
// In generated code, `d` is always 0.
func (b *Builder) PrependStructSlot(voffset int, x, d UOffsetT) error {
	if x == d {
		return nil
	}
	if err := b.checkSlot("struct slot", voffset); err != nil {
		return err
	}
	if x != b.Offset() {
		b.logger.Debug("struct written out of place",
			zap.Int("slot", voffset),
			zap.Uint32("struct", uint32(x)),
			zap.Uint32("offset", uint32(b.Offset())))
		return xerrors.Errorf("struct slot %d at %d, cursor at %d: %w", voffset, x, b.Offset(), ErrInlineDataOutsideObject)
	}
	return b.Slot(voffset)
}

// Finish finalizes a buffer, pointing to the given `rootTable`.
func (b *Builder) Finish(rootTable UOffsetT) error {
	return b.finish(rootTable, nil, false)
}

// FinishWithFileIdentifier finalizes a buffer, pointing to the given
// `rootTable`, and places the identifier right after the root offset.
func (b *Builder) FinishWithFileIdentifier(rootTable UOffsetT, fid []byte) error {
	if len(fid) != FileIdentifierLength {
		return xerrors.Errorf("file identifier %q: want %d bytes: %w", fid, FileIdentifierLength, ErrInvalidFileIdentifier)
	}
	return b.finish(rootTable, fid, false)
}

// FinishSizePrefixed finalizes a buffer and prefixes it with its length.
func (b *Builder) FinishSizePrefixed(rootTable UOffsetT) error {
	return b.finish(rootTable, nil, true)
}

// FinishSizePrefixedWithFileIdentifier is FinishWithFileIdentifier plus a
// length prefix.
func (b *Builder) FinishSizePrefixedWithFileIdentifier(rootTable UOffsetT, fid []byte) error {
	if len(fid) != FileIdentifierLength {
		return xerrors.Errorf("file identifier %q: want %d bytes: %w", fid, FileIdentifierLength, ErrInvalidFileIdentifier)
	}
	return b.finish(rootTable, fid, true)
}

func (b *Builder) finish(rootTable UOffsetT, fid []byte, sizePrefix bool) error {
	if err := b.assertNotNested("finish"); err != nil {
		return err
	}

	// 根偏移（以及可选的 identifier 、长度前缀）之后紧跟的数据要按 minalign 对齐。
	extra := SizeUOffsetT
	if fid != nil {
		extra += FileIdentifierLength
	}
	if sizePrefix {
		extra += SizeUint32
	}
	b.Prep(b.minalign, extra)

	for i := len(fid) - 1; i >= 0; i-- {
		b.PlaceByte(fid[i])
	}
	if err := b.PrependUOffsetT(rootTable); err != nil {
		return err
	}
	if sizePrefix {
		b.PlaceUint32(uint32(b.Offset()))
	}

	b.finished = true
	return nil
}

func (b *Builder) assertNested(op string) error {
	if !b.nested {
		b.logger.Debug("flatbuffers construction order violated", zap.String("op", op), zap.Bool("nested", false))
		return xerrors.Errorf("%s: must be inside object: %w", op, ErrInvalidConstructionOrder)
	}
	return nil
}

func (b *Builder) assertInObject(op string) error {
	if err := b.assertNested(op); err != nil {
		return err
	}
	if !b.inObject {
		b.logger.Debug("flatbuffers construction order violated", zap.String("op", op), zap.Bool("object", false))
		return xerrors.Errorf("%s: a vector is open, not an object: %w", op, ErrInvalidConstructionOrder)
	}
	return nil
}

func (b *Builder) assertNotNested(op string) error {
	if b.nested {
		b.logger.Debug("flatbuffers construction order violated", zap.String("op", op), zap.Bool("nested", true))
		return xerrors.Errorf("%s: object must not be nested: %w", op, ErrInvalidConstructionOrder)
	}
	return nil
}
