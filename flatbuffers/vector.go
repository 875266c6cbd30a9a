package flatbuffers

import (
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// 向量在 buffer 中的布局：[count:uint32][elem 0][elem 1]...[elem count-1]
// 由于 buffer 从后往前写，元素必须按 count-1 ... 0 的顺序写入，最后写 count 。
// 字符串是 ubyte 向量，末尾额外带一个 0 字节，但 count 不包含它。

// StartVector initializes bookkeeping for writing a new vector.
//
// A vector has the following format:
//
//	<UOffsetT: number of elements in this vector>
//	<T: data>+, where T is the type of elements of this vector.
//
// Elements must then be prepended from the last to the first.
func (b *Builder) StartVector(elemSize, numElems, alignment int) (UOffsetT, error) {
	if err := b.assertNotNested("start vector"); err != nil {
		return 0, err
	}
	b.nested = true

	b.Prep(SizeUint32, elemSize*numElems)
	b.Prep(alignment, elemSize*numElems) // Just in case alignment > int.
	return b.Offset(), nil
}

// EndVector writes data necessary to finish vector construction.
func (b *Builder) EndVector(vectorNumElems int) (UOffsetT, error) {
	if err := b.assertNested("end vector"); err != nil {
		return 0, err
	}
	if b.inObject {
		b.logger.Debug("flatbuffers construction order violated", zap.String("op", "end vector"), zap.Bool("object", true))
		return 0, xerrors.Errorf("end vector: an object is open, not a vector: %w", ErrInvalidConstructionOrder)
	}
	// StartVector reserved room for the length in front of the elements.
	if b.head < SizeUOffsetT {
		return 0, xerrors.Errorf("end vector: %d bytes left for the length: %w", b.head, ErrIndexOutOfBound)
	}

	// we already made space for this, so write without PrependUint32
	b.PlaceUOffsetT(UOffsetT(vectorNumElems))

	b.nested = false
	return b.Offset(), nil
}

// CreateString writes a null-terminated string as a vector.
func (b *Builder) CreateString(s string) (UOffsetT, error) {
	return b.createBytes(s, nil, true)
}

// CreateByteString writes a byte slice as a string (null-terminated).
func (b *Builder) CreateByteString(s []byte) (UOffsetT, error) {
	return b.createBytes("", s, true)
}

// CreateByteVector writes a ubyte vector.
func (b *Builder) CreateByteVector(v []byte) (UOffsetT, error) {
	return b.createBytes("", v, false)
}

// createBytes copies the payload (s or p, whichever is set) in one go
// instead of prepending byte by byte.
func (b *Builder) createBytes(s string, p []byte, terminate bool) (UOffsetT, error) {
	if err := b.assertNotNested("create bytes"); err != nil {
		return 0, err
	}
	b.nested = true

	n := len(s) + len(p)
	extra := 0
	if terminate {
		extra = 1
	}
	b.Prep(SizeUOffsetT, (n+extra)*SizeByte)
	if terminate {
		b.PlaceByte(0)
	}

	l := UOffsetT(n)
	b.head -= l
	if p != nil {
		copy(b.Bytes[b.head:b.head+l], p)
	} else {
		copy(b.Bytes[b.head:b.head+l], s)
	}

	return b.EndVector(n)
}

// CreateVectorOfTables writes a vector whose elements are the given table
// offsets, in order.
func (b *Builder) CreateVectorOfTables(offsets []UOffsetT) (UOffsetT, error) {
	if _, err := b.StartVector(SizeUOffsetT, len(offsets), SizeUOffsetT); err != nil {
		return 0, err
	}
	for i := len(offsets) - 1; i >= 0; i-- {
		if err := b.PrependUOffsetT(offsets[i]); err != nil {
			b.nested = false
			return 0, err
		}
	}
	return b.EndVector(len(offsets))
}

// CreateVectorOfStrings writes every string, then a vector referencing them.
func (b *Builder) CreateVectorOfStrings(ss []string) (UOffsetT, error) {
	offsets := make([]UOffsetT, len(ss))
	for i, s := range ss {
		off, err := b.CreateString(s)
		if err != nil {
			return 0, err
		}
		offsets[i] = off
	}
	return b.CreateVectorOfTables(offsets)
}
