package flatbuffers

import (
	"unsafe"
)

type (
	// A SOffsetT stores a signed offset into arbitrary data.
	SOffsetT int32
	// A UOffsetT stores an unsigned offset into vector data.
	UOffsetT uint32
	// A VOffsetT stores an unsigned offset in a vtable.
	VOffsetT uint16
)

const (
	// SizeUint8 is the byte size of a uint8.
	SizeUint8 = 1
	// SizeUint16 is the byte size of a uint16.
	SizeUint16 = 2
	// SizeUint32 is the byte size of a uint32.
	SizeUint32 = 4
	// SizeUint64 is the byte size of a uint64.
	SizeUint64 = 8

	SizeInt8  = 1
	SizeInt16 = 2
	SizeInt32 = 4
	SizeInt64 = 8

	SizeFloat32 = 4
	SizeFloat64 = 8

	// SizeByte is the byte size of a byte.
	SizeByte = 1
	// SizeBool is the byte size of a bool. Booleans are stored as one byte.
	SizeBool = 1

	// SizeSOffsetT is the byte size of an SOffsetT.
	SizeSOffsetT = 4
	// SizeUOffsetT is the byte size of an UOffsetT.
	SizeUOffsetT = 4
	// SizeVOffsetT is the byte size of an VOffsetT.
	SizeVOffsetT = 2
)

const (
	// VtableMetadataFields is the count of metadata fields in each vtable:
	// the vtable byte size and the inline object size.
	VtableMetadataFields = 2

	// FileIdentifierLength is the fixed length of a buffer's file identifier.
	FileIdentifierLength = 4

	// MaxBufferSize is the largest buffer a Builder grows to.
	MaxBufferSize = 1 << 30
)

// byteSliceToString converts a []byte to string without a heap allocation.
// The string aliases the buffer, so a later in-place mutation is visible through it.
func byteSliceToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
