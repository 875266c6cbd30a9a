package flatbuffers

// Initializer is anything that can be positioned over a buffer.
type Initializer interface {
	Init(buf []byte, i UOffsetT)
}

// FlatBuffer is the interface that represents a flatbuffer table: fields
// are resolved through its vtable.
type FlatBuffer interface {
	Table() Table
	Init(buf []byte, i UOffsetT)
}

// FixedLayout is the interface that represents a flatbuffer struct: fields
// sit at fixed offsets from its position.
type FixedLayout interface {
	Struct() Struct
	Init(buf []byte, i UOffsetT)
}

var (
	_ FlatBuffer  = (*Table)(nil)
	_ FixedLayout = (*Struct)(nil)
)

// GetRootAs is a generic helper to initialize a FlatBuffer with the provided
// buffer bytes and its data offset.
func GetRootAs(buf []byte, offset UOffsetT, fb Initializer) {
	n := readOr[UOffsetT](buf, offset, 0)
	fb.Init(buf, n+offset)
}

// GetSizePrefixedRootAs is GetRootAs for a buffer written with
// FinishSizePrefixed.
func GetSizePrefixedRootAs(buf []byte, offset UOffsetT, fb Initializer) {
	n := readOr[UOffsetT](buf, offset+SizeUint32, 0)
	fb.Init(buf, n+offset+SizeUint32)
}

// GetSizePrefix reads the length prefix of a size-prefixed buffer.
func GetSizePrefix(buf []byte, offset UOffsetT) uint32 {
	return readOr[uint32](buf, offset, 0)
}

// GetBufferIdentifier returns the file identifier stored right after the
// root offset. It is meaningless for buffers finished without one.
func GetBufferIdentifier(buf []byte) string {
	id, err := ReadBytes(buf, SizeUOffsetT, FileIdentifierLength)
	if err != nil {
		return ""
	}
	return string(id)
}

// BufferHasIdentifier checks if the identifier in a buffer has the expected
// value.
func BufferHasIdentifier(buf []byte, identifier string) bool {
	return len(identifier) == FileIdentifierLength && GetBufferIdentifier(buf) == identifier
}
