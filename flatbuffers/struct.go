package flatbuffers

// Struct wraps a byte slice and provides read access to its data.
//
// Structs are fixed-layout and have no vtable: generated accessors read each
// field at Pos plus the field's fixed offset, and every field is always
// present. Because nothing about a struct can be elided, every field can
// be mutated in place.
type Struct struct {
	Table
}

// Struct returns the view itself, so a bare Struct satisfies FixedLayout.
func (s *Struct) Struct() Struct {
	return *s
}

// Nested points obj at the struct stored inline at the fixed offset `off`.
func (s *Struct) Nested(off UOffsetT, obj FixedLayout) {
	obj.Init(s.Bytes, s.Pos+off)
}
