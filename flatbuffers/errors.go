package flatbuffers

import (
	"golang.org/x/xerrors"
)

// Builder operations fail fast with one of the errors below (wrapped with
// context, test with xerrors.Is or errors.Is). A Builder that returned an
// error is in an undefined state and should be Reset or discarded.
//
// Reads through Table and Struct never return these: an absent or
// unreadable field resolves to its default.
var (
	// ErrInvalidConstructionOrder is returned when an object, vector or
	// string is started while another one is open, or ended while none is.
	ErrInvalidConstructionOrder = xerrors.New("flatbuffers: invalid construction order")

	// ErrBuilderNotFinished is returned when the finished bytes are
	// requested before Finish.
	ErrBuilderNotFinished = xerrors.New("flatbuffers: builder has not finished yet")

	// ErrUnreachableOffset is returned when an offset refers to data that
	// has not been written yet.
	ErrUnreachableOffset = xerrors.New("flatbuffers: unreachable offset")

	// ErrInlineDataOutsideObject is returned when a struct field is not
	// written at the current position of the open object.
	ErrInlineDataOutsideObject = xerrors.New("flatbuffers: inline data write outside of object")

	// ErrInvalidFileIdentifier is returned when a file identifier is not
	// exactly FileIdentifierLength bytes.
	ErrInvalidFileIdentifier = xerrors.New("flatbuffers: invalid file identifier")

	// ErrIndexOutOfBound is returned by the checked codec when a position
	// and width do not fit in the buffer.
	ErrIndexOutOfBound = xerrors.New("flatbuffers: index out of bound")

	// ErrBufferTooLarge is the panic value when the builder would have to
	// grow beyond the offset range. It is fatal.
	ErrBufferTooLarge = xerrors.New("flatbuffers: cannot grow buffer beyond 1 gigabyte")
)
