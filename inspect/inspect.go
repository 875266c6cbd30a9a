// Package inspect decodes the structure of a finished buffer without a
// schema: root offset, file identifier, and the vtable of the root table.
//
// Unlike the accessors in package flatbuffers, which fall back to defaults,
// Describe is strict and reports the first structural problem it finds.
package inspect

import (
	json "github.com/goccy/go-json"
	"golang.org/x/xerrors"

	"github.com/blastbao/flatbuf/flatbuffers"
)

// ErrMalformed is returned when a vtable or offset is structurally invalid.
var ErrMalformed = xerrors.New("inspect: malformed buffer")

// Layout describes a finished buffer.
type Layout struct {
	Size       int    `json:"size"`
	SizePrefix uint32 `json:"size_prefix,omitempty"`
	RootOffset uint32 `json:"root_offset"`
	Identifier string `json:"identifier,omitempty"`

	Root *TableLayout `json:"root"`
}

// TableLayout describes one table and its vtable. Reused is set when the
// vtable lies after the table, i.e. it was written for an earlier table and
// deduplicated.
type TableLayout struct {
	Pos        uint32  `json:"pos"`
	VtablePos  uint32  `json:"vtable_pos"`
	VtableSize uint16  `json:"vtable_size"`
	ObjectSize uint16  `json:"object_size"`
	Reused     bool    `json:"reused"`
	Fields     []Field `json:"fields"`
}

// Field is one vtable slot. Offset is relative to the table position and is
// zero for an absent field.
type Field struct {
	Slot    int    `json:"slot"`
	VOffset uint16 `json:"voffset"`
	Offset  uint16 `json:"offset"`
	Present bool   `json:"present"`
}

// Option adjusts how Describe reads the buffer.
type Option func(*options)

type options struct {
	sizePrefixed bool
	identifier   bool
}

// SizePrefixed reads the buffer as written by FinishSizePrefixed.
func SizePrefixed() Option {
	return func(o *options) { o.sizePrefixed = true }
}

// WithIdentifier reports bytes [4,8) after the root offset as the file
// identifier. Nothing in the buffer says whether one was written.
func WithIdentifier() Option {
	return func(o *options) { o.identifier = true }
}

// Describe decodes the root table layout of buf.
func Describe(buf []byte, opts ...Option) (*Layout, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	l := &Layout{Size: len(buf)}
	base := flatbuffers.UOffsetT(0)
	if o.sizePrefixed {
		n, err := flatbuffers.Read[uint32](buf, 0)
		if err != nil {
			return nil, xerrors.Errorf("size prefix: %w", err)
		}
		if int(n) != len(buf)-flatbuffers.SizeUint32 {
			return nil, xerrors.Errorf("size prefix %d, %d bytes follow: %w", n, len(buf)-flatbuffers.SizeUint32, ErrMalformed)
		}
		l.SizePrefix = n
		base = flatbuffers.SizeUint32
	}

	root, err := flatbuffers.Read[flatbuffers.UOffsetT](buf, base)
	if err != nil {
		return nil, xerrors.Errorf("root offset: %w", err)
	}
	l.RootOffset = uint32(root)

	if o.identifier {
		id, err := flatbuffers.ReadBytes(buf, base+flatbuffers.SizeUOffsetT, flatbuffers.FileIdentifierLength)
		if err != nil {
			return nil, xerrors.Errorf("file identifier: %w", err)
		}
		l.Identifier = string(id)
	}

	t := flatbuffers.Table{Bytes: buf, Pos: base + root}
	if l.Root, err = DescribeTable(t); err != nil {
		return nil, xerrors.Errorf("root table: %w", err)
	}
	return l, nil
}

// DescribeTable decodes the vtable of the table t points at.
func DescribeTable(t flatbuffers.Table) (*TableLayout, error) {
	soff, err := flatbuffers.Read[flatbuffers.SOffsetT](t.Bytes, t.Pos)
	if err != nil {
		return nil, xerrors.Errorf("vtable offset at %d: %w", t.Pos, err)
	}
	vt := int64(t.Pos) - int64(soff)
	if vt < 0 || vt > int64(len(t.Bytes)) {
		return nil, xerrors.Errorf("vtable at %d outside buffer: %w", vt, ErrMalformed)
	}

	tl := &TableLayout{Pos: uint32(t.Pos), VtablePos: uint32(vt), Reused: soff < 0}
	if tl.VtableSize, err = flatbuffers.Read[uint16](t.Bytes, flatbuffers.UOffsetT(vt)); err != nil {
		return nil, xerrors.Errorf("vtable size: %w", err)
	}
	if tl.ObjectSize, err = flatbuffers.Read[uint16](t.Bytes, flatbuffers.UOffsetT(vt)+flatbuffers.SizeVOffsetT); err != nil {
		return nil, xerrors.Errorf("object size: %w", err)
	}

	const meta = flatbuffers.VtableMetadataFields * flatbuffers.SizeVOffsetT
	if tl.VtableSize < meta || tl.VtableSize%flatbuffers.SizeVOffsetT != 0 {
		return nil, xerrors.Errorf("vtable size %d: %w", tl.VtableSize, ErrMalformed)
	}
	if tl.ObjectSize < flatbuffers.SizeSOffsetT || int(t.Pos)+int(tl.ObjectSize) > len(t.Bytes) {
		return nil, xerrors.Errorf("object size %d at %d: %w", tl.ObjectSize, t.Pos, ErrMalformed)
	}

	n := int(tl.VtableSize-meta) / flatbuffers.SizeVOffsetT
	tl.Fields = make([]Field, n)
	for i := 0; i < n; i++ {
		vo := uint16(meta + i*flatbuffers.SizeVOffsetT)
		off, err := flatbuffers.Read[uint16](t.Bytes, flatbuffers.UOffsetT(vt)+flatbuffers.UOffsetT(vo))
		if err != nil {
			return nil, xerrors.Errorf("slot %d: %w", i, err)
		}
		if off != 0 && (off < flatbuffers.SizeSOffsetT || off >= tl.ObjectSize) {
			return nil, xerrors.Errorf("slot %d offset %d, object is %d bytes: %w", i, off, tl.ObjectSize, ErrMalformed)
		}
		tl.Fields[i] = Field{Slot: i, VOffset: vo, Offset: off, Present: off != 0}
	}
	return tl, nil
}

// Present returns the slots that carry a value.
func (tl *TableLayout) Present() []int {
	var out []int
	for _, f := range tl.Fields {
		if f.Present {
			out = append(out, f.Slot)
		}
	}
	return out
}

// JSON renders the layout as indented JSON.
func (l *Layout) JSON() ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}
