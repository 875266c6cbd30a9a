package flatbuffers

import (
	"bytes"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
	"golang.org/x/xerrors"
)

// A table with a key field can be stored in a vector sorted by that key;
// readers then find an element with LookupByKey in O(log n).
//
// The comparator used to sort at build time and the one used to search at
// read time MUST agree on the ordering. Nothing in the buffer records which
// ordering was used, so a mismatch silently yields wrong lookups.

// KeyOrder orders two tables by their key field, returning a negative
// number, zero or a positive number like bytes.Compare.
type KeyOrder func(a, b Table) int

// CreateSortedVectorOfTables sorts offsets in place by `order` and writes
// them as a vector of tables. The tables must already be written to b.
// The sort is stable: elements with equal keys keep their relative order.
func (b *Builder) CreateSortedVectorOfTables(offsets []UOffsetT, order KeyOrder) (UOffsetT, error) {
	if err := b.assertNotNested("sorted vector"); err != nil {
		return 0, err
	}
	for _, off := range offsets {
		if off > b.Offset() {
			return 0, xerrors.Errorf("table %d beyond written %d bytes: %w", off, b.Offset(), ErrUnreachableOffset)
		}
	}
	slices.SortStableFunc(offsets, func(x, y UOffsetT) int {
		return order(b.tableAt(x), b.tableAt(y))
	})
	return b.CreateVectorOfTables(offsets)
}

// tableAt views a table that was written to the builder at offset off.
func (b *Builder) tableAt(off UOffsetT) Table {
	return Table{Bytes: b.Bytes, Pos: UOffsetT(len(b.Bytes)) - off}
}

// CompareStringField orders a and b by the string in field `slot`:
// byte-wise unsigned, a shorter string sorts before any string it prefixes.
// An absent string sorts as empty.
func CompareStringField(a, b Table, slot VOffsetT) int {
	return bytes.Compare(a.VectorBytes(slot), b.VectorBytes(slot))
}

// CompareStringKey compares the string in field `slot` of t with key.
func CompareStringKey(t Table, slot VOffsetT, key []byte) int {
	return bytes.Compare(t.VectorBytes(slot), key)
}

// OrderedScalar is a Scalar with a natural order.
type OrderedScalar interface {
	Scalar
	constraints.Integer | constraints.Float
}

// CompareScalarField orders a and b by the scalar in field `slot`, with
// absent fields read as d.
func CompareScalarField[T OrderedScalar](a, b Table, slot VOffsetT, d T) int {
	return compareOrdered(GetSlot(&a, slot, d), GetSlot(&b, slot, d))
}

// CompareScalarKey compares the scalar in field `slot` of t with key.
func CompareScalarKey[T OrderedScalar](t Table, slot VOffsetT, d, key T) int {
	return compareOrdered(GetSlot(&t, slot, d), key)
}

func compareOrdered[T constraints.Ordered](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// LookupByKey binary searches the sorted vector of tables whose length
// prefix is at vectorPos. `cmp` compares an element's key with the wanted
// key (element minus wanted). It reports false when no element matches.
func LookupByKey(buf []byte, vectorPos UOffsetT, cmp func(Table) int) (Table, bool) {
	span := int(readOr[UOffsetT](buf, vectorPos, 0))
	data := vectorPos + SizeUOffsetT
	start := 0
	for span != 0 {
		middle := span / 2
		elem := data + UOffsetT(SizeUOffsetT*(start+middle))
		rel, err := Read[UOffsetT](buf, elem)
		if err != nil {
			return Table{}, false
		}
		t := Table{Bytes: buf, Pos: elem + rel}
		switch c := cmp(t); {
		case c > 0:
			span = middle
		case c < 0:
			middle++
			start += middle
			span -= middle
		default:
			return t, true
		}
	}
	return Table{}, false
}

// LookupByKey searches the sorted vector of tables in field `slot`.
func (t *Table) LookupByKey(slot VOffsetT, cmp func(Table) int) (Table, bool) {
	o := t.Offset(slot)
	if o == 0 {
		return Table{}, false
	}
	return LookupByKey(t.Bytes, t.Vector(UOffsetT(o))-SizeUOffsetT, cmp)
}
