// Package flatbuffers provides facilities to read and write flatbuffers
// objects.
//
// A Builder serializes a tree of tables, structs, vectors and strings into
// one contiguous buffer, back to front, deduplicating identical vtables. A
// Table or Struct is a view (buffer plus position) that resolves fields
// directly in the finished bytes, without an unpacking pass:
//
//	b := flatbuffers.NewBuilder(0)
//	name, _ := b.CreateString("MyMonster")
//	_ = b.StartObject(4)
//	_ = b.PrependInt16Slot(2, 80, 100) // hp, default 100
//	_ = b.PrependUOffsetTSlot(3, name, 0)
//	root, _ := b.EndObject()
//	_ = b.Finish(root)
//	buf, _ := b.FinishedBytes()
//
//	var t flatbuffers.Table
//	flatbuffers.GetRootAs(buf, 0, &t)
//	hp := t.GetInt16Slot(8, 100) // slot 2 lives at vtable offset 4+2*2
//
// Generated code normally wraps these calls; see internal/mygame.
//
// Writes are fail-fast: construction-order violations and bad offsets
// return the errors declared in errors.go. Reads are fail-soft: an absent
// field, or one whose bytes are out of range, reads as its default.
//
// Concurrency: a Builder must be used by one goroutine at a time. Any
// number of goroutines may read views over a finished buffer, provided no
// goroutine mutates it concurrently.
package flatbuffers
