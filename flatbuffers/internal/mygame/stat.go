package mygame

import (
	flatbuffers "github.com/blastbao/flatbuf/flatbuffers"
)

type Stat struct {
	_tab flatbuffers.Table
}

func GetRootAsStat(buf []byte, offset flatbuffers.UOffsetT) *Stat {
	x := &Stat{}
	flatbuffers.GetRootAs(buf, offset, x)
	return x
}

func (rcv *Stat) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Stat) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *Stat) Id() []byte {
	return rcv._tab.VectorBytes(4)
}

func (rcv *Stat) Val() int64 {
	return rcv._tab.GetInt64Slot(6, 0)
}

func (rcv *Stat) MutateVal(n int64) bool {
	return rcv._tab.MutateInt64Slot(6, n)
}

func (rcv *Stat) Count() uint16 {
	return rcv._tab.GetUint16Slot(8, 0)
}

func (rcv *Stat) MutateCount(n uint16) bool {
	return rcv._tab.MutateUint16Slot(8, n)
}

// StatKeyCompare orders Stat tables by count.
func StatKeyCompare(a, b flatbuffers.Table) int {
	return flatbuffers.CompareScalarField[uint16](a, b, 8, 0)
}

// StatLookupByKey finds the Stat with the given count in the sorted vector
// whose length prefix is at vectorLocation.
func StatLookupByKey(obj *Stat, key uint16, vectorLocation flatbuffers.UOffsetT, buf []byte) bool {
	t, ok := flatbuffers.LookupByKey(buf, vectorLocation, func(t flatbuffers.Table) int {
		return flatbuffers.CompareScalarKey[uint16](t, 8, 0, key)
	})
	if !ok {
		return false
	}
	obj.Init(t.Bytes, t.Pos)
	return true
}

func StatStart(builder *flatbuffers.Builder) error {
	return builder.StartObject(3)
}
func StatAddId(builder *flatbuffers.Builder, id flatbuffers.UOffsetT) error {
	return builder.PrependUOffsetTSlot(0, id, 0)
}
func StatAddVal(builder *flatbuffers.Builder, val int64) error {
	return builder.PrependInt64Slot(1, val, 0)
}
func StatAddCount(builder *flatbuffers.Builder, count uint16) error {
	return builder.PrependUint16Slot(2, count, 0)
}
func StatEnd(builder *flatbuffers.Builder) (flatbuffers.UOffsetT, error) {
	return builder.EndObject()
}
