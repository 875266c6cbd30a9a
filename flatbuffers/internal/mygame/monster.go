package mygame

import (
	flatbuffers "github.com/blastbao/flatbuf/flatbuffers"
)

const MonsterIdentifier = "MONS"

type Monster struct {
	_tab flatbuffers.Table
}

func GetRootAsMonster(buf []byte, offset flatbuffers.UOffsetT) *Monster {
	x := &Monster{}
	flatbuffers.GetRootAs(buf, offset, x)
	return x
}

func GetSizePrefixedRootAsMonster(buf []byte, offset flatbuffers.UOffsetT) *Monster {
	x := &Monster{}
	flatbuffers.GetSizePrefixedRootAs(buf, offset, x)
	return x
}

func MonsterBufferHasIdentifier(buf []byte) bool {
	return flatbuffers.BufferHasIdentifier(buf, MonsterIdentifier)
}

func (rcv *Monster) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Monster) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *Monster) Pos(obj *Vec3) *Vec3 {
	if obj == nil {
		obj = new(Vec3)
	}
	if !rcv._tab.GetStruct(4, obj) {
		return nil
	}
	return obj
}

func (rcv *Monster) Mana() int16 {
	return rcv._tab.GetInt16Slot(6, 150)
}

func (rcv *Monster) MutateMana(n int16) bool {
	return rcv._tab.MutateInt16Slot(6, n)
}

func (rcv *Monster) Hp() int16 {
	return rcv._tab.GetInt16Slot(8, 100)
}

func (rcv *Monster) MutateHp(n int16) bool {
	return rcv._tab.MutateInt16Slot(8, n)
}

func (rcv *Monster) Name() []byte {
	return rcv._tab.VectorBytes(10)
}

func (rcv *Monster) Inventory(j int) byte {
	return flatbuffers.GetVectorElem[byte](&rcv._tab, 14, j, 0)
}

func (rcv *Monster) InventoryLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(14))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *Monster) InventoryBytes() []byte {
	return rcv._tab.VectorBytes(14)
}

func (rcv *Monster) MutateInventory(j int, n byte) bool {
	return flatbuffers.MutateVectorElem(&rcv._tab, 14, j, n)
}

func (rcv *Monster) Color() Color {
	return Color(rcv._tab.GetByteSlot(16, byte(ColorBlue)))
}

func (rcv *Monster) MutateColor(n Color) bool {
	return rcv._tab.MutateByteSlot(16, byte(n))
}

func (rcv *Monster) TestType() Any {
	return Any(rcv._tab.GetByteSlot(18, 0))
}

func (rcv *Monster) MutateTestType(n Any) bool {
	return rcv._tab.MutateByteSlot(18, byte(n))
}

func (rcv *Monster) Test(obj *flatbuffers.Table) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(20))
	if o != 0 {
		return rcv._tab.Union(obj, o)
	}
	return false
}

func (rcv *Monster) Test4(obj *Test, j int) bool {
	return rcv._tab.VectorStruct(22, j, 4, obj)
}

func (rcv *Monster) Test4Length() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(22))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *Monster) Testarrayofstring(j int) []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(24))
	if o != 0 && j >= 0 && j < rcv._tab.VectorLen(o) {
		a := rcv._tab.Vector(o)
		return rcv._tab.ByteVector(a + flatbuffers.UOffsetT(j*4))
	}
	return nil
}

func (rcv *Monster) TestarrayofstringLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(24))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *Monster) Testarrayoftables(obj *Monster, j int) bool {
	return rcv._tab.VectorTable(26, j, obj)
}

func (rcv *Monster) TestarrayoftablesByKey(obj *Monster, key string) bool {
	t, ok := rcv._tab.LookupByKey(26, func(t flatbuffers.Table) int {
		return flatbuffers.CompareStringKey(t, 10, []byte(key))
	})
	if !ok {
		return false
	}
	obj.Init(t.Bytes, t.Pos)
	return true
}

func (rcv *Monster) TestarrayoftablesLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(26))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *Monster) Enemy(obj *Monster) *Monster {
	if obj == nil {
		obj = new(Monster)
	}
	if !rcv._tab.GetTable(28, obj) {
		return nil
	}
	return obj
}

func (rcv *Monster) Testnestedflatbuffer(j int) byte {
	return flatbuffers.GetVectorElem[byte](&rcv._tab, 30, j, 0)
}

func (rcv *Monster) TestnestedflatbufferLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(30))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *Monster) TestnestedflatbufferBytes() []byte {
	return rcv._tab.VectorBytes(30)
}

func (rcv *Monster) TestnestedflatbufferNestedRoot() *Monster {
	x := &Monster{}
	if !rcv._tab.NestedRoot(30, x) {
		return nil
	}
	return x
}

func (rcv *Monster) Testempty(obj *Stat) *Stat {
	if obj == nil {
		obj = new(Stat)
	}
	if !rcv._tab.GetTable(32, obj) {
		return nil
	}
	return obj
}

func (rcv *Monster) Testbool() bool {
	return rcv._tab.GetBoolSlot(34, false)
}

func (rcv *Monster) MutateTestbool(n bool) bool {
	return rcv._tab.MutateBoolSlot(34, n)
}

func (rcv *Monster) Testhashs32Fnv1() int32 {
	return rcv._tab.GetInt32Slot(36, 0)
}

func (rcv *Monster) MutateTesthashs32Fnv1(n int32) bool {
	return rcv._tab.MutateInt32Slot(36, n)
}

func (rcv *Monster) Testhashu32Fnv1() uint32 {
	return rcv._tab.GetUint32Slot(38, 0)
}

func (rcv *Monster) MutateTesthashu32Fnv1(n uint32) bool {
	return rcv._tab.MutateUint32Slot(38, n)
}

// MonsterKeyCompare orders Monster tables by name.
func MonsterKeyCompare(a, b flatbuffers.Table) int {
	return flatbuffers.CompareStringField(a, b, 10)
}

func MonsterStart(builder *flatbuffers.Builder) error {
	return builder.StartObject(18)
}
func MonsterAddPos(builder *flatbuffers.Builder, pos flatbuffers.UOffsetT) error {
	return builder.PrependStructSlot(0, pos, 0)
}
func MonsterAddMana(builder *flatbuffers.Builder, mana int16) error {
	return builder.PrependInt16Slot(1, mana, 150)
}
func MonsterAddHp(builder *flatbuffers.Builder, hp int16) error {
	return builder.PrependInt16Slot(2, hp, 100)
}
func MonsterAddName(builder *flatbuffers.Builder, name flatbuffers.UOffsetT) error {
	return builder.PrependUOffsetTSlot(3, name, 0)
}
func MonsterAddInventory(builder *flatbuffers.Builder, inventory flatbuffers.UOffsetT) error {
	return builder.PrependUOffsetTSlot(5, inventory, 0)
}
func MonsterStartInventoryVector(builder *flatbuffers.Builder, numElems int) (flatbuffers.UOffsetT, error) {
	return builder.StartVector(1, numElems, 1)
}
func MonsterAddColor(builder *flatbuffers.Builder, color Color) error {
	return builder.PrependByteSlot(6, byte(color), byte(ColorBlue))
}
func MonsterAddTestType(builder *flatbuffers.Builder, testType Any) error {
	return builder.PrependByteSlot(7, byte(testType), 0)
}
func MonsterAddTest(builder *flatbuffers.Builder, test flatbuffers.UOffsetT) error {
	return builder.PrependUOffsetTSlot(8, test, 0)
}
func MonsterAddTest4(builder *flatbuffers.Builder, test4 flatbuffers.UOffsetT) error {
	return builder.PrependUOffsetTSlot(9, test4, 0)
}
func MonsterStartTest4Vector(builder *flatbuffers.Builder, numElems int) (flatbuffers.UOffsetT, error) {
	return builder.StartVector(4, numElems, 2)
}
func MonsterAddTestarrayofstring(builder *flatbuffers.Builder, testarrayofstring flatbuffers.UOffsetT) error {
	return builder.PrependUOffsetTSlot(10, testarrayofstring, 0)
}
func MonsterStartTestarrayofstringVector(builder *flatbuffers.Builder, numElems int) (flatbuffers.UOffsetT, error) {
	return builder.StartVector(4, numElems, 4)
}
func MonsterAddTestarrayoftables(builder *flatbuffers.Builder, testarrayoftables flatbuffers.UOffsetT) error {
	return builder.PrependUOffsetTSlot(11, testarrayoftables, 0)
}
func MonsterAddEnemy(builder *flatbuffers.Builder, enemy flatbuffers.UOffsetT) error {
	return builder.PrependUOffsetTSlot(12, enemy, 0)
}
func MonsterAddTestnestedflatbuffer(builder *flatbuffers.Builder, testnestedflatbuffer flatbuffers.UOffsetT) error {
	return builder.PrependUOffsetTSlot(13, testnestedflatbuffer, 0)
}
func MonsterAddTestempty(builder *flatbuffers.Builder, testempty flatbuffers.UOffsetT) error {
	return builder.PrependUOffsetTSlot(14, testempty, 0)
}
func MonsterAddTestbool(builder *flatbuffers.Builder, testbool bool) error {
	return builder.PrependBoolSlot(15, testbool, false)
}
func MonsterAddTesthashs32Fnv1(builder *flatbuffers.Builder, testhashs32Fnv1 int32) error {
	return builder.PrependInt32Slot(16, testhashs32Fnv1, 0)
}
func MonsterAddTesthashu32Fnv1(builder *flatbuffers.Builder, testhashu32Fnv1 uint32) error {
	return builder.PrependUint32Slot(17, testhashu32Fnv1, 0)
}
func MonsterEnd(builder *flatbuffers.Builder) (flatbuffers.UOffsetT, error) {
	return builder.EndObject()
}

func FinishMonsterBuffer(builder *flatbuffers.Builder, offset flatbuffers.UOffsetT) error {
	return builder.FinishWithFileIdentifier(offset, []byte(MonsterIdentifier))
}

func FinishSizePrefixedMonsterBuffer(builder *flatbuffers.Builder, offset flatbuffers.UOffsetT) error {
	return builder.FinishSizePrefixedWithFileIdentifier(offset, []byte(MonsterIdentifier))
}
