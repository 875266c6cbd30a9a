package flatbuffers_test

import (
	"testing"

	upstream "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blastbao/flatbuf/flatbuffers"
	"github.com/blastbao/flatbuf/flatbuffers/internal/mygame"
)

// The builder must produce the same bytes as the reference Go runtime for
// the same sequence of calls, and each side must read the other's buffers.

func upstreamVec3(b *upstream.Builder, x, y, z float32, test1 float64, test2 byte, a int16, c int8) upstream.UOffsetT {
	b.Prep(8, 32)
	b.Pad(2)
	b.Prep(2, 4)
	b.Pad(1)
	b.PrependInt8(c)
	b.PrependInt16(a)
	b.Pad(1)
	b.PrependByte(test2)
	b.PrependFloat64(test1)
	b.Pad(4)
	b.PrependFloat32(z)
	b.PrependFloat32(y)
	b.PrependFloat32(x)
	return b.Offset()
}

func upstreamMonster(b *upstream.Builder) []byte {
	name := b.CreateString("MyMonster")
	test1 := b.CreateString("test1")
	test2 := b.CreateString("test2")
	fred := b.CreateString("Fred")
	inv := b.CreateByteVector([]byte{0, 1, 2, 3, 4})

	b.StartObject(18)
	b.PrependUOffsetTSlot(3, fred, 0)
	mon2 := b.EndObject()

	b.StartVector(4, 2, 2)
	b.Prep(2, 4)
	b.Pad(1)
	b.PrependInt8(40)
	b.PrependInt16(30)
	b.Prep(2, 4)
	b.Pad(1)
	b.PrependInt8(20)
	b.PrependInt16(10)
	test4 := b.EndVector(2)

	b.StartVector(4, 2, 4)
	b.PrependUOffsetT(test2)
	b.PrependUOffsetT(test1)
	strs := b.EndVector(2)

	b.StartObject(18)
	b.PrependStructSlot(0, upstreamVec3(b, 1, 2, 3, 3, 2, 5, 6), 0)
	b.PrependInt16Slot(2, 80, 100)
	b.PrependInt16Slot(1, 150, 150)
	b.PrependUOffsetTSlot(3, name, 0)
	b.PrependUOffsetTSlot(5, inv, 0)
	b.PrependByteSlot(7, 1, 0)
	b.PrependUOffsetTSlot(8, mon2, 0)
	b.PrependUOffsetTSlot(9, test4, 0)
	b.PrependUOffsetTSlot(10, strs, 0)
	b.PrependBoolSlot(15, true, false)
	root := b.EndObject()
	b.Finish(root)
	return b.FinishedBytes()
}

func ourMonster(t *testing.T, b *flatbuffers.Builder) []byte {
	t.Helper()
	name, err := b.CreateString("MyMonster")
	require.NoError(t, err)
	test1, err := b.CreateString("test1")
	require.NoError(t, err)
	test2, err := b.CreateString("test2")
	require.NoError(t, err)
	fred, err := b.CreateString("Fred")
	require.NoError(t, err)
	inv, err := b.CreateByteVector([]byte{0, 1, 2, 3, 4})
	require.NoError(t, err)

	require.NoError(t, mygame.MonsterStart(b))
	require.NoError(t, mygame.MonsterAddName(b, fred))
	mon2, err := mygame.MonsterEnd(b)
	require.NoError(t, err)

	_, err = mygame.MonsterStartTest4Vector(b, 2)
	require.NoError(t, err)
	mygame.CreateTest(b, 30, 40)
	mygame.CreateTest(b, 10, 20)
	test4, err := b.EndVector(2)
	require.NoError(t, err)

	_, err = mygame.MonsterStartTestarrayofstringVector(b, 2)
	require.NoError(t, err)
	require.NoError(t, b.PrependUOffsetT(test2))
	require.NoError(t, b.PrependUOffsetT(test1))
	strs, err := b.EndVector(2)
	require.NoError(t, err)

	require.NoError(t, mygame.MonsterStart(b))
	require.NoError(t, mygame.MonsterAddPos(b, mygame.CreateVec3(b, 1, 2, 3, 3, mygame.ColorGreen, 5, 6)))
	mygame.MonsterAddHp(b, 80)
	mygame.MonsterAddMana(b, 150)
	require.NoError(t, mygame.MonsterAddName(b, name))
	require.NoError(t, mygame.MonsterAddInventory(b, inv))
	mygame.MonsterAddTestType(b, mygame.AnyMonster)
	require.NoError(t, mygame.MonsterAddTest(b, mon2))
	require.NoError(t, mygame.MonsterAddTest4(b, test4))
	require.NoError(t, mygame.MonsterAddTestarrayofstring(b, strs))
	mygame.MonsterAddTestbool(b, true)
	root, err := mygame.MonsterEnd(b)
	require.NoError(t, err)
	require.NoError(t, b.Finish(root))

	buf, err := b.FinishedBytes()
	require.NoError(t, err)
	return buf
}

func TestInteropSameBytes(t *testing.T) {
	want := upstreamMonster(upstream.NewBuilder(0))
	got := ourMonster(t, flatbuffers.NewBuilder(0))
	assert.Equal(t, want, got)
}

func TestInteropReadUpstream(t *testing.T) {
	buf := upstreamMonster(upstream.NewBuilder(0))
	m := mygame.GetRootAsMonster(buf, 0)

	assert.Equal(t, int16(80), m.Hp())
	assert.Equal(t, int16(150), m.Mana())
	assert.Equal(t, "MyMonster", string(m.Name()))
	assert.Equal(t, []byte{0, 1, 2, 3, 4}, m.InventoryBytes())
	assert.Equal(t, float32(3), m.Pos(nil).Z())
	assert.Equal(t, mygame.ColorGreen, m.Pos(nil).Test2())
	assert.Equal(t, "test2", string(m.Testarrayofstring(1)))

	var u flatbuffers.Table
	require.True(t, m.Test(&u))
	var fred mygame.Monster
	fred.Init(u.Bytes, u.Pos)
	assert.Equal(t, "Fred", string(fred.Name()))
}

func TestInteropUpstreamReadsOurs(t *testing.T) {
	buf := ourMonster(t, flatbuffers.NewBuilder(0))

	tab := &upstream.Table{Bytes: buf, Pos: upstream.GetUOffsetT(buf)}
	assert.Equal(t, int16(80), tab.GetInt16Slot(8, 100))
	assert.Equal(t, int16(150), tab.GetInt16Slot(6, 150))
	assert.True(t, tab.GetBoolSlot(34, false))

	o := upstream.UOffsetT(tab.Offset(10))
	require.NotZero(t, o)
	assert.Equal(t, "MyMonster", tab.String(tab.Pos+o))

	o = upstream.UOffsetT(tab.Offset(14))
	require.NotZero(t, o)
	assert.Equal(t, []byte{0, 1, 2, 3, 4}, tab.ByteVector(tab.Pos+o))
}
