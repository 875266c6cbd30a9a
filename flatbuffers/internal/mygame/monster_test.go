package mygame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flatbuffers "github.com/blastbao/flatbuf/flatbuffers"
)

// buildMonster writes the canonical example monster into b and returns the
// root offset; the buffer is not finished.
func buildMonster(t *testing.T, b *flatbuffers.Builder) flatbuffers.UOffsetT {
	t.Helper()

	name, err := b.CreateString("MyMonster")
	require.NoError(t, err)
	test1, err := b.CreateString("test1")
	require.NoError(t, err)
	test2, err := b.CreateString("test2")
	require.NoError(t, err)
	fred, err := b.CreateString("Fred")
	require.NoError(t, err)

	_, err = MonsterStartInventoryVector(b, 5)
	require.NoError(t, err)
	for i := 4; i >= 0; i-- {
		b.PrependByte(byte(i))
	}
	inv, err := b.EndVector(5)
	require.NoError(t, err)

	require.NoError(t, MonsterStart(b))
	require.NoError(t, MonsterAddName(b, fred))
	mon2, err := MonsterEnd(b)
	require.NoError(t, err)

	_, err = MonsterStartTest4Vector(b, 2)
	require.NoError(t, err)
	CreateTest(b, 30, 40)
	CreateTest(b, 10, 20)
	test4, err := b.EndVector(2)
	require.NoError(t, err)

	_, err = MonsterStartTestarrayofstringVector(b, 2)
	require.NoError(t, err)
	require.NoError(t, b.PrependUOffsetT(test2))
	require.NoError(t, b.PrependUOffsetT(test1))
	strs, err := b.EndVector(2)
	require.NoError(t, err)

	require.NoError(t, MonsterStart(b))
	require.NoError(t, MonsterAddPos(b, CreateVec3(b, 1.0, 2.0, 3.0, 3.0, ColorGreen, 5, 6)))
	require.NoError(t, MonsterAddHp(b, 80))
	require.NoError(t, MonsterAddMana(b, 150)) // equals the default, elided
	require.NoError(t, MonsterAddName(b, name))
	require.NoError(t, MonsterAddInventory(b, inv))
	require.NoError(t, MonsterAddTestType(b, AnyMonster))
	require.NoError(t, MonsterAddTest(b, mon2))
	require.NoError(t, MonsterAddTest4(b, test4))
	require.NoError(t, MonsterAddTestarrayofstring(b, strs))
	require.NoError(t, MonsterAddTestbool(b, true))
	require.NoError(t, MonsterAddTesthashu32Fnv1(b, 0xF0F0F0F0))
	root, err := MonsterEnd(b)
	require.NoError(t, err)
	return root
}

func finishedMonster(t *testing.T) []byte {
	t.Helper()
	b := flatbuffers.NewBuilder(0)
	require.NoError(t, FinishMonsterBuffer(b, buildMonster(t, b)))
	buf, err := b.FinishedBytes()
	require.NoError(t, err)
	return buf
}

func checkMonster(t *testing.T, m *Monster) {
	t.Helper()

	assert.Equal(t, int16(80), m.Hp())
	assert.Equal(t, int16(150), m.Mana())
	assert.Equal(t, "MyMonster", string(m.Name()))
	assert.Equal(t, ColorBlue, m.Color())
	assert.True(t, m.Testbool())
	assert.Equal(t, uint32(0xF0F0F0F0), m.Testhashu32Fnv1())
	assert.Equal(t, int32(0), m.Testhashs32Fnv1())

	vec := m.Pos(nil)
	require.NotNil(t, vec)
	assert.Equal(t, float32(1.0), vec.X())
	assert.Equal(t, float32(2.0), vec.Y())
	assert.Equal(t, float32(3.0), vec.Z())
	assert.Equal(t, 3.0, vec.Test1())
	assert.Equal(t, ColorGreen, vec.Test2())
	t3 := vec.Test3(nil)
	assert.Equal(t, int16(5), t3.A())
	assert.Equal(t, int8(6), t3.B())

	require.Equal(t, 5, m.InventoryLength())
	sum := 0
	for i := 0; i < m.InventoryLength(); i++ {
		sum += int(m.Inventory(i))
	}
	assert.Equal(t, 10, sum)
	assert.Equal(t, []byte{0, 1, 2, 3, 4}, m.InventoryBytes())

	require.Equal(t, AnyMonster, m.TestType())
	var u flatbuffers.Table
	require.True(t, m.Test(&u))
	var fred Monster
	fred.Init(u.Bytes, u.Pos)
	assert.Equal(t, "Fred", string(fred.Name()))
	assert.Equal(t, int16(100), fred.Hp())

	require.Equal(t, 2, m.Test4Length())
	var t0, t1 Test
	require.True(t, m.Test4(&t0, 0))
	require.True(t, m.Test4(&t1, 1))
	assert.Equal(t, int16(10), t0.A())
	assert.Equal(t, int8(20), t0.B())
	assert.Equal(t, int16(30), t1.A())
	assert.Equal(t, int8(40), t1.B())
	assert.False(t, m.Test4(&t0, 2))

	require.Equal(t, 2, m.TestarrayofstringLength())
	assert.Equal(t, "test1", string(m.Testarrayofstring(0)))
	assert.Equal(t, "test2", string(m.Testarrayofstring(1)))
	assert.Nil(t, m.Testarrayofstring(2))

	assert.Nil(t, m.Enemy(nil))
	assert.Nil(t, m.Testempty(nil))
	assert.Equal(t, 0, m.TestarrayoftablesLength())
	assert.Nil(t, m.TestnestedflatbufferNestedRoot())
}

func TestMonsterRoundTrip(t *testing.T) {
	buf := finishedMonster(t)

	require.True(t, MonsterBufferHasIdentifier(buf))
	assert.Equal(t, MonsterIdentifier, flatbuffers.GetBufferIdentifier(buf))
	checkMonster(t, GetRootAsMonster(buf, 0))
}

func TestMonsterElidesDefaults(t *testing.T) {
	buf := finishedMonster(t)
	m := GetRootAsMonster(buf, 0)

	tab := m.Table()
	assert.Equal(t, flatbuffers.VOffsetT(0), tab.Offset(6), "mana equals its default and has no storage")
	assert.NotEqual(t, flatbuffers.VOffsetT(0), tab.Offset(8), "hp differs from its default")
}

func TestMonsterSizePrefixed(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	require.NoError(t, FinishSizePrefixedMonsterBuffer(b, buildMonster(t, b)))
	buf, err := b.FinishedBytes()
	require.NoError(t, err)

	assert.Equal(t, uint32(len(buf)-4), flatbuffers.GetSizePrefix(buf, 0))
	assert.True(t, MonsterBufferHasIdentifier(buf[4:]))
	checkMonster(t, GetSizePrefixedRootAsMonster(buf, 0))
}

func TestMonsterMutation(t *testing.T) {
	buf := finishedMonster(t)
	size := len(buf)
	m := GetRootAsMonster(buf, 0)

	// hp was written, so it can be changed in place.
	require.True(t, m.MutateHp(10))
	assert.Equal(t, int16(10), m.Hp())
	require.True(t, m.MutateHp(80))

	// mana was elided at build time: nothing to overwrite.
	assert.False(t, m.MutateMana(10))
	assert.Equal(t, int16(150), m.Mana())

	// color was never written either.
	assert.False(t, m.MutateColor(ColorRed))
	assert.Equal(t, ColorBlue, m.Color())

	require.True(t, m.MutateTestbool(false))
	assert.False(t, m.Testbool())
	require.True(t, m.MutateTestbool(true))

	require.True(t, m.MutateInventory(0, 7))
	sum := 0
	for i := 0; i < m.InventoryLength(); i++ {
		sum += int(m.Inventory(i))
	}
	assert.Equal(t, 17, sum)
	require.True(t, m.MutateInventory(0, 0))
	assert.False(t, m.MutateInventory(5, 1))

	vec := m.Pos(nil)
	require.True(t, vec.MutateX(55.0))
	assert.Equal(t, float32(55.0), m.Pos(nil).X())
	require.True(t, vec.MutateX(1.0))
	require.True(t, vec.Test3(nil).MutateA(500))
	assert.Equal(t, int16(500), m.Pos(nil).Test3(nil).A())
	require.True(t, vec.Test3(nil).MutateA(5))

	var t0 Test
	require.True(t, m.Test4(&t0, 0))
	require.True(t, t0.MutateB(-1))
	assert.Equal(t, int8(-1), t0.B())
	require.True(t, t0.MutateB(20))

	assert.Equal(t, size, len(buf), "mutation never resizes the buffer")
	checkMonster(t, m)
}

func TestMonsterSortedVectorLookup(t *testing.T) {
	b := flatbuffers.NewBuilder(0)

	names := []string{"Frodo", "Barney", "Wilma"}
	offsets := make([]flatbuffers.UOffsetT, 0, len(names))
	for _, n := range names {
		s, err := b.CreateString(n)
		require.NoError(t, err)
		require.NoError(t, MonsterStart(b))
		require.NoError(t, MonsterAddName(b, s))
		off, err := MonsterEnd(b)
		require.NoError(t, err)
		offsets = append(offsets, off)
	}
	vec, err := b.CreateSortedVectorOfTables(offsets, MonsterKeyCompare)
	require.NoError(t, err)

	name, err := b.CreateString("MyMonster")
	require.NoError(t, err)
	require.NoError(t, MonsterStart(b))
	require.NoError(t, MonsterAddName(b, name))
	require.NoError(t, MonsterAddTestarrayoftables(b, vec))
	root, err := MonsterEnd(b)
	require.NoError(t, err)
	require.NoError(t, FinishMonsterBuffer(b, root))
	buf, err := b.FinishedBytes()
	require.NoError(t, err)

	m := GetRootAsMonster(buf, 0)
	require.Equal(t, 3, m.TestarrayoftablesLength())

	var e Monster
	var got []string
	for i := 0; i < m.TestarrayoftablesLength(); i++ {
		require.True(t, m.Testarrayoftables(&e, i))
		got = append(got, string(e.Name()))
	}
	assert.Equal(t, []string{"Barney", "Frodo", "Wilma"}, got)

	for _, n := range names {
		require.True(t, m.TestarrayoftablesByKey(&e, n), n)
		assert.Equal(t, n, string(e.Name()))
	}
	assert.False(t, m.TestarrayoftablesByKey(&e, "Zelda"))
	assert.False(t, m.TestarrayoftablesByKey(&e, "Aaron"))
	assert.False(t, m.TestarrayoftablesByKey(&e, "Frod"))
}

func TestStatSortedByScalarKey(t *testing.T) {
	b := flatbuffers.NewBuilder(0)

	counts := []uint16{300, 7, 65000, 42}
	offsets := make([]flatbuffers.UOffsetT, 0, len(counts))
	for i, c := range counts {
		id, err := b.CreateString("stat")
		require.NoError(t, err)
		require.NoError(t, StatStart(b))
		require.NoError(t, StatAddId(b, id))
		require.NoError(t, StatAddVal(b, int64(i)*-1000))
		require.NoError(t, StatAddCount(b, c))
		off, err := StatEnd(b)
		require.NoError(t, err)
		offsets = append(offsets, off)
	}
	vec, err := b.CreateSortedVectorOfTables(offsets, StatKeyCompare)
	require.NoError(t, err)
	require.NoError(t, b.Finish(vec))
	buf, err := b.FinishedBytes()
	require.NoError(t, err)

	// The root offset points straight at the vector's length prefix.
	vecPos := flatbuffers.GetUOffsetT(buf)

	var s Stat
	require.True(t, StatLookupByKey(&s, 65000, vecPos, buf))
	assert.Equal(t, uint16(65000), s.Count())
	assert.Equal(t, int64(-2000), s.Val())
	assert.Equal(t, "stat", string(s.Id()))

	require.True(t, StatLookupByKey(&s, 7, vecPos, buf))
	assert.Equal(t, int64(-1000), s.Val())

	assert.False(t, StatLookupByKey(&s, 8, vecPos, buf))
	assert.False(t, StatLookupByKey(&s, 0, vecPos, buf))
}

func TestMonsterEnemyAndTestempty(t *testing.T) {
	b := flatbuffers.NewBuilder(0)

	ename, err := b.CreateString("Enemy")
	require.NoError(t, err)
	require.NoError(t, MonsterStart(b))
	require.NoError(t, MonsterAddName(b, ename))
	require.NoError(t, MonsterAddHp(b, 1))
	enemy, err := MonsterEnd(b)
	require.NoError(t, err)

	require.NoError(t, StatStart(b))
	require.NoError(t, StatAddVal(b, 1<<40))
	stat, err := StatEnd(b)
	require.NoError(t, err)

	require.NoError(t, MonsterStart(b))
	require.NoError(t, MonsterAddEnemy(b, enemy))
	require.NoError(t, MonsterAddTestempty(b, stat))
	require.NoError(t, MonsterAddColor(b, ColorRed))
	root, err := MonsterEnd(b)
	require.NoError(t, err)
	require.NoError(t, b.Finish(root))
	buf, err := b.FinishedBytes()
	require.NoError(t, err)

	m := GetRootAsMonster(buf, 0)
	assert.False(t, MonsterBufferHasIdentifier(buf))
	assert.Nil(t, m.Name())
	assert.Equal(t, ColorRed, m.Color())

	e := m.Enemy(nil)
	require.NotNil(t, e)
	assert.Equal(t, "Enemy", string(e.Name()))
	assert.Equal(t, int16(1), e.Hp())

	s := m.Testempty(nil)
	require.NotNil(t, s)
	assert.Equal(t, int64(1<<40), s.Val())
	assert.Nil(t, s.Id())
	assert.False(t, s.MutateCount(3), "count was elided")
}

func TestMonsterNestedFlatbuffer(t *testing.T) {
	inner := flatbuffers.NewBuilder(0)
	name, err := inner.CreateString("NestedMonsterName")
	require.NoError(t, err)
	require.NoError(t, MonsterStart(inner))
	require.NoError(t, MonsterAddName(inner, name))
	require.NoError(t, MonsterAddHp(inner, 600))
	require.NoError(t, MonsterAddMana(inner, 1024))
	require.NoError(t, MonsterAddColor(inner, ColorRed))
	root, err := MonsterEnd(inner)
	require.NoError(t, err)
	require.NoError(t, FinishMonsterBuffer(inner, root))
	innerBuf, err := inner.FinishedBytes()
	require.NoError(t, err)

	b := flatbuffers.NewBuilder(0)
	nested, err := b.CreateByteVector(innerBuf)
	require.NoError(t, err)
	outerName, err := b.CreateString("Outer")
	require.NoError(t, err)
	require.NoError(t, MonsterStart(b))
	require.NoError(t, MonsterAddName(b, outerName))
	require.NoError(t, MonsterAddTestnestedflatbuffer(b, nested))
	root, err = MonsterEnd(b)
	require.NoError(t, err)
	require.NoError(t, FinishMonsterBuffer(b, root))
	buf, err := b.FinishedBytes()
	require.NoError(t, err)

	m := GetRootAsMonster(buf, 0)
	require.Equal(t, len(innerBuf), m.TestnestedflatbufferLength())
	assert.Equal(t, innerBuf, m.TestnestedflatbufferBytes())
	assert.Equal(t, innerBuf[0], m.Testnestedflatbuffer(0))

	assert.True(t, MonsterBufferHasIdentifier(m.TestnestedflatbufferBytes()))
	n := m.TestnestedflatbufferNestedRoot()
	require.NotNil(t, n)
	assert.Equal(t, "NestedMonsterName", string(n.Name()))
	assert.Equal(t, int16(600), n.Hp())
	assert.Equal(t, int16(1024), n.Mana())
	assert.Equal(t, ColorRed, n.Color())

	// The nested view shares the outer buffer.
	require.True(t, n.MutateHp(601))
	assert.Equal(t, int16(601), GetRootAsMonster(buf, 0).TestnestedflatbufferNestedRoot().Hp())
}

func TestMonsterBuilderReuse(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	require.NoError(t, FinishMonsterBuffer(b, buildMonster(t, b)))
	first, err := b.FinishedBytes()
	require.NoError(t, err)
	first = append([]byte(nil), first...)

	b.Reset()
	require.NoError(t, FinishMonsterBuffer(b, buildMonster(t, b)))
	second, err := b.FinishedBytes()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEnumNames(t *testing.T) {
	assert.Equal(t, "Blue", ColorBlue.String())
	assert.Equal(t, "Color(3)", Color(3).String())
	assert.Equal(t, ColorGreen, EnumValuesColor["Green"])
	assert.Equal(t, "Monster", AnyMonster.String())
	assert.Equal(t, "Any(9)", Any(9).String())
	assert.Equal(t, AnyNONE, EnumValuesAny["NONE"])
}
