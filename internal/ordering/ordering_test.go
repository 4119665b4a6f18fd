package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type orderedThing struct {
	ID         string
	OrderIndex int
}

func (t *orderedThing) GetOrderIndex() int  { return t.OrderIndex }
func (t *orderedThing) SetOrderIndex(i int) { t.OrderIndex = i }

func things(indexes ...int) []*orderedThing {
	list := make([]*orderedThing, 0, len(indexes))
	for i, index := range indexes {
		list = append(list, &orderedThing{ID: string(rune('a' + i)), OrderIndex: index})
	}
	return list
}

func assertDense(t *testing.T, list []*orderedThing) {
	t.Helper()
	for i, thing := range list {
		assert.Equal(t, i, thing.OrderIndex)
	}
}

func TestSort_ByOrderIndex(t *testing.T) {
	list := things(2, 0, 1)
	Sort(list)

	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "c", list[1].ID)
	assert.Equal(t, "a", list[2].ID)
}

func TestRenumber_MakesDense(t *testing.T) {
	list := things(0, 3, 7, 9)
	changed := Renumber(list)

	assert.Len(t, changed, 3)
	assertDense(t, list)
}

func TestRenumber_NoChanges(t *testing.T) {
	list := things(0, 1, 2)
	changed := Renumber(list)

	assert.Empty(t, changed)
	assertDense(t, list)
}

func TestMove_SwapsAdjacent(t *testing.T) {
	list := things(0, 1, 2)
	moved := Move(list, 1, 1)

	assert.True(t, moved)
	assert.Equal(t, "c", list[1].ID)
	assert.Equal(t, "b", list[2].ID)
	assertDense(t, list)
}

func TestMove_FirstUpIsNoOp(t *testing.T) {
	list := things(0, 1, 2)
	moved := Move(list, 0, -1)

	assert.False(t, moved)
	assertDense(t, list)
}

func TestMove_LastDownIsNoOp(t *testing.T) {
	list := things(0, 1, 2)
	moved := Move(list, 2, 1)

	assert.False(t, moved)
	assertDense(t, list)
}

func TestMove_OutOfRangeIsNoOp(t *testing.T) {
	list := things(0, 1, 2)

	assert.False(t, Move(list, -1, 1))
	assert.False(t, Move(list, 5, -1))
	assertDense(t, list)
}

func TestReposition_MovesAndRenumbers(t *testing.T) {
	list := things(0, 1, 2, 3)
	changed := Reposition(list, 3, 0)

	assert.Equal(t, "d", list[0].ID)
	assert.Equal(t, "a", list[1].ID)
	assert.Equal(t, "b", list[2].ID)
	assert.Equal(t, "c", list[3].ID)
	assert.Len(t, changed, 4)
	assertDense(t, list)
}

func TestReposition_ClampsTargetIndex(t *testing.T) {
	list := things(0, 1, 2)
	Reposition(list, 0, 99)

	assert.Equal(t, "a", list[2].ID)
	assertDense(t, list)
}

func TestReposition_NegativeTargetGoesFirst(t *testing.T) {
	list := things(0, 1, 2)
	Reposition(list, 2, -5)

	assert.Equal(t, "c", list[0].ID)
	assertDense(t, list)
}

func TestReposition_OutOfRangeSourceIsNoOp(t *testing.T) {
	list := things(0, 1, 2)
	changed := Reposition(list, 7, 0)

	assert.Nil(t, changed)
	assertDense(t, list)
}

func TestReposition_PreservesUntouchedOrder(t *testing.T) {
	list := things(0, 1, 2, 3, 4)
	Reposition(list, 1, 3)

	assert.Equal(t, []string{"a", "c", "d", "b", "e"}, ids(list))
	assertDense(t, list)
}

func TestMoveAndRepositionSequence_StaysDense(t *testing.T) {
	list := things(0, 1, 2, 3, 4)

	Move(list, 0, 1)
	Reposition(list, 4, 1)
	Move(list, 3, -1)
	Reposition(list, 0, 4)

	seen := make(map[int]bool)
	for _, thing := range list {
		assert.False(t, seen[thing.OrderIndex])
		seen[thing.OrderIndex] = true
	}
	assertDense(t, list)
}

func ids(list []*orderedThing) []string {
	out := make([]string, len(list))
	for i, thing := range list {
		out[i] = thing.ID
	}
	return out
}
