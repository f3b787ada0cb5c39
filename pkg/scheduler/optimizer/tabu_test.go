package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paiban/tabuplan/pkg/model"
)

func move(e, a, b int) model.Move {
	return model.Move{Employee: e, DayA: a, DayB: b}
}

func TestTabuList_EvictsOldest(t *testing.T) {
	tl := NewTabuList(10)

	for i := 0; i < 10; i++ {
		tl.Add(move(0, i, i+1))
	}
	require.Equal(t, 10, tl.Len())
	assert.True(t, tl.Contains(move(0, 0, 1)))

	tl.Add(move(0, 10, 11))

	assert.Equal(t, 10, tl.Len())
	assert.False(t, tl.Contains(move(0, 0, 1)), "第一个移动应被淘汰")
	assert.True(t, tl.Contains(move(0, 1, 2)))
	assert.True(t, tl.Contains(move(0, 10, 11)))

	moves := tl.Moves()
	require.Len(t, moves, 10)
	assert.Equal(t, move(0, 1, 2), moves[0])
	assert.Equal(t, move(0, 10, 11), moves[9])
}

func TestTabuList_NeverExceedsCapacity(t *testing.T) {
	tl := NewTabuList(3)
	for i := 0; i < 100; i++ {
		tl.Add(move(i%4, i%5, i%7))
		assert.LessOrEqual(t, tl.Len(), 3)
	}
	assert.Equal(t, 3, tl.Cap())
}

func TestTabuList_OrderedMovesAreDistinct(t *testing.T) {
	tl := NewTabuList(10)
	tl.Add(move(1, 2, 5))

	assert.True(t, tl.Contains(move(1, 2, 5)))
	assert.False(t, tl.Contains(move(1, 5, 2)))
}

func TestTabuList_DuplicateEntries(t *testing.T) {
	tl := NewTabuList(2)
	tl.Add(move(0, 0, 1))
	tl.Add(move(0, 0, 1))
	tl.Add(move(0, 1, 0))

	// 淘汰了一个副本，另一个副本仍在表中
	assert.True(t, tl.Contains(move(0, 0, 1)))

	tl.Add(move(0, 2, 3))
	assert.False(t, tl.Contains(move(0, 0, 1)))
}

func TestTabuList_DefaultCapacityAndClear(t *testing.T) {
	tl := NewTabuList(0)
	assert.Equal(t, model.DefaultTabuSize, tl.Cap())

	tl.Add(move(0, 0, 1))
	tl.Clear()

	assert.Equal(t, 0, tl.Len())
	assert.False(t, tl.Contains(move(0, 0, 1)))
	assert.Empty(t, tl.Moves())
}
