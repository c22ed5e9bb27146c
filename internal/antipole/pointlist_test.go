package antipole

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointList_AddIsASetInsert(t *testing.T) {
	l := NewPointList()
	p := &Point{ID: 1}
	assert.True(t, l.Add(p, 1.0))
	assert.False(t, l.Add(p, 2.0), "re-adding the same point must report already-present")
	assert.Equal(t, 1, l.Size())
}

func TestPointList_Copy_IsIndependentSpine(t *testing.T) {
	l := NewPointList()
	p1, p2 := &Point{ID: 1}, &Point{ID: 2}
	l.Add(p1, 1.0)
	l.Add(p2, 2.0)

	cp := l.Copy()
	require.Equal(t, l.Size(), cp.Size())

	cp.Add(&Point{ID: 3}, 3.0)
	assert.Equal(t, 2, l.Size(), "mutating the copy must not affect the source")
	assert.Equal(t, 3, cp.Size())
}

func TestPointList_MoveByValue(t *testing.T) {
	src, dst := NewPointList(), NewPointList()
	p1, p2 := &Point{ID: 1}, &Point{ID: 2}
	src.Add(p1, 1.0)
	src.Add(p2, 2.0)

	assert.True(t, src.MoveByValue(p1, dst))
	assert.Equal(t, 1, src.Size())
	assert.Equal(t, 1, dst.Size())
	assert.False(t, src.MoveByValue(p1, dst), "p1 is no longer in src")
}

func TestPointList_MoveByIndex(t *testing.T) {
	src, dst := NewPointList(), NewPointList()
	for i := 0; i < 3; i++ {
		src.Add(&Point{ID: i}, float64(i))
	}

	assert.False(t, src.MoveByIndex(-1, dst))
	assert.False(t, src.MoveByIndex(3, dst))

	assert.True(t, src.MoveByIndex(1, dst))
	assert.Equal(t, 2, src.Size())
	assert.Equal(t, 1, dst.Size())
}

func TestPointList_Slice_PreservesAllElements(t *testing.T) {
	l := NewPointList()
	ids := map[int]bool{1: true, 2: true, 3: true}
	for id := range ids {
		l.Add(&Point{ID: id}, 0)
	}
	seen := map[int]bool{}
	for _, p := range l.Slice() {
		seen[p.ID] = true
	}
	assert.Equal(t, ids, seen)
}
