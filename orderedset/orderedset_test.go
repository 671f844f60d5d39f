package orderedset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lessInt(a, b int) bool { return a < b }

func drainInOrder(t *testing.T, s *Set[int]) []int {
	t.Helper()
	var got []int
	if err := s.CursorFirst(); err != nil {
		return got
	}
	for {
		v, err := s.Cursor()
		assert.NoError(t, err)
		got = append(got, v)
		if err := s.CursorNext(); err != nil {
			break
		}
	}
	return got
}

func TestAddKeepsSortedOrder(t *testing.T) {
	s := New[int](lessInt)
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6} {
		existed := s.Add(v)
		assert.False(t, existed)
	}
	assert.Equal(t, 9, s.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, drainInOrder(t, s))
}

func TestAddDuplicateLeavesSetUnchanged(t *testing.T) {
	s := New[int](lessInt)
	assert.False(t, s.Add(1))
	assert.False(t, s.Add(2))
	assert.True(t, s.Add(1))
	assert.Equal(t, 2, s.Len())
}

func TestContains(t *testing.T) {
	s := New[int](lessInt)
	for _, v := range []int{5, 3, 8} {
		s.Add(v)
	}
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(99))
}

func TestRemove(t *testing.T) {
	s := New[int](lessInt)
	for _, v := range []int{5, 3, 8, 1} {
		s.Add(v)
	}
	removed, ok := s.Remove(3)
	assert.True(t, ok)
	assert.Equal(t, 3, removed)
	assert.False(t, s.Contains(3))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int{1, 5, 8}, drainInOrder(t, s))
}

func TestRemoveMissingReturnsFalse(t *testing.T) {
	s := New[int](lessInt)
	s.Add(1)
	_, ok := s.Remove(99)
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestRemoveEndpointsUpdatesFirstLast(t *testing.T) {
	s := New[int](lessInt)
	for _, v := range []int{1, 2, 3} {
		s.Add(v)
	}
	s.Remove(1)
	s.Remove(3)
	assert.Equal(t, []int{2}, drainInOrder(t, s))
}

func TestCursorEmptySetReturnsErrEmpty(t *testing.T) {
	s := New[int](lessInt)
	_, err := s.Cursor()
	assert.ErrorIs(t, err, ErrEmpty)
	assert.ErrorIs(t, s.CursorNext(), ErrEmpty)
	assert.ErrorIs(t, s.CursorFirst(), ErrEmpty)
}

func TestCursorOutOfBounds(t *testing.T) {
	s := New[int](lessInt)
	s.Add(1)
	s.Add(2)
	require := assert.New(t)
	require.NoError(s.CursorFirst())
	require.ErrorIs(s.CursorPrevious(), ErrOutOfBounds)
	require.NoError(s.CursorLast())
	require.ErrorIs(s.CursorNext(), ErrOutOfBounds)
}

func TestCursorNavigatesBothDirections(t *testing.T) {
	s := New[int](lessInt)
	for _, v := range []int{3, 1, 2} {
		s.Add(v)
	}
	s.CursorFirst()
	v, _ := s.Cursor()
	assert.Equal(t, 1, v)
	s.CursorNext()
	v, _ = s.Cursor()
	assert.Equal(t, 2, v)
	s.CursorPrevious()
	v, _ = s.Cursor()
	assert.Equal(t, 1, v)
}

func TestFilterFindsMatchingElement(t *testing.T) {
	s := New[int](lessInt)
	for _, v := range []int{5, 3, 8, 1, 4} {
		s.Add(v)
	}
	v, ok := s.Filter(func(x int) bool { return x%2 == 0 })
	assert.True(t, ok)
	assert.Contains(t, []int{8, 4}, v)
}

func TestFilterNoMatchReturnsFalse(t *testing.T) {
	s := New[int](lessInt)
	for _, v := range []int{1, 3, 5} {
		s.Add(v)
	}
	_, ok := s.Filter(func(x int) bool { return x%2 == 0 })
	assert.False(t, ok)
}

func TestDestroyFreesEachElementOnce(t *testing.T) {
	var freed []int
	s := New[int](lessInt, WithFree(func(v int) { freed = append(freed, v) }))
	for _, v := range []int{5, 3, 8, 1} {
		s.Add(v)
	}
	s.Destroy()
	assert.ElementsMatch(t, []int{5, 3, 8, 1}, freed)
	assert.Equal(t, 0, s.Len())
}

func TestRemoveInvokesFreeHook(t *testing.T) {
	var freed []int
	s := New[int](lessInt, WithFree(func(v int) { freed = append(freed, v) }))
	s.Add(1)
	s.Add(2)
	s.Remove(1)
	assert.Equal(t, []int{1}, freed)
}

func TestReplaceInsertsWhenAbsent(t *testing.T) {
	s := New[int](lessInt)
	old, existed := s.Replace(1)
	assert.False(t, existed)
	assert.Equal(t, 0, old)
	assert.True(t, s.Contains(1))
	assert.Equal(t, 1, s.Len())
}

func TestReplaceOverwritesWithoutInvokingFreeHook(t *testing.T) {
	var freed []int
	s := New[int](lessInt, WithFree(func(v int) { freed = append(freed, v) }))
	s.Add(1)
	s.Add(2)

	old, existed := s.Replace(1)
	assert.True(t, existed)
	assert.Equal(t, 1, old)
	assert.Empty(t, freed, "Replace must not fire the free hook on the displaced element")
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []int{1, 2}, drainInOrder(t, s))
}
