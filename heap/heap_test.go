package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minHeap() *Heap[int] {
	return New[int](16, func(a, b int) bool { return a < b })
}

func TestExtractMinSequence(t *testing.T) {
	h := minHeap()
	for _, v := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		require.NoError(t, h.Insert(v))
	}
	var got []int
	for h.Len() > 0 {
		v, err := h.Extract()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 1, 2, 3, 4, 5, 6, 9}, got)
}

func TestExtractYieldsNonIncreasingUnderMaxHeap(t *testing.T) {
	h := New[int](8, func(a, b int) bool { return a > b })
	for _, v := range []int{5, 3, 8, 1} {
		require.NoError(t, h.Insert(v))
	}
	prev := 1 << 62
	for h.Len() > 0 {
		v, err := h.Extract()
		require.NoError(t, err)
		assert.LessOrEqual(t, v, prev)
		prev = v
	}
}

func TestInsertFullReturnsErrFull(t *testing.T) {
	h := New[int](2, func(a, b int) bool { return a < b })
	require.NoError(t, h.Insert(1))
	require.NoError(t, h.Insert(2))
	assert.ErrorIs(t, h.Insert(3), ErrFull)
}

func TestExtractEmptyReturnsErrEmpty(t *testing.T) {
	h := minHeap()
	_, err := h.Extract()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestResizeShrinkBelowSizeFails(t *testing.T) {
	h := minHeap()
	require.NoError(t, h.Insert(1))
	require.NoError(t, h.Insert(2))
	assert.ErrorIs(t, h.Resize(1), ErrShrink)
}

func TestResizeGrowPreservesElements(t *testing.T) {
	h := New[int](4, func(a, b int) bool { return a < b })
	for _, v := range []int{4, 2, 7, 1} {
		require.NoError(t, h.Insert(v))
	}
	require.NoError(t, h.Resize(10))
	assert.Equal(t, 10, h.Cap())
	var got []int
	for h.Len() > 0 {
		v, _ := h.Extract()
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 4, 7}, got)
}

func TestDestroyFreesEachOnce(t *testing.T) {
	var freed []int
	h := New[int](4, func(a, b int) bool { return a < b }, WithFree(func(v int) { freed = append(freed, v) }))
	require.NoError(t, h.Insert(1))
	require.NoError(t, h.Insert(2))
	h.Destroy()
	assert.ElementsMatch(t, []int{1, 2}, freed)
}
