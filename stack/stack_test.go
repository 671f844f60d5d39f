package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLIFOOrder(t *testing.T) {
	s := New[int]()
	for _, v := range []int{1, 2, 3} {
		s.Push(v)
	}
	for _, want := range []int{3, 2, 1} {
		got, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, s.IsEmpty())
}

func TestPopEmpty(t *testing.T) {
	s := New[string]()
	_, err := s.Pop()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestStackDestroyFreesEachOnce(t *testing.T) {
	var freed []int
	s := New[int](WithFree(func(v int) { freed = append(freed, v) }))
	s.Push(1)
	s.Push(2)
	s.Destroy()
	assert.Equal(t, []int{2, 1}, freed)
}
