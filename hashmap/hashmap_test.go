package hashmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddGetRemove(t *testing.T) {
	m := New[int](4)
	require.NoError(t, m.Add("a", 1))
	require.NoError(t, m.Add("b", 2))
	assert.Equal(t, 2, m.Len())

	v, err := m.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = m.Remove("a")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, m.Len())

	_, err = m.Get("a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddExisting(t *testing.T) {
	m := New[int](4)
	require.NoError(t, m.Add("k", 1))
	err := m.Add("k", 2)
	assert.ErrorIs(t, err, ErrExists)
	v, _ := m.Get("k")
	assert.Equal(t, 1, v, "failed insert must leave container unchanged")
}

func TestBucketCountIsPowerOfTwo(t *testing.T) {
	m := New[string](6)
	assert.Equal(t, 64, m.BucketCount())
}

func TestCollisionChaining(t *testing.T) {
	// exponent 0 forces every key into the single bucket, exercising the
	// per-bucket linked list directly.
	m := New[int](0)
	for i := 0; i < 20; i++ {
		require.NoError(t, m.Add(string(rune('a'+i)), i))
	}
	assert.Equal(t, 1, m.BucketCount())
	for i := 0; i < 20; i++ {
		v, err := m.Get(string(rune('a' + i)))
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

func TestDestroyFreesEachOnce(t *testing.T) {
	freed := map[string]int{}
	m := New[int](4, WithFree(func(k string, v int) { freed[k] = v }))
	require.NoError(t, m.Add("x", 1))
	require.NoError(t, m.Add("y", 2))
	m.Destroy()
	assert.Equal(t, map[string]int{"x": 1, "y": 2}, freed)
}
