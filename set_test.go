package symtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_Add(t *testing.T) {
	ss := NewSet()

	require.NoError(t, ss.Add("foo"))
	require.ErrorIs(t, ss.Add("foo"), ErrDuplicateKey)

	assert.True(t, ss.Has("foo"))
	assert.False(t, ss.Has("bar"))
	assert.Equal(t, 1, ss.Len())
}

func TestSet_Delete(t *testing.T) {
	ss := NewSet()

	require.NoError(t, ss.Add("A"))
	require.NoError(t, ss.Add("B"))

	assert.True(t, ss.Delete("A"))
	assert.False(t, ss.Delete("A"))
	assert.False(t, ss.Has("A"))
	assert.Equal(t, []string{"B"}, ss.Keys())
}

func TestSet_Collisions(t *testing.T) {
	ss := NewSet(WithHashFunc[struct{}](collisionHash))

	for _, key := range []string{"A", "B", "C"} {
		require.NoError(t, ss.Add(key))
	}

	// Delete the middle of the chain.
	require.True(t, ss.Delete("B"))
	require.True(t, ss.Has("C"))
	require.True(t, ss.Has("A"))
	require.Equal(t, 2, ss.Stats().LongestChain)
}

func TestSet_Reset(t *testing.T) {
	ss := NewSet()

	for _, key := range genKeys(0, 1100) {
		require.NoError(t, ss.Add(key))
	}
	require.Equal(t, 2039, ss.Stats().Capacity)

	ss.Reset()

	assert.Zero(t, ss.Len())
	assert.False(t, ss.Has("key-0"))
	assert.Equal(t, 2039, ss.Stats().Capacity)

	ss.Free()
	assert.Panics(t, func() { ss.Has("key-0") })
}
