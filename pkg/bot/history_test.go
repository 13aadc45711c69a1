package bot

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	h := NewHistory(2)
	assert.Nil(t, h.Curr(1))
	assert.Nil(t, h.Undo(1))

	a := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	b := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	c := image.NewNRGBA(image.Rect(0, 0, 3, 3))

	h.Push(1, a, nil)
	h.Push(1, b, []string{"sort"})
	h.Push(1, c, []string{"shift"})
	h.Push(2, a, nil)

	assert.Equal(t, 2, h.Len(1))
	assert.Equal(t, 1, h.Len(2))
	require.NotNil(t, h.Curr(1))
	assert.Same(t, c, h.Curr(1).img)

	prev := h.Undo(1)
	require.NotNil(t, prev)
	assert.Same(t, b, prev.img)
	assert.Equal(t, []string{"sort"}, prev.effects)
	assert.Equal(t, 1, h.Len(1))

	// the oldest entry was evicted, nothing left to step back to
	assert.Nil(t, h.Undo(1))
	assert.Same(t, b, h.Curr(1).img)
}
