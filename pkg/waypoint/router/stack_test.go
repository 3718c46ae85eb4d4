package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_PushPopPeek(t *testing.T) {
	s := NewStack[string]()
	require.True(t, s.IsEmpty())

	_, ok := s.Pop()
	assert.False(t, ok)
	_, ok = s.Peek()
	assert.False(t, ok)

	s.Push("list")
	s.Push("detail")
	assert.Equal(t, 2, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "detail", top)

	popped, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, "detail", popped)
	assert.Equal(t, []string{"list"}, s.Entries())
}

func TestStack_EntriesIsACopy(t *testing.T) {
	s := NewStack[int]()
	s.Push(1)
	s.Push(2)

	entries := s.Entries()
	entries[0] = 99

	assert.Equal(t, []int{1, 2}, s.Entries())
}

func TestStack_Clear(t *testing.T) {
	s := NewStack[int]()
	s.Push(1)
	s.Push(2)

	s.Clear()

	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Entries())
}

func TestBinding_ConstantIgnoresWrites(t *testing.T) {
	b := Constant[string]()
	require.True(t, b.IsConstant())

	b.Set("about")
	b.Clear()

	v, ok := b.Get()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestBinding_ReadsAndWritesThroughClosures(t *testing.T) {
	var s slot[string]
	b := NewBinding(
		func() (string, bool) { return s.value, s.present },
		func(v string, present bool) { s = slot[string]{value: v, present: present} },
	)
	require.False(t, b.IsConstant())

	b.Set("about")
	v, ok := b.Get()
	require.True(t, ok)
	assert.Equal(t, "about", v)

	b.Clear()
	_, ok = b.Get()
	assert.False(t, ok)
}
