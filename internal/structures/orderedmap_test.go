package structures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedMapKeepsInsertionOrder(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("video", 1)
	m.Set("audio", 2)
	m.Set("photo", 3)

	assert.Equal(t, []string{"video", "audio", "photo"}, m.Keys())
	assert.Equal(t, 3, m.Len())
}

func TestOrderedMapReplaceKeepsPosition(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("video", 1)
	m.Set("audio", 2)

	old, existed := m.Set("video", 10)
	assert.True(t, existed)
	assert.Equal(t, 1, old)
	assert.Equal(t, []string{"video", "audio"}, m.Keys())

	value, ok := m.Get("video")
	assert.True(t, ok)
	assert.Equal(t, 10, value)
}

func TestOrderedMapGetOrDefault(t *testing.T) {
	m := NewOrderedMap[[]string]()
	m.Set("audio", []string{"a"})

	assert.Equal(t, []string{"a"}, m.GetOrDefault("audio", nil))
	assert.Equal(t, []string{"fallback"}, m.GetOrDefault("video", []string{"fallback"}))

	_, ok := m.Get("video")
	assert.False(t, ok)
}
