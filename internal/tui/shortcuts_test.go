package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortcutRune(t *testing.T) {
	tests := []struct {
		index int
		want  rune
		ok    bool
	}{
		{0, '0', true},
		{9, '9', true},
		{10, 'a', true},
		{25, 'p', true},
		{26, 'r', true}, // 'q' is reserved for save-and-quit
		{33, 'y', true},
		{34, 0, false}, // past 'y': no shortcut
		{-1, 0, false},
	}

	for _, tt := range tests {
		got, ok := shortcutRune(tt.index)
		assert.Equal(t, tt.ok, ok, "index %d", tt.index)
		if tt.ok {
			assert.Equal(t, string(tt.want), string(got), "index %d", tt.index)
		}
	}
}

func TestShortcutNeverQ(t *testing.T) {
	for i := 0; i < 100; i++ {
		if c, ok := shortcutRune(i); ok {
			assert.NotEqual(t, 'q', c, "index %d", i)
		}
	}
}

func TestShortcutLabel(t *testing.T) {
	assert.Equal(t, "[3] ", shortcutLabel(3))
	assert.Equal(t, "[r] ", shortcutLabel(26))
	assert.Empty(t, shortcutLabel(40))
}

func TestIndexForShortcutRoundTrip(t *testing.T) {
	for i := 0; i < 34; i++ {
		c, ok := shortcutRune(i)
		assert.True(t, ok)
		idx, ok := indexForShortcut(c)
		assert.True(t, ok)
		assert.Equal(t, i, idx)
	}

	_, ok := indexForShortcut('q')
	assert.False(t, ok)
	_, ok = indexForShortcut('z')
	assert.False(t, ok)
	_, ok = indexForShortcut('!')
	assert.False(t, ok)
}
