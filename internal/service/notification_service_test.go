package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsUnread(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	earlier := base.Add(-time.Hour)
	later := base.Add(time.Hour)

	t.Run("no notifications", func(t *testing.T) {
		assert.False(t, IsUnread(nil, nil))
		assert.False(t, IsUnread(nil, &base))
	})
	t.Run("never checked", func(t *testing.T) {
		assert.True(t, IsUnread(&base, nil))
	})
	t.Run("checked after newest", func(t *testing.T) {
		assert.False(t, IsUnread(&earlier, &base))
	})
	t.Run("newest after check", func(t *testing.T) {
		assert.True(t, IsUnread(&later, &base))
	})
	t.Run("exactly at watermark counts as read", func(t *testing.T) {
		assert.False(t, IsUnread(&base, &base))
	})
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", Excerpt("short"))

	long := strings.Repeat("a", 200)
	got := Excerpt(long)
	assert.Equal(t, strings.Repeat("a", 80)+"…", got)

	// Multi-byte runes must not be cut mid-sequence.
	emoji := strings.Repeat("💪", 100)
	got = Excerpt(emoji)
	assert.Equal(t, strings.Repeat("💪", 80)+"…", got)
}
