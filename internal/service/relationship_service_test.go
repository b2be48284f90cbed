package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPokeAllowed(t *testing.T) {
	cooldown := time.Hour
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("never poked", func(t *testing.T) {
		assert.True(t, PokeAllowed(nil, now, cooldown))
	})
	t.Run("inside cooldown", func(t *testing.T) {
		last := now.Add(-30 * time.Minute)
		assert.False(t, PokeAllowed(&last, now, cooldown))
	})
	t.Run("exactly at cooldown boundary", func(t *testing.T) {
		last := now.Add(-cooldown)
		assert.True(t, PokeAllowed(&last, now, cooldown))
	})
	t.Run("after cooldown", func(t *testing.T) {
		last := now.Add(-2 * time.Hour)
		assert.True(t, PokeAllowed(&last, now, cooldown))
	})
}
