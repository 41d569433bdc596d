package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ROOM_SIZE", "GRID_SNAP", "CORS_ORIGINS", "HISTORY_LIMIT", "COLLISION_DETECTION"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 10.0, cfg.RoomSize)
	assert.False(t, cfg.GridSnap)
	assert.True(t, cfg.CollisionDetection)
	assert.Equal(t, 100, cfg.HistoryLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ROOM_SIZE", "12.5")
	t.Setenv("GRID_SNAP", "true")
	t.Setenv("COLLISION_DETECTION", "0")
	t.Setenv("HISTORY_LIMIT", "abc")
	t.Setenv("CORS_ORIGINS", " http://a.test , ,http://b.test")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 12.5, cfg.RoomSize)
	assert.True(t, cfg.GridSnap)
	assert.False(t, cfg.CollisionDetection)
	assert.Equal(t, 100, cfg.HistoryLimit)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}
