package export

import (
	"encoding/json"
	"testing"
	"time"

	"room-planner/internal/planner/models"
	"room-planner/internal/planner/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	s := scene.New(scene.Options{})
	sofa, err := s.Catalog().Entry(models.TypeSofa)
	require.NoError(t, err)
	s.AddItem(sofa)
	require.True(t, s.SwitchRoom("bedroom"))
	bed, err := s.Catalog().Entry(models.TypeBed)
	require.NoError(t, err)
	s.AddItem(bed)
	s.SetProjectName("Loft Plan")
	s.SetNotes("north wall is brick")

	now := time.Date(2024, 3, 5, 10, 20, 30, 123_000_000, time.UTC)
	doc := Build(s, now)

	assert.Equal(t, "Loft Plan", doc.ProjectName)
	assert.Equal(t, "north wall is brick", doc.Notes)
	assert.Len(t, doc.Rooms, len(scene.DefaultRooms))
	assert.Len(t, doc.Rooms["livingRoom"].Furniture, 1)
	assert.Equal(t, "Bedroom", doc.Rooms["bedroom"].Name)
	assert.Empty(t, doc.Rooms["kitchen"].Furniture)

	assert.Equal(t, 55000.0, doc.Metadata.TotalBudget)
	assert.Equal(t, 2, doc.Metadata.TotalItems)
	assert.Equal(t, "2024-03-05T10:20:30.123Z", doc.Metadata.Timestamp)
	assert.Equal(t, 10.0, doc.Settings.RoomSize)
}

func TestDocumentJSON(t *testing.T) {
	s := scene.New(scene.Options{})
	data, err := json.Marshal(Build(s, time.Unix(0, 0)))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"projectName", "rooms", "settings", "metadata", "notes"} {
		assert.Contains(t, raw, key)
	}

	settings := raw["settings"].(map[string]any)
	assert.ElementsMatch(t, []string{"wallColor", "floorColor", "roomSize", "lightIntensity", "isDayMode"}, keys(settings))

	kitchen := raw["rooms"].(map[string]any)["kitchen"].(map[string]any)
	assert.Equal(t, []any{}, kitchen["furniture"])
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestFileName(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	assert.Equal(t, "My-Design-1700000000123.json", FileName("My Design", now))
	assert.Equal(t, "Big-Loft-Plan-1700000000123.json", FileName("Big \t Loft  Plan", now))
}
