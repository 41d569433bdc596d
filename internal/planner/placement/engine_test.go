package placement

import (
	"math"
	"testing"

	"room-planner/internal/planner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sofa(id string, pos models.Vec3) models.FurnitureInstance {
	return models.FurnitureInstance{ID: id, Type: models.TypeSofa, Position: pos, Scale: 1}
}

func TestSnap(t *testing.T) {
	assert.Equal(t, models.Vec3{1.5, 0, 0.5}, Snap(models.Vec3{1.3, 0, 0.7}))
	assert.Equal(t, models.Vec3{0.5, 2, -0.5}, Snap(models.Vec3{0.25, 2, -0.74}))
	// половина шага округляется вверх
	assert.Equal(t, models.Vec3{0.5, 0, 0}, Snap(models.Vec3{0.25, 0, -0.25}))
}

func TestClamp(t *testing.T) {
	e := Engine{RoomSize: 10}
	assert.Equal(t, 4.5, e.Limit())

	assert.Equal(t, models.Vec3{4.5, 1, -4.5}, e.Clamp(models.Vec3{12, 1, -7}))
	assert.Equal(t, models.Vec3{1, 0, 2}, e.Clamp(models.Vec3{1, 0, 2}))
	assert.Equal(t, models.Vec3{0, 0, 0}, e.Clamp(models.Vec3{math.NaN(), 0, 0}))
}

func TestFootprintOverlaps(t *testing.T) {
	a := FootprintOf(models.Vec3{0, 0, 0}, 1)
	assert.True(t, a.Overlaps(FootprintOf(models.Vec3{0.5, 0, 0}, 1)))
	// касание границ считается пересечением
	assert.True(t, a.Overlaps(FootprintOf(models.Vec3{2, 0, 0}, 1)))
	assert.False(t, a.Overlaps(FootprintOf(models.Vec3{2.01, 0, 0}, 1)))
	assert.False(t, a.Overlaps(FootprintOf(models.Vec3{0, 0, -3}, 1)))
}

func TestPlace(t *testing.T) {
	t.Run("collision rejects move", func(t *testing.T) {
		e := Engine{RoomSize: 10, CollisionDetection: true}
		items := []models.FurnitureInstance{
			sofa("a", models.Vec3{0, 0, 0}),
			sofa("b", models.Vec3{0, 0, 0}),
		}

		pos, ok := e.Place(items, 1, models.Vec3{0.5, 0, 0})
		assert.False(t, ok)
		assert.Equal(t, models.Vec3{0, 0, 0}, pos)
	})

	t.Run("free spot accepted", func(t *testing.T) {
		e := Engine{RoomSize: 10, CollisionDetection: true}
		items := []models.FurnitureInstance{
			sofa("a", models.Vec3{0, 0, 0}),
			sofa("b", models.Vec3{0, 0, 0}),
		}

		pos, ok := e.Place(items, 1, models.Vec3{3, 0, 3})
		assert.True(t, ok)
		assert.Equal(t, models.Vec3{3, 0, 3}, pos)
	})

	t.Run("collision detection off", func(t *testing.T) {
		e := Engine{RoomSize: 10}
		items := []models.FurnitureInstance{
			sofa("a", models.Vec3{0, 0, 0}),
			sofa("b", models.Vec3{0, 0, 0}),
		}

		pos, ok := e.Place(items, 1, models.Vec3{0.5, 0, 0})
		assert.True(t, ok)
		assert.Equal(t, models.Vec3{0.5, 0, 0}, pos)
	})

	t.Run("snap then clamp keeps height", func(t *testing.T) {
		e := Engine{RoomSize: 10, GridSnap: true}
		items := []models.FurnitureInstance{sofa("a", models.Vec3{0, 0.3, 0})}

		pos, ok := e.Place(items, 0, models.Vec3{1.3, 5, 0.7})
		require.True(t, ok)
		assert.Equal(t, models.Vec3{1.5, 0.3, 0.5}, pos)

		pos, ok = e.Place(items, 0, models.Vec3{9.9, 0, -9.9})
		require.True(t, ok)
		assert.Equal(t, models.Vec3{4.5, 0.3, -4.5}, pos)
	})
}

func TestOverlapping(t *testing.T) {
	items := []models.FurnitureInstance{
		sofa("a", models.Vec3{0, 0, 0}),
		sofa("b", models.Vec3{1, 0, 0}),
		sofa("c", models.Vec3{4, 0, 4}),
	}
	assert.Equal(t, [][2]int{{0, 1}}, Overlapping(items))
	assert.Empty(t, Overlapping(items[2:]))
}
