package placement

import (
	"math"

	"room-planner/internal/planner/models"
)

// ============================================================
// Footprint
// ============================================================

// Footprint: квадрат на плоскости пола, которым предмет участвует
// в проверке столкновений. Полуразмер равен масштабу предмета.
type Footprint struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

func FootprintOf(position models.Vec3, scale float64) Footprint {
	half := scale
	return Footprint{
		MinX: position[0] - half,
		MaxX: position[0] + half,
		MinZ: position[2] - half,
		MaxZ: position[2] + half,
	}
}

// Overlaps проверяет пересечение по замкнутым интервалам, касание границ тоже считается.
func (f Footprint) Overlaps(o Footprint) bool {
	return !(f.MaxX < o.MinX || f.MinX > o.MaxX || f.MaxZ < o.MinZ || f.MinZ > o.MaxZ)
}

// ============================================================
// Engine
// ============================================================

const snapStep = 0.5

type Engine struct {
	RoomSize           float64
	GridSnap           bool
	CollisionDetection bool
}

func New(settings models.Settings) Engine {
	return Engine{
		RoomSize:           settings.RoomSize,
		GridSnap:           settings.GridSnap,
		CollisionDetection: settings.CollisionDetection,
	}
}

// Limit: максимальная |X| и |Z| для центра предмета.
func (e Engine) Limit() float64 {
	return math.Max(0, e.RoomSize/2-models.WallMargin)
}

// Snap округляет X и Z до ближайших 0.5 (половина шага вверх).
func Snap(p models.Vec3) models.Vec3 {
	return models.Vec3{snap(p[0]), p[1], snap(p[2])}
}

func snap(v float64) float64 {
	return math.Floor(v/snapStep+0.5) * snapStep
}

// Clamp прижимает X и Z к границам комнаты, Y не трогает.
func (e Engine) Clamp(p models.Vec3) models.Vec3 {
	limit := e.Limit()
	return models.Vec3{
		clamp(p[0], -limit, limit),
		p[1],
		clamp(p[2], -limit, limit),
	}
}

// Place превращает кандидата в принятую позицию для items[index].
// Второй результат false, если ход отклонён из-за столкновения, позиция не меняется.
func (e Engine) Place(items []models.FurnitureInstance, index int, candidate models.Vec3) (models.Vec3, bool) {
	item := items[index]

	pos := candidate
	if e.GridSnap {
		pos = Snap(pos)
	}
	pos = e.Clamp(pos)
	pos[1] = item.Position[1]

	if e.CollisionDetection && Collides(items, index, pos, item.Scale) {
		return item.Position, false
	}
	return pos, true
}

// Collides проверяет, пересечёт ли items[index] в позиции pos любой другой предмет.
func Collides(items []models.FurnitureInstance, index int, pos models.Vec3, scale float64) bool {
	candidate := FootprintOf(pos, scale)
	for i, other := range items {
		if i == index {
			continue
		}
		if candidate.Overlaps(FootprintOf(other.Position, other.Scale)) {
			return true
		}
	}
	return false
}

// Overlapping возвращает пары индексов с пересекающимися footprint'ами.
func Overlapping(items []models.FurnitureInstance) [][2]int {
	var pairs [][2]int
	for i := 0; i < len(items); i++ {
		fi := FootprintOf(items[i].Position, items[i].Scale)
		for j := i + 1; j < len(items); j++ {
			if fi.Overlaps(FootprintOf(items[j].Position, items[j].Scale)) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(lo, math.Min(hi, v))
}
