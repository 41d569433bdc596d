package metrics

import (
	"math"

	"room-planner/internal/planner/catalog"
	"room-planner/internal/planner/models"
)

// ============================================================
// Derived Metrics
// ============================================================

const (
	ecoPoints         = 15
	maxSustainability = 100
)

type Summary struct {
	Budget           float64 `json:"budget"`
	TotalItems       int     `json:"totalItems"`
	RoomItems        int     `json:"roomItems"`
	SpaceUtilization float64 `json:"spaceUtilization"`
	Sustainability   float64 `json:"sustainabilityScore"`
}

// Budget: сумма price(type)*scale по всем комнатам.
func Budget(rooms []models.Room) float64 {
	var total float64
	for _, room := range rooms {
		for _, item := range room.Furniture {
			total += catalog.Price(item.Type) * item.Scale
		}
	}
	return total
}

func TotalItems(rooms []models.Room) int {
	n := 0
	for _, room := range rooms {
		n += len(room.Furniture)
	}
	return n
}

// SpaceUtilization: доля площади пола (%) под мебелью текущей комнаты.
func SpaceUtilization(furniture []models.FurnitureInstance, roomSize float64) float64 {
	if roomSize <= 0 {
		return 0
	}
	var area float64
	for _, item := range furniture {
		area += catalog.BaseArea(item.Type) * item.Scale * item.Scale
	}
	return area / (roomSize * roomSize) * 100
}

// Sustainability: 15 очков за каждый эко-предмет, не больше 100.
func Sustainability(furniture []models.FurnitureInstance) float64 {
	eco := 0
	for _, item := range furniture {
		if item.Eco {
			eco++
		}
	}
	return math.Min(maxSustainability, float64(eco*ecoPoints))
}

// Compute собирает все метрики. Бюджет и счётчик считаются по всем
// комнатам, остальное по текущей.
func Compute(rooms []models.Room, current []models.FurnitureInstance, roomSize float64) Summary {
	return Summary{
		Budget:           Budget(rooms),
		TotalItems:       TotalItems(rooms),
		RoomItems:        len(current),
		SpaceUtilization: SpaceUtilization(current, roomSize),
		Sustainability:   Sustainability(current),
	}
}
