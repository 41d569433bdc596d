package catalog

import "room-planner/internal/planner/models"

// ============================================================
// Fixed tables
// ============================================================

var prices = map[models.FurnitureType]float64{
	models.TypeSofa:      25000,
	models.TypeChair:     5000,
	models.TypeTable:     8000,
	models.TypeBed:       30000,
	models.TypeWardrobe:  40000,
	models.TypeTVStand:   12000,
	models.TypeBookshelf: 15000,
	models.TypeDesk:      18000,
	models.TypeWindow:    3000,
	models.TypeDoor:      8000,
	models.TypePainting:  2000,
	models.TypePlant:     1500,
	models.TypeLamp:      3000,
	models.TypeRug:       5000,
}

// Price: цена предмета при масштабе 1; неизвестный тип стоит 0.
func Price(t models.FurnitureType) float64 {
	return prices[t]
}

// BaseArea: условная площадь (м²) при масштабе 1.
// Не вычисляется из габаритов: таблица фиксирована.
func BaseArea(t models.FurnitureType) float64 {
	switch t {
	case models.TypeSofa:
		return 1.8
	case models.TypeBed:
		return 4.4
	case models.TypeTable:
		return 0.72
	default:
		return 0.5
	}
}
