package export

import (
	"fmt"
	"regexp"
	"time"

	"room-planner/internal/planner/metrics"
	"room-planner/internal/planner/models"
	"room-planner/internal/planner/scene"
)

// ============================================================
// Export document
// ============================================================

type RoomDoc struct {
	Name      string                     `json:"name"`
	Furniture []models.FurnitureInstance `json:"furniture"`
}

type SettingsDoc struct {
	WallColor      string  `json:"wallColor"`
	FloorColor     string  `json:"floorColor"`
	RoomSize       float64 `json:"roomSize"`
	LightIntensity float64 `json:"lightIntensity"`
	IsDayMode      bool    `json:"isDayMode"`
}

type Metadata struct {
	TotalBudget float64 `json:"totalBudget"`
	TotalItems  int     `json:"totalItems"`
	Timestamp   string  `json:"timestamp"`
}

type Document struct {
	ProjectName string             `json:"projectName"`
	Rooms       map[string]RoomDoc `json:"rooms"`
	Settings    SettingsDoc        `json:"settings"`
	Metadata    Metadata           `json:"metadata"`
	Notes       string             `json:"notes"`
}

// Build собирает документ экспорта из текущего состояния.
func Build(s *scene.Store, now time.Time) Document {
	rooms := s.Rooms()
	settings := s.Settings()

	doc := Document{
		ProjectName: s.ProjectName(),
		Rooms:       make(map[string]RoomDoc, len(rooms)),
		Settings: SettingsDoc{
			WallColor:      settings.WallColor,
			FloorColor:     settings.FloorColor,
			RoomSize:       settings.RoomSize,
			LightIntensity: settings.LightIntensity,
			IsDayMode:      settings.IsDayMode,
		},
		Metadata: Metadata{
			TotalBudget: metrics.Budget(rooms),
			TotalItems:  metrics.TotalItems(rooms),
			Timestamp:   now.UTC().Format("2006-01-02T15:04:05.000Z"),
		},
		Notes: s.Notes(),
	}
	for _, r := range rooms {
		doc.Rooms[r.Key] = RoomDoc{Name: r.Name, Furniture: r.Furniture}
	}
	return doc
}

var whitespace = regexp.MustCompile(`\s+`)

// FileName возвращает имя файла для скачивания "<project>-<unix ms>.json".
func FileName(projectName string, now time.Time) string {
	return fmt.Sprintf("%s-%d.json", whitespace.ReplaceAllString(projectName, "-"), now.UnixMilli())
}
