package scene

import (
	"math"
	"strings"

	"room-planner/internal/planner/models"
)

// ============================================================
// Rooms & settings
// ============================================================

// SwitchRoom делает комнату текущей. Содержимое и история других комнат
// не меняются; выделение сбрасывается.
func (s *Store) SwitchRoom(key string) bool {
	for i, r := range s.rooms {
		if r.key == key {
			if i != s.current {
				s.current = i
				s.selectedID = ""
				s.dirty = false
			}
			return true
		}
	}
	return false
}

// SetRoomSize меняет размер всех комнат и прижимает предметы к новым стенам.
// Снимки истории при этом не создаются, а незафиксированным
// перемещением это не считается.
func (s *Store) SetRoomSize(size float64) float64 {
	s.settings.RoomSize = clampRoomSize(size)
	eng := s.engine()
	for _, r := range s.rooms {
		next := make([]models.FurnitureInstance, len(r.furniture))
		for i, item := range r.furniture {
			item.Position = eng.Clamp(item.Position)
			next[i] = item
		}
		r.furniture = next
	}
	return s.settings.RoomSize
}

func clampRoomSize(size float64) float64 {
	if math.IsNaN(size) || size == 0 {
		return models.DefaultSettings().RoomSize
	}
	return math.Max(models.MinRoomSize, math.Min(models.MaxRoomSize, size))
}

func (s *Store) SetLightIntensity(v float64) float64 {
	if math.IsNaN(v) {
		return s.settings.LightIntensity
	}
	s.settings.LightIntensity = math.Max(models.MinLightIntensity, math.Min(models.MaxLightIntensity, v))
	return s.settings.LightIntensity
}

func (s *Store) SetWallColor(color string) { s.settings.WallColor = color }
func (s *Store) SetFloorColor(color string) { s.settings.FloorColor = color }

func (s *Store) ToggleDayMode() bool {
	s.settings.IsDayMode = !s.settings.IsDayMode
	return s.settings.IsDayMode
}

func (s *Store) SetDayMode(on bool) { s.settings.IsDayMode = on }

func (s *Store) SetCameraView(view models.CameraView) bool {
	if !view.Valid() {
		return false
	}
	s.settings.CameraView = view
	return true
}

func (s *Store) SetGridSnap(on bool) { s.settings.GridSnap = on }
func (s *Store) SetCollisionDetection(on bool) { s.settings.CollisionDetection = on }
func (s *Store) SetShowGrid(on bool) { s.settings.ShowGrid = on }
func (s *Store) SetShowMeasurements(on bool) { s.settings.ShowMeasurements = on }

func (s *Store) SetProjectName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultProjectName
	}
	s.projectName = name
}

func (s *Store) SetNotes(notes string) { s.notes = notes }
