package scene

import (
	"room-planner/internal/planner/metrics"
	"room-planner/internal/planner/models"
)

// ============================================================
// Rendering boundary
// ============================================================

type RoomInfo struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Items int    `json:"items"`
}

// Camera: положение камеры для пресета; смотрит в центр пола.
type Camera struct {
	Position models.Vec3 `json:"position"`
	Target   models.Vec3 `json:"target"`
}

// View: всё, что нужно слою отрисовки для одного кадра.
type View struct {
	ProjectName string                     `json:"projectName"`
	Notes       string                     `json:"notes"`
	RoomKey     string                     `json:"roomKey"`
	RoomName    string                     `json:"roomName"`
	Rooms       []RoomInfo                 `json:"rooms"`
	Furniture   []models.FurnitureInstance `json:"furniture"`
	SelectedID  string                     `json:"selectedId,omitempty"`
	RoomSize    float64                    `json:"roomSize"`
	Settings    models.Settings            `json:"settings"`
	Camera      Camera                     `json:"camera"`
	CanUndo     bool                       `json:"canUndo"`
	CanRedo     bool                       `json:"canRedo"`
	CanPaste    bool                       `json:"canPaste"`
	Metrics     metrics.Summary            `json:"metrics"`
}

func (s *Store) View() View {
	r := s.room()
	rooms := make([]RoomInfo, 0, len(s.rooms))
	for _, room := range s.rooms {
		rooms = append(rooms, RoomInfo{Key: room.key, Name: room.name, Items: len(room.furniture)})
	}
	return View{
		ProjectName: s.projectName,
		Notes:       s.notes,
		RoomKey:     r.key,
		RoomName:    r.name,
		Rooms:       rooms,
		Furniture:   s.Furniture(),
		SelectedID:  s.selectedID,
		RoomSize:    s.settings.RoomSize,
		Settings:    s.settings,
		Camera:      CameraPreset(s.settings.CameraView, s.settings.RoomSize),
		CanUndo:     r.history.CanUndo(),
		CanRedo:     r.history.CanRedo(),
		CanPaste:    s.clipboard != nil,
		Metrics:     s.Metrics(),
	}
}

// CameraPreset вычисляет положение камеры для вида и размера комнаты.
func CameraPreset(view models.CameraView, roomSize float64) Camera {
	var pos models.Vec3
	switch view {
	case models.CameraTop:
		pos = models.Vec3{0, roomSize * 1.5, 0}
	case models.CameraFront:
		pos = models.Vec3{0, roomSize * 0.5, roomSize}
	case models.CameraSide:
		pos = models.Vec3{roomSize, roomSize * 0.5, 0}
	default:
		pos = models.Vec3{roomSize * 0.8, roomSize * 0.6, roomSize * 0.8}
	}
	return Camera{Position: pos}
}
