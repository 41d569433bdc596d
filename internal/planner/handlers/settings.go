package handlers

import (
	"room-planner/internal/planner/models"
	"room-planner/internal/planner/scene"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Settings
// ============================================================

// settingsRequest описывает частичное обновление, nil-поля не меняются.
type settingsRequest struct {
	ProjectName        *string            `json:"projectName"`
	Notes              *string            `json:"notes"`
	WallColor          *string            `json:"wallColor"`
	FloorColor         *string            `json:"floorColor"`
	RoomSize           *float64           `json:"roomSize"`
	LightIntensity     *float64           `json:"lightIntensity"`
	IsDayMode          *bool              `json:"isDayMode"`
	CameraView         *models.CameraView `json:"cameraView"`
	ShowMeasurements   *bool              `json:"showMeasurements"`
	ShowGrid           *bool              `json:"showGrid"`
	GridSnap           *bool              `json:"gridSnap"`
	CollisionDetection *bool              `json:"collisionDetection"`
}

func (h *PlannerHandler) UpdateSettings(c fiber.Ctx) error {
	var req settingsRequest
	if err := decodeBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	var wall, floor string
	if req.WallColor != nil {
		v, err := normalizeColor(*req.WallColor)
		if err != nil || v == "" {
			return badRequest(c, "invalid wallColor")
		}
		wall = v
	}
	if req.FloorColor != nil {
		v, err := normalizeColor(*req.FloorColor)
		if err != nil || v == "" {
			return badRequest(c, "invalid floorColor")
		}
		floor = v
	}
	if req.CameraView != nil && !req.CameraView.Valid() {
		return badRequest(c, "cameraView must be perspective, top, front or side")
	}

	return h.withStore(c, func(s *scene.Store) error {
		if req.ProjectName != nil {
			s.SetProjectName(*req.ProjectName)
		}
		if req.Notes != nil {
			s.SetNotes(*req.Notes)
		}
		if wall != "" {
			s.SetWallColor(wall)
		}
		if floor != "" {
			s.SetFloorColor(floor)
		}
		if req.RoomSize != nil {
			s.SetRoomSize(*req.RoomSize)
		}
		if req.LightIntensity != nil {
			s.SetLightIntensity(*req.LightIntensity)
		}
		if req.IsDayMode != nil {
			s.SetDayMode(*req.IsDayMode)
		}
		if req.CameraView != nil {
			s.SetCameraView(*req.CameraView)
		}
		if req.ShowMeasurements != nil {
			s.SetShowMeasurements(*req.ShowMeasurements)
		}
		if req.ShowGrid != nil {
			s.SetShowGrid(*req.ShowGrid)
		}
		if req.GridSnap != nil {
			s.SetGridSnap(*req.GridSnap)
		}
		if req.CollisionDetection != nil {
			s.SetCollisionDetection(*req.CollisionDetection)
		}
		return c.JSON(s.View())
	})
}
