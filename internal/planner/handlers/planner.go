package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"

	"room-planner/internal/planner/catalog"
	"room-planner/internal/planner/keymap"
	"room-planner/internal/planner/mapper"
	"room-planner/internal/planner/models"
	"room-planner/internal/planner/repository"
	"room-planner/internal/planner/scene"
	"room-planner/internal/planner/service"

	"github.com/gofiber/fiber/v3"
	"github.com/lucasb-eyer/go-colorful"
)

// ============================================================
// Planner Handler
// ============================================================

type PlannerHandler struct {
	projects    *service.Projects
	repo        *repository.Repository
	catalog     *catalog.Catalog
	renderer    *mapper.Renderer
	previewSize int
}

func NewPlannerHandler(projects *service.Projects, repo *repository.Repository, c *catalog.Catalog, previewSize int) *PlannerHandler {
	return &PlannerHandler{
		projects:    projects,
		repo:        repo,
		catalog:     c,
		renderer:    mapper.NewRenderer(c),
		previewSize: previewSize,
	}
}

// Register вешает маршруты редактора на группу /api/v1.
func (h *PlannerHandler) Register(api fiber.Router) {
	api.Get("/catalog", h.GetCatalog)
	api.Get("/templates", h.GetTemplates)

	api.Post("/projects", h.CreateProject)
	api.Get("/projects", h.ListProjects)
	api.Get("/projects/:id", h.GetProject)
	api.Delete("/projects/:id", h.DeleteProject)

	api.Post("/projects/:id/rooms/:room/select", h.SwitchRoom)

	api.Post("/projects/:id/items", h.AddItem)
	api.Delete("/projects/:id/items/:item", h.DeleteItem)
	api.Post("/projects/:id/items/:item/rotate", h.RotateItem)
	api.Post("/projects/:id/items/:item/scale", h.RescaleItem)
	api.Post("/projects/:id/items/:item/color", h.RecolorItem)
	api.Post("/projects/:id/items/:item/move", h.MoveItem)
	api.Post("/projects/:id/items/:item/select", h.SelectItem)

	api.Post("/projects/:id/commit", h.Commit)
	api.Post("/projects/:id/selection/clear", h.ClearSelection)
	api.Post("/projects/:id/undo", h.Undo)
	api.Post("/projects/:id/redo", h.Redo)
	api.Post("/projects/:id/copy", h.Copy)
	api.Post("/projects/:id/paste", h.Paste)
	api.Post("/projects/:id/templates/:name", h.ApplyTemplate)
	api.Post("/projects/:id/arrange", h.AutoArrange)
	api.Post("/projects/:id/reset", h.ResetRoom)
	api.Patch("/projects/:id/settings", h.UpdateSettings)
	api.Post("/projects/:id/keys", h.HandleKey)
	api.Get("/projects/:id/metrics", h.GetMetrics)

	api.Get("/projects/:id/plan.svg", h.RenderPlan)
	api.Get("/projects/:id/preview.webp", h.RenderPreview)

	api.Post("/projects/:id/export", h.Export)
	api.Get("/projects/:id/exports", h.ListExports)
	api.Get("/projects/:id/exports/:export", h.GetExport)
}

// ============================================================
// Catalog
// ============================================================

// GetCatalog отдаёт каталог мебели с габаритами типов.
func (h *PlannerHandler) GetCatalog(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"items":  h.catalog.Entries(),
		"shapes": h.catalog.Shapes(),
	})
}

func (h *PlannerHandler) GetTemplates(c fiber.Ctx) error {
	return c.JSON(h.catalog.Templates())
}

// ============================================================
// Projects
// ============================================================

func (h *PlannerHandler) CreateProject(c fiber.Ctx) error {
	p := h.projects.Create()
	log.Printf("[PLANNER] Project created: %s", p.ID)

	var view scene.View
	_ = p.Do(func(s *scene.Store) error {
		view = s.View()
		return nil
	})
	return c.Status(http.StatusCreated).JSON(fiber.Map{"id": p.ID, "state": view})
}

func (h *PlannerHandler) ListProjects(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"projects": h.projects.List()})
}

func (h *PlannerHandler) GetProject(c fiber.Ctx) error {
	return h.withStore(c, func(s *scene.Store) error {
		return c.JSON(s.View())
	})
}

func (h *PlannerHandler) DeleteProject(c fiber.Ctx) error {
	if err := h.projects.Delete(c.Params("id")); err != nil {
		return projectNotFound(c)
	}
	log.Printf("[PLANNER] Project deleted: %s", c.Params("id"))
	return c.SendStatus(http.StatusNoContent)
}

func (h *PlannerHandler) SwitchRoom(c fiber.Ctx) error {
	return h.withStore(c, func(s *scene.Store) error {
		if !s.SwitchRoom(c.Params("room")) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "room not found"})
		}
		return c.JSON(s.View())
	})
}

// ============================================================
// Items
// ============================================================

type addRequest struct {
	Type models.FurnitureType `json:"type"`
}

// AddItem добавляет предмет каталога в текущую комнату.
func (h *PlannerHandler) AddItem(c fiber.Ctx) error {
	var req addRequest
	if err := decodeBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	entry, err := h.catalog.Entry(req.Type)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return h.withStore(c, func(s *scene.Store) error {
		id := s.AddItem(entry)
		return c.Status(http.StatusCreated).JSON(fiber.Map{"id": id, "state": s.View()})
	})
}

func (h *PlannerHandler) DeleteItem(c fiber.Ctx) error {
	return h.withStore(c, func(s *scene.Store) error {
		s.DeleteItem(c.Params("item"))
		return c.JSON(s.View())
	})
}

func (h *PlannerHandler) RotateItem(c fiber.Ctx) error {
	return h.withStore(c, func(s *scene.Store) error {
		s.RotateItem(c.Params("item"))
		return c.JSON(s.View())
	})
}

type scaleRequest struct {
	Scale *float64 `json:"scale"`
}

func (h *PlannerHandler) RescaleItem(c fiber.Ctx) error {
	var req scaleRequest
	if err := decodeBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	if req.Scale == nil {
		return badRequest(c, "scale required")
	}

	return h.withStore(c, func(s *scene.Store) error {
		s.RescaleItem(c.Params("item"), *req.Scale)
		return c.JSON(s.View())
	})
}

type colorRequest struct {
	Color string `json:"color"`
}

// RecolorItem задаёт цвет предмета; пустой цвет возвращает цвет типа.
func (h *PlannerHandler) RecolorItem(c fiber.Ctx) error {
	var req colorRequest
	if err := decodeBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	color, err := normalizeColor(req.Color)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return h.withStore(c, func(s *scene.Store) error {
		s.RecolorItem(c.Params("item"), color)
		return c.JSON(s.View())
	})
}

type moveRequest struct {
	Position *models.Vec3 `json:"position"`
	Commit   bool         `json:"commit"`
}

// MoveItem принимает позицию указателя во время перетаскивания.
// commit=true завершает перетаскивание и фиксирует снимок.
func (h *PlannerHandler) MoveItem(c fiber.Ctx) error {
	var req moveRequest
	if err := decodeBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	if req.Position == nil {
		return badRequest(c, "position required")
	}

	return h.withStore(c, func(s *scene.Store) error {
		accepted := s.MoveItem(c.Params("item"), *req.Position)
		committed := false
		if req.Commit {
			committed = s.Commit()
		}
		item, _ := s.Item(c.Params("item"))
		return c.JSON(fiber.Map{
			"accepted":  accepted,
			"committed": committed,
			"position":  item.Position,
			"state":     s.View(),
		})
	})
}

func (h *PlannerHandler) SelectItem(c fiber.Ctx) error {
	return h.withStore(c, func(s *scene.Store) error {
		if !s.Select(c.Params("item")) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "item not found"})
		}
		return c.JSON(s.View())
	})
}

// ============================================================
// Editing actions
// ============================================================

func (h *PlannerHandler) Commit(c fiber.Ctx) error {
	return h.withStore(c, func(s *scene.Store) error {
		committed := s.Commit()
		return c.JSON(fiber.Map{"committed": committed, "state": s.View()})
	})
}

func (h *PlannerHandler) ClearSelection(c fiber.Ctx) error {
	return h.withStore(c, func(s *scene.Store) error {
		s.ClearSelection()
		return c.JSON(s.View())
	})
}

func (h *PlannerHandler) Undo(c fiber.Ctx) error {
	return h.withStore(c, func(s *scene.Store) error {
		ok := s.Undo()
		return c.JSON(fiber.Map{"applied": ok, "state": s.View()})
	})
}

func (h *PlannerHandler) Redo(c fiber.Ctx) error {
	return h.withStore(c, func(s *scene.Store) error {
		ok := s.Redo()
		return c.JSON(fiber.Map{"applied": ok, "state": s.View()})
	})
}

func (h *PlannerHandler) Copy(c fiber.Ctx) error {
	return h.withStore(c, func(s *scene.Store) error {
		ok := s.CopySelection()
		return c.JSON(fiber.Map{"copied": ok, "state": s.View()})
	})
}

func (h *PlannerHandler) Paste(c fiber.Ctx) error {
	return h.withStore(c, func(s *scene.Store) error {
		id, ok := s.Paste()
		return c.JSON(fiber.Map{"id": id, "pasted": ok, "state": s.View()})
	})
}

func (h *PlannerHandler) ApplyTemplate(c fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return badRequest(c, "invalid template name")
	}
	if _, err := h.catalog.Template(name); err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	return h.withStore(c, func(s *scene.Store) error {
		ids, _ := s.ApplyTemplate(name)
		return c.JSON(fiber.Map{"ids": ids, "state": s.View()})
	})
}

func (h *PlannerHandler) AutoArrange(c fiber.Ctx) error {
	return h.withStore(c, func(s *scene.Store) error {
		ok := s.AutoArrange()
		return c.JSON(fiber.Map{"arranged": ok, "state": s.View()})
	})
}

func (h *PlannerHandler) ResetRoom(c fiber.Ctx) error {
	return h.withStore(c, func(s *scene.Store) error {
		s.ResetRoom()
		return c.JSON(s.View())
	})
}

// HandleKey выполняет сочетание клавиш из браузера.
func (h *PlannerHandler) HandleKey(c fiber.Ctx) error {
	var ev keymap.KeyEvent
	if err := decodeBody(c, &ev); err != nil {
		return badRequest(c, err.Error())
	}

	return h.withStore(c, func(s *scene.Store) error {
		res := keymap.Dispatch(s, ev)
		return c.JSON(fiber.Map{"result": res, "state": s.View()})
	})
}

func (h *PlannerHandler) GetMetrics(c fiber.Ctx) error {
	return h.withStore(c, func(s *scene.Store) error {
		return c.JSON(s.Metrics())
	})
}

// ============================================================
// Helpers
// ============================================================

// withStore находит проект по :id и выполняет fn под его замком.
func (h *PlannerHandler) withStore(c fiber.Ctx, fn func(*scene.Store) error) error {
	p, err := h.projects.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			return projectNotFound(c)
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return p.Do(fn)
}

func decodeBody(c fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return errors.New("empty body")
	}
	if err := json.Unmarshal(c.Body(), out); err != nil {
		return errors.New("invalid json")
	}
	return nil
}

// normalizeColor проверяет hex-цвет и приводит его к виду #rrggbb.
func normalizeColor(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	col, err := colorful.Hex(value)
	if err != nil {
		return "", errors.New("color must be #rgb or #rrggbb")
	}
	return col.Hex(), nil
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func projectNotFound(c fiber.Ctx) error {
	return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "project not found"})
}
