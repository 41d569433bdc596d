package handlers

import (
	"log"
	"net/http"

	"room-planner/internal/planner/scene"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Render Handlers
// ============================================================

// RenderPlan отдаёт план текущей комнаты в SVG.
func (h *PlannerHandler) RenderPlan(c fiber.Ctx) error {
	return h.withStore(c, func(s *scene.Store) error {
		svg, err := h.renderer.RenderSVG(s.View())
		if err != nil {
			log.Printf("[RENDER] SVG error: %v", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		c.Set("Content-Type", "image/svg+xml")
		return c.SendString(svg)
	})
}

// RenderPreview отдаёт растровое превью плана в WebP; ?size= задаёт сторону в пикселях.
func (h *PlannerHandler) RenderPreview(c fiber.Ctx) error {
	size := fiber.Query[int](c, "size", h.previewSize)

	return h.withStore(c, func(s *scene.Store) error {
		data, err := h.renderer.RenderPreview(s.View(), size)
		if err != nil {
			log.Printf("[RENDER] preview error: %v", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		c.Set("Content-Type", "image/webp")
		return c.Send(data)
	})
}
