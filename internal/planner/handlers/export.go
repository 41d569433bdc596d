package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"mime"
	"net/http"
	"time"

	"room-planner/internal/planner/export"
	"room-planner/internal/planner/repository"
	"room-planner/internal/planner/scene"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Export Handlers
// ============================================================

// Export собирает документ проекта, сохраняет его в архив и отдаёт файлом.
func (h *PlannerHandler) Export(c fiber.Ctx) error {
	projectID := c.Params("id")
	p, err := h.projects.Get(projectID)
	if err != nil {
		return projectNotFound(c)
	}

	now := time.Now()
	var doc export.Document
	_ = p.Do(func(s *scene.Store) error {
		doc = export.Build(s, now)
		return nil
	})
	name := export.FileName(doc.ProjectName, now)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to encode export"})
	}

	rec, err := h.repo.SaveExport(context.Background(), repository.ExportRecord{
		ProjectID:   projectID,
		ProjectName: doc.ProjectName,
		FileName:    name,
		TotalBudget: doc.Metadata.TotalBudget,
		TotalItems:  doc.Metadata.TotalItems,
		Document:    data,
		CreatedAt:   now.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		log.Printf("[EXPORT] save error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save export"})
	}

	log.Printf("[EXPORT] Project %s exported as %s (%d bytes)", projectID, name, len(data))
	return sendDocument(c, rec.ID, name, data)
}

// ListExports отдаёт архив экспортов проекта.
func (h *PlannerHandler) ListExports(c fiber.Ctx) error {
	records, err := h.repo.ListExports(context.Background(), c.Params("id"))
	if err != nil {
		log.Printf("[EXPORT] list error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list exports"})
	}
	return c.JSON(fiber.Map{"exports": records})
}

// GetExport отдаёт сохранённый документ повторно.
func (h *PlannerHandler) GetExport(c fiber.Ctx) error {
	rec, err := h.repo.GetExport(context.Background(), c.Params("export"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "export not found"})
		}
		log.Printf("[EXPORT] get error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load export"})
	}
	if rec.ProjectID != c.Params("id") {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "export not found"})
	}
	return sendDocument(c, rec.ID, rec.FileName, rec.Document)
}

func sendDocument(c fiber.Ctx, id, name string, data []byte) error {
	c.Set("Content-Type", "application/json")
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": name})
	if disposition == "" {
		disposition = "attachment"
	}
	c.Set("Content-Disposition", disposition)
	c.Set("X-Export-ID", id)
	return c.Send(data)
}
