package handlers

import (
	"Launchbox/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type AccessHandler struct {
	service services.AccessService
}

func NewAccessHandler(service services.AccessService) *AccessHandler {
	return &AccessHandler{service: service}
}

// RecordAccess registers one launch of a path. The launch collaborator
// calls this before or after opening the target; the ranking views are
// derived entirely from these records.
func (h *AccessHandler) RecordAccess(c *fiber.Ctx) error {
	var req struct {
		Path        string `json:"path"`
		Name        string `json:"name"`
		Category    string `json:"category"`
		ProjectName string `json:"project_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if req.Path == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "path is required"})
	}

	record, err := h.service.RecordAccess(req.Path, req.Name, req.Category, req.ProjectName)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not record access"})
	}
	return c.Status(http.StatusCreated).JSON(record)
}

func (h *AccessHandler) ListToday(c *fiber.Ctx) error {
	records, err := h.service.Today()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not list today's accesses"})
	}
	return c.JSON(records)
}

func (h *AccessHandler) ListWeekly(c *fiber.Ctx) error {
	records, err := h.service.Weekly()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not list weekly accesses"})
	}
	return c.JSON(records)
}

func (h *AccessHandler) ListRecentlyUsed(c *fiber.Ctx) error {
	views, err := h.service.RecentlyUsed()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not list recently used items"})
	}
	return c.JSON(views)
}
