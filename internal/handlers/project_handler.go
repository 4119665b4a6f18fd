package handlers

import (
	"Launchbox/internal/services"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type ProjectHandler struct {
	service services.ProjectService
}

func NewProjectHandler(service services.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var req struct {
		Name     string  `json:"name"`
		ParentID *string `json:"parent_id"`
		IsFolder bool    `json:"is_folder"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if req.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "name is required"})
	}

	project, err := h.service.CreateProject(req.Name, req.ParentID, req.IsFolder)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	return c.Status(http.StatusCreated).JSON(project)
}

func (h *ProjectHandler) GetProjectByID(c *fiber.Ctx) error {
	project, err := h.service.GetProjectByID(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	if project == nil {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "project not found"})
	}
	return c.JSON(project)
}

func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.service.GetProjectSummaries()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not list projects"})
	}
	return c.JSON(projects)
}

func (h *ProjectHandler) GetTree(c *fiber.Ctx) error {
	forest, err := h.service.GetTree()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not build tree"})
	}
	return c.JSON(forest.Roots)
}

func (h *ProjectHandler) RenameProject(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if req.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "name is required"})
	}

	project, err := h.service.RenameProject(c.Params("id"), req.Name)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not rename project"})
	}
	if project == nil {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "project not found"})
	}
	return c.JSON(project)
}

func (h *ProjectHandler) ReparentProject(c *fiber.Ctx) error {
	var req struct {
		ParentID *string `json:"parent_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	project, err := h.service.ReparentProject(c.Params("id"), req.ParentID)
	if err != nil {
		if errors.Is(err, services.ErrCycle) {
			return c.Status(http.StatusConflict).JSON(map[string]interface{}{"error": err.Error()})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not move project"})
	}
	if project == nil {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "project not found"})
	}
	return c.JSON(project)
}

func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	if err := h.service.DeleteProject(c.Params("id")); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not delete project"})
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *ProjectHandler) MoveProject(c *fiber.Ctx) error {
	var req struct {
		Direction string `json:"direction"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if req.Direction != "up" && req.Direction != "down" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "direction must be up or down"})
	}

	if err := h.service.MoveProject(c.Params("id"), req.Direction); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not move project"})
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *ProjectHandler) RepositionProject(c *fiber.Ctx) error {
	var req struct {
		Index    int     `json:"index"`
		ParentID *string `json:"parent_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	if err := h.service.RepositionProject(c.Params("id"), req.Index, req.ParentID); err != nil {
		if errors.Is(err, services.ErrCycle) {
			return c.Status(http.StatusConflict).JSON(map[string]interface{}{"error": err.Error()})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not reposition project"})
	}
	return c.SendStatus(http.StatusNoContent)
}
