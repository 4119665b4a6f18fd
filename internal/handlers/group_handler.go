package handlers

import (
	"Launchbox/internal/services"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type GroupHandler struct {
	service services.GroupService
}

func NewGroupHandler(service services.GroupService) *GroupHandler {
	return &GroupHandler{service: service}
}

func (h *GroupHandler) ListGroups(c *fiber.Ctx) error {
	groups, err := h.service.GetGroups(c.Params("projectId"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not list groups"})
	}
	return c.JSON(groups)
}

func (h *GroupHandler) CreateGroup(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if req.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "name is required"})
	}

	group, err := h.service.CreateGroup(c.Params("projectId"), req.Name)
	if err != nil {
		if errors.Is(err, services.ErrReservedGroup) {
			return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": err.Error()})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not create group"})
	}
	return c.Status(http.StatusCreated).JSON(group)
}

func (h *GroupHandler) RenameGroup(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if req.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "name is required"})
	}

	group, err := h.service.RenameGroup(c.Params("projectId"), c.Params("id"), req.Name)
	if err != nil {
		if errors.Is(err, services.ErrReservedGroup) {
			return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": err.Error()})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not rename group"})
	}
	if group == nil {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "group not found"})
	}
	return c.JSON(group)
}

func (h *GroupHandler) DeleteGroup(c *fiber.Ctx) error {
	err := h.service.DeleteGroup(c.Params("projectId"), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrReservedGroup) {
			return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": err.Error()})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not delete group"})
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *GroupHandler) MoveGroup(c *fiber.Ctx) error {
	var req struct {
		Direction string `json:"direction"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if req.Direction != "up" && req.Direction != "down" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "direction must be up or down"})
	}

	if err := h.service.MoveGroup(c.Params("projectId"), c.Params("id"), req.Direction); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not move group"})
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *GroupHandler) RepositionGroup(c *fiber.Ctx) error {
	var req struct {
		Index int `json:"index"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	if err := h.service.RepositionGroup(c.Params("projectId"), c.Params("id"), req.Index); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not reposition group"})
	}
	return c.SendStatus(http.StatusNoContent)
}
