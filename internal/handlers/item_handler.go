package handlers

import (
	"Launchbox/internal/services"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type ItemHandler struct {
	service services.ItemService
}

func NewItemHandler(service services.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.service.GetItems(c.Params("projectId"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not list items"})
	}
	return c.JSON(items)
}

func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	var req struct {
		Name        string   `json:"name"`
		Path        string   `json:"path"`
		Description string   `json:"description"`
		Category    string   `json:"category"`
		GroupIDs    []string `json:"group_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if req.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "name is required"})
	}
	if req.Path == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "path is required"})
	}

	item, err := h.service.AddItem(c.Params("projectId"), req.Name, req.Path, req.Description, req.Category, req.GroupIDs)
	if err != nil {
		if errors.Is(err, services.ErrDuplicatePath) {
			return c.Status(http.StatusConflict).JSON(map[string]interface{}{"error": err.Error()})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not create item"})
	}
	return c.Status(http.StatusCreated).JSON(item)
}

func (h *ItemHandler) GetItemByID(c *fiber.Ctx) error {
	item, err := h.service.GetItemByID(c.Params("projectId"), c.Params("id"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	if item == nil {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "item not found"})
	}
	return c.JSON(item)
}

func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	var req struct {
		Name        string   `json:"name"`
		Path        string   `json:"path"`
		Description string   `json:"description"`
		Category    string   `json:"category"`
		GroupIDs    []string `json:"group_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	item, err := h.service.UpdateItem(c.Params("projectId"), c.Params("id"), req.Name, req.Path, req.Description, req.Category, req.GroupIDs)
	if err != nil {
		if errors.Is(err, services.ErrDuplicatePath) {
			return c.Status(http.StatusConflict).JSON(map[string]interface{}{"error": err.Error()})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not update item"})
	}
	if item == nil {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "item not found"})
	}
	return c.JSON(item)
}

func (h *ItemHandler) SetItemGroups(c *fiber.Ctx) error {
	var req struct {
		GroupIDs []string `json:"group_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	item, err := h.service.SetItemGroups(c.Params("projectId"), c.Params("id"), req.GroupIDs)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not set item groups"})
	}
	if item == nil {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "item not found"})
	}
	return c.JSON(item)
}

func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.service.DeleteItem(c.Params("projectId"), c.Params("id")); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not delete item"})
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *ItemHandler) MoveItem(c *fiber.Ctx) error {
	var req struct {
		Direction string `json:"direction"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if req.Direction != "up" && req.Direction != "down" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "direction must be up or down"})
	}

	if err := h.service.MoveItem(c.Params("projectId"), c.Params("id"), req.Direction); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not move item"})
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *ItemHandler) RepositionItem(c *fiber.Ctx) error {
	var req struct {
		Index int `json:"index"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	if err := h.service.RepositionItem(c.Params("projectId"), c.Params("id"), req.Index); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not reposition item"})
	}
	return c.SendStatus(http.StatusNoContent)
}
