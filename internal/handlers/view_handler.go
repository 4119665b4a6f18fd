package handlers

import (
	"Launchbox/internal/dto"
	"Launchbox/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type ViewHandler struct {
	service services.ViewService
}

func NewViewHandler(service services.ViewService) *ViewHandler {
	return &ViewHandler{service: service}
}

// ResolveView computes the visible item set for the current selection.
// Query parameters pick exactly one view mode: smart, folder, project
// (optionally narrowed by group), or none for the global view. q carries
// the free-text search.
func (h *ViewHandler) ResolveView(c *fiber.Ctx) error {
	sel := selectionFromQuery(c)
	views, err := h.service.Resolve(sel, c.Query("q"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not resolve view"})
	}
	if views == nil {
		views = []dto.ItemViewDTO{}
	}
	return c.JSON(views)
}

func selectionFromQuery(c *fiber.Ctx) services.Selection {
	if smart := c.Query("smart"); smart != "" {
		return services.Selection{Kind: services.SelectionSmart, Smart: smart}
	}
	if folderID := c.Query("folder"); folderID != "" {
		return services.Selection{Kind: services.SelectionFolder, ProjectID: folderID}
	}
	if projectID := c.Query("project"); projectID != "" {
		if groupID := c.Query("group"); groupID != "" {
			return services.Selection{Kind: services.SelectionGroup, ProjectID: projectID, GroupID: groupID}
		}
		return services.Selection{Kind: services.SelectionProject, ProjectID: projectID}
	}
	return services.Selection{Kind: services.SelectionNone}
}
