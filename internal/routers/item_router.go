package routers

import (
	"Launchbox/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupItemRouter(app *fiber.App, server *cmd.Server) {
	itemHandler := server.ItemHandler
	app.Get("/projects/:projectId/items", itemHandler.ListItems)
	app.Post("/projects/:projectId/items", itemHandler.CreateItem)
	app.Get("/projects/:projectId/items/:id", itemHandler.GetItemByID)
	app.Put("/projects/:projectId/items/:id", itemHandler.UpdateItem)
	app.Put("/projects/:projectId/items/:id/groups", itemHandler.SetItemGroups)
	app.Delete("/projects/:projectId/items/:id", itemHandler.DeleteItem)
	app.Post("/projects/:projectId/items/:id/move", itemHandler.MoveItem)
	app.Post("/projects/:projectId/items/:id/reposition", itemHandler.RepositionItem)
}
