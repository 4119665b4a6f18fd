package routers

import (
	"Launchbox/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupGroupRouter(app *fiber.App, server *cmd.Server) {
	groupHandler := server.GroupHandler
	app.Get("/projects/:projectId/groups", groupHandler.ListGroups)
	app.Post("/projects/:projectId/groups", groupHandler.CreateGroup)
	app.Put("/projects/:projectId/groups/:id", groupHandler.RenameGroup)
	app.Delete("/projects/:projectId/groups/:id", groupHandler.DeleteGroup)
	app.Post("/projects/:projectId/groups/:id/move", groupHandler.MoveGroup)
	app.Post("/projects/:projectId/groups/:id/reposition", groupHandler.RepositionGroup)
}
