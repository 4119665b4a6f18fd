package routers

import (
	"Launchbox/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupProjectRouter(app *fiber.App, server *cmd.Server) {
	projectHandler := server.ProjectHandler
	app.Get("/projects/tree", projectHandler.GetTree)
	app.Get("/projects", projectHandler.ListProjects)
	app.Post("/projects", projectHandler.CreateProject)
	app.Get("/projects/:id", projectHandler.GetProjectByID)
	app.Put("/projects/:id", projectHandler.RenameProject)
	app.Delete("/projects/:id", projectHandler.DeleteProject)
	app.Post("/projects/:id/reparent", projectHandler.ReparentProject)
	app.Post("/projects/:id/move", projectHandler.MoveProject)
	app.Post("/projects/:id/reposition", projectHandler.RepositionProject)
}
