package routers

import (
	"Launchbox/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupViewRouter(app *fiber.App, server *cmd.Server) {
	viewHandler := server.ViewHandler
	app.Get("/view", viewHandler.ResolveView)
}
