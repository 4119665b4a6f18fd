package routers

import (
	"Launchbox/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	SetupProjectRouter(app, server)
	SetupGroupRouter(app, server)
	SetupItemRouter(app, server)
	SetupViewRouter(app, server)
	SetupAccessRouter(app, server)
	SetupJanitorRouter(app, server)
}
