package routers

import (
	"Launchbox/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupAccessRouter(app *fiber.App, server *cmd.Server) {
	accessHandler := server.AccessHandler
	app.Post("/access", accessHandler.RecordAccess)
	app.Get("/access/today", accessHandler.ListToday)
	app.Get("/access/weekly", accessHandler.ListWeekly)
	app.Get("/access/recent", accessHandler.ListRecentlyUsed)
}
