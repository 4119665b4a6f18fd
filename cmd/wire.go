package cmd

import (
	"Launchbox/internal/handlers"
	"Launchbox/internal/services"
)

type Server struct {
	ProjectService services.ProjectService
	ProjectHandler *handlers.ProjectHandler
	GroupService   services.GroupService
	GroupHandler   *handlers.GroupHandler
	ItemService    services.ItemService
	ItemHandler    *handlers.ItemHandler
	ViewService    services.ViewService
	ViewHandler    *handlers.ViewHandler
	AccessService  services.AccessService
	AccessHandler  *handlers.AccessHandler
	LogService     services.LogService
	JanitorService *services.Janitor
}

func NewServer(
	projectService services.ProjectService,
	projectHandler *handlers.ProjectHandler,
	groupService services.GroupService,
	groupHandler *handlers.GroupHandler,
	itemService services.ItemService,
	itemHandler *handlers.ItemHandler,
	viewService services.ViewService,
	viewHandler *handlers.ViewHandler,
	accessService services.AccessService,
	accessHandler *handlers.AccessHandler,
	logService services.LogService,
	janitorService *services.Janitor,
) *Server {
	return &Server{
		ProjectService: projectService,
		ProjectHandler: projectHandler,
		GroupService:   groupService,
		GroupHandler:   groupHandler,
		ItemService:    itemService,
		ItemHandler:    itemHandler,
		ViewService:    viewService,
		ViewHandler:    viewHandler,
		AccessService:  accessService,
		AccessHandler:  accessHandler,
		LogService:     logService,
		JanitorService: janitorService,
	}
}
