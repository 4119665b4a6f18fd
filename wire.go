//go:build wireinject
// +build wireinject

package main

import (
	"Launchbox/cmd"
	"Launchbox/database"
	"Launchbox/internal/handlers"
	"Launchbox/internal/repository"
	"Launchbox/internal/services"

	"github.com/google/wire"
)

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		services.NewProjectService,
		handlers.NewProjectHandler,
		repository.NewProjectRepository,
		services.NewGroupService,
		handlers.NewGroupHandler,
		repository.NewGroupRepository,
		services.NewItemService,
		handlers.NewItemHandler,
		repository.NewItemRepository,
		services.NewViewService,
		handlers.NewViewHandler,
		services.NewAccessService,
		handlers.NewAccessHandler,
		repository.NewHistoryRepository,
		database.SetupDatabase,
		services.NewLogService,
		services.NewJanitorService,
		Provider,
	)
	return nil, nil
}
