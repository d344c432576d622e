package internal

import (
	"net/http"
	"sentwatch/internal/controllers"
	"sentwatch/internal/providers"
	"sentwatch/internal/structures"
)

func InitRoutes(stateController *controllers.StateController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/state", http.HandlerFunc(stateController.GetState))
	routers.Get("/profiles", http.HandlerFunc(stateController.GetProfiles))
	return routers
}
