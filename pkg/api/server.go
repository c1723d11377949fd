package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stopboard/stopboard/pkg/api/routes"
	"github.com/stopboard/stopboard/pkg/departureboard"
	"github.com/stopboard/stopboard/pkg/stations"
	"github.com/stopboard/stopboard/pkg/stopsjson"
)

type Dependencies struct {
	Stops    *stopsjson.Index
	Stations *stations.Store
	Board    *departureboard.Board
}

func NewApp(deps Dependencies) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)
	group.Get("transport_modes", routes.TransportModes)

	routes.StopsRouter(group.Group("/stops"), deps.Stops)
	routes.StationsRouter(group.Group("/stations"), deps.Stations, deps.Stops, deps.Board)
	routes.BoardRouter(group.Group("/board"), deps.Board)

	return webApp
}

func SetupServer(listen string, deps Dependencies) error {
	return NewApp(deps).Listen(listen)
}
