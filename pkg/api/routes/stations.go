package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stopboard/stopboard/pkg/ctdf"
	"github.com/stopboard/stopboard/pkg/departureboard"
	"github.com/stopboard/stopboard/pkg/stations"
	"github.com/stopboard/stopboard/pkg/stopsjson"
)

func StationsRouter(router fiber.Router, store *stations.Store, index *stopsjson.Index, board *departureboard.Board) {
	router.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(store.List())
	})
	router.Post("/", func(c *fiber.Ctx) error {
		return addStation(c, store, index)
	})
	router.Delete("/:identifier", func(c *fiber.Ctx) error {
		return removeStation(c, store)
	})
	router.Get("/:identifier/departures", func(c *fiber.Ctx) error {
		return getStationDepartures(c, store, board)
	})
}

func addStation(c *fiber.Ctx, store *stations.Store, index *stopsjson.Index) error {
	var station ctdf.Stop
	if err := c.BodyParser(&station); err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Request body must be a stop",
		})
	}

	// A bare id is filled in from the stops dataset
	if station.Name == nil && index != nil {
		if stop, exists := index.Get(station.ID); exists {
			station = stop
		}
	}

	added, err := store.Add(station)
	if errors.Is(err, stations.ErrInvalidStation) {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	} else if err != nil {
		return err
	}

	if added {
		c.Status(fiber.StatusCreated)
	}

	return c.JSON(store.List())
}

func removeStation(c *fiber.Ctx, store *stations.Store) error {
	removed, err := store.Remove(c.Params("identifier"))
	if err != nil {
		return err
	}

	if !removed {
		c.Status(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Station matching Station Identifier",
		})
	}

	return c.JSON(store.List())
}

func getStationDepartures(c *fiber.Ctx, store *stations.Store, board *departureboard.Board) error {
	identifier := c.Params("identifier")

	if _, exists := store.Get(identifier); !exists {
		c.Status(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Station matching Station Identifier",
		})
	}

	departures, err := reduceDepartures(board.Departures(identifier), c.QueryBool("detailed", false))
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce Departures",
		})
	}

	return c.JSON(departures)
}
