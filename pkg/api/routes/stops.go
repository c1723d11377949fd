package routes

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/stopboard/stopboard/pkg/stopsjson"
)

const maxStopSearchResults = 100

func StopsRouter(router fiber.Router, index *stopsjson.Index) {
	router.Get("/", func(c *fiber.Ctx) error {
		return searchStops(c, index)
	})
	router.Get("/:identifier", func(c *fiber.Ctx) error {
		return getStop(c, index)
	})
}

func searchStops(c *fiber.Ctx, index *stopsjson.Index) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "A search query must be provided with q",
		})
	}

	limit := c.QueryInt("limit", 20)
	if limit <= 0 || limit > maxStopSearchResults {
		limit = maxStopSearchResults
	}

	return c.JSON(index.Search(query, limit))
}

func getStop(c *fiber.Ctx, index *stopsjson.Index) error {
	stop, exists := index.Get(c.Params("identifier"))
	if !exists {
		c.Status(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Stop matching Stop Identifier",
		})
	}

	return c.JSON(stop)
}
