package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stopboard/stopboard/pkg/ctdf"
	"github.com/stopboard/stopboard/pkg/departureboard"
)

type boardStation struct {
	Station    ctdf.Stop   `json:"station"`
	Departures interface{} `json:"departures"`
	Error      string      `json:"error,omitempty"`
}

func BoardRouter(router fiber.Router, board *departureboard.Board) {
	router.Get("/", func(c *fiber.Ctx) error {
		return getBoard(c, board)
	})
	router.Post("/limit", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"limit": board.CycleLimit(),
		})
	})
}

func getBoard(c *fiber.Ctx, board *departureboard.Board) error {
	snapshot := board.Snapshot()
	detailed := c.QueryBool("detailed", false)

	boardStations := make([]boardStation, 0, len(snapshot.Stations))
	for _, row := range snapshot.Stations {
		departures, err := reduceDepartures(row.Departures, detailed)
		if err != nil {
			c.Status(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": "Sheriff could not reduce Departures",
			})
		}

		boardStations = append(boardStations, boardStation{
			Station:    row.Station,
			Departures: departures,
			Error:      row.Error,
		})
	}

	return c.JSON(fiber.Map{
		"limit":        snapshot.Limit,
		"lastUpdated":  snapshot.LastUpdated,
		"refreshCount": snapshot.RefreshCount,
		"stations":     boardStations,
	})
}
