package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stopboard/stopboard/pkg/ctdf"
)

type transportModeTheme struct {
	Mode ctdf.TransportMode `json:"mode"`
	ctdf.IconTheme
}

func TransportModes(c *fiber.Ctx) error {
	themes := make([]transportModeTheme, 0, len(ctdf.TransportModes))

	for _, mode := range ctdf.TransportModes {
		themes = append(themes, transportModeTheme{
			Mode:      mode,
			IconTheme: ctdf.GetIconTheme(mode),
		})
	}

	return c.JSON(themes)
}
