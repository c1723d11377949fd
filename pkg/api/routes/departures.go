package routes

import (
	"github.com/liip/sheriff"
	"github.com/stopboard/stopboard/pkg/ctdf"
)

// reduceDepartures strips fields outside the requested sheriff groups
func reduceDepartures(departures []*ctdf.Departure, detailed bool) (interface{}, error) {
	groups := []string{"basic"}
	if detailed {
		groups = []string{"basic", "detailed"}
	}

	return sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, departures)
}
