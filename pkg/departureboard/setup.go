package departureboard

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/stopboard/stopboard/pkg/config"
	"github.com/stopboard/stopboard/pkg/ctdf"
	"github.com/stopboard/stopboard/pkg/redis_client"
	"github.com/stopboard/stopboard/pkg/resrobot"
)

// StationList is a fixed set of stations
type StationList []ctdf.Stop

func (s StationList) List() []ctdf.Stop {
	return s
}

// NewFromConfig builds a board backed by the ResRobot API, sharing departures
// through Redis when an address is configured.
func NewFromConfig(ctx context.Context, cfg *config.Config, stations StationLister) (*Board, error) {
	client, err := resrobot.NewClientFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	interval, err := cfg.RefreshDuration()
	if err != nil {
		return nil, err
	}

	board := NewBoard(client, stations)
	board.RefreshInterval = interval

	connected, err := redis_client.Connect(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	if connected {
		board.Cache = NewDepartureCache(redis_client.Client, interval)
		log.Info().Str("address", cfg.Redis.Address).Msg("Using Redis departure cache")
	}

	return board, nil
}
