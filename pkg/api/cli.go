package api

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/stopboard/stopboard/pkg/config"
	"github.com/stopboard/stopboard/pkg/departureboard"
	"github.com/stopboard/stopboard/pkg/stations"
	"github.com/stopboard/stopboard/pkg/stopsjson"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the departure board web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "listen target for the web server, overrides the config file",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.FromCLI(c)
					if err != nil {
						return err
					}

					listen := cfg.Listen
					if c.IsSet("listen") {
						listen = c.String("listen")
					}

					stops, err := stopsjson.LoadIndex(cfg.StopsFile)
					if err != nil {
						return fmt.Errorf("loading stops dataset %s, run extract-stops first: %w", cfg.StopsFile, err)
					}
					log.Info().Int("stops", stops.Len()).Str("file", cfg.StopsFile).Msg("Loaded stops dataset")

					stationStore, err := stations.Open(cfg.StationsFile)
					if err != nil {
						return err
					}

					ctx, cancel := context.WithCancel(c.Context)
					defer cancel()

					board, err := departureboard.NewFromConfig(ctx, cfg, stationStore)
					if err != nil {
						return err
					}
					go board.Run(ctx)

					log.Info().Str("listen", listen).Msg("Starting web API")

					return SetupServer(listen, Dependencies{
						Stops:    stops,
						Stations: stationStore,
						Board:    board,
					})
				},
			},
		},
	}
}
