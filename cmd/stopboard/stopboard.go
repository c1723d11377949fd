package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stopboard/stopboard/pkg/api"
	"github.com/stopboard/stopboard/pkg/departureboard"
	"github.com/stopboard/stopboard/pkg/extractstops"
	"github.com/stopboard/stopboard/pkg/stations"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("STOPBOARD_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("STOPBOARD_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "stopboard",
		Description: "Swedish stop dataset extraction and departure board",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to a YAML config file",
				EnvVars: []string{"STOPBOARD_CONFIG"},
			},
		},

		Commands: []*cli.Command{
			extractstops.RegisterCLI(),
			stations.RegisterCLI(),
			departureboard.RegisterCLI(),
			api.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
