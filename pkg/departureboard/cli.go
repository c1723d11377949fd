package departureboard

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/stopboard/stopboard/pkg/config"
	"github.com/stopboard/stopboard/pkg/ctdf"
	"github.com/stopboard/stopboard/pkg/stopsjson"
	"github.com/stopboard/stopboard/pkg/util"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slices"
)

const maxDestinationWidth = 32

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:      "departures",
		Usage:     "Print the upcoming departures for a station",
		ArgsUsage: "<station-id>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: fmt.Sprintf("Number of rows to show, one of %v", Limits),
				Value: Limits[0],
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit("exactly one station id is required", 1)
			}
			stationID := c.Args().First()

			limit := c.Int("limit")
			limitIndex := slices.Index(Limits, limit)
			if limitIndex < 0 {
				return cli.Exit(fmt.Sprintf("limit must be one of %v", Limits), 1)
			}

			cfg, err := config.FromCLI(c)
			if err != nil {
				return err
			}

			station := ctdf.Stop{ID: stationID}
			if index, err := stopsjson.LoadIndex(cfg.StopsFile); err == nil {
				if stop, exists := index.Get(stationID); exists {
					station = stop
				}
			}

			board, err := NewFromConfig(c.Context, cfg, StationList{station})
			if err != nil {
				return err
			}
			board.limitIndex = limitIndex

			board.Refresh(c.Context)
			snapshot := board.Snapshot()
			row := snapshot.Stations[0]

			if row.Error != "" {
				return cli.Exit(fmt.Sprintf("❌  %s", row.Error), 1)
			}

			return PrintBoard(c.App.Writer, row)
		},
	}
}

func PrintBoard(w io.Writer, row StationDepartures) error {
	name := row.Station.GetName()
	if name == "" {
		name = row.Station.ID
	}
	fmt.Fprintf(w, "%s\n\n", name)

	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "TIME\tLINE\tDESTINATION\tMODE")
	for _, departure := range row.Departures {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
			clockTime(departure.Time), departure.Line, util.TrimString(departure.Destination, maxDestinationWidth), departure.TransportMode)
	}

	return writer.Flush()
}

// ResRobot times carry seconds which the board leaves out
func clockTime(departureTime string) string {
	if len(departureTime) >= 5 {
		return departureTime[:5]
	}

	return departureTime
}
