package stations

import (
	"fmt"
	"text/tabwriter"

	"github.com/stopboard/stopboard/pkg/config"
	"github.com/stopboard/stopboard/pkg/stopsjson"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "stations",
		Usage: "Manage the favourite stations shown on the departure board",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List favourite stations",
				Action: func(c *cli.Context) error {
					store, err := openFromCLI(c)
					if err != nil {
						return err
					}

					writer := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
					fmt.Fprintln(writer, "ID\tNAME\tMODE\tLAT\tLON")
					for _, station := range store.List() {
						fmt.Fprintf(writer, "%s\t%s\t%s\t%.5f\t%.5f\n",
							station.ID, station.GetName(), station.GetTransportMode(), station.Lat, station.Lon)
					}

					return writer.Flush()
				},
			},
			{
				Name:      "add",
				Usage:     "Add stops from the extracted dataset as favourites",
				ArgsUsage: "<stop-id>...",
				Action: func(c *cli.Context) error {
					if !c.Args().Present() {
						return cli.Exit("at least one stop id is required", 1)
					}

					cfg, err := config.FromCLI(c)
					if err != nil {
						return err
					}

					index, err := stopsjson.LoadIndex(cfg.StopsFile)
					if err != nil {
						return fmt.Errorf("loading stops dataset: %w", err)
					}

					store, err := Open(cfg.StationsFile)
					if err != nil {
						return err
					}

					for _, identifier := range c.Args().Slice() {
						stop, exists := index.Get(identifier)
						if !exists {
							return cli.Exit(fmt.Sprintf("unknown stop %s", identifier), 1)
						}

						added, err := store.Add(stop)
						if err != nil {
							return err
						}

						if added {
							fmt.Fprintf(c.App.Writer, "Added %s (%s)\n", stop.GetName(), stop.ID)
						} else {
							fmt.Fprintf(c.App.Writer, "%s (%s) is already a favourite\n", stop.GetName(), stop.ID)
						}
					}

					return nil
				},
			},
			{
				Name:      "remove",
				Usage:     "Remove favourite stations",
				ArgsUsage: "<station-id>...",
				Action: func(c *cli.Context) error {
					if !c.Args().Present() {
						return cli.Exit("at least one station id is required", 1)
					}

					store, err := openFromCLI(c)
					if err != nil {
						return err
					}

					for _, identifier := range c.Args().Slice() {
						removed, err := store.Remove(identifier)
						if err != nil {
							return err
						}

						if removed {
							fmt.Fprintf(c.App.Writer, "Removed %s\n", identifier)
						} else {
							fmt.Fprintf(c.App.Writer, "%s is not a favourite\n", identifier)
						}
					}

					return nil
				},
			},
		},
	}
}

func openFromCLI(c *cli.Context) (*Store, error) {
	cfg, err := config.FromCLI(c)
	if err != nil {
		return nil, err
	}

	return Open(cfg.StationsFile)
}
