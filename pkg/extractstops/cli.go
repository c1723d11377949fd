package extractstops

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/stopboard/stopboard/pkg/netex"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:      "extract-stops",
		Usage:     "Convert the national stop registry XML export into the compact stops dataset",
		ArgsUsage: "[source]",
		Action:    Action,
	}
}

// Action runs the extraction for the optional source argument. Failures are
// returned as exit coders so the process ends with status 1.
func Action(c *cli.Context) error {
	source := DefaultSource
	if c.Args().Present() {
		source = c.Args().First()
	}

	result, err := Extract(source, DefaultDestination)
	if err != nil {
		var parseError *netex.ParseError

		switch {
		case errors.Is(err, ErrSourceNotFound):
			absolute, _ := filepath.Abs(source)
			return cli.Exit(fmt.Sprintf("❌  File not found: %s", absolute), 1)
		case errors.As(err, &parseError):
			return cli.Exit(fmt.Sprintf("❌  XML error: %s", parseError.Err), 1)
		default:
			return cli.Exit(fmt.Sprintf("❌  %s", err), 1)
		}
	}

	fmt.Fprintf(c.App.Writer, "✅  Extracted %d stops → %s\n", result.Extracted, filepath.Base(result.Destination))

	return nil
}
