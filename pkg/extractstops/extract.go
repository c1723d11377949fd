package extractstops

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/stopboard/stopboard/pkg/netex"
	"github.com/stopboard/stopboard/pkg/stopsjson"
)

const (
	DefaultSource      = "swedenData.xml"
	DefaultDestination = "public/stops.min2.json"
)

var ErrSourceNotFound = errors.New("file not found")

type Result struct {
	Source      string
	Destination string

	StopPlaces int
	Extracted  int
}

// Extract converts the registry export at source into the stops dataset at
// destination. On failure the destination may be left without its closing
// delimiter and must not be used.
func Extract(source string, destination string) (*Result, error) {
	sourcePath, err := filepath.Abs(source)
	if err != nil {
		return nil, err
	}
	destinationPath, err := filepath.Abs(destination)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(sourcePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, sourcePath)
		}
		return nil, err
	}

	sourceFile, err := os.Open(sourcePath)
	if err != nil {
		return nil, err
	}
	defer sourceFile.Close()

	if err := os.MkdirAll(filepath.Dir(destinationPath), 0o755); err != nil {
		return nil, err
	}

	destinationFile, err := os.Create(destinationPath)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("source", sourcePath).Str("destination", destinationPath).Msg("Extracting stops")

	stats, err := Convert(sourceFile, destinationFile)
	if err != nil {
		destinationFile.Close()
		return nil, err
	}

	if err := destinationFile.Close(); err != nil {
		return nil, err
	}

	return &Result{
		Source:      sourcePath,
		Destination: destinationPath,
		StopPlaces:  stats.StopPlaces,
		Extracted:   stats.Accepted,
	}, nil
}

// Convert streams stop places from reader into a JSON array on writer.
func Convert(reader io.Reader, writer io.Writer) (netex.Stats, error) {
	arrayWriter, err := stopsjson.NewArrayWriter(writer)
	if err != nil {
		return netex.Stats{}, err
	}

	stats, err := netex.ParseStopPlaces(reader, arrayWriter.Write)
	if err != nil {
		return stats, err
	}

	if err := arrayWriter.Close(); err != nil {
		return stats, err
	}

	return stats, nil
}
