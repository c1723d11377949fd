package stopsjson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/stopboard/stopboard/pkg/ctdf"
)

// ReadAll decodes a stops array element by element.
func ReadAll(reader io.Reader) ([]ctdf.Stop, error) {
	decoder := json.NewDecoder(reader)

	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("expected stops array but found %v", token)
	}

	stops := []ctdf.Stop{}
	for decoder.More() {
		var stop ctdf.Stop
		if err := decoder.Decode(&stop); err != nil {
			return nil, err
		}

		stops = append(stops, stop)
	}

	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	return stops, nil
}

func ReadFile(path string) ([]ctdf.Stop, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadAll(file)
}
