package netex

import (
	"math"
	"strconv"
	"strings"

	"github.com/stopboard/stopboard/pkg/ctdf"
)

const (
	StopPlaceElement = "StopPlace"

	// NationalStopKey is the KeyValue key carrying the national (740-) stop identifier
	NationalStopKey = "rikshallplats"
)

// StopPlaceBuilder assembles one ctdf.Stop per StopPlace scope from text events.
// StopPlace scopes never nest, so at most one stop is in progress.
type StopPlaceBuilder struct {
	stop       *ctdf.Stop
	pendingKey string
}

func (b *StopPlaceBuilder) InScope() bool {
	return b.stop != nil
}

func (b *StopPlaceBuilder) Start(name string) {
	if name != StopPlaceElement {
		return
	}

	b.stop = &ctdf.Stop{}
	b.pendingKey = ""
}

func (b *StopPlaceBuilder) Text(path *ElementPath, text string) {
	if b.stop == nil {
		return
	}

	t := strings.TrimSpace(text)
	if t == "" {
		return
	}

	switch {
	case path.HasSuffix(StopPlaceElement, "Name") && path.Ancestor(2) != "KeyValue":
		if b.stop.Name == nil {
			b.stop.Name = &t
		}
	case path.HasSuffix("Latitude"):
		b.stop.Lat = parseCoordinate(t)
	case path.HasSuffix("Longitude"):
		b.stop.Lon = parseCoordinate(t)
	case path.HasSuffix("KeyValue", "Key"):
		b.pendingKey = t
	case path.HasSuffix("KeyValue", "Value"):
		// A later rikshallplats pair overwrites an earlier one
		if b.pendingKey == NationalStopKey {
			b.stop.ID = t
		}
		b.pendingKey = ""
	case path.HasSuffix("TransportMode"):
		b.stop.TransportMode = &t
	}
}

// End closes the StopPlace scope and returns the stop if it is complete enough
// to keep. Incomplete stops are dropped without error.
func (b *StopPlaceBuilder) End(name string) (*ctdf.Stop, bool) {
	if name != StopPlaceElement || b.stop == nil {
		return nil, false
	}

	stop := b.stop
	b.stop = nil
	b.pendingKey = ""

	if !stop.IsComplete() {
		return nil, false
	}

	return stop, true
}

func parseCoordinate(text string) float64 {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return math.NaN()
	}

	return value
}
