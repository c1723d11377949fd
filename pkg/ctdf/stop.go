package ctdf

import "math"

// Stop is a single entry of the compact stops dataset produced by extract-stops.
// Field order is the serialised order and must stay stable.
type Stop struct {
	ID            string  `json:"id"`
	Name          *string `json:"name"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	TransportMode *string `json:"transportMode"`
}

// IsComplete reports whether the stop has an identifier and usable coordinates.
// Zero, NaN and infinite coordinates all count as missing.
func (s *Stop) IsComplete() bool {
	return s.ID != "" && validCoordinate(s.Lat) && validCoordinate(s.Lon)
}

func (s *Stop) GetName() string {
	if s.Name == nil {
		return ""
	}

	return *s.Name
}

func (s *Stop) GetTransportMode() TransportMode {
	if s.TransportMode == nil {
		return TransportModeOther
	}

	return NormaliseTransportMode(*s.TransportMode)
}

func validCoordinate(c float64) bool {
	return c != 0 && !math.IsNaN(c) && !math.IsInf(c, 0)
}
