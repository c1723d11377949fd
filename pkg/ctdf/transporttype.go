package ctdf

import "strings"

type TransportMode string

//goland:noinspection GoUnusedConst
const (
	TransportModeBus   TransportMode = "bus"
	TransportModeRail  TransportMode = "rail"
	TransportModeTram  TransportMode = "tram"
	TransportModeMetro TransportMode = "metro"
	TransportModeFerry TransportMode = "ferry"
	TransportModeWater TransportMode = "water"
	TransportModeOther TransportMode = "other"
)

var TransportModes = []TransportMode{
	TransportModeRail,
	TransportModeBus,
	TransportModeTram,
	TransportModeMetro,
	TransportModeFerry,
	TransportModeWater,
	TransportModeOther,
}

// NormaliseTransportMode maps a raw registry token onto the known vocabulary.
func NormaliseTransportMode(raw string) TransportMode {
	mode := TransportMode(strings.ToLower(strings.TrimSpace(raw)))

	for _, known := range TransportModes {
		if mode == known {
			return known
		}
	}

	return TransportModeOther
}

type IconTheme struct {
	Icon       string `json:"icon"`
	Colour     string `json:"color"`
	Background string `json:"bg"`
}

var iconThemes = map[TransportMode]IconTheme{
	TransportModeRail:  {Icon: "train-front", Colour: "#3b82f6", Background: "#e0f0ff"},
	TransportModeBus:   {Icon: "bus", Colour: "#22c55e", Background: "#e6ffed"},
	TransportModeTram:  {Icon: "tram-front", Colour: "#d97706", Background: "#fff7e6"},
	TransportModeMetro: {Icon: "train-front-tunnel", Colour: "#9333ea", Background: "#f3e8ff"},
	TransportModeFerry: {Icon: "ship", Colour: "#0ea5e9", Background: "#e0f7ff"},
	TransportModeWater: {Icon: "ship", Colour: "#0ea5e9", Background: "#e0f7ff"},
	TransportModeOther: {Icon: "circle-help", Colour: "#6b7280", Background: "#f3f4f6"},
}

func GetIconTheme(mode TransportMode) IconTheme {
	if theme, exists := iconThemes[mode]; exists {
		return theme
	}

	return iconThemes[TransportModeOther]
}
