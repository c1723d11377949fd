package resrobot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stopboard/stopboard/pkg/config"
	"github.com/stopboard/stopboard/pkg/ctdf"
)

const DefaultEndpoint = "https://api.resrobot.se/v2.1/departureBoard"

// Product classes from the ResRobot documentation. Anything without a closer
// match on the board is shown as a bus.
var productClassModes = map[string]ctdf.TransportMode{
	"1":   ctdf.TransportModeBus,   // Air traffic
	"2":   ctdf.TransportModeRail,  // High speed trains
	"4":   ctdf.TransportModeRail,  // Regional trains, Intercity
	"8":   ctdf.TransportModeBus,   // Express buses, airport buses
	"16":  ctdf.TransportModeRail,  // Local trains
	"32":  ctdf.TransportModeMetro, // Metro
	"64":  ctdf.TransportModeTram,  // Trams
	"128": ctdf.TransportModeBus,   // Buses
	"256": ctdf.TransportModeFerry, // Ferries
	"512": ctdf.TransportModeBus,   // Taxis
}

type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ResRobot API error %d", e.StatusCode)
}

type Client struct {
	Endpoint    string
	AccessID    string
	MaxJourneys int
	Duration    time.Duration

	HTTPClient *http.Client
}

func NewClient(accessID string) *Client {
	return &Client{
		Endpoint:    DefaultEndpoint,
		AccessID:    accessID,
		MaxJourneys: 50,
		Duration:    200 * time.Minute,
		HTTPClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

func NewClientFromConfig(cfg *config.Config) (*Client, error) {
	lookahead, err := cfg.LookaheadMinutes(time.Now())
	if err != nil {
		return nil, err
	}

	client := NewClient(cfg.ResRobot.APIKey)
	client.MaxJourneys = cfg.ResRobot.MaxJourneys
	client.Duration = time.Duration(lookahead) * time.Minute
	if cfg.ResRobot.Endpoint != "" {
		client.Endpoint = cfg.ResRobot.Endpoint
	}

	return client, nil
}

// GetDepartures fetches the upcoming departures for a national stop id
func (c *Client) GetDepartures(ctx context.Context, stationID string) ([]*ctdf.Departure, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(stationID), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	startTime := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var board departureBoardResponse
	if err := json.NewDecoder(resp.Body).Decode(&board); err != nil {
		return nil, fmt.Errorf("decoding ResRobot departure board: %w", err)
	}

	departures := []*ctdf.Departure{}
	for _, rawDeparture := range board.Departure {
		departure, err := convertDeparture(rawDeparture)
		if err != nil {
			return nil, err
		}

		departures = append(departures, departure)
	}

	log.Debug().
		Str("station", stationID).
		Int("departures", len(departures)).
		Str("latency", time.Since(startTime).String()).
		Msg("Fetched ResRobot departure board")

	return departures, nil
}

func (c *Client) requestURL(stationID string) string {
	query := url.Values{}
	query.Set("id", stationID)
	query.Set("format", "json")
	query.Set("accessId", c.AccessID)
	query.Set("maxJourneys", strconv.Itoa(c.MaxJourneys))
	query.Set("duration", strconv.Itoa(int(c.Duration.Minutes())))

	return fmt.Sprintf("%s?%s", c.Endpoint, query.Encode())
}

func convertDeparture(rawDeparture json.RawMessage) (*ctdf.Departure, error) {
	var d departure
	if err := json.Unmarshal(rawDeparture, &d); err != nil {
		return nil, fmt.Errorf("decoding ResRobot departure: %w", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(rawDeparture, &raw); err != nil {
		return nil, fmt.Errorf("decoding ResRobot departure: %w", err)
	}

	return &ctdf.Departure{
		ID:            fmt.Sprintf("%s-%s-%s", d.Time, d.TransportNumber, d.Direction),
		Line:          sanitiseLine(d.lineName()),
		Destination:   d.Direction,
		Time:          d.Time,
		TimeISO:       fmt.Sprintf("%sT%s", d.Date, d.Time),
		TransportMode: d.transportMode(),
		Raw:           raw,
	}, nil
}

// Facility (non-revenue) departures are published with a single dot as line
func sanitiseLine(line string) string {
	if line == "." {
		return "FAC"
	}

	return line
}
