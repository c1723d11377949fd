package departureboard

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/stopboard/stopboard/pkg/ctdf"
	"github.com/stopboard/stopboard/pkg/util"
)

const DefaultRefreshInterval = 20 * time.Minute

// Limits are the row counts the board cycles through
var Limits = []int{5, 10, 15, 20}

type DepartureSource interface {
	GetDepartures(ctx context.Context, stationID string) ([]*ctdf.Departure, error)
}

type StationLister interface {
	List() []ctdf.Stop
}

type Board struct {
	Source          DepartureSource
	Stations        StationLister
	Cache           *DepartureCache
	RefreshInterval time.Duration
	MaxConcurrency  int

	Now func() time.Time

	mutex        sync.RWMutex
	limitIndex   int
	departures   map[string][]*ctdf.Departure
	errors       map[string]error
	lastUpdated  string
	refreshCount int
}

func NewBoard(source DepartureSource, stations StationLister) *Board {
	return &Board{
		Source:          source,
		Stations:        stations,
		RefreshInterval: DefaultRefreshInterval,
		MaxConcurrency:  8,
		Now:             time.Now,
		departures:      map[string][]*ctdf.Departure{},
		errors:          map[string]error{},
	}
}

func (b *Board) CurrentLimit() int {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	return Limits[b.limitIndex]
}

// CycleLimit moves to the next row count, wrapping back to the first
func (b *Board) CycleLimit() int {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.limitIndex = (b.limitIndex + 1) % len(Limits)

	return Limits[b.limitIndex]
}

func (b *Board) LastUpdated() string {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	return b.lastUpdated
}

func (b *Board) RefreshCount() int {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	return b.refreshCount
}

type stationResult struct {
	StationID  string
	Departures []*ctdf.Departure
	Err        error
}

// Refresh fetches departures for every favourite station. A station that fails
// keeps its previous departures and reports the error until the next success.
func (b *Board) Refresh(ctx context.Context) {
	stations := b.Stations.List()

	p := pool.NewWithResults[stationResult]()
	if b.MaxConcurrency > 0 {
		p = p.WithMaxGoroutines(b.MaxConcurrency)
	}

	for _, station := range stations {
		p.Go(func() stationResult {
			departures, err := b.fetch(ctx, station.ID)

			return stationResult{
				StationID:  station.ID,
				Departures: departures,
				Err:        err,
			}
		})
	}

	results := p.Wait()

	b.mutex.Lock()
	defer b.mutex.Unlock()

	for _, result := range results {
		if result.Err != nil {
			log.Error().Err(result.Err).Str("station", result.StationID).Msg("Failed to fetch departures")
			b.errors[result.StationID] = result.Err
			continue
		}

		delete(b.errors, result.StationID)
		b.departures[result.StationID] = result.Departures
	}

	b.lastUpdated = util.ClockTime(b.now())
	b.refreshCount++

	log.Info().
		Int("stations", len(stations)).
		Int("refresh", b.refreshCount).
		Str("updated", b.lastUpdated).
		Msg("Refreshed departure board")
}

func (b *Board) fetch(ctx context.Context, stationID string) ([]*ctdf.Departure, error) {
	if b.Cache != nil {
		if departures, hit := b.Cache.Get(ctx, stationID); hit {
			return departures, nil
		}
	}

	departures, err := b.Source.GetDepartures(ctx, stationID)
	if err != nil {
		return nil, err
	}

	if b.Cache != nil {
		if err := b.Cache.Set(ctx, stationID, departures); err != nil {
			log.Warn().Err(err).Str("station", stationID).Msg("Failed to cache departures")
		}
	}

	return departures, nil
}

// Run refreshes immediately and then on every interval until ctx is done
func (b *Board) Run(ctx context.Context) {
	interval := b.RefreshInterval
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	b.Refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.Refresh(ctx)
		}
	}
}

// Departures returns the latest departures for a station cut to the current limit
func (b *Board) Departures(stationID string) []*ctdf.Departure {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	departures := b.departures[stationID]
	limit := Limits[b.limitIndex]
	if len(departures) > limit {
		departures = departures[:limit]
	}

	return append([]*ctdf.Departure{}, departures...)
}

type StationDepartures struct {
	Station    ctdf.Stop         `json:"station"`
	Departures []*ctdf.Departure `json:"departures"`
	Error      string            `json:"error,omitempty"`
}

type Snapshot struct {
	Limit        int                 `json:"limit"`
	LastUpdated  string              `json:"lastUpdated"`
	RefreshCount int                 `json:"refreshCount"`
	Stations     []StationDepartures `json:"stations"`
}

// Snapshot is the whole board in favourite station order
func (b *Board) Snapshot() Snapshot {
	stations := b.Stations.List()

	b.mutex.RLock()
	snapshot := Snapshot{
		Limit:        Limits[b.limitIndex],
		LastUpdated:  b.lastUpdated,
		RefreshCount: b.refreshCount,
		Stations:     make([]StationDepartures, 0, len(stations)),
	}
	errors := make(map[string]string, len(b.errors))
	for stationID, err := range b.errors {
		errors[stationID] = err.Error()
	}
	b.mutex.RUnlock()

	for _, station := range stations {
		snapshot.Stations = append(snapshot.Stations, StationDepartures{
			Station:    station,
			Departures: b.Departures(station.ID),
			Error:      errors[station.ID],
		})
	}

	return snapshot
}

func (b *Board) now() time.Time {
	if b.Now == nil {
		return time.Now()
	}

	return b.Now()
}
