package stations

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/stopboard/stopboard/pkg/ctdf"
	"golang.org/x/exp/slices"
)

var ErrInvalidStation = errors.New("station needs an id")

// Store is the persisted list of favourite stations shown on the departure board
type Store struct {
	path     string
	stations []ctdf.Stop

	mutex sync.RWMutex
}

// Open loads the store at path. A missing file is treated as an empty list.
func Open(path string) (*Store, error) {
	store := &Store{
		path:     path,
		stations: []ctdf.Stop{},
	}

	contents, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return store, nil
	} else if err != nil {
		return nil, err
	}

	if len(contents) == 0 {
		return store, nil
	}

	if err := json.Unmarshal(contents, &store.stations); err != nil {
		return nil, fmt.Errorf("invalid stations file %s: %w", path, err)
	}
	if store.stations == nil {
		store.stations = []ctdf.Stop{}
	}

	return store, nil
}

func (s *Store) Path() string {
	return s.path
}

// List returns a copy of the stations in the order they were added
func (s *Store) List() []ctdf.Stop {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return slices.Clone(s.stations)
}

func (s *Store) Get(identifier string) (ctdf.Stop, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	position := s.indexOf(identifier)
	if position < 0 {
		return ctdf.Stop{}, false
	}

	return s.stations[position], true
}

// Add appends the station unless one with the same id is already stored.
// The returned bool reports whether the list changed.
func (s *Store) Add(station ctdf.Stop) (bool, error) {
	if station.ID == "" {
		return false, ErrInvalidStation
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.indexOf(station.ID) >= 0 {
		return false, nil
	}

	updated := append(slices.Clone(s.stations), station)
	if err := s.save(updated); err != nil {
		return false, err
	}
	s.stations = updated

	log.Info().Str("station", station.ID).Str("name", station.GetName()).Msg("Added favourite station")

	return true, nil
}

func (s *Store) Remove(identifier string) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	position := s.indexOf(identifier)
	if position < 0 {
		return false, nil
	}

	updated := slices.Delete(slices.Clone(s.stations), position, position+1)
	if err := s.save(updated); err != nil {
		return false, err
	}
	s.stations = updated

	log.Info().Str("station", identifier).Msg("Removed favourite station")

	return true, nil
}

func (s *Store) indexOf(identifier string) int {
	return slices.IndexFunc(s.stations, func(station ctdf.Stop) bool {
		return station.ID == identifier
	})
}

// save writes to a temporary file next to the store and renames it into place
func (s *Store) save(stations []ctdf.Stop) error {
	contents, err := json.MarshalIndent(stations, "", "  ")
	if err != nil {
		return err
	}

	directory := filepath.Dir(s.path)
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return err
	}

	file, err := os.CreateTemp(directory, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tempPath := file.Name()

	if _, err := file.Write(contents); err != nil {
		file.Close()
		os.Remove(tempPath)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(tempPath)
		return err
	}

	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return err
	}

	return nil
}
