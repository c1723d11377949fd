package stopsjson

import (
	"strings"

	"github.com/stopboard/stopboard/pkg/ctdf"
)

// Index answers stop lookups and searches over a loaded stops dataset
type Index struct {
	stops []ctdf.Stop
	byID  map[string]int
}

func NewIndex(stops []ctdf.Stop) *Index {
	index := &Index{
		stops: stops,
		byID:  make(map[string]int, len(stops)),
	}

	for i, stop := range stops {
		index.byID[stop.ID] = i
	}

	return index
}

func LoadIndex(path string) (*Index, error) {
	stops, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	return NewIndex(stops), nil
}

func (i *Index) Len() int {
	return len(i.stops)
}

func (i *Index) Get(identifier string) (ctdf.Stop, bool) {
	position, exists := i.byID[identifier]
	if !exists {
		return ctdf.Stop{}, false
	}

	return i.stops[position], true
}

// Search returns stops whose id equals the query or whose name contains it,
// ignoring case, in dataset order. A limit of zero or less means no limit.
func (i *Index) Search(query string, limit int) []ctdf.Stop {
	query = strings.ToLower(strings.TrimSpace(query))
	results := []ctdf.Stop{}

	if query == "" {
		return results
	}

	for _, stop := range i.stops {
		if stop.ID == query || strings.Contains(strings.ToLower(stop.GetName()), query) {
			results = append(results, stop)

			if limit > 0 && len(results) >= limit {
				break
			}
		}
	}

	return results
}
