package stopsjson

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stopboard/stopboard/pkg/ctdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dataset = `[{"id":"740000001","name":"Stockholm Centralstation","lat":59.33,"lon":18.06,"transportMode":"rail"},` +
	`{"id":"740000002","name":"Göteborg Centralstation","lat":57.7,"lon":11.97,"transportMode":"rail"},` +
	`{"id":"740000003","name":null,"lat":55.6,"lon":13.0,"transportMode":null}]`

func TestReadAll(t *testing.T) {
	stops, err := ReadAll(strings.NewReader(dataset))
	require.NoError(t, err)

	require.Len(t, stops, 3)
	assert.Equal(t, "740000002", stops[1].ID)
	assert.Equal(t, "Göteborg Centralstation", stops[1].GetName())
	assert.Nil(t, stops[2].Name)
	assert.Equal(t, ctdf.TransportModeOther, stops[2].GetTransportMode())
}

func TestReadAllEmpty(t *testing.T) {
	stops, err := ReadAll(strings.NewReader("[]"))
	require.NoError(t, err)
	assert.Empty(t, stops)
}

func TestReadAllRejectsNonArray(t *testing.T) {
	_, err := ReadAll(strings.NewReader(`{"id":"1"}`))
	assert.Error(t, err)

	_, err = ReadAll(strings.NewReader(`[{"id":"1"}`))
	assert.Error(t, err)
}

func TestWriterOutputRoundTripsThroughIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stops.json")
	file, err := os.Create(path)
	require.NoError(t, err)

	writer, err := NewArrayWriter(file)
	require.NoError(t, err)
	require.NoError(t, writer.Write(&ctdf.Stop{ID: "740000123", Name: stringPointer("Central"), Lat: 59.33, Lon: 18.06}))
	require.NoError(t, writer.Close())
	require.NoError(t, file.Close())

	index, err := LoadIndex(path)
	require.NoError(t, err)

	stop, exists := index.Get("740000123")
	require.True(t, exists)
	assert.Equal(t, "Central", stop.GetName())
}

func TestIndexSearch(t *testing.T) {
	stops, err := ReadAll(strings.NewReader(dataset))
	require.NoError(t, err)
	index := NewIndex(stops)

	assert.Equal(t, 3, index.Len())

	tests := []struct {
		name     string
		query    string
		limit    int
		expected []string
	}{
		{name: "name substring ignoring case", query: "centralSTATION", expected: []string{"740000001", "740000002"}},
		{name: "limit", query: "central", limit: 1, expected: []string{"740000001"}},
		{name: "exact id", query: "740000003", expected: []string{"740000003"}},
		{name: "partial id does not match", query: "74000000", expected: []string{}},
		{name: "blank query", query: "  ", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := []string{}
			for _, stop := range index.Search(tt.query, tt.limit) {
				ids = append(ids, stop.ID)
			}

			assert.Equal(t, tt.expected, ids)
		})
	}

	_, exists := index.Get("missing")
	assert.False(t, exists)
}
