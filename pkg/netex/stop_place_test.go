package netex

import (
	"math"
	"strings"
	"testing"

	"github.com/stopboard/stopboard/pkg/ctdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseStops(t *testing.T, document string) []*ctdf.Stop {
	t.Helper()

	var stops []*ctdf.Stop
	_, err := ParseStopPlaces(strings.NewReader(document), func(stop *ctdf.Stop) error {
		stops = append(stops, stop)
		return nil
	})
	require.NoError(t, err)

	return stops
}

func stopPlace(body string) string {
	return "<stopPlaces><StopPlace>" + body + "</StopPlace></stopPlaces>"
}

const coordinates = `<Centroid><Location><Longitude>18.06</Longitude><Latitude>59.33</Latitude></Location></Centroid>`

func rikshallplats(id string) string {
	return `<keyList><KeyValue><Key>rikshallplats</Key><Value>` + id + `</Value></KeyValue></keyList>`
}

func TestStopPlaceBuilderCompleteStop(t *testing.T) {
	stops := parseStops(t, stopPlace(rikshallplats("740000123")+`<Name>Central</Name>`+coordinates+`<TransportMode>rail</TransportMode>`))

	require.Len(t, stops, 1)
	assert.Equal(t, "740000123", stops[0].ID)
	assert.Equal(t, "Central", stops[0].GetName())
	assert.Equal(t, 59.33, stops[0].Lat)
	assert.Equal(t, 18.06, stops[0].Lon)
	require.NotNil(t, stops[0].TransportMode)
	assert.Equal(t, "rail", *stops[0].TransportMode)
}

func TestStopPlaceBuilderUnrelatedKeyNeverSetsID(t *testing.T) {
	stops := parseStops(t, stopPlace(`<keyList><KeyValue><Key>other</Key><Value>X</Value></KeyValue></keyList><Name>Somewhere</Name>`+coordinates))

	assert.Empty(t, stops)
}

func TestStopPlaceBuilderUnrelatedKeysKeepID(t *testing.T) {
	keys := `<keyList>
		<KeyValue><Key>rikshallplats</Key><Value>740000001</Value></KeyValue>
		<KeyValue><Key>other</Key><Value>X</Value></KeyValue>
		<KeyValue><Key>Name</Key><Value>Y</Value></KeyValue>
	</keyList>`

	stops := parseStops(t, stopPlace(keys+coordinates))

	require.Len(t, stops, 1)
	assert.Equal(t, "740000001", stops[0].ID)
}

func TestStopPlaceBuilderLastSentinelPairWins(t *testing.T) {
	keys := `<keyList>
		<KeyValue><Key>rikshallplats</Key><Value>740000001</Value></KeyValue>
		<KeyValue><Key>rikshallplats</Key><Value>740000002</Value></KeyValue>
	</keyList>`

	stops := parseStops(t, stopPlace(keys+coordinates))

	require.Len(t, stops, 1)
	assert.Equal(t, "740000002", stops[0].ID)
}

func TestStopPlaceBuilderNameInsideKeyValueIgnored(t *testing.T) {
	keys := `<keyList><KeyValue><Name>Metadata Name</Name><Key>rikshallplats</Key><Value>740000123</Value></KeyValue></keyList>`

	stops := parseStops(t, stopPlace(keys+coordinates))

	require.Len(t, stops, 1)
	assert.Nil(t, stops[0].Name)
}

func TestStopPlaceBuilderNestedNameIgnored(t *testing.T) {
	quays := `<quays><Quay><Name>Platform 1</Name></Quay></quays>`

	stops := parseStops(t, stopPlace(rikshallplats("740000123")+quays+`<Name>Central</Name>`+coordinates))

	require.Len(t, stops, 1)
	assert.Equal(t, "Central", stops[0].GetName())
}

func TestStopPlaceBuilderFirstNameWins(t *testing.T) {
	stops := parseStops(t, stopPlace(rikshallplats("740000123")+`<Name>Central Station</Name><Name>Old Name</Name>`+coordinates))

	require.Len(t, stops, 1)
	assert.Equal(t, "Central Station", stops[0].GetName())
}

func TestStopPlaceBuilderTrimsAndSkipsWhitespace(t *testing.T) {
	body := `<keyList><KeyValue><Key>  rikshallplats </Key><Value>
		740000123
	</Value></KeyValue></keyList>
	<Name>   </Name>
	<Name>  Central  </Name>
	<Centroid><Location><Longitude> 18.06 </Longitude><Latitude>59.33
	</Latitude></Location></Centroid>
	<TransportMode>   </TransportMode>`

	stops := parseStops(t, stopPlace(body))

	require.Len(t, stops, 1)
	assert.Equal(t, "740000123", stops[0].ID)
	assert.Equal(t, "Central", stops[0].GetName())
	assert.Equal(t, 59.33, stops[0].Lat)
	assert.Equal(t, 18.06, stops[0].Lon)
	assert.Nil(t, stops[0].TransportMode)
}

func TestStopPlaceBuilderRejectsIncompleteStops(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing identifier",
			body: `<Name>Central</Name>` + coordinates,
		},
		{
			name: "zero latitude",
			body: rikshallplats("740000123") + `<Centroid><Location><Longitude>18.06</Longitude><Latitude>0</Latitude></Location></Centroid>`,
		},
		{
			name: "zero longitude",
			body: rikshallplats("740000123") + `<Centroid><Location><Longitude>0.0</Longitude><Latitude>59.33</Latitude></Location></Centroid>`,
		},
		{
			name: "missing coordinates",
			body: rikshallplats("740000123") + `<Name>Central</Name>`,
		},
		{
			name: "unparsable latitude",
			body: rikshallplats("740000123") + `<Centroid><Location><Longitude>18.06</Longitude><Latitude>north</Latitude></Location></Centroid>`,
		},
		{
			name: "infinite longitude",
			body: rikshallplats("740000123") + `<Centroid><Location><Longitude>Inf</Longitude><Latitude>59.33</Latitude></Location></Centroid>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, parseStops(t, stopPlace(tt.body)))
		})
	}
}

func TestStopPlaceBuilderIgnoresTextOutsideScope(t *testing.T) {
	document := `<root>
		<Name>Frame name</Name>
		<KeyValue><Key>rikshallplats</Key><Value>1</Value></KeyValue>
		<Latitude>1</Latitude>
		<StopPlace>` + rikshallplats("740000123") + coordinates + `</StopPlace>
		<Latitude>2</Latitude>
	</root>`

	stops := parseStops(t, document)

	require.Len(t, stops, 1)
	assert.Equal(t, "740000123", stops[0].ID)
	assert.Nil(t, stops[0].Name)
}

func TestStopPlaceBuilderPendingKeyDoesNotLeakBetweenScopes(t *testing.T) {
	document := `<stopPlaces>
		<StopPlace><keyList><KeyValue><Key>rikshallplats</Key></KeyValue></keyList>` + coordinates + `</StopPlace>
		<StopPlace><keyList><KeyValue><Value>740000999</Value></KeyValue></keyList>` + coordinates + `</StopPlace>
	</stopPlaces>`

	assert.Empty(t, parseStops(t, document))
}

func TestStopPlaceBuilderEnd(t *testing.T) {
	builder := &StopPlaceBuilder{}

	stop, accepted := builder.End(StopPlaceElement)
	assert.Nil(t, stop)
	assert.False(t, accepted)

	builder.Start(StopPlaceElement)
	assert.True(t, builder.InScope())

	stop, accepted = builder.End("Quay")
	assert.Nil(t, stop)
	assert.False(t, accepted)
	assert.True(t, builder.InScope())

	_, accepted = builder.End(StopPlaceElement)
	assert.False(t, accepted)
	assert.False(t, builder.InScope())
}

func TestParseCoordinate(t *testing.T) {
	assert.Equal(t, 59.33, parseCoordinate("59.33"))
	assert.Equal(t, -3.5, parseCoordinate("-3.5"))
	assert.True(t, math.IsNaN(parseCoordinate("")))
	assert.True(t, math.IsNaN(parseCoordinate("59,33")))
}
