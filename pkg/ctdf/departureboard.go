package ctdf

// Departure is one row of a stop's departure board
type Departure struct {
	ID            string        `json:"id" groups:"basic,detailed"`
	Line          string        `json:"line" groups:"basic,detailed"`
	Destination   string        `json:"destination" groups:"basic,detailed"`
	Time          string        `json:"time" groups:"basic,detailed"`
	TimeISO       string        `json:"timeISO" groups:"basic,detailed"`
	TransportMode TransportMode `json:"tMode" groups:"basic,detailed"`

	// Upstream record as received, only exposed in the detailed group
	Raw map[string]interface{} `json:"raw,omitempty" groups:"detailed"`
}
