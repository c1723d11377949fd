package netex

import (
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

type EventKind int

const (
	EventElementStart EventKind = iota
	EventText
	EventElementEnd
	EventDocumentEnd
)

func (k EventKind) String() string {
	switch k {
	case EventElementStart:
		return "ElementStart"
	case EventText:
		return "Text"
	case EventElementEnd:
		return "ElementEnd"
	case EventDocumentEnd:
		return "DocumentEnd"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a single structural event of the document. Name holds the local
// element name for start/end events, Text the raw character data for text events.
type Event struct {
	Kind EventKind
	Name string
	Text string
}

type ParseError struct {
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("XML parse error at offset %d: %s", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Stream pulls structural events from an XML document one at a time without
// holding the document in memory.
type Stream struct {
	decoder *xml.Decoder

	finished bool
	err      error
}

func NewStream(reader io.Reader) *Stream {
	d := xml.NewDecoder(reader)
	d.CharsetReader = charset.NewReaderLabel

	return &Stream{decoder: d}
}

// Next returns the next event. Once the document is exhausted every call returns
// an EventDocumentEnd, and once an error has been returned it is returned again.
func (s *Stream) Next() (Event, error) {
	if s.err != nil {
		return Event{}, s.err
	}
	if s.finished {
		return Event{Kind: EventDocumentEnd}, nil
	}

	for {
		tok, err := s.decoder.Token()
		if err == io.EOF {
			s.finished = true
			return Event{Kind: EventDocumentEnd}, nil
		} else if err != nil {
			s.err = &ParseError{Offset: s.decoder.InputOffset(), Err: err}
			return Event{}, s.err
		}

		switch ty := tok.(type) {
		case xml.StartElement:
			return Event{Kind: EventElementStart, Name: ty.Name.Local}, nil
		case xml.EndElement:
			return Event{Kind: EventElementEnd, Name: ty.Name.Local}, nil
		case xml.CharData:
			return Event{Kind: EventText, Text: string(ty)}, nil
		default:
			// comments, processing instructions and directives carry no stop data
		}
	}
}
