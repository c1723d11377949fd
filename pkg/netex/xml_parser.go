package netex

import (
	"io"

	"github.com/rs/zerolog/log"
	"github.com/stopboard/stopboard/pkg/ctdf"
)

type Stats struct {
	StopPlaces int
	Accepted   int
}

// ParseStopPlaces streams a stop registry export from reader and hands every
// complete stop to handle in the order their StopPlace elements close.
// Returning an error from handle aborts the parse.
func ParseStopPlaces(reader io.Reader, handle func(*ctdf.Stop) error) (Stats, error) {
	var stats Stats

	stream := NewStream(reader)
	path := &ElementPath{}
	builder := &StopPlaceBuilder{}

	for {
		event, err := stream.Next()
		if err != nil {
			return stats, err
		}

		switch event.Kind {
		case EventElementStart:
			path.Push(event.Name)
			builder.Start(event.Name)
		case EventText:
			builder.Text(path, event.Text)
		case EventElementEnd:
			if event.Name == StopPlaceElement && builder.InScope() {
				stats.StopPlaces += 1
			}

			if stop, accepted := builder.End(event.Name); accepted {
				if err := handle(stop); err != nil {
					return stats, err
				}
				stats.Accepted += 1

				if stats.Accepted%10000 == 0 {
					log.Debug().Int("accepted", stats.Accepted).Int("stopplaces", stats.StopPlaces).Msg("Extracting stops")
				}
			}

			path.Pop()
		case EventDocumentEnd:
			log.Debug().
				Int("stopplaces", stats.StopPlaces).
				Int("accepted", stats.Accepted).
				Msg("Successfully parsed document")

			return stats, nil
		}
	}
}
