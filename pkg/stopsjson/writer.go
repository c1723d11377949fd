package stopsjson

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/stopboard/stopboard/pkg/ctdf"
)

var ErrWriterClosed = errors.New("stops writer already closed")

// ArrayWriter serialises stops into a JSON array one record at a time. Only the
// record being written is ever held in memory.
type ArrayWriter struct {
	writer  *bufio.Writer
	record  bytes.Buffer
	encoder *json.Encoder

	count  int
	closed bool
	err    error
}

// NewArrayWriter writes the opening delimiter straight away.
func NewArrayWriter(w io.Writer) (*ArrayWriter, error) {
	a := &ArrayWriter{
		writer: bufio.NewWriter(w),
	}
	a.encoder = json.NewEncoder(&a.record)
	a.encoder.SetEscapeHTML(false)

	if err := a.writer.WriteByte('['); err != nil {
		return nil, err
	}
	if err := a.writer.Flush(); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *ArrayWriter) Write(stop *ctdf.Stop) error {
	if a.err != nil {
		return a.err
	}
	if a.closed {
		return ErrWriterClosed
	}

	a.record.Reset()
	if err := a.encoder.Encode(stop); err != nil {
		return a.fail(err)
	}

	if a.count > 0 {
		if err := a.writer.WriteByte(','); err != nil {
			return a.fail(err)
		}
	}

	// Encode terminates every value with a newline
	if _, err := a.writer.Write(bytes.TrimSuffix(a.record.Bytes(), []byte{'\n'})); err != nil {
		return a.fail(err)
	}

	a.count += 1

	return nil
}

// Close terminates the array and flushes everything to the underlying writer.
// It does not close the underlying writer.
func (a *ArrayWriter) Close() error {
	if a.err != nil {
		return a.err
	}
	if a.closed {
		return nil
	}

	if err := a.writer.WriteByte(']'); err != nil {
		return a.fail(err)
	}
	if err := a.writer.Flush(); err != nil {
		return a.fail(err)
	}

	a.closed = true

	return nil
}

func (a *ArrayWriter) Count() int {
	return a.count
}

func (a *ArrayWriter) fail(err error) error {
	a.err = err
	return err
}
