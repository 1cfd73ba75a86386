// Package response writes the hand built HTTP responses of the stub servers.
package response

import (
	"fmt"
	"io"

	"github.com/paketo-buildpacks/bundler/common"
)

// Writes a response directly to a connection. Nothing is buffered: every call
// is one write to the underlying connection.
type Writer struct {
	conn    io.Writer
	written int
}

func NewWriter(conn io.Writer) *Writer {
	return &Writer{conn: conn}
}

// Writes the status line, the content type header and the blank line ending
// the header block, in that order, one write each.
func (w *Writer) Begin() error {
	for _, part := range []string{common.STATUS_LINE, common.CONTENT_TYPE, common.HEADER_END} {
		if err := w.write(part); err != nil {
			return fmt.Errorf("failed to write preamble: %w", err)
		}
	}
	return nil
}

// Writes text as the next chunk of the body
func (w *Writer) Append(text string) error {
	if err := w.write(text); err != nil {
		return fmt.Errorf("failed to write body: %w", err)
	}
	return nil
}

// Appends a formatted chunk
func (w *Writer) Appendf(format string, args ...interface{}) error {
	return w.Append(fmt.Sprintf(format, args...))
}

// Returns the number of bytes written so far
func (w *Writer) Written() int {
	return w.written
}

func (w *Writer) write(text string) error {
	n, err := common.SendAll(w.conn, []byte(text))
	w.written += n
	return err
}
