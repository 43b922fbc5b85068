package tabular

import (
	"bufio"
	"io"
	"strings"
)

// Writer emits rows joined by a delimiter, one row per line, buffered.
type Writer struct {
	bw    *bufio.Writer
	delim string
}

// NewWriter wraps w.  An empty delimiter means DefaultDelimiter.
// Callers must Flush when done.
func NewWriter(w io.Writer, delimiter string) *Writer {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	return &Writer{bw: bufio.NewWriter(w), delim: delimiter}
}

// WriteRow writes one row of fields followed by a newline.
func (w *Writer) WriteRow(fields []string) error {
	if _, err := w.bw.WriteString(strings.Join(fields, w.delim)); err != nil {
		return err
	}

	return w.bw.WriteByte('\n')
}

// Flush forces buffered output to the underlying writer.
func (w *Writer) Flush() error { return w.bw.Flush() }
