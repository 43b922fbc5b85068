package tabular

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line (1 MiB); optimization outputs
// with thousands of decision variables stay well under this.
const maxLineBytes = 1 << 20

// Reader streams rows of delimited fields from an io.Reader, applying
// the filters configured in Options.  It implements epsort.Table.
type Reader struct {
	scanner *bufio.Scanner
	opts    Options
	line    int // physical lines consumed, 1-based after first Scan
	skip    int // header lines still to skip
}

// NewReader wraps r.  The reader consumes r lazily; nothing is read
// until the first Next call.
func NewReader(r io.Reader, opts Options) *Reader {
	opts.normalize()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &Reader{scanner: sc, opts: opts, skip: opts.Header}
}

// Next returns the next surviving row's fields, or io.EOF after the
// last line.  Header, blank and comment rows are consumed silently per
// Options; contribution fields are appended last.
func (r *Reader) Next() ([]string, error) {
	for {
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return nil, err
			}

			return nil, io.EOF
		}
		r.line++

		if r.skip > 0 {
			r.skip--

			continue
		}

		text := strings.TrimSpace(r.scanner.Text())
		if text == "" && r.opts.SkipBlank {
			continue
		}

		fields := strings.Split(text, r.opts.Delimiter)
		if r.isComment(fields) {
			continue
		}

		if r.opts.Contribution != "" {
			fields = append(fields, r.opts.Contribution)
			if r.opts.LineNumbers {
				fields = append(fields, strconv.Itoa(r.line))
			}
		}

		return fields, nil
	}
}

// Line returns the physical line number of the most recently read line.
func (r *Reader) Line() int { return r.line }

// isComment reports whether the row's first field starts with any
// configured comment prefix.
func (r *Reader) isComment(fields []string) bool {
	if len(fields) == 0 || len(r.opts.Comment) == 0 {
		return false
	}
	for _, prefix := range r.opts.Comment {
		if prefix != "" && strings.HasPrefix(fields[0], prefix) {
			return true
		}
	}

	return false
}
