package tabular

// DefaultDelimiter separates fields when Options.Delimiter is empty.
const DefaultDelimiter = " "

// Options configures a Reader.
//   - Delimiter    — field separator; empty means DefaultDelimiter.
//   - Comment      — rows whose first field starts with any of these
//     prefixes are skipped.
//   - Header       — number of leading lines to skip.
//   - SkipBlank    — drop blank rows instead of passing them through.
//   - Contribution — when non-empty, appended as an extra field to every
//     row, marking where the row came from.
//   - LineNumbers  — with Contribution set, also append the 1-based
//     physical line number.
type Options struct {
	Delimiter    string
	Comment      []string
	Header       int
	SkipBlank    bool
	Contribution string
	LineNumbers  bool
}

// DefaultOptions returns Options for plain space-delimited input with
// no filtering.
func DefaultOptions() Options {
	return Options{Delimiter: DefaultDelimiter}
}

// normalize fills in defaults.
func (o *Options) normalize() {
	if o.Delimiter == "" {
		o.Delimiter = DefaultDelimiter
	}
	if o.Header < 0 {
		o.Header = 0
	}
}
