package dawg

import "github.com/go-logr/logr"

// DefaultBlank is the sentinel byte used for a wildcard rack letter when
// callers of Anagrams pass a zero blank value.
const DefaultBlank byte = '?'

// options holds the fields shared by Builder and Graph that can be
// customized through Option. Only the fields relevant to each type are
// consulted by its constructor.
type options struct {
	log logr.Logger
}

func defaultOptions() options {
	return options{log: logr.Discard()}
}

// Option configures a Builder or a Graph constructor.
type Option func(*options)

// WithLogger sets the logr.Logger used for diagnostic messages emitted
// during construction and decoding. The default discards all output.
func WithLogger(log logr.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}
