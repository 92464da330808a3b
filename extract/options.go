package extract

// options holds output settings for WriteCSV
type options struct {
	encoding Encoding
	crlf     bool
}

// Option adjusts how an aggregated document is written
type Option func(*options)

// WithEncoding selects the output byte encoding
func WithEncoding(e Encoding) Option {
	return func(o *options) {
		o.encoding = e
	}
}

// WithCRLF terminates rows with CRLF for strict RFC 4180 consumers
func WithCRLF() Option {
	return func(o *options) {
		o.crlf = true
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
