package scanner

const defaultBufferSize = 8192

type options struct {
	bufferSize int
}

type Option func(opts *options)

func makeOptions(opts ...Option) *options {
	res := &options{
		bufferSize: defaultBufferSize,
	}

	for _, o := range opts {
		o(res)
	}

	return res
}

// WithBufferSize overrides the read chunk size. Counting results are
// independent of the chunk size; this only affects read granularity.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferSize = n
		}
	}
}
