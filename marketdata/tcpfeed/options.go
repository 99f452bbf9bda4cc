package tcpfeed

// Option is a configuration option for the Serializer
type Option interface {
	apply(*options)
}

type options struct {
	logger         Logger
	readBufferSize int
	maxFrameSize   int
}

type funcOption struct {
	f func(*options)
}

func (fo *funcOption) apply(o *options) {
	fo.f(o)
}

func newFuncOption(f func(*options)) *funcOption {
	return &funcOption{
		f: f,
	}
}

// WithLogger configures the logger
func WithLogger(logger Logger) Option {
	return newFuncOption(func(o *options) {
		o.logger = logger
	})
}

// WithReadBufferSize sets the initial capacity of the scratch buffer frames are
// read into. The buffer still grows when a longer frame arrives.
func WithReadBufferSize(size int) Option {
	return newFuncOption(func(o *options) {
		o.readBufferSize = size
	})
}

// WithMaxFrameSize limits how large a single frame (including its end marker)
// can grow. Reading a larger frame fails with ErrFrameTooLarge.
// size <= 0 means no limit.
func WithMaxFrameSize(size int) Option {
	return newFuncOption(func(o *options) {
		o.maxFrameSize = size
	})
}

// defaultOptions are the default options for a serializer.
func defaultOptions() *options {
	return &options{
		logger:         DefaultLogger(),
		readBufferSize: defaultReadBufferSize,
		maxFrameSize:   0,
	}
}

func (o *options) apply(opts ...Option) {
	for _, opt := range opts {
		opt.apply(o)
	}
}
