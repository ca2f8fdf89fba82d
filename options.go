package libtrigger

type (
	options struct {
		logger    Logger
		scheduler Scheduler
		metrics   Metrics
	}

	// Option configures a Registry at construction time.
	Option func(o *options)
)

// WithLogger sets the logger used for debug traces. Defaults to a no-op logger.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithScheduler sets where FireAsync hands its work. By default every registry owns a Queue
// drained through Flush, so deferred listeners run on the caller's goroutine. Passing a Worker
// opts into delivery on a separate goroutine.
func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		if s != nil {
			o.scheduler = s
		}
	}
}

// WithMetrics sets the metrics sink. Defaults to a no-op sink.
func WithMetrics(m Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:  noopLogger{},
		metrics: noopMetrics{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.scheduler == nil {
		o.scheduler = NewQueue()
	}
	return o
}
