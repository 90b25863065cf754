package livesync

import (
	"time"

	"go.uber.org/zap"
)

// DefaultMessageLimit caps the initial conversation read.
const DefaultMessageLimit = 50

type options struct {
	logger   *zap.Logger
	onChange func()
	now      func() time.Time
	limit    int
}

type Option func(*options)

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOnChange registers a callback run after every observable state change.
// It is called without any hook lock held.
func WithOnChange(fn func()) Option {
	return func(o *options) { o.onChange = fn }
}

// WithClock replaces time.Now for provisional timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithMessageLimit sets how many messages the initial read fetches.
func WithMessageLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.limit = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger: zap.NewNop(),
		now:    time.Now,
		limit:  DefaultMessageLimit,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) notify() {
	if o.onChange != nil {
		o.onChange()
	}
}
