package session

import "log/slog"

// Option configures a Session during creation.
//
// Example:
//
//	s := session.New(640, 480, session.WithWorkers(4))
//	defer s.Close()
type Option func(*options)

type options struct {
	workers int
	logger  *slog.Logger
}

// WithWorkers sets the number of goroutines used to run filters.
// Values <= 1 run filters on the calling goroutine; that is the default.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets the session logger. The default is paintkit.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
