package writeext

import "log/slog"

type Option func(*Runtime) error

func WithLogger(l *slog.Logger) Option {
	return func(r *Runtime) error {
		r.logger = l
		return nil
	}
}

// WithMaxActive caps how many extensions may be active at once.
// n <= 0 disables the cap.
func WithMaxActive(n int) Option {
	return func(r *Runtime) error {
		r.maxActive = n
		return nil
	}
}
