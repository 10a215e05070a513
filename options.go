package pngme

type readConfig struct {
	limits Limits
}

type ReadOption func(*readConfig)

// WithReadLimits overrides the default decode limits.
func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}
