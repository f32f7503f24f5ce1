package catalogid

// Option adjusts the length bounds a normalizer or validator applies.
// Each identifier kind has its own defaults; options override them per call.
type Option func(*lengthConfig)

// lengthConfig holds the resolved length bounds for a single call.
type lengthConfig struct {
	minLen int
	maxLen int
}

// WithMinLen overrides the minimum length bound.
// It has no effect on normalizers, which never enforce a minimum.
func WithMinLen(n int) Option {
	return func(c *lengthConfig) {
		c.minLen = n
	}
}

// WithMaxLen overrides the maximum length bound. For idx this moves the
// truncation point of NormalizeIdx as well as the validation bound.
func WithMaxLen(n int) Option {
	return func(c *lengthConfig) {
		c.maxLen = n
	}
}

// resolveLengths applies opts on top of the given per-kind defaults.
func resolveLengths(minLen, maxLen int, opts []Option) lengthConfig {
	cfg := lengthConfig{minLen: minLen, maxLen: maxLen}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
