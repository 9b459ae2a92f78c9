package interp

// Deterministic defaults.
const (
	// DefaultDensity is the number of samples per unit step.
	DefaultDensity = 30
	// DefaultFallback is the value emitted where no segment function exists.
	DefaultFallback = 1.0
)

// Option customizes an Interpolator.
type Option func(*config)

type config struct {
	density  int
	fallback float64
}

// WithDensity sets the number of samples per unit step.
// Panics if d < 1.
func WithDensity(d int) Option {
	if d < 1 {
		panic("interp: WithDensity(d<1)")
	}
	return func(c *config) {
		c.density = d
	}
}

// WithFallback sets the value emitted for positions without a segment.
func WithFallback(y float64) Option {
	return func(c *config) {
		c.fallback = y
	}
}

func newConfig(opts ...Option) config {
	cfg := config{
		density:  DefaultDensity,
		fallback: DefaultFallback,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
