package sequence

// genConfig aggregates all generator knobs. Passed by value.
type genConfig struct {
	start    int // first start value (inclusive)
	maxSteps int // 0 = unbounded
}

// newGenConfig applies opts over deterministic defaults, later options win.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		start:    DefaultStart,
		maxSteps: 0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
