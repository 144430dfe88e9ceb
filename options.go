package dieroll

// Option configures the construction of a generator, a die or a Roller.
type Option func(*options)

type options struct {
	seed SeedFunc
}

func buildOptions(opts []Option) options {
	o := options{seed: TimeSeed}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.seed == nil {
		o.seed = TimeSeed
	}
	return o
}

// WithSeed replaces the time-of-day seed with a fixed value.
// Use it to obtain reproducible sequences in tests.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = func() uint64 { return seed }
	}
}

// WithSeedFunc replaces the time-of-day seed source with f. A nil f keeps TimeSeed.
func WithSeedFunc(f SeedFunc) Option {
	return func(o *options) {
		o.seed = f
	}
}
