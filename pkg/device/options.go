package device

// Options is the set of inputs that can change a classification outcome.
type Options struct {
	// UA overrides the ambient signal.
	UA Source
	// Tablet includes tablets in the mobile decision.
	Tablet bool
	// FeatureDetect enables the feature prober and the hybrid path.
	FeatureDetect bool
}

// Option updates Options. Options are applied in order, so later ones win.
type Option func(*Options)

// WithUA sets the signal source.
func WithUA(src Source) Option {
	return func(o *Options) { o.UA = src }
}

// WithUAString is WithUA(FromString(ua)).
func WithUAString(ua string) Option {
	return WithUA(FromString(ua))
}

// WithTablet toggles tablet-inclusive mode.
func WithTablet(enabled bool) Option {
	return func(o *Options) { o.Tablet = enabled }
}

// WithFeatureDetect toggles the feature prober.
func WithFeatureDetect(enabled bool) Option {
	return func(o *Options) { o.FeatureDetect = enabled }
}

func newOptions(opts ...Option) Options {
	var o Options
	return o.with(opts...)
}

// with returns a copy of o with opts applied; o itself is untouched.
func (o Options) with(opts ...Option) Options {
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
