package lazysets

// MapOption defines options for altering the construction of lazy map
// wrappers. See the descriptions of functions returning instances of this
// type for implemented options.
type MapOption func(*mapConfig) error

// mapConfig is the construction configuration with the options applied.
type mapConfig struct {
	skipInvertibilityCheck bool
}

func newMapConfig(opts ...MapOption) (mapConfig, error) {
	var cfg mapConfig
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// WithoutInvertibilityCheck bypasses the invertibility check performed when
// constructing an inverse linear map. With the check bypassed, passing a
// singular matrix leaves the behavior of later queries undefined: solves may
// fail or produce meaningless results. That risk is the caller's.
func WithoutInvertibilityCheck() MapOption {
	return func(cfg *mapConfig) error {
		cfg.skipInvertibilityCheck = true
		return nil
	}
}
