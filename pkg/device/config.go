package device

import (
	"errors"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
var ErrParsingConfig = errors.New("failed to parse device detection config")

// Config holds the settings a Classifier can be built from.
type Config struct {
	CacheTTL        time.Duration `env:"DEVICE_CACHE_TTL" envDefault:"5m"`
	CacheMaxEntries int           `env:"DEVICE_CACHE_MAX_ENTRIES" envDefault:"10000"`
	Tablet          bool          `env:"DEVICE_TABLET" envDefault:"false"`
	FeatureDetect   bool          `env:"DEVICE_FEATURE_DETECT" envDefault:"false"`
}

var dotenvLoaded sync.Once

// LoadConfig reads Config from the process environment, loading a .env file
// from the working directory first if one exists.
func LoadConfig() (Config, error) {
	dotenvLoaded.Do(func() {
		// The .env file is optional
		_ = godotenv.Load()
	})

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Options returns the default classification options described by cfg.
func (cfg Config) Options() []Option {
	return []Option{WithTablet(cfg.Tablet), WithFeatureDetect(cfg.FeatureDetect)}
}

// NewClassifierFromConfig builds a Classifier from cfg. Extra options are
// applied after the config ones.
func NewClassifierFromConfig(cfg Config, opts ...ClassifierOption) *Classifier {
	base := []ClassifierOption{
		WithCacheTTL(cfg.CacheTTL),
		WithCacheMaxEntries(cfg.CacheMaxEntries),
		WithDefaults(cfg.Options()...),
	}
	return NewClassifier(append(base, opts...)...)
}
