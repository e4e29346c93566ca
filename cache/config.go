package cache

import (
	"encoding/json"

	"github.com/facebookgo/stackerr"
	"github.com/rcrowley/go-metrics"

	"github.com/skipor/lru/internal/util"
)

const DefaultCapacity = 1024

type Config struct {
	// Capacity is max number of entries. Should be positive.
	Capacity int `json:"capacity,omitempty"`
	// MetricsPrefix is prepended to metric names. Empty means DefaultMetricsPrefix.
	MetricsPrefix string `json:"metrics-prefix,omitempty"`
	// Metrics is registry for cache counters. Nil disables metrics.
	Metrics metrics.Registry `json:"-"`
}

func DefaultConfig() Config {
	return Config{
		Capacity:      DefaultCapacity,
		MetricsPrefix: DefaultMetricsPrefix,
	}
}

func (c Config) Validate() error {
	if c.Capacity < 1 {
		return withStack(&ConfigurationError{Capacity: c.Capacity})
	}
	return nil
}

// ParseConfig decodes JSON config. Missing values are taken from DefaultConfig.
// Explicit zero capacity is invalid.
func ParseConfig(data []byte) (conf Config, err error) {
	var override Config
	err = json.Unmarshal(data, &override)
	if err != nil {
		err = stackerr.Newf("Config decode error: %v", err)
		return
	}
	var explicit struct {
		Capacity *int `json:"capacity"`
	}
	err = json.Unmarshal(data, &explicit)
	if err != nil {
		err = stackerr.Newf("Config decode error: %v", err)
		return
	}
	conf = DefaultConfig()
	util.MergeNonZero(&conf, &override)
	if explicit.Capacity != nil {
		conf.Capacity = *explicit.Capacity
	}
	err = conf.Validate()
	return
}
