package pool

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of a pool configuration.
//
// Pointer fields distinguish "absent, keep the default" from an explicit
// zero.
type fileConfig struct {
	Size    *int   `yaml:"size"`
	TTL     *int64 `yaml:"ttl"`
	TTLUnit string `yaml:"ttl_unit"`
}

// LoadFile reads a YAML pool configuration:
//
//	size: 25
//	ttl: 30
//	ttl_unit: seconds
//
// Absent fields keep their defaults. The result is a strict-policy Config,
// so out-of-range values fail with ErrInvalidArgument.
func LoadFile[T any](path string) (*Config[T], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pool config: %w", err)
	}
	return Parse[T](data)
}

// Parse builds a strict-policy Config from YAML bytes. See LoadFile for the
// document shape.
func Parse[T any](data []byte) (*Config[T], error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	cfg := New[T]()
	if fc.Size != nil {
		if err := cfg.SetSize(*fc.Size); err != nil {
			return nil, err
		}
	}
	if fc.TTL != nil || fc.TTLUnit != "" {
		value := cfg.TTL()
		if fc.TTL != nil {
			value = *fc.TTL
		}
		unit := cfg.TTLUnit()
		if fc.TTLUnit != "" {
			var err error
			if unit, err = parseTTLUnit(fc.TTLUnit); err != nil {
				return nil, err
			}
		}
		if err := cfg.SetTTL(value, unit); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func parseTTLUnit(name string) (time.Duration, error) {
	switch strings.TrimSuffix(strings.ToLower(name), "s") {
	case "millisecond":
		return time.Millisecond, nil
	case "second":
		return time.Second, nil
	case "minute":
		return time.Minute, nil
	case "hour":
		return time.Hour, nil
	}
	return 0, fmt.Errorf("%w: unknown ttl unit %q", ErrInvalidArgument, name)
}
