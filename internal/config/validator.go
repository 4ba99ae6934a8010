package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("configuration validation failed")

var storeTypes = map[string]bool{"": true, "sqlite": true, "postgres": true}

// Validate checks every field and reports all problems in one error.
func (c *Config) Validate() error {
	var problems []string

	if c.Trials < 1 {
		problems = append(problems, fmt.Sprintf("trials must be at least 1, got: %d", c.Trials))
	}

	if len(c.Sizes) == 0 {
		problems = append(problems, "sizes must not be empty")
	}
	seen := make(map[int]bool, len(c.Sizes))
	for _, s := range c.Sizes {
		if s < 0 {
			problems = append(problems, fmt.Sprintf("sizes must be non-negative, got: %d", s))
		}
		if seen[s] {
			problems = append(problems, fmt.Sprintf("sizes must be unique, got: %d", s))
		}
		seen[s] = true
	}

	if c.Skip.QuadraticLimit < 0 {
		problems = append(problems, fmt.Sprintf("skip.quadratic_limit must be non-negative, got: %d", c.Skip.QuadraticLimit))
	}

	// 0 disables the metrics endpoint.
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		problems = append(problems, fmt.Sprintf("metrics_port must be between 0 and 65535, got: %d", c.MetricsPort))
	}

	if !storeTypes[c.Store.Type] {
		problems = append(problems, fmt.Sprintf("store.type must be sqlite or postgres, got: %q", c.Store.Type))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrInvalidConfig, strings.Join(problems, "\n  "))
	}
	return nil
}
