package config

import (
	"errors"
	"fmt"
)

// Validate checks that every duration is positive and every range is ordered.
func (c KissConfig) Validate() error {
	var errs []error

	p := c.Principal
	if p.SafeMinMS <= 0 || p.SafeMaxMS < p.SafeMinMS {
		errs = append(errs, fmt.Errorf("principal safe range [%d, %d) is invalid", p.SafeMinMS, p.SafeMaxMS))
	}
	if p.WarningMS <= 0 {
		errs = append(errs, fmt.Errorf("principal warning_ms must be positive, got %d", p.WarningMS))
	}
	if p.DangerMinMS <= 0 || p.DangerMaxMS < p.DangerMinMS {
		errs = append(errs, fmt.Errorf("principal danger range [%d, %d) is invalid", p.DangerMinMS, p.DangerMaxMS))
	}

	if c.Score.IntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("score interval_ms must be positive, got %d", c.Score.IntervalMS))
	}

	h := c.Hearts
	if h.SpawnMS <= 0 {
		errs = append(errs, fmt.Errorf("hearts spawn_ms must be positive, got %d", h.SpawnMS))
	}
	if h.TTLMS <= 0 {
		errs = append(errs, fmt.Errorf("hearts ttl_ms must be positive, got %d", h.TTLMS))
	}
	if h.VXMax < h.VXMin {
		errs = append(errs, fmt.Errorf("hearts vx range [%g, %g] is inverted", h.VXMin, h.VXMax))
	}
	if h.VYMax < h.VYMin {
		errs = append(errs, fmt.Errorf("hearts vy range [%g, %g] is inverted", h.VYMin, h.VYMax))
	}

	return errors.Join(errs...)
}
