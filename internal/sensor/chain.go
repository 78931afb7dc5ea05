package sensor

import (
	"errors"
	"fmt"
	"log/slog"
)

// Chain tries each source in order until one succeeds.
type Chain []Source

func (c Chain) Name() string { return "auto" }

// Read returns the capture from the first source that succeeds. Only when
// every source fails does it return an error, joining the individual
// failures.
func (c Chain) Read() (map[string][]Reading, error) {
	if len(c) == 0 {
		return nil, errors.New("no sensor sources configured")
	}
	var errs []error
	for _, src := range c {
		chips, err := src.Read()
		if err != nil {
			slog.Debug("sensor source failed", "source", src.Name(), "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
			continue
		}
		return chips, nil
	}
	return nil, errors.Join(errs...)
}

// Default returns the standard source chain: lm-sensors first, gopsutil
// when the sensors binary is unavailable, raw hwmon sysfs last.
func Default() Source {
	return Chain{LMSensors{}, Gopsutil{}, Hwmon{}}
}
