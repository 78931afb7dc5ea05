package sensor

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/sensors"
)

// Gopsutil reads temperatures via gopsutil's sensors package. It is the
// fallback when the lm-sensors binary is not installed; gopsutil reads
// hwmon itself, so the data is equivalent but the key shape differs.
type Gopsutil struct{}

func (Gopsutil) Name() string { return "gopsutil" }

func (Gopsutil) Read() (map[string][]Reading, error) {
	stats, err := sensors.SensorsTemperatures()
	if err != nil {
		return nil, fmt.Errorf("gopsutil sensors: %w", err)
	}
	return groupTemperatureStats(stats), nil
}

// groupTemperatureStats regroups gopsutil's flat SensorKey list into the
// chip-keyed mapping. Keys look like "coretemp_package_id_0" — the chip
// driver name followed by the lowercased, underscore-joined label.
func groupTemperatureStats(stats []sensors.TemperatureStat) map[string][]Reading {
	chips := make(map[string][]Reading)
	for _, st := range stats {
		if st.Temperature < -200 {
			continue
		}
		chip, label := splitSensorKey(st.SensorKey)
		r := Reading{Label: label, Current: st.Temperature}
		if st.High > 0 && st.High < 1000 {
			r.High = st.High
			r.HasHigh = true
		}
		if st.Critical > 0 && st.Critical < 1000 {
			r.Crit = st.Critical
			r.HasCrit = true
		}
		chips[chip] = append(chips[chip], r)
	}
	return chips
}

// splitSensorKey splits "coretemp_core_0" into chip "coretemp" and label
// "Core 0". A key with no underscore is a chip with a single unlabeled
// sensor.
func splitSensorKey(key string) (chip, label string) {
	chip, rest, ok := strings.Cut(key, "_")
	if !ok || rest == "" {
		return key, "temp1"
	}
	label = strings.ReplaceAll(rest, "_", " ")
	// Restore the leading capital lm-sensors labels carry ("Core 0",
	// "Package id 0") so downstream matching sees familiar text.
	label = strings.ToUpper(label[:1]) + label[1:]
	return chip, label
}
