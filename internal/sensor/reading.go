// Package sensor reads hardware temperature data from the operating
// system and exposes it as a mapping from chip identifier to that chip's
// readings. It combines lm-sensors (JSON + text fallback), gopsutil, and
// raw hwmon sysfs access.
package sensor

// Reading is a single temperature reading reported by a sensor chip.
type Reading struct {
	Label   string  // e.g. "Core 0", "Package id 0"
	Current float64 // current temperature in Celsius
	High    float64 // high threshold (0 if not available)
	Crit    float64 // critical threshold (0 if not available)
	HasHigh bool
	HasCrit bool
}

// Source produces one full capture of chip identifier -> readings.
// Chip identifiers are normalized driver base names ("coretemp",
// "k10temp", "acpitz", ...).
type Source interface {
	Name() string
	Read() (map[string][]Reading, error)
}
