package sensor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Hwmon reads temperatures straight from the kernel's hwmon sysfs tree,
// with ACPI thermal zones as a supplement. It is the last-resort source:
// no external binary, no library, just the files the drivers expose.
type Hwmon struct {
	Root        string // defaults to /sys/class/hwmon
	ThermalRoot string // defaults to /sys/class/thermal
}

func (Hwmon) Name() string { return "hwmon" }

func (h Hwmon) Read() (map[string][]Reading, error) {
	root := h.Root
	if root == "" {
		root = "/sys/class/hwmon"
	}
	thermalRoot := h.ThermalRoot
	if thermalRoot == "" {
		thermalRoot = "/sys/class/thermal"
	}

	chips := make(map[string][]Reading)

	entries, _ := os.ReadDir(root)
	for _, e := range entries {
		dir := filepath.Join(root, e.Name())
		name, err := readSysfsString(filepath.Join(dir, "name"))
		if err != nil {
			continue
		}
		chip := NormalizeChip(name)
		for i := 1; i <= 32; i++ {
			temp, err := readSysfsMilli(filepath.Join(dir, fmt.Sprintf("temp%d_input", i)))
			if err != nil {
				continue
			}
			label, err := readSysfsString(filepath.Join(dir, fmt.Sprintf("temp%d_label", i)))
			if err != nil || label == "" {
				label = fmt.Sprintf("temp%d", i)
			}
			r := Reading{Label: label, Current: temp}
			if high, err := readSysfsMilli(filepath.Join(dir, fmt.Sprintf("temp%d_max", i))); err == nil && high > 0 {
				r.High = high
				r.HasHigh = true
			}
			if crit, err := readSysfsMilli(filepath.Join(dir, fmt.Sprintf("temp%d_crit", i))); err == nil && crit > 0 {
				r.Crit = crit
				r.HasCrit = true
			}
			chips[chip] = append(chips[chip], r)
		}
	}

	// Thermal zones cover platforms whose ACPI sensor is not mirrored
	// into hwmon. The zone type ("acpitz", "x86_pkg_temp", ...) is the
	// chip identifier.
	zones, _ := os.ReadDir(thermalRoot)
	for _, z := range zones {
		if !strings.HasPrefix(z.Name(), "thermal_zone") {
			continue
		}
		dir := filepath.Join(thermalRoot, z.Name())
		zoneType, err := readSysfsString(filepath.Join(dir, "type"))
		if err != nil {
			continue
		}
		chip := NormalizeChip(zoneType)
		if _, ok := chips[chip]; ok {
			continue
		}
		temp, err := readSysfsMilli(filepath.Join(dir, "temp"))
		if err != nil {
			continue
		}
		chips[chip] = append(chips[chip], Reading{Label: z.Name(), Current: temp})
	}

	if len(chips) == 0 {
		return nil, errors.New("no hwmon temperature sensors found")
	}
	return chips, nil
}

func readSysfsString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// readSysfsMilli reads a millidegree-Celsius sysfs value and scales it.
func readSysfsMilli(path string) (float64, error) {
	s, err := readSysfsString(path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return v / 1000.0, nil
}
