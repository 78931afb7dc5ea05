package sensor

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// LMSensors reads temperatures via the lm-sensors `sensors` command,
// preferring its JSON output and falling back to parsing the
// human-readable text on older installations.
type LMSensors struct{}

func (LMSensors) Name() string { return "lm-sensors" }

func (LMSensors) Read() (map[string][]Reading, error) {
	out, err := exec.Command("sensors", "-j").Output()
	if err == nil {
		if chips, jerr := parseSensorsJSON(out); jerr == nil {
			return chips, nil
		}
	}

	out, err = exec.Command("sensors").Output()
	if err != nil {
		return nil, fmt.Errorf("sensors: %w", err)
	}
	return ParseSensorsText(string(out)), nil
}

// NormalizeChip reduces a full lm-sensors chip name to the driver base
// name that identifies the chip family: "coretemp-isa-0000" -> "coretemp",
// "k10temp-pci-00c3" -> "k10temp". Names without the bus/address suffix
// pass through unchanged (lowercased).
func NormalizeChip(chip string) string {
	chip = strings.ToLower(strings.TrimSpace(chip))
	parts := strings.Split(chip, "-")
	if len(parts) >= 3 {
		return strings.Join(parts[:len(parts)-2], "-")
	}
	return chip
}

// parseSensorsJSON parses `sensors -j` output into chip-keyed readings.
func parseSensorsJSON(data []byte) (map[string][]Reading, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	// Sort chip names for deterministic ordering
	chipNames := make([]string, 0, len(raw))
	for k := range raw {
		chipNames = append(chipNames, k)
	}
	sort.Strings(chipNames)

	chips := make(map[string][]Reading)

	for _, chipName := range chipNames {
		var chip map[string]json.RawMessage
		if err := json.Unmarshal(raw[chipName], &chip); err != nil {
			continue
		}

		// Sort sensor labels for deterministic ordering
		labels := make([]string, 0, len(chip))
		for k := range chip {
			if k != "Adapter" {
				labels = append(labels, k)
			}
		}
		sort.Strings(labels)

		key := NormalizeChip(chipName)

		for _, label := range labels {
			var fields map[string]float64
			if err := json.Unmarshal(chip[label], &fields); err != nil {
				continue
			}

			var temp float64
			var foundTemp bool
			for k, v := range fields {
				if strings.HasSuffix(k, "_input") && strings.Contains(k, "temp") {
					temp = v
					foundTemp = true
					break
				}
			}
			if !foundTemp || temp < -200 {
				continue
			}

			r := Reading{Label: label, Current: temp}
			for k, v := range fields {
				if strings.HasSuffix(k, "_max") && v > 0 && v < 1000 {
					r.High = v
					r.HasHigh = true
				}
				if strings.HasSuffix(k, "_crit") && v > 0 && v < 1000 {
					r.Crit = v
					r.HasCrit = true
				}
			}

			chips[key] = append(chips[key], r)
		}
	}

	return chips, nil
}

var (
	adapterRe  = regexp.MustCompile(`^Adapter:\s+(.+)$`)
	namedValRe = regexp.MustCompile(`(\w+)\s*=\s*([+-]?\d+\.?\d*)°C`)
	tempValRe  = regexp.MustCompile(`[+-]?(\d+\.?\d*)°C`)
)

// ParseSensorsText parses the human-readable `sensors` output into
// chip-keyed readings.
func ParseSensorsText(output string) map[string][]Reading {
	chips := make(map[string][]Reading)
	var currentChip string

	lines := strings.Split(output, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")

		if strings.TrimSpace(line) == "" {
			continue
		}

		if adapterRe.MatchString(line) {
			continue
		}

		if strings.Contains(line, "°C") {
			idx := strings.Index(line, ":")
			if idx < 0 {
				continue
			}
			label := strings.TrimSpace(line[:idx])

			// Extract the first temperature value after the colon
			rest := line[idx+1:]
			m := tempValRe.FindStringSubmatch(rest)
			if m == nil {
				continue
			}
			temp, err := strconv.ParseFloat(m[1], 64)
			if err != nil || temp < -200 {
				continue
			}
			// Check for negative sign
			fullMatch := tempValRe.FindString(rest)
			if strings.HasPrefix(strings.TrimSpace(fullMatch), "-") {
				temp = -temp
			}

			r := Reading{Label: label, Current: temp}

			if high := extractNamedVal(line, "high"); high > 0 && high < 1000 {
				r.High = high
				r.HasHigh = true
			}
			if crit := extractNamedVal(line, "crit"); crit > 0 && crit < 1000 {
				r.Crit = crit
				r.HasCrit = true
			}
			// The crit threshold may wrap onto a continuation line
			if i+1 < len(lines) {
				next := strings.TrimRight(lines[i+1], "\r")
				if strings.Contains(next, "crit") && !strings.Contains(next, ":") {
					if crit := extractNamedVal(next, "crit"); crit > 0 && crit < 1000 {
						r.Crit = crit
						r.HasCrit = true
					}
				}
			}

			if currentChip != "" {
				chips[currentChip] = append(chips[currentChip], r)
			}
			continue
		}

		// Chip header — non-indented line without °C
		if !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t") {
			currentChip = NormalizeChip(line)
		}
	}

	return chips
}

func extractNamedVal(line, name string) float64 {
	matches := namedValRe.FindAllStringSubmatch(line, -1)
	for _, m := range matches {
		if m[1] == name {
			v, err := strconv.ParseFloat(m[2], 64)
			if err == nil && v > -200 {
				return v
			}
		}
	}
	return 0
}
