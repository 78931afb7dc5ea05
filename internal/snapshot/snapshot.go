// Package snapshot turns raw sensor captures into the immutable per-poll
// record consumed by the renderers: the package reading promoted to
// "Overall", cores sorted by their numeric label and renumbered 1..N.
package snapshot

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tugapse/cpu-temp/internal/sensor"
)

// chipPriority lists the recognized CPU chip identifiers, checked in
// order: Intel coretemp, AMD k10temp, generic ACPI thermal zone.
var chipPriority = []string{"coretemp", "k10temp", "acpitz"}

// Overall is the CPU-wide package temperature.
type Overall struct {
	Label    string  `json:"label"`
	Current  float64 `json:"current"`
	High     float64 `json:"high"`
	Critical float64 `json:"critical"`
}

// Core is one per-core temperature. Label is the renumbered "Core N"
// display name; OriginalLabel is what the chip reported.
type Core struct {
	Label         string  `json:"label"`
	OriginalLabel string  `json:"original_label"`
	Current       float64 `json:"current"`
	High          float64 `json:"high"`
	Critical      float64 `json:"critical"`
}

// Snapshot is one fully-resolved capture of CPU thermal state. It is
// built fresh on every Collect call and never mutated afterwards. When
// Error is set, Overall and Cores carry no data.
type Snapshot struct {
	Timestamp           string   `json:"timestamp"`
	Overall             *Overall `json:"overall_cpu_temp"`
	Cores               []Core   `json:"cores_temp"`
	Error               string   `json:"error,omitempty"`
	AvailableSensorKeys []string `json:"available_sensor_keys,omitempty"`
}

// Collector queries a sensor source and shapes the result into Snapshots.
type Collector struct {
	Source sensor.Source
	Log    *slog.Logger
	Now    func() time.Time
}

// New creates a collector over the given source.
func New(src sensor.Source) *Collector {
	return &Collector{
		Source: src,
		Log:    slog.Default(),
		Now:    time.Now,
	}
}

// Collect captures one snapshot. It never returns an error: every failure
// is encoded in the snapshot's Error field so all renderers see a uniform
// contract.
func (c *Collector) Collect() Snapshot {
	snap := Snapshot{
		Timestamp: c.Now().Format(time.RFC3339),
		Cores:     []Core{},
	}

	chips, err := c.Source.Read()
	if err != nil {
		snap.Error = "Error during data collection: " + err.Error()
		snap.AvailableSensorKeys = sortedKeys(chips)
		return snap
	}

	readings, ok := selectChip(chips)
	if !ok {
		snap.Error = "No CPU temperature data found. This script might not support your system's sensor names."
		snap.AvailableSensorKeys = sortedKeys(chips)
		return snap
	}

	var pkg *sensor.Reading
	pkgCount := 0
	var cores []sensor.Reading
	for i := range readings {
		if strings.Contains(strings.ToLower(readings[i].Label), "package id") {
			pkg = &readings[i]
			pkgCount++
		} else {
			cores = append(cores, readings[i])
		}
	}
	if pkgCount > 1 {
		c.Log.Warn("multiple package sensors in chip data, keeping last", "count", pkgCount)
	}

	if pkg != nil {
		snap.Overall = &Overall{
			Label:    "Overall",
			Current:  pkg.Current,
			High:     pkg.High,
			Critical: pkg.Crit,
		}
	}

	sort.SliceStable(cores, func(i, j int) bool {
		return coreSortKey(cores[i].Label) < coreSortKey(cores[j].Label)
	})

	for i, r := range cores {
		snap.Cores = append(snap.Cores, Core{
			Label:         fmt.Sprintf("Core %d", i+1),
			OriginalLabel: r.Label,
			Current:       r.Current,
			High:          r.High,
			Critical:      r.Crit,
		})
	}

	return snap
}

// selectChip picks the reading list for the first recognized chip key.
func selectChip(chips map[string][]sensor.Reading) ([]sensor.Reading, bool) {
	for _, key := range chipPriority {
		if readings, ok := chips[key]; ok {
			return readings, true
		}
	}
	return nil, false
}

var digitRunRe = regexp.MustCompile(`\d+`)

// noDigitKey sorts labels without digits after any real core index.
const noDigitKey = 1 << 20

// coreSortKey extracts the first run of digits from a label. "Core 2
// (socket 1)" keys as 2; a label with no digits keys as noDigitKey so the
// stable sort preserves its input position relative to its peers.
func coreSortKey(label string) int {
	m := digitRunRe.FindString(label)
	if m == "" {
		return noDigitKey
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return noDigitKey
	}
	return n
}

func sortedKeys(chips map[string][]sensor.Reading) []string {
	keys := make([]string, 0, len(chips))
	for k := range chips {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
