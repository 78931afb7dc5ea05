package sensor

import (
	"testing"
)

const testSensorOutput = `iwlwifi_1-virtual-0
Adapter: Virtual device
temp1:        +35.0°C

nvme-pci-0300
Adapter: PCI adapter
Composite:    +36.9°C  (low  = -273.1°C, high = +81.8°C)
                       (crit = +84.8°C)
Sensor 1:     +36.9°C  (low  = -273.1°C, high = +65261.8°C)
Sensor 2:     +49.9°C  (low  = -273.1°C, high = +65261.8°C)

coretemp-isa-0000
Adapter: ISA adapter
Package id 0:  +48.0°C  (high = +101.0°C, crit = +115.0°C)
Core 0:        +46.0°C  (high = +101.0°C, crit = +115.0°C)
Core 1:        +45.0°C  (high = +101.0°C, crit = +115.0°C)
Core 2:        +46.0°C  (high = +101.0°C, crit = +115.0°C)
Core 3:        +48.0°C  (high = +101.0°C, crit = +115.0°C)

pch_cannonlake-virtual-0
Adapter: Virtual device
temp1:        +39.0°C
`

func TestParseSensorsText(t *testing.T) {
	chips := ParseSensorsText(testSensorOutput)

	if len(chips) != 4 {
		t.Fatalf("expected 4 chips, got %d: %v", len(chips), chips)
	}

	core, ok := chips["coretemp"]
	if !ok {
		t.Fatal("missing coretemp chip")
	}
	if len(core) != 5 {
		t.Fatalf("coretemp: expected 5 readings, got %d", len(core))
	}

	pkg := core[0]
	if pkg.Label != "Package id 0" || pkg.Current != 48.0 {
		t.Errorf("first coretemp reading: got %+v", pkg)
	}
	if !pkg.HasHigh || pkg.High != 101.0 {
		t.Errorf("package high: got %f (has=%v), want 101.0", pkg.High, pkg.HasHigh)
	}
	if !pkg.HasCrit || pkg.Crit != 115.0 {
		t.Errorf("package crit: got %f (has=%v), want 115.0", pkg.Crit, pkg.HasCrit)
	}

	nvme := chips["nvme"]
	if len(nvme) == 0 || nvme[0].Label != "Composite" {
		t.Fatalf("nvme readings: got %+v", nvme)
	}
	if !nvme[0].HasCrit || nvme[0].Crit != 84.8 {
		t.Errorf("nvme Composite crit: got %f (has=%v), want 84.8", nvme[0].Crit, nvme[0].HasCrit)
	}
	// The bogus 65261.8°C high threshold must be filtered out
	if nvme[1].HasHigh {
		t.Errorf("nvme Sensor 1 should have no usable high threshold, got %f", nvme[1].High)
	}

	if _, ok := chips["pch_cannonlake"]; !ok {
		t.Errorf("missing pch_cannonlake chip, have %v", chipKeys(chips))
	}
}

const testSensorJSON = `{
  "coretemp-isa-0000": {
    "Adapter": "ISA adapter",
    "Package id 0": {
      "temp1_input": 48.0,
      "temp1_max": 101.0,
      "temp1_crit": 115.0
    },
    "Core 0": {
      "temp2_input": 46.0,
      "temp2_max": 101.0,
      "temp2_crit": 115.0
    },
    "Core 1": {
      "temp3_input": 45.0,
      "temp3_max": 101.0,
      "temp3_crit": 115.0
    }
  },
  "acpitz-acpi-0": {
    "Adapter": "ACPI interface",
    "temp1": {
      "temp1_input": 42.0
    }
  }
}`

func TestParseSensorsJSON(t *testing.T) {
	chips, err := parseSensorsJSON([]byte(testSensorJSON))
	if err != nil {
		t.Fatalf("parseSensorsJSON: %v", err)
	}

	core := chips["coretemp"]
	if len(core) != 3 {
		t.Fatalf("coretemp: expected 3 readings, got %d", len(core))
	}
	// Labels are sorted for determinism: Core 0, Core 1, Package id 0
	if core[2].Label != "Package id 0" {
		t.Errorf("last coretemp label: got %q, want Package id 0", core[2].Label)
	}
	if core[0].Current != 46.0 || !core[0].HasHigh || core[0].High != 101.0 {
		t.Errorf("Core 0: got %+v", core[0])
	}

	acpi := chips["acpitz"]
	if len(acpi) != 1 || acpi[0].Current != 42.0 {
		t.Fatalf("acpitz: got %+v", acpi)
	}
	if acpi[0].HasHigh || acpi[0].HasCrit {
		t.Errorf("acpitz should carry no thresholds: %+v", acpi[0])
	}
}

func TestParseSensorsJSONInvalid(t *testing.T) {
	if _, err := parseSensorsJSON([]byte("not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestNormalizeChip(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"coretemp-isa-0000", "coretemp"},
		{"k10temp-pci-00c3", "k10temp"},
		{"acpitz-acpi-0", "acpitz"},
		{"nvme-pci-0300", "nvme"},
		{"pch_cannonlake-virtual-0", "pch_cannonlake"},
		{"iwlwifi_1-virtual-0", "iwlwifi_1"},
		{"coretemp", "coretemp"},
		{"Coretemp", "coretemp"},
	}
	for _, tt := range tests {
		if got := NormalizeChip(tt.in); got != tt.want {
			t.Errorf("NormalizeChip(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func chipKeys(chips map[string][]Reading) []string {
	keys := make([]string, 0, len(chips))
	for k := range chips {
		keys = append(keys, k)
	}
	return keys
}
