package main

import (
	"strings"
	"testing"

	"github.com/tugapse/cpu-temp/internal/render"
	"github.com/tugapse/cpu-temp/internal/snapshot"
)

func TestSelectMode(t *testing.T) {
	tests := []struct {
		jsonOut, short bool
		want           mode
		wantErr        bool
	}{
		{false, false, modeDashboard, false},
		{true, false, modeJSON, false},
		{false, true, modeShort, false},
		{true, true, 0, true},
	}
	for _, tt := range tests {
		got, err := selectMode(tt.jsonOut, tt.short)
		if (err != nil) != tt.wantErr {
			t.Errorf("selectMode(%v, %v) err = %v, wantErr %v", tt.jsonOut, tt.short, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("selectMode(%v, %v) = %v, want %v", tt.jsonOut, tt.short, got, tt.want)
		}
	}
}

func TestRunOnceErrorSnapshot(t *testing.T) {
	calls := 0
	collect := func() snapshot.Snapshot {
		calls++
		return snapshot.Snapshot{
			Timestamp:           "2026-08-25T12:00:00Z",
			Cores:               []snapshot.Core{},
			Error:               "No CPU temperature data found. This script might not support your system's sensor names.",
			AvailableSensorKeys: []string{"nvme"},
		}
	}

	var stdout, stderr strings.Builder
	code := runOnce(collect, modeJSON, &stdout, &stderr)

	if code != 1 {
		t.Errorf("exit code: got %d, want 1", code)
	}
	if calls != 1 {
		t.Errorf("collect calls: got %d, want 1", calls)
	}
	if stdout.Len() != 0 {
		t.Errorf("renderer must not run on an error snapshot, stdout: %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "Error fetching CPU data") {
		t.Errorf("stderr: %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "Available sensor keys: nvme") {
		t.Errorf("stderr should list available keys: %q", stderr.String())
	}
}

func TestRunOnceJSON(t *testing.T) {
	collect := func() snapshot.Snapshot {
		return snapshot.Snapshot{
			Timestamp: "2026-08-25T12:00:00Z",
			Overall:   &snapshot.Overall{Label: "Overall", Current: 48.0},
			Cores:     []snapshot.Core{},
		}
	}

	var stdout, stderr strings.Builder
	code := runOnce(collect, modeJSON, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code: got %d, stderr %q", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), `"overall_cpu_temp"`) {
		t.Errorf("stdout: %q", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr should be empty: %q", stderr.String())
	}
}

func TestRunOnceShort(t *testing.T) {
	collect := func() snapshot.Snapshot {
		return snapshot.Snapshot{
			Timestamp: "2026-08-25T12:00:00Z",
			Overall:   &snapshot.Overall{Label: "Overall", Current: 45.0},
			Cores: []snapshot.Core{
				{Label: "Core 1", Current: 72.3},
				{Label: "Core 2", Current: 81.9},
			},
		}
	}

	var stdout, stderr strings.Builder
	code := runOnce(collect, modeShort, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code: got %d", code)
	}
	if stdout.String() != "OV: 45.0°C | C1: 72.3°C | C2: 81.9°C\n" {
		t.Errorf("stdout: %q", stdout.String())
	}
}

func TestRunFrameRecovers(t *testing.T) {
	var out strings.Builder

	// A nil collector panics inside the frame; the loop must survive it.
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("panic escaped runFrame: %v", r)
			}
		}()
		runFrame(nil, render.Dashboard{Palette: render.PlainPalette()}, &out)
	}()

	if !strings.Contains(out.String(), "An error occurred:") {
		t.Errorf("fault should be printed to the frame: %q", out.String())
	}
}
