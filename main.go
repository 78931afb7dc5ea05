// cpu-temp watches CPU package and per-core temperatures from the
// terminal.
//
// Usage:
//
//	cpu-temp [flags]
//
// Flags:
//
//	-s, --short      One-line temperature summary, then exit
//	    --json       JSON snapshot, then exit
//	    --interval   Dashboard refresh interval (default 2s)
//	    --no-color   Disable colored output
//	    --version    Print version and exit
//
// Without flags it runs the live dashboard: a BubbleTea TUI on a
// terminal, or a plain clear-and-reprint loop when output is redirected.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/tugapse/cpu-temp/internal/monitor"
	"github.com/tugapse/cpu-temp/internal/render"
	"github.com/tugapse/cpu-temp/internal/sensor"
	"github.com/tugapse/cpu-temp/internal/snapshot"
)

var version = "0.1.0"

type mode int

const (
	modeDashboard mode = iota
	modeJSON
	modeShort
)

// selectMode resolves the two terminal-mode flags. Asking for both is a
// usage error, detected before any sensor is touched.
func selectMode(jsonOut, short bool) (mode, error) {
	if jsonOut && short {
		return 0, fmt.Errorf("--json and --short arguments are mutually exclusive")
	}
	if jsonOut {
		return modeJSON, nil
	}
	if short {
		return modeShort, nil
	}
	return modeDashboard, nil
}

func main() {
	var (
		jsonOut     = flag.Bool("json", false, "output temperature data in JSON format and exit")
		short       = flag.Bool("short", false, "output a short, single-line version of current temperatures and exit")
		interval    = flag.Duration("interval", 2*time.Second, "dashboard refresh interval")
		noColor     = flag.Bool("no-color", false, "disable colored output")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.BoolVar(short, "s", false, "shorthand for --short")
	flag.Parse()

	if *showVersion {
		fmt.Printf("cpu-temp %s\n", version)
		os.Exit(0)
	}

	m, err := selectMode(*jsonOut, *short)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pal := render.DefaultPalette()
	if *noColor {
		pal = render.PlainPalette()
	}

	collector := snapshot.New(sensor.Default())

	switch m {
	case modeJSON, modeShort:
		os.Exit(runOnce(collector.Collect, m, os.Stdout, os.Stderr))
	default:
		dash := render.Dashboard{Palette: pal}
		if isatty.IsTerminal(os.Stdout.Fd()) {
			runDashboard(collector, dash, *interval)
			return
		}
		runPlainLoop(collector, dash, *interval)
	}
}

// runOnce collects a single snapshot and dispatches it to the requested
// renderer. An error snapshot goes to stderr and the renderer is never
// invoked.
func runOnce(collect func() snapshot.Snapshot, m mode, stdout, stderr io.Writer) int {
	snap := collect()

	if snap.Error != "" {
		fmt.Fprintf(stderr, "Error fetching CPU data: %s\n", snap.Error)
		if len(snap.AvailableSensorKeys) > 0 {
			fmt.Fprintf(stderr, "Available sensor keys: %s\n", strings.Join(snap.AvailableSensorKeys, ", "))
		}
		return 1
	}

	if m == modeJSON {
		out, err := render.Export(snap)
		if err != nil {
			fmt.Fprintf(stderr, "Error generating JSON output: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, string(out))
		return 0
	}

	fmt.Fprintln(stdout, render.Summary(snap))
	return 0
}

func runDashboard(c *snapshot.Collector, dash render.Dashboard, interval time.Duration) {
	p := tea.NewProgram(monitor.New(c, dash, interval), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runPlainLoop is the dashboard for redirected output: clear, collect,
// render, sleep, forever. It only ends with the process.
func runPlainLoop(c *snapshot.Collector, dash render.Dashboard, interval time.Duration) {
	for {
		runFrame(c, dash, os.Stdout)
		time.Sleep(interval)
	}
}

// runFrame isolates one poll-and-render cycle so a fault in a single
// frame cannot take down the loop.
func runFrame(c *snapshot.Collector, dash render.Dashboard, w io.Writer) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(w, "An error occurred: %v\n", r)
		}
	}()
	fmt.Fprint(w, "\x1b[H\x1b[J")
	fmt.Fprint(w, dash.Render(c.Collect()))
}
