package render

import (
	"fmt"
	"strings"

	"github.com/tugapse/cpu-temp/internal/snapshot"
)

const (
	labelWidth = 12
	valueWidth = 8
	ruleWidth  = 55
)

// Dashboard renders full-frame dashboard text from a snapshot: a header
// block for the overall reading and a two-column per-core table. It is a
// pure formatting function; the snapshot is never mutated.
type Dashboard struct {
	Palette Palette
}

// Render formats one frame. Error snapshots render only the error message
// and the available-keys listing; no temperature fields are touched.
func (d Dashboard) Render(s snapshot.Snapshot) string {
	p := d.Palette
	var b strings.Builder
	line := func(text string) {
		b.WriteString(text)
		b.WriteByte('\n')
	}

	line(p.Title.Render("--- CPU Temperature Monitor ---"))

	if s.Error != "" {
		line(p.Notice.Render(s.Error))
		if len(s.AvailableSensorKeys) > 0 {
			line(p.Notice.Render("Available sensor keys: " + strings.Join(s.AvailableSensorKeys, ", ")))
		}
		line(rule(ruleWidth))
		return b.String()
	}

	if s.Overall != nil {
		line(rule(ruleWidth))
		line(p.Heading.Render(fmt.Sprintf("%-*s%-*s%-*s%-*s",
			labelWidth, "Overall", valueWidth, "Current", valueWidth, "High", valueWidth, "Critical")))
		line(rule(ruleWidth))
		line(strings.Repeat(" ", labelWidth) +
			p.ForTemp(s.Overall.Current).Render(cell(s.Overall.Current)) +
			cell(s.Overall.High) +
			cell(s.Overall.Critical))
		line(rule(ruleWidth))
	} else {
		line(p.Notice.Render("No 'Overall' (Package) temperature data found."))
		line(rule(ruleWidth))
	}

	if len(s.Cores) == 0 {
		line(p.Notice.Render("No individual core temperature data available."))
		line(rule(ruleWidth))
		return b.String()
	}

	lineLength := (labelWidth+3*valueWidth)*2 + 5

	line(p.Title.Render("--- Individual Cores ---"))
	line(rule(lineLength))
	colHeader := p.Heading.Render(fmt.Sprintf("%-*s%-*s%-*s%-*s",
		labelWidth, "Core", valueWidth, "Cur", valueWidth, "Hi", valueWidth, "Crit"))
	line(colHeader + "     " + colHeader)
	line(rule(lineLength))

	// Left column takes the first ceil(N/2) cores; row i pairs left core
	// i with right core mid+i.
	mid := (len(s.Cores) + 1) / 2
	left, right := s.Cores[:mid], s.Cores[mid:]
	for i := range left {
		row := d.coreCell(left[i])
		if i < len(right) {
			row += "     " + d.coreCell(right[i])
		}
		line(row)
	}
	line(rule(lineLength))

	return b.String()
}

func (d Dashboard) coreCell(c snapshot.Core) string {
	return d.Palette.Label.Render(fmt.Sprintf("%-*s", labelWidth, c.Label)) +
		d.Palette.ForTemp(c.Current).Render(cell(c.Current)) +
		cell(c.High) +
		cell(c.Critical)
}

// cell formats a temperature into a fixed-width left-justified field.
func cell(temp float64) string {
	return fmt.Sprintf("%-*s", valueWidth, fmt.Sprintf("%.1f°C", temp))
}

func rule(width int) string {
	return strings.Repeat("-", width)
}
