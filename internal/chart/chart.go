// Package chart renders compact sparklines from recent values. Coloring
// is injected per value so the chart carries no temperature policy.
package chart

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

var padStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))

// Sparkline renders values right-aligned into width cells, scaled between
// rangeMin and rangeMax. styleFor maps each value to its display style;
// missing leading cells are drawn as a dim dashed baseline.
func Sparkline(values []float64, width int, rangeMin, rangeMax float64, styleFor func(float64) lipgloss.Style) string {
	if width <= 0 {
		return ""
	}

	if len(values) == 0 {
		return padStyle.Render(strings.Repeat("╌", width))
	}

	if len(values) > width {
		values = values[len(values)-width:]
	}

	span := rangeMax - rangeMin
	if span <= 0 {
		span = 1
	}

	var sb strings.Builder

	for i := 0; i < width-len(values); i++ {
		sb.WriteString(padStyle.Render("╌"))
	}

	for _, v := range values {
		norm := (v - rangeMin) / span
		norm = math.Max(0, math.Min(1, norm))

		idx := int(norm * 7)
		if idx > 7 {
			idx = 7
		}

		sb.WriteString(styleFor(v).Render(string(sparkBlocks[idx])))
	}

	return sb.String()
}
