// Package render formats snapshots for display: the color-coded dashboard
// frame, the one-line summary, and the JSON export document. Styling is
// supplied through a Palette so renderers never hardcode escape bytes.
package render

import "github.com/charmbracelet/lipgloss"

// Heat classifies a current temperature for color coding. Thresholds are
// fixed: below 60°C is cool, below 80°C is warm, anything above is hot.
type Heat int

const (
	Cool Heat = iota
	Warm
	Hot
)

const (
	warmAt = 60.0
	hotAt  = 80.0
)

// HeatOf classifies a temperature in Celsius.
func HeatOf(temp float64) Heat {
	switch {
	case temp < warmAt:
		return Cool
	case temp < hotAt:
		return Warm
	default:
		return Hot
	}
}

// Palette maps display roles and heat classes to lipgloss styles.
type Palette struct {
	Title   lipgloss.Style // section titles
	Heading lipgloss.Style // table column headers
	Label   lipgloss.Style // core labels
	Notice  lipgloss.Style // errors and empty-data notices
	Cool    lipgloss.Style
	Warm    lipgloss.Style
	Hot     lipgloss.Style
}

// ForHeat returns the style for a heat class.
func (p Palette) ForHeat(h Heat) lipgloss.Style {
	switch h {
	case Warm:
		return p.Warm
	case Hot:
		return p.Hot
	default:
		return p.Cool
	}
}

// ForTemp returns the style for a current temperature. Only current
// values are heat-colored; thresholds render unstyled.
func (p Palette) ForTemp(temp float64) lipgloss.Style {
	return p.ForHeat(HeatOf(temp))
}

// DefaultPalette is the standard terminal color scheme.
func DefaultPalette() Palette {
	return Palette{
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		Heading: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Cool:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Warm:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Hot:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// PlainPalette renders without any styling, for piped output and tests.
func PlainPalette() Palette {
	plain := lipgloss.NewStyle()
	return Palette{
		Title:   plain,
		Heading: plain,
		Label:   plain,
		Notice:  plain,
		Cool:    plain,
		Warm:    plain,
		Hot:     plain,
	}
}
