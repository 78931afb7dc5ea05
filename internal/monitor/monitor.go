// Package monitor implements the live dashboard mode as a BubbleTea
// program: collect a snapshot on every tick, render it as a frame, and
// keep going regardless of per-cycle failures.
package monitor

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tugapse/cpu-temp/internal/chart"
	"github.com/tugapse/cpu-temp/internal/history"
	"github.com/tugapse/cpu-temp/internal/render"
	"github.com/tugapse/cpu-temp/internal/snapshot"
)

// historySize bounds the overall-temperature sparkline window.
const historySize = 300

// ── Messages ─────────────────────────────────────────────────────────

type tickMsg time.Time

type snapMsg snapshot.Snapshot

// ── Model ────────────────────────────────────────────────────────────

var (
	colorTitleBg  = lipgloss.Color("17")
	colorTitleFg  = lipgloss.Color("51")
	colorDim      = lipgloss.Color("240")
	colorFooterBg = lipgloss.Color("235")
	colorPaused   = lipgloss.Color("196")
	colorKey      = lipgloss.Color("252")
)

// Model is the BubbleTea model for the live dashboard.
type Model struct {
	collector *snapshot.Collector
	dash      render.Dashboard
	interval  time.Duration

	snap     snapshot.Snapshot
	overall  *history.Buffer
	gotFirst bool
	lastPoll time.Time
	paused   bool

	width  int
	height int
	scroll int
}

// New creates the initial model for the live dashboard.
func New(c *snapshot.Collector, dash render.Dashboard, interval time.Duration) Model {
	return Model{
		collector: c,
		dash:      dash,
		interval:  interval,
		overall:   history.NewBuffer(historySize),
	}
}

// ── Commands ─────────────────────────────────────────────────────────

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) poll() tea.Msg {
	return snapMsg(m.collector.Collect())
}

// ── Init / Update ────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.poll, m.tickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.scroll > 0 {
				m.scroll--
			}
		case "down", "j":
			m.scroll++
		case "home":
			m.scroll = 0
		case " ", "p":
			m.paused = !m.paused
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if m.paused {
			return m, m.tickCmd()
		}
		return m, tea.Batch(m.poll, m.tickCmd())

	case snapMsg:
		m.snap = snapshot.Snapshot(msg)
		m.gotFirst = true
		m.lastPoll = time.Now()
		if m.snap.Error == "" && m.snap.Overall != nil {
			m.overall.Push(m.snap.Overall.Current)
		}
	}

	return m, nil
}

// ── View ─────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 || !m.gotFirst {
		return "  Waiting for sensor data..."
	}

	contentWidth := m.width - 2
	if contentWidth < 40 {
		contentWidth = 40
	}

	var sections []string

	sections = append(sections, m.renderTitleBar(contentWidth))

	if spark := m.renderSparkRow(contentWidth); spark != "" {
		sections = append(sections, spark)
	}

	sections = append(sections, m.dash.Render(m.snap))
	sections = append(sections, m.renderFooter(contentWidth))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	lines := strings.Split(content, "\n")
	visibleLines := m.height
	if visibleLines < 5 {
		visibleLines = 5
	}
	maxScroll := len(lines) - visibleLines
	if maxScroll < 0 {
		maxScroll = 0
	}
	scroll := m.scroll
	if scroll > maxScroll {
		scroll = maxScroll
	}

	end := scroll + visibleLines
	if end > len(lines) {
		end = len(lines)
	}

	return strings.Join(lines[scroll:end], "\n")
}

func (m Model) renderTitleBar(width int) string {
	logo := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorTitleFg).
		Render("CPU TEMPERATURES")

	var statusParts []string

	if !m.lastPoll.IsZero() {
		ts := lipgloss.NewStyle().
			Foreground(colorDim).
			Render(m.lastPoll.Format("15:04:05"))
		statusParts = append(statusParts, ts)
	}

	if m.paused {
		p := lipgloss.NewStyle().
			Foreground(colorPaused).
			Bold(true).
			Render("PAUSED")
		statusParts = append(statusParts, p)
	}

	sep := lipgloss.NewStyle().Foreground(colorDim).Render(" │ ")
	right := strings.Join(statusParts, sep)

	gap := width - lipgloss.Width(logo) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	filler := strings.Repeat(" ", gap)

	return lipgloss.NewStyle().
		Background(colorTitleBg).
		Width(width).
		Padding(0, 1).
		Render(logo + filler + right)
}

// renderSparkRow draws the overall-temperature trend under the title bar.
func (m Model) renderSparkRow(width int) string {
	if m.overall.Len() == 0 {
		return ""
	}

	label := lipgloss.NewStyle().Foreground(colorDim).Render("overall ")

	sparkWidth := width - lipgloss.Width(label) - 10
	if sparkWidth < 10 {
		sparkWidth = 10
	}
	if sparkWidth > historySize {
		sparkWidth = historySize
	}

	rangeMin := math.Max(0, m.overall.Min()-5)
	rangeMax := m.overall.Peak() + 5

	spark := chart.Sparkline(m.overall.Values(), sparkWidth, rangeMin, rangeMax, m.dash.Palette.ForTemp)

	cur := ""
	vals := m.overall.Values()
	if len(vals) > 0 {
		last := vals[len(vals)-1]
		cur = " " + m.dash.Palette.ForTemp(last).Render(fmt.Sprintf("%5.1f°C", last))
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(label + spark + cur)
}

func (m Model) renderFooter(width int) string {
	dimS := lipgloss.NewStyle().Foreground(colorDim)
	keyS := lipgloss.NewStyle().Foreground(colorKey)

	legend := m.dash.Palette.ForHeat(render.Cool).Render("██") + dimS.Render(" <60 ") +
		m.dash.Palette.ForHeat(render.Warm).Render("██") + dimS.Render(" 60-79 ") +
		m.dash.Palette.ForHeat(render.Hot).Render("██") + dimS.Render(" ≥80")

	keys := dimS.Render("q") + keyS.Render(":quit") +
		dimS.Render("  j/k") + keyS.Render(":scroll") +
		dimS.Render("  p") + keyS.Render(":pause")

	gap := width - lipgloss.Width(legend) - lipgloss.Width(keys) - 4
	if gap < 1 {
		gap = 1
	}
	filler := strings.Repeat(" ", gap)

	return lipgloss.NewStyle().
		Background(colorFooterBg).
		Width(width).
		Padding(0, 1).
		Render(legend + filler + keys)
}
