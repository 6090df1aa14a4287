// Package ui provides the terminal sky view using Bubble Tea.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/brighter-stars/internal/skycatalog"
	"github.com/litescript/brighter-stars/internal/version"
)

// headerLines is the height of the title block plus the footer.
const headerLines = 4

// Model is the root Bubble Tea model.
type Model struct {
	width  int
	height int
	ready  bool

	catalogName string
	region      skycatalog.Region
	skyView     SkyViewModel
}

// New creates the root model for one loaded collection.
func New(catalogName, objectType string, region skycatalog.Region, objects []skycatalog.Summary) Model {
	return Model{
		catalogName: catalogName,
		region:      region,
		skyView:     NewSkyViewModel(objectType, region, objects),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.skyView.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.skyView = m.skyView.SetSize(msg.Width, msg.Height-headerLines)
		return m, nil
	}

	var cmd tea.Cmd
	m.skyView, cmd = m.skyView.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.renderTitle() + "\n" + m.skyView.View() + "\n" + m.renderFooter()
}

func (m Model) renderTitle() string {
	title := fmt.Sprintf("  ✶ %s · %s", m.catalogName, m.region)

	var b strings.Builder
	runes := []rune(title)
	for col, r := range runes {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(gradientColor(col, len(runes))))
		b.WriteString(style.Render(string(r)))
	}
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render(fmt.Sprintf("  v%s", version.Version)))
	return b.String()
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	return "  " + dimStyle.Render("j/k/tab: focus | +/-: zoom | l: labels | q: quit")
}

// gradientColor returns a hex color for a column of the title gradient:
// blue -> purple -> magenta -> pink.
func gradientColor(col, width int) string {
	if width <= 0 {
		width = 1
	}
	xRatio := float64(col) / float64(width)

	var r, g, b float64
	switch {
	case xRatio < 0.33:
		t := xRatio / 0.33
		r = 59 + t*(139-59)
		g = 130 + t*(92-130)
		b = 246
	case xRatio < 0.66:
		t := (xRatio - 0.33) / 0.33
		r = 139 + t*(217-139)
		g = 92 + t*(70-92)
		b = 246 + t*(239-246)
	default:
		t := (xRatio - 0.66) / 0.34
		r = 217 + t*(236-217)
		g = 70 + t*(72-70)
		b = 239 + t*(153-239)
	}

	return fmt.Sprintf("#%02X%02X%02X", clampByte(r), clampByte(g), clampByte(b))
}

func clampByte(v float64) int {
	return min(max(int(v), 0), 255)
}
