package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/brighter-stars/internal/astro"
	"github.com/litescript/brighter-stars/internal/skycatalog"
)

const (
	// Field of view limits in degrees of RA
	minFOV = 0.5
	maxFOV = 360.0

	// Animation
	animDuration  = 400 * time.Millisecond
	animFrameRate = 30 * time.Millisecond

	glyphFocused = '◆'
	colorFocused = "229" // bright gold
	colorLabel   = "#d0c8ff"

	// Star glyphs by magnitude
	glyphStarBright  = '✶' // mag < 1.5
	glyphStarMedium  = '✸' // mag 1.5-3.0
	glyphStarDim     = '·' // mag 3.0-4.0
	glyphStarVeryDim = '·' // mag > 4.0

	colorStarBright  = "255"
	colorStarMedium  = "250"
	colorStarDim     = "244"
	colorStarVeryDim = "240"
)

// LabelMode controls how object labels are displayed.
type LabelMode int

const (
	LabelNone    LabelMode = iota // No labels
	LabelFocused                  // Only focused object
	LabelAll                      // All objects
)

// SkyViewModel plots the objects of one region on an RA/Dec grid.
type SkyViewModel struct {
	width  int
	height int

	// Camera position (center of view) and horizontal field of view
	camRA  float64
	camDec float64
	fov    float64

	// Animation state
	animating    bool
	animStartRA  float64
	animStartDec float64
	animTargRA   float64
	animTargDec  float64
	animStart    time.Time

	focusIdx  int
	objects   []skycatalog.Summary
	labelMode LabelMode
	title     string
}

// NewSkyViewModel centres the view on region and fits its extent.
func NewSkyViewModel(title string, region skycatalog.Region, objects []skycatalog.Summary) SkyViewModel {
	center := region.Center()
	fov := math.Min(math.Max(region.RadiusDeg()*2.4, minFOV), maxFOV)
	return SkyViewModel{
		camRA:     center.RAdeg,
		camDec:    center.DecDeg,
		fov:       fov,
		objects:   objects,
		labelMode: LabelFocused,
		title:     title,
	}
}

// SetSize updates the viewport size.
func (m SkyViewModel) SetSize(width, height int) SkyViewModel {
	m.width = width
	m.height = height
	return m
}

// Focused returns the focused object, if any.
func (m SkyViewModel) Focused() (skycatalog.Summary, bool) {
	if m.focusIdx < 0 || m.focusIdx >= len(m.objects) {
		return skycatalog.Summary{}, false
	}
	return m.objects[m.focusIdx], true
}

type animTickMsg time.Time

func animTick() tea.Cmd {
	return tea.Tick(animFrameRate, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

// Update handles messages.
func (m SkyViewModel) Update(msg tea.Msg) (SkyViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k", "shift+tab":
			return m.focusPrev()
		case "down", "j", "tab":
			return m.focusNext()
		case "l":
			m = m.cycleLabelMode()
		case "+", "=":
			m.fov = math.Max(m.fov/1.5, minFOV)
		case "-":
			m.fov = math.Min(m.fov*1.5, maxFOV)
		}

	case animTickMsg:
		if m.animating {
			return m.updateAnimation()
		}
	}

	return m, nil
}

func (m SkyViewModel) cycleLabelMode() SkyViewModel {
	m.labelMode = (m.labelMode + 1) % 3
	return m
}

func (m SkyViewModel) focusNext() (SkyViewModel, tea.Cmd) {
	if len(m.objects) == 0 {
		return m, nil
	}
	m.focusIdx = (m.focusIdx + 1) % len(m.objects)
	return m.startAnimation()
}

func (m SkyViewModel) focusPrev() (SkyViewModel, tea.Cmd) {
	if len(m.objects) == 0 {
		return m, nil
	}
	m.focusIdx--
	if m.focusIdx < 0 {
		m.focusIdx = len(m.objects) - 1
	}
	return m.startAnimation()
}

func (m SkyViewModel) startAnimation() (SkyViewModel, tea.Cmd) {
	obj, ok := m.Focused()
	if !ok {
		return m, nil
	}

	m.animating = true
	m.animStartRA = m.camRA
	m.animStartDec = m.camDec
	m.animTargRA = obj.RA
	m.animTargDec = obj.Dec
	m.animStart = time.Now()

	return m, animTick()
}

func (m SkyViewModel) updateAnimation() (SkyViewModel, tea.Cmd) {
	elapsed := time.Since(m.animStart)
	t := float64(elapsed) / float64(animDuration)

	if t >= 1.0 {
		m.animating = false
		m.camRA = astro.NormalizeRA(m.animTargRA)
		m.camDec = m.animTargDec
		return m, nil
	}

	// Ease-out cubic
	t = 1 - math.Pow(1-t, 3)

	m.camRA = astro.NormalizeRA(lerpAngle(m.animStartRA, m.animTargRA, t))
	m.camDec = lerp(m.animStartDec, m.animTargDec, t)

	return m, animTick()
}

// View renders the sky view.
func (m SkyViewModel) View() string {
	if m.width < 20 || m.height < 10 {
		return "Sky view requires larger terminal"
	}

	// Reserve lines for header and status
	viewHeight := m.height - 4

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSkyCanvas(m.width, viewHeight))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	return b.String()
}

func (m SkyViewModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorLabel))

	var labelStr string
	switch m.labelMode {
	case LabelNone:
		labelStr = dimStyle.Render("Labels: off")
	case LabelFocused:
		labelStr = accentStyle.Render("Labels: focus")
	case LabelAll:
		labelStr = accentStyle.Render("Labels: all")
	}

	camera := dimStyle.Render(fmt.Sprintf("RA:%.2f° Dec:%+.2f° FOV:%.1f°", m.camRA, m.camDec, m.fov))
	count := dimStyle.Render(fmt.Sprintf("%d objects", len(m.objects)))

	return fmt.Sprintf("%s | %s | %s | %s", titleStyle.Render(m.title), count, labelStr, camera)
}

func (m SkyViewModel) renderStatus() string {
	obj, ok := m.Focused()
	if !ok {
		return "No objects in region"
	}

	line := fmt.Sprintf(">>> %s | RA:%.3f° Dec:%+.3f° | mag %.2f (base %.2f) | flux ×%.4g",
		obj.ID, obj.RA, obj.Dec, obj.Mag, obj.BaseMag, obj.FluxScale)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(colorFocused)).Render(line)
}

// objectPos tracks a plotted object for label rendering
type objectPos struct {
	x, y      int
	name      string
	isFocused bool
}

func (m SkyViewModel) renderSkyCanvas(width, height int) string {
	canvas := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		canvas[y] = make([]rune, width)
		colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			canvas[y][x] = ' '
			colors[y][x] = "236"
		}
	}

	// Crosshair at the camera position
	cx, cy := width/2, height/2
	canvas[cy][cx] = '+'
	colors[cy][cx] = "60"

	var positions []objectPos
	for i, obj := range m.objects {
		x, y, visible := m.projectToScreen(obj.RA, obj.Dec, width, height)
		if !visible || x < 0 || x >= width || y < 0 || y >= height {
			continue
		}

		isFocused := i == m.focusIdx
		glyph, color := starGlyph(obj.Mag)
		if isFocused {
			glyph, color = glyphFocused, colorFocused
		}
		canvas[y][x] = glyph
		colors[y][x] = color

		positions = append(positions, objectPos{x: x, y: y, name: obj.ID, isFocused: isFocused})
	}

	m.renderLabels(canvas, colors, width, height, positions)

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			style := lipgloss.NewStyle().Foreground(colors[y][x])
			b.WriteString(style.Render(string(canvas[y][x])))
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderLabels draws labels to the right of each glyph. Focused labels win
// where they overlap others.
func (m SkyViewModel) renderLabels(canvas [][]rune, colors [][]lipgloss.Color, width, height int, positions []objectPos) {
	if m.labelMode == LabelNone || len(positions) == 0 {
		return
	}

	focusedClaims := make(map[int]map[int]bool) // y -> x -> claimed
	for _, pos := range positions {
		if !pos.isFocused {
			continue
		}
		if focusedClaims[pos.y] == nil {
			focusedClaims[pos.y] = make(map[int]bool)
		}
		for x := pos.x + 2; x < pos.x+4+len([]rune(pos.name)); x++ {
			focusedClaims[pos.y][x] = true
		}
	}

	for _, pos := range positions {
		if m.labelMode == LabelFocused && !pos.isFocused {
			continue
		}

		labelColor := lipgloss.Color(colorLabel)
		labelText := pos.name
		if pos.isFocused {
			labelColor = colorFocused
			labelText = "◄ " + pos.name
		}

		for i, r := range []rune(labelText) {
			x := pos.x + 2 + i
			if x < 0 || x >= width || pos.y < 0 || pos.y >= height {
				continue
			}
			if !pos.isFocused && focusedClaims[pos.y][x] {
				continue
			}
			canvas[pos.y][x] = r
			colors[pos.y][x] = labelColor
		}
	}
}

// starGlyph returns the glyph and color for a star of the given magnitude.
func starGlyph(mag float64) (rune, lipgloss.Color) {
	switch {
	case mag < 1.5:
		return glyphStarBright, colorStarBright
	case mag < 3.0:
		return glyphStarMedium, colorStarMedium
	case mag < 4.0:
		return glyphStarDim, colorStarDim
	default:
		return glyphStarVeryDim, colorStarVeryDim
	}
}

// projectToScreen maps RA/Dec onto the canvas around the camera. East is
// left, as on the sky. Terminal cells are about twice as tall as wide, so
// the vertical field is half the horizontal one.
func (m SkyViewModel) projectToScreen(ra, dec float64, width, height int) (int, int, bool) {
	fovRA := m.fov
	fovDec := m.fov / 2

	dRA := normalizeAngle(ra - m.camRA)
	dDec := dec - m.camDec

	if dRA < -fovRA/2 || dRA > fovRA/2 {
		return 0, 0, false
	}
	if dDec < -fovDec/2 || dDec > fovDec/2 {
		return 0, 0, false
	}

	x := int((fovRA/2 - dRA) / fovRA * float64(width-1))
	y := int((fovDec/2 - dDec) / fovDec * float64(height-1))

	return x, y, true
}

// normalizeAngle wraps angle to -180..+180 range
func normalizeAngle(a float64) float64 {
	for a > 180 {
		a -= 360
	}
	for a < -180 {
		a += 360
	}
	return a
}

// lerpAngle interpolates between angles, taking shortest path
func lerpAngle(a, b, t float64) float64 {
	diff := normalizeAngle(b - a)
	return a + diff*t
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Init returns nil cmd
func (m SkyViewModel) Init() tea.Cmd {
	return nil
}
