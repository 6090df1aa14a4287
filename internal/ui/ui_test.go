package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/brighter-stars/internal/skycatalog"
)

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		m := New("cat", "brighter_stars", skycatalog.AllSky{}, nil)
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", key)
		}
	}
}

func TestModel_ViewBeforeAndAfterResize(t *testing.T) {
	m := New("bright_stars", "brighter_stars", skycatalog.Disk{RA: 10, Radius: 2}, testObjects())
	if m.View() != "Initializing..." {
		t.Errorf("unexpected view before resize: %q", m.View())
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	out := updated.View()
	for _, want := range []string{"q: quit", "brighter_star_a"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestGradientColor(t *testing.T) {
	if got := gradientColor(0, 10); got != "#3B82F6" {
		t.Errorf("gradientColor(0) = %s", got)
	}
	if got := gradientColor(5, 0); !strings.HasPrefix(got, "#") || len(got) != 7 {
		t.Errorf("gradientColor with zero width = %s", got)
	}
}
