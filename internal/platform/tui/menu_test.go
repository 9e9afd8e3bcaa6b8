package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/falling-rocks/internal/config"
	"github.com/vovakirdan/falling-rocks/internal/core"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return nm
}

func TestMenuDefaultsToConfigAsWritten(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "", 0)
	if m.Preset() != "" {
		t.Errorf("Preset() = %q, expected the empty preset", m.Preset())
	}

	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Preset() != "" {
		t.Errorf("Preset() = %q, expected no change at the first entry", m.Preset())
	}

	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Preset() != config.DifficultyEasy {
		t.Errorf("Preset() = %q, expected %q", m.Preset(), config.DifficultyEasy)
	}
}

func TestMenuPreselectsPreset(t *testing.T) {
	tests := []struct {
		preset config.DifficultyPreset
		label  string
	}{
		{"", "standard"},
		{config.DifficultyNormal, "normal"},
		{config.DifficultyFixed, "fixed"},
	}

	for _, tc := range tests {
		m := NewMenuModel(core.DefaultConfig(), tc.preset, 0)
		if m.Preset() != tc.preset {
			t.Errorf("Preset() = %q, expected %q", m.Preset(), tc.preset)
		}
		if got := presetLabel(tc.preset); got != tc.label {
			t.Errorf("presetLabel(%q) = %q, expected %q", tc.preset, got, tc.label)
		}
	}
}
