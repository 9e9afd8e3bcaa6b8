package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/falling-rocks/internal/config"
	"github.com/vovakirdan/falling-rocks/internal/core"
	"github.com/vovakirdan/falling-rocks/internal/registry"
)

// menuPresets are the difficulty choices in menu order. The empty preset
// plays the config as written.
var menuPresets = append([]config.DifficultyPreset{""}, config.Presets...)

// presetLabel names a preset for display.
func presetLabel(p config.DifficultyPreset) string {
	if p == "" {
		return "standard"
	}
	return string(p)
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for picking a variant and a
// difficulty preset.
type MenuModel struct {
	items        []registry.GameInfo
	cursor       int
	preset       int
	width        int
	height       int
	config       core.RuntimeConfig
	keys         MenuKeyMap
	help         help.Model
	rounds       int
	quitting     bool
	selected     bool
	wantsResults bool
}

// NewMenuModel creates a menu with the given preset preselected.
// rounds is the number of rounds played so far this session.
func NewMenuModel(cfg core.RuntimeConfig, preset config.DifficultyPreset, rounds int) MenuModel {
	presetIdx := 0
	for i, p := range menuPresets {
		if p == preset {
			presetIdx = i
		}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		items:  registry.List(),
		preset: presetIdx,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   h,
		rounds: rounds,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Prev):
		if m.preset > 0 {
			m.preset--
		}

	case key.Matches(msg, m.keys.Next):
		if m.preset < len(menuPresets)-1 {
			m.preset++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			m.selected = true
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Results):
		if m.rounds > 0 {
			m.wantsResults = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("F A L L I N G   R O C K S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Dodge the rocks. Faster rocks are worth more.", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	presets := make([]string, len(menuPresets))
	for i, p := range menuPresets {
		if i == m.preset {
			presets[i] = menuSelectedStyle.Render("[" + presetLabel(p) + "]")
		} else {
			presets[i] = menuDimStyle.Render(" " + presetLabel(p) + " ")
		}
	}
	b.WriteString(centerText("Difficulty: "+strings.Join(presets, " "), m.width))
	b.WriteString("\n")

	if m.rounds > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(menuDimStyle.Render(fmt.Sprintf("%d rounds played", m.rounds)), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen variant, or "" when nothing was chosen.
func (m MenuModel) Selected() string {
	if !m.selected || len(m.items) == 0 {
		return ""
	}
	return m.items[m.cursor].ID
}

// Preset returns the chosen difficulty preset.
func (m MenuModel) Preset() config.DifficultyPreset {
	return menuPresets[m.preset]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsResults returns true if user asked for the session results.
func (m MenuModel) WantsResults() bool {
	return m.wantsResults
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID       string
	Preset       config.DifficultyPreset
	Config       core.RuntimeConfig
	WantsResults bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, preset config.DifficultyPreset, rounds int) (MenuResult, error) {
	model := NewMenuModel(cfg, preset, rounds)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
		Preset: m.Preset(),
	}

	switch {
	case m.WantsResults():
		result.WantsResults = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != "":
		result.GameID = m.Selected()
	default:
		result.Quit = true
	}

	return result, nil
}
