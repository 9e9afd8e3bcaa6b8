// Package rocks implements the falling rocks game: a player at the bottom of
// a fixed board dodges obstacles whose spawn rate and fall speed ramp up with
// elapsed wall-clock time.
package rocks

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/falling-rocks/internal/config"
	"github.com/vovakirdan/falling-rocks/internal/core"
	"github.com/vovakirdan/falling-rocks/internal/registry"
)

// Visual characters for rendering
const (
	HeartChar  = '♥'
	GroundChar = ' '
)

// Game adapts a Simulation to the platform: config loading, pause,
// and drawing the board, ground and HUD into a screen.
type Game struct {
	id      string
	title   string
	fit     bool // size the board to the terminal
	sim     *Simulation
	cfg     config.RocksConfig
	runtime core.RuntimeConfig
	paused  bool
	cfgErr  error
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the config's setting.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates the classic fixed-board game.
func New() *Game {
	return &Game{id: "rocks", title: "Falling Rocks"}
}

// NewWide creates the variant whose board fills the terminal.
func NewWide() *Game {
	return &Game{id: "rocks_wide", title: "Falling Rocks (wide)", fit: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the configuration and starts a fresh round.
// Config problems fall back to the defaults; ConfigError reports them.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false

	cfg, err := config.LoadRocks(configPath)
	g.cfgErr = err
	config.ApplyPreset(&cfg, difficultyPreset)
	if g.fit {
		cfg.Board.FitTerminal = true
		config.FitBoard(&cfg, runtime.ScreenW, runtime.ScreenH)
	}
	if err := cfg.Validate(); err != nil {
		g.cfgErr = err
		cfg = config.DefaultRocksConfig()
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.sim = NewSimulation(cfg, rand.New(rand.NewSource(runtime.Seed)))
}

// Resize reacts to a terminal size change. Only the wide variant restarts,
// since its board depends on the terminal.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	if g.sim == nil {
		g.runtime = runtime
		return
	}
	if g.fit && !g.sim.Over() {
		g.Reset(runtime)
		return
	}
	g.runtime.ScreenW = runtime.ScreenW
	g.runtime.ScreenH = runtime.ScreenH
}

// ConfigError returns the error that forced a fallback config on the last Reset.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// Config returns the configuration of the current round.
func (g *Game) Config() config.RocksConfig {
	return g.cfg
}

// Simulation returns the current round.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Step advances the round to frame time now with the tick's single command.
// Pause is handled here; the platform stops its clock while paused so the
// simulation sees no elapsed time across the pause. The exit command is
// honored while paused.
func (g *Game) Step(now time.Duration, in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.sim.Over() {
		g.paused = !g.paused
		return core.StepResult{State: g.State()}
	}
	if g.paused {
		if !in.Has(core.ActionQuit) {
			return core.StepResult{State: g.State()}
		}
		// Quitting from pause goes through the simulation's exit path.
		g.paused = false
	}

	result := g.sim.Step(now, in.Action())
	result.State.Paused = false
	return result
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.sim.result(g.sim.lastFrame).State
	st.Paused = g.paused
	return st
}

// Render draws the board, ground and HUD, centered on the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	grid := g.sim.Grid()
	boardW, boardH := g.cfg.Board.Width, g.cfg.Board.Height
	ox := core.Max(0, (dst.Width()-boardW)/2)
	oy := core.Max(0, (dst.Height()-(boardH+1))/2)

	// Sky
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			dst.SetCell(ox+x, oy+y, core.Cell{Rune: grid.At(x, y), Fg: core.ColorBlack, Bg: core.ColorCyan})
		}
	}

	// Ground
	dst.FillRect(core.NewRect(ox, oy+boardH-1, boardW, 1), core.Cell{Rune: GroundChar, Bg: core.ColorGreen})

	// HUD
	hudY := oy + boardH
	dst.DrawTextStyled(ox+2, hudY, fmt.Sprintf("SCORE %d", g.sim.Score()), core.ColorBrightWhite, core.ColorDefault)
	hearts := g.heartsText()
	dst.DrawTextStyled(ox+boardW-len([]rune(hearts))-3, hudY, hearts, core.ColorBrightRed, core.ColorDefault)

	if g.paused {
		g.drawCenteredMessage(dst, ox, oy, "PAUSED", "Press P to resume")
	}

	if g.sim.Over() {
		g.drawCenteredMessage(dst, ox, oy, "GAME OVER", fmt.Sprintf("Your score is %d", g.sim.Score()))
	}
}

// heartsText shows one heart per remaining health, padded to the starting health.
func (g *Game) heartsText() string {
	maxHealth := core.Max(g.cfg.Player.Health, g.sim.Health())
	left := core.Clamp(g.sim.Health(), 0, maxHealth)
	return strings.Repeat(string(HeartChar), left) + strings.Repeat(" ", maxHealth-left)
}

// drawCenteredMessage draws a message box in the center of the board.
func (g *Game) drawCenteredMessage(dst *core.Screen, ox, oy int, title, subtitle string) {
	boxW := core.Max(len(title), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := ox + (g.cfg.Board.Width-boxW)/2
	boxY := oy + (g.cfg.Board.Height-boxH)/2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.FillRect(box, core.Cell{Rune: ' ', Fg: core.ColorBrightWhite, Bg: core.ColorBlack})
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

// Register the game variants with the registry
func init() {
	registry.Register("rocks", func() registry.Game {
		return New()
	})
	registry.Register("rocks_wide", func() registry.Game {
		return NewWide()
	})
}
