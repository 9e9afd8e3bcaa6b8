package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second requested from the platform, 0 = uncapped
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int           // Current score
	Health   int           // Remaining health
	Elapsed  time.Duration // Play time of the current round
	GameOver bool          // Whether the round has ended
	Quit     bool          // Whether the round ended on an exit command
	Paused   bool          // Whether the game is paused
}

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventSpawn EventKind = iota
	EventSeeker
	EventDespawn
	EventHit
	EventRoundOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventSeeker:
		return "seeker"
	case EventDespawn:
		return "despawn"
	case EventHit:
		return "hit"
	case EventRoundOver:
		return "round_over"
	default:
		return "unknown"
	}
}

// Event is a simulation occurrence reported to the platform for logging.
type Event struct {
	Kind   EventKind
	At     time.Duration // Frame timestamp the event belongs to
	Slot   int           // Pool slot, -1 when not applicable
	Column int
	Value  int // Points awarded, health left, or final score depending on Kind
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
