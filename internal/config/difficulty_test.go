package config

import (
	"math"
	"testing"
	"time"
)

func TestSpawnInterval(t *testing.T) {
	s := NewScheduler(DefaultRocksConfig())

	tests := []struct {
		name     string
		t        time.Duration
		expected time.Duration
	}{
		{"start", 0, 500 * time.Millisecond},
		{"ten seconds", 10 * time.Second, 445 * time.Millisecond},
		{"floor reached", 100 * time.Second, 0},
		{"long after floor", time.Hour, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.SpawnInterval(tc.t); got != tc.expected {
				t.Errorf("SpawnInterval(%v) = %v, expected %v", tc.t, got, tc.expected)
			}
		})
	}
}

func TestShouldSpawnUsesLastFrame(t *testing.T) {
	s := NewScheduler(DefaultRocksConfig())

	if s.ShouldSpawn(500*time.Millisecond, 0, 0) {
		t.Error("ShouldSpawn at exactly the interval should be false")
	}
	if !s.ShouldSpawn(501*time.Millisecond, 0, 0) {
		t.Error("ShouldSpawn past the interval should be true")
	}
	// Once the interval floors at zero, any later frame spawns
	if !s.ShouldSpawn(200*time.Second+time.Microsecond, 200*time.Second, 200*time.Second) {
		t.Error("ShouldSpawn should fire every tick once the interval is zero")
	}
}

func TestFallRateSaturates(t *testing.T) {
	s := NewScheduler(DefaultRocksConfig())

	tests := []struct {
		t        time.Duration
		expected float64
	}{
		{0, 300},
		{30 * time.Second, 180},
		{60 * time.Second, 60},
		{5 * time.Minute, 60},
	}

	for _, tc := range tests {
		if got := s.FallRate(tc.t); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("FallRate(%v) = %f, expected %f", tc.t, got, tc.expected)
		}
	}

	if got := s.SeekerFallRate(0); got != 150 {
		t.Errorf("SeekerFallRate(0) = %f, expected 150", got)
	}
	if got := s.SeekerFallRate(2 * time.Minute); got != 30 {
		t.Errorf("SeekerFallRate(2m) = %f, expected 30", got)
	}
}

func TestSeekerCadence(t *testing.T) {
	s := NewScheduler(DefaultRocksConfig())

	tests := []struct {
		name      string
		lastFrame time.Duration
		delta     int
		expected  bool
	}{
		{"start at threshold", 0, 100, false},
		{"start past threshold", 0, 101, true},
		{"22.5s at threshold", 22500 * time.Millisecond, 200, false},
		{"22.5s past threshold", 22500 * time.Millisecond, 201, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.ShouldSpawnSeeker(tc.delta+40, 40, tc.lastFrame); got != tc.expected {
				t.Errorf("ShouldSpawnSeeker(delta=%d, %v) = %v, expected %v", tc.delta, tc.lastFrame, got, tc.expected)
			}
		})
	}

	cfg := DefaultRocksConfig()
	cfg.Seeker.Enabled = false
	if NewScheduler(cfg).ShouldSpawnSeeker(1000, 0, 0) {
		t.Error("disabled seeker should never spawn")
	}
}

func TestReward(t *testing.T) {
	scoring := DefaultRocksConfig().Scoring

	if got := scoring.Reward(100); got != 35 {
		t.Errorf("Reward(100) = %d, expected 35", got)
	}
	if got := scoring.Reward(300); got != 5 {
		t.Errorf("Reward(300) = %d, expected 5", got)
	}
	if got := scoring.Reward(1e9); got != 0 {
		t.Errorf("Reward(1e9) = %d, expected 0", got)
	}
	if got := scoring.Reward(60); got != 41 {
		t.Errorf("Reward(60) = %d, expected 41", got)
	}

	prev := scoring.Reward(300)
	for rate := 290.0; rate >= 30; rate -= 10 {
		r := scoring.Reward(rate)
		if r <= prev {
			t.Errorf("Reward(%.0f) = %d should exceed Reward(%.0f) = %d", rate, r, rate+10, prev)
		}
		prev = r
	}
}

func TestSchedulerPresets(t *testing.T) {
	cfg := DefaultRocksConfig()
	ApplyPreset(&cfg, DifficultyHard)
	hard := NewScheduler(cfg)

	// Hard starts 70% along the 90s ramp
	if got := hard.Level(0); math.Abs(got-0.7) > 1e-9 {
		t.Errorf("Level(0) = %f, expected 0.7", got)
	}
	// 63s of head start is past the 60s fall saturation
	if got := hard.FallRate(0); math.Abs(got-60) > 1e-9 {
		t.Errorf("FallRate(0) = %f, expected 60", got)
	}

	cfg = DefaultRocksConfig()
	ApplyPreset(&cfg, DifficultyNormal)
	normal := NewScheduler(cfg)
	if got := normal.FallRate(0); math.Abs(got-192) > 1e-9 {
		t.Errorf("FallRate(0) = %f, expected 192", got)
	}

	cfg = DefaultRocksConfig()
	cfg.Difficulty.InitialLevel = 0.5
	ApplyPreset(&cfg, DifficultyFixed)
	fixed := NewScheduler(cfg)
	if fixed.IsEnabled() {
		t.Error("fixed preset should disable the ramp")
	}
	if fixed.FallRate(0) != fixed.FallRate(10*time.Minute) {
		t.Error("fixed ramp should not move with time")
	}
	if got := fixed.Level(time.Hour); got != 0.5 {
		t.Errorf("Level(1h) = %f, expected 0.5", got)
	}
}
