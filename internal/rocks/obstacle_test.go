package rocks

import (
	"testing"
	"time"
)

func TestObstacleLifecycle(t *testing.T) {
	var o Obstacle
	if o.Alive() {
		t.Fatal("zero obstacle should be dead")
	}

	o.spawn("@@", 4, 300)
	if o.State() != StateFalling || o.Footprint().Top != 0 {
		t.Fatalf("after spawn state = %v top = %d, expected falling at 0", o.State(), o.Footprint().Top)
	}

	lastRow := 13
	tests := []struct {
		elapsed time.Duration
		top     int
		state   ObstacleState
	}{
		{150 * time.Millisecond, 0, StateFalling},
		{150 * time.Millisecond, 1, StateFalling},
		{900 * time.Millisecond, 4, StateFalling},
		{2700 * time.Millisecond, 13, StateSettled},
	}
	for i, tt := range tests {
		if gone := o.Advance(tt.elapsed, lastRow); gone {
			t.Fatalf("step %d: Advance() despawned early", i)
		}
		if o.Footprint().Top != tt.top || o.State() != tt.state {
			t.Errorf("step %d: top = %d state = %v, expected %d %v", i, o.Footprint().Top, o.State(), tt.top, tt.state)
		}
	}

	if !o.Advance(0, lastRow) {
		t.Error("settled obstacle should despawn on its next Advance")
	}
	if o.Alive() {
		t.Error("obstacle should be dead after despawning")
	}
	if o.Advance(time.Second, lastRow) {
		t.Error("dead obstacle should not despawn twice")
	}
}

func TestObstacleStalledTickDespawns(t *testing.T) {
	var o Obstacle
	o.spawn("@", 0, 60)

	if !o.Advance(time.Hour, 13) {
		t.Fatal("obstacle advanced past the board should despawn")
	}
	if o.Footprint().Top != 0 {
		t.Errorf("row should not be written when out of range, top = %d", o.Footprint().Top)
	}
}

func TestObstacleRowIsFloorOfPosition(t *testing.T) {
	var o Obstacle
	o.spawn("@", 0, 250)

	o.Advance(875*time.Millisecond, 13)
	if o.Footprint().Top != 3 {
		t.Errorf("top after 875ms at 250ms/row = %d, expected 3", o.Footprint().Top)
	}
}

func TestObstacleCommitSkipsDead(t *testing.T) {
	g := NewGrid(5, 3)
	var o Obstacle
	o.Commit(g)
	if g.At(0, 0) != Blank {
		t.Error("dead obstacle should not draw")
	}

	o.spawn("@@@", 1, 100)
	o.Commit(g)
	if g.Row(0) != " @@@ " {
		t.Errorf("Row(0) = %q, expected %q", g.Row(0), " @@@ ")
	}
}
