package rocks

import (
	"testing"
	"time"
)

func killSlot(p *Pool, i int) {
	p.slots[i].kill()
	p.live--
}

func TestPoolKeepsOneSlotFree(t *testing.T) {
	p := NewPool(30)

	spawned := 0
	for i := 0; i < 31; i++ {
		if _, ok := p.TrySpawn("@", 0, 300); ok {
			spawned++
		}
	}

	if spawned != 29 || p.Live() != 29 {
		t.Errorf("spawned = %d live = %d, expected 29 29", spawned, p.Live())
	}
	if p.Slot(29).Alive() {
		t.Error("last slot should still be free")
	}
}

func TestPoolRoundRobin(t *testing.T) {
	p := NewPool(5)

	for want := 0; want < 4; want++ {
		slot, ok := p.TrySpawn("@", want, 300)
		if !ok || slot != want {
			t.Fatalf("TrySpawn() = %d, %v, expected %d, true", slot, ok, want)
		}
	}

	killSlot(p, 0)
	slot, ok := p.TrySpawn("@", 9, 300)
	if !ok || slot != 4 {
		t.Errorf("TrySpawn() after freeing slot 0 = %d, %v, expected 4, true", slot, ok)
	}
}

func TestPoolFullAttemptLeavesSlotsUnchanged(t *testing.T) {
	p := NewPool(4)
	for i := 0; i < 3; i++ {
		p.TrySpawn("@", i, 300)
	}
	before := make([]Obstacle, p.Capacity())
	copy(before, p.slots)

	if slot, ok := p.TrySpawn("@@", 7, 100); ok || slot != -1 {
		t.Errorf("TrySpawn() on a full pool = %d, %v, expected -1, false", slot, ok)
	}
	for i := range before {
		if p.slots[i].State() != before[i].State() || p.slots[i].Footprint().Left != before[i].Footprint().Left {
			t.Errorf("slot %d changed on a refused spawn", i)
		}
	}
}

func TestPoolLiveNextSlotBlocks(t *testing.T) {
	p := NewPool(4)
	for i := 0; i < 3; i++ {
		p.TrySpawn("@", i, 300)
	}
	killSlot(p, 1)
	if slot, ok := p.TrySpawn("@", 0, 300); !ok || slot != 3 {
		t.Fatalf("TrySpawn() = %d, %v, expected 3, true", slot, ok)
	}

	// cursor is on 3, next is 0 which is still falling
	killSlot(p, 2)
	if _, ok := p.TrySpawn("@", 0, 300); ok {
		t.Error("TrySpawn() should not overwrite a live slot")
	}
	if p.Live() != 2 {
		t.Errorf("Live() = %d, expected 2", p.Live())
	}
}

func TestPoolAdvanceAll(t *testing.T) {
	p := NewPool(4)
	g := NewGrid(10, 5)
	p.TrySpawn("@", 2, 100)

	var gone []int
	despawned := func(o *Obstacle) { gone = append(gone, o.Slot()) }

	p.AdvanceAll(400*time.Millisecond, g, despawned)
	if g.At(2, 4) != '@' {
		t.Errorf("obstacle should be drawn on the bottom row, grid:\n%s", g)
	}
	if len(gone) != 0 || p.Live() != 1 {
		t.Errorf("despawned = %v live = %d, expected none and 1", gone, p.Live())
	}

	g.Clear()
	p.AdvanceAll(0, g, despawned)
	if len(gone) != 1 || gone[0] != 0 || p.Live() != 0 {
		t.Errorf("despawned = %v live = %d, expected [0] and 0", gone, p.Live())
	}
	if g.At(2, 4) != Blank {
		t.Error("despawned obstacle should not be drawn")
	}
}
