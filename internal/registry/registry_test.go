package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/falling-rocks/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Resize(core.RuntimeConfig) {}
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) Step(time.Duration, core.InputFrame) core.StepResult {
	return core.StepResult{}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") || Exists("stub_missing") {
		t.Error("Exists() reported the wrong registrations")
	}

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("Create() ID = %q, expected stub_b", g.ID())
	}

	if _, err := Create("stub_missing"); err == nil {
		t.Error("Create() of an unknown id should fail")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	Register("stub_list_z", func() Game { return &stubGame{id: "stub_list_z"} })
	Register("stub_list_m", func() Game { return &stubGame{id: "stub_list_m"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
	found := false
	for _, info := range list {
		if info.ID == "stub_list_m" {
			found = true
			if info.Title != "Stub stub_list_m" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub stub_list_m")
			}
		}
	}
	if !found {
		t.Error("List() missing stub_list_m")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}
