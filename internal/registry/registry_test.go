package registry

import (
	"testing"

	"github.com/vovakirdan/goalkeeper/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                                       { return g.id }
func (g stubGame) Title() string                                    { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)                         {}
func (g stubGame) Step(core.InputFrame, core.Frame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                              {}
func (g stubGame) State() core.GameState                            { return core.GameState{} }

func stub(id string) Factory {
	return func() Game { return stubGame{id: id} }
}

func TestRegisterListCreate(t *testing.T) {
	Register("registry_test_b", stub("registry_test_b"))
	Register("registry_test_a", stub("registry_test_a"))

	if !Exists("registry_test_a") {
		t.Fatal("registered game missing")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "registry_test_a" && info.Title != "Stub registry_test_a" {
			t.Errorf("title = %q", info.Title)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List not sorted: %v", ids)
		}
	}

	g, err := Create("registry_test_b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "registry_test_b" {
		t.Errorf("Create returned %q", g.ID())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("expected error for unknown id")
	}
	if Exists("no_such_game") {
		t.Error("unknown id reported as existing")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("registry_test_dup", stub("registry_test_dup"))
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("registry_test_dup", stub("registry_test_dup"))
}
