package registry

import (
	"testing"

	"github.com/vovakirdan/kitty-cannon/internal/core"
)

type stubGame struct {
	id       string
	recorder core.ShotRecorder
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

type recordingStub struct{ stubGame }

func (g *recordingStub) SetShotRecorder(r core.ShotRecorder) { g.recorder = r }

type nopRecorder struct{}

func (nopRecorder) RecordShot(core.ShotRecord) error { return nil }

func TestRegisterCreateList(t *testing.T) {
	Register("test_stub_a", func() Game { return &stubGame{id: "test_stub_a"} })

	if !Exists("test_stub_a") {
		t.Fatal("Exists() = false after Register")
	}
	g, err := Create("test_stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test_stub_a" {
		t.Errorf("Create().ID() = %q, expected test_stub_a", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "test_stub_a" {
			found = true
			if info.Title != "Stub test_stub_a" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub test_stub_a")
			}
		}
	}
	if !found {
		t.Error("List() does not contain registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create() of unknown id returned nil error")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_stub_dup", func() Game { return &stubGame{id: "test_stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("Register() of duplicate id did not panic")
		}
	}()
	Register("test_stub_dup", func() Game { return &stubGame{id: "test_stub_dup"} })
}

func TestAttachRecorder(t *testing.T) {
	plain := &stubGame{id: "plain"}
	if AttachRecorder(plain, nopRecorder{}) {
		t.Error("AttachRecorder() accepted a game without shot recording")
	}

	rec := &recordingStub{stubGame{id: "rec"}}
	if !AttachRecorder(rec, nopRecorder{}) {
		t.Error("AttachRecorder() rejected a recordable game")
	}
	if rec.recorder == nil {
		t.Error("recorder was not set")
	}
	if AttachRecorder(rec, nil) {
		t.Error("AttachRecorder() accepted a nil recorder")
	}
}
