package tui

import (
	"math/rand"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-tui/internal/config"
	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/engine"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	eng := engine.New(config.DefaultClassic(), rand.New(rand.NewSource(1)))
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}
	return NewModel("classic", "Snake (Classic)", eng, nil, cfg)
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	nm, cmd := m.Update(TickMsg{Gen: m.tickGen, Time: time.Now()})
	model, ok := nm.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", nm)
	}
	return model, cmd
}

func TestTickerStopsOnGameOver(t *testing.T) {
	m := newTestModel(t)

	if m.Init() == nil {
		t.Fatal("Init() should arm the ticker")
	}

	// Head starts at the center moving right; enough ticks drive it into
	// the right wall.
	var cmd tea.Cmd
	for i := 0; i < 30; i++ {
		m, cmd = tick(t, m)
		if m.eng.State() == engine.StateGameOver {
			break
		}
		if cmd == nil {
			t.Fatal("ticker should stay armed while the round is running")
		}
	}

	if m.eng.State() != engine.StateGameOver {
		t.Fatal("engine never reached game over")
	}
	if cmd != nil {
		t.Error("the fatal tick must not re-arm the ticker")
	}

	// Further ticks are harmless and keep the ticker stopped.
	m, cmd = tick(t, m)
	if cmd != nil {
		t.Error("post-game-over tick re-armed the ticker")
	}
}

func TestRestartReArmsTicker(t *testing.T) {
	m := newTestModel(t)

	for i := 0; i < 30 && m.eng.State() != engine.StateGameOver; i++ {
		m, _ = tick(t, m)
	}
	if m.eng.State() != engine.StateGameOver {
		t.Fatal("engine never reached game over")
	}

	nm, cmd := m.Update(keyMsg(" "))
	m = nm.(Model)

	if m.eng.State() != engine.StateRunning {
		t.Error("restart should start a fresh round")
	}
	if cmd == nil {
		t.Error("restart should re-arm the ticker")
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	m := newTestModel(t)
	m, _ = tick(t, m)
	snapBefore := m.eng.Snapshot()

	nm, _ := m.Update(keyMsg(" "))
	m = nm.(Model)

	snapAfter := m.eng.Snapshot()
	if snapBefore.Tick != snapAfter.Tick || snapBefore.Score != snapAfter.Score {
		t.Error("restart must be a no-op while the round is running")
	}
}

func TestPauseSwallowsTicks(t *testing.T) {
	m := newTestModel(t)

	nm, _ := m.Update(keyMsg("p"))
	m = nm.(Model)
	if !m.paused {
		t.Fatal("p should pause")
	}

	snapBefore := m.eng.Snapshot()
	m, cmd := tick(t, m)
	snapAfter := m.eng.Snapshot()

	if snapBefore.Tick != snapAfter.Tick {
		t.Error("paused tick must not advance the engine")
	}
	if cmd != nil {
		t.Error("paused tick must not re-arm the ticker")
	}

	// Resume re-arms.
	nm, cmd = m.Update(keyMsg("p"))
	m = nm.(Model)
	if m.paused {
		t.Fatal("second p should resume")
	}
	if cmd == nil {
		t.Error("resume should re-arm the ticker")
	}
}

func TestQuickPauseResumeKeepsOneTickChain(t *testing.T) {
	// A tick armed before pause can still be in flight when the user
	// resumes within one interval. That stale tick must be dropped, or
	// it would advance the engine and re-arm a second chain alongside
	// the one the resume started, doubling the game speed.
	m := newTestModel(t)
	staleGen := m.tickGen

	nm, _ := m.Update(keyMsg("p")) // Pause
	m = nm.(Model)
	nm, cmd := m.Update(keyMsg("p")) // Resume within the same interval
	m = nm.(Model)
	if cmd == nil {
		t.Fatal("resume should arm a fresh chain")
	}

	snapBefore := m.eng.Snapshot()
	nm, cmd = m.Update(TickMsg{Gen: staleGen, Time: time.Now()})
	m = nm.(Model)
	snapAfter := m.eng.Snapshot()

	if snapBefore.Tick != snapAfter.Tick {
		t.Error("stale-generation tick advanced the engine")
	}
	if cmd != nil {
		t.Error("stale-generation tick re-armed a second chain")
	}

	// The chain the resume started still works.
	m, cmd = tick(t, m)
	if m.eng.Snapshot().Tick != snapAfter.Tick+1 {
		t.Error("current-generation tick should advance the engine")
	}
	if cmd == nil {
		t.Error("current-generation tick should keep its chain armed")
	}
}

func TestRestartInvalidatesOldChain(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 30 && m.eng.State() != engine.StateGameOver; i++ {
		m, _ = tick(t, m)
	}
	if m.eng.State() != engine.StateGameOver {
		t.Fatal("engine never reached game over")
	}
	staleGen := m.tickGen

	nm, _ := m.Update(keyMsg(" "))
	m = nm.(Model)

	snapBefore := m.eng.Snapshot()
	nm, cmd := m.Update(TickMsg{Gen: staleGen, Time: time.Now()})
	m = nm.(Model)

	if m.eng.Snapshot().Tick != snapBefore.Tick {
		t.Error("pre-restart tick advanced the fresh round")
	}
	if cmd != nil {
		t.Error("pre-restart tick re-armed a second chain")
	}
}

func TestSoundToggle(t *testing.T) {
	// Rules.Sound only picks the starting state; the M key controls the
	// bell from there for every variant.
	m := newTestModel(t) // Classic: sound off by default
	if m.soundOn {
		t.Fatal("classic should start with sound off")
	}

	nm, _ := m.Update(keyMsg("m"))
	m = nm.(Model)
	if !m.soundOn {
		t.Error("m should enable sound")
	}

	nm, _ = m.Update(keyMsg("m"))
	m = nm.(Model)
	if m.soundOn {
		t.Error("second m should disable sound again")
	}

	arcadeEng := engine.New(config.DefaultArcade(), rand.New(rand.NewSource(1)))
	am := NewModel("arcade", "Snake (Arcade)", arcadeEng, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if !am.soundOn {
		t.Error("arcade should start with sound on")
	}
}

func TestDirectionKeysForwardToEngine(t *testing.T) {
	m := newTestModel(t)

	nm, _ := m.Update(keyMsg("up"))
	m = nm.(Model)
	m, _ = tick(t, m)

	if got := m.eng.Snapshot().Dir; got != engine.DirUp {
		t.Errorf("direction after up key = %v, expected up", got)
	}
}
