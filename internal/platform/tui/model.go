package tui

import (
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/engine"
	"github.com/vovakirdan/snake-tui/internal/storage"
)

// Model is the Bubble Tea model for one running game.
//
// It owns the ticker: TickMsg drives engine.Tick, the chain is not
// re-armed on game over or pause, and a generation counter invalidates
// ticks still in flight when a chain is retired. Key presses forward
// direction changes to the engine immediately, so between two ticks the
// last key wins.
type Model struct {
	variantID string
	title     string
	eng       *engine.Engine
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keys      *KeyMapper

	tickGen    int // Current tick chain; stale-generation ticks are dropped
	soundOn    bool
	paused     bool
	quitting   bool
	standalone bool // No menu to go back to (snake play)
	backToMenu bool
	scoreSaved bool // Whether the score was saved for the current game over
}

// NewModel creates a model hosting the given engine.
func NewModel(variantID, title string, eng *engine.Engine, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		variantID: variantID,
		title:     title,
		eng:       eng,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keys:      NewKeyMapper(),
		soundOn:   eng.Config().Rules.Sound,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.eng.Interval(), m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	if d, ok := action.Direction(); ok {
		// Rejection of reversals and post-game-over input happens in the
		// engine; the host forwards everything.
		m.eng.SetDirection(d)
		return m, nil
	}

	switch action {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case ActionRestart:
		if m.eng.State() == engine.StateGameOver {
			m.eng.Reset()
			m.scoreSaved = false
			m.paused = false
			m.tickGen++
			return m, tickCmd(m.eng.Interval(), m.tickGen)
		}

	case ActionPause:
		if m.eng.State() != engine.StateRunning {
			return m, nil
		}
		m.paused = !m.paused
		if m.paused {
			// Invalidate the in-flight tick; the current chain dies even
			// if its last message arrives after a quick resume.
			m.tickGen++
			return m, nil
		}
		// Resume starts a fresh chain.
		return m, tickCmd(m.eng.Interval(), m.tickGen)

	case ActionSound:
		m.soundOn = !m.soundOn

	case ActionBack:
		if m.eng.State() == engine.StateGameOver || m.paused {
			if m.standalone {
				m.quitting = true
				return m, tea.Quit
			}
			m.backToMenu = true
		}
	}

	return m, nil
}

// handleTick advances the engine by one step.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.tickGen {
		// Tick from a superseded chain (pause or restart happened after
		// it was armed). Dropping it keeps exactly one chain alive.
		return m, nil
	}
	if m.paused {
		return m, nil
	}

	result := m.eng.Tick()

	var cmds []tea.Cmd
	for _, ev := range result.Events {
		if m.soundOn {
			cmds = append(cmds, bellCmd())
		}
		if ev == engine.EventGameOver {
			m.saveScoreOnce()
		}
	}

	// The ticker stops on game over; Reset restarts it.
	if result.State == engine.StateRunning {
		cmds = append(cmds, tickCmd(m.eng.Interval(), m.tickGen))
	}

	return m, tea.Batch(cmds...)
}

// saveScoreOnce records the finished round in the score history,
// best-effort, at most once per round.
func (m *Model) saveScoreOnce() {
	if m.scoreSaved || m.eng.Score() <= 0 {
		return
	}
	if m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.variantID, m.eng.Score())
	}
	m.scoreSaved = true
}

// bellCmd emits a terminal bell. Decorative only.
func bellCmd() tea.Cmd {
	return func() tea.Msg {
		//nolint:errcheck // A lost bell is not an error worth handling
		os.Stdout.Write([]byte{'\a'})
		return nil
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	cfg := m.eng.Config()
	drawGame(m.screen, m.eng.Snapshot(), cfg, m.title, m.soundOn, m.paused)
	return RenderScreen(m.screen)
}

// BackToMenu reports whether the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts a Bubble Tea program for the given engine and blocks until
// the user quits.
func Run(variantID, title string, eng *engine.Engine, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(variantID, title, eng, store, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// NewSeededRand returns a rand.Rand for the given seed, substituting the
// current time when the seed is zero.
func NewSeededRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
