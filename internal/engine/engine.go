// Package engine implements the snake game state machine.
//
// The engine is pure: it holds grid-based state and advances it one
// discrete step per Tick call. It knows nothing about terminals, timers
// or key codes. The host owns the ticker, feeds direction changes via
// SetDirection and reads state back through Snapshot.
package engine

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/snake-tui/internal/config"
	"github.com/vovakirdan/snake-tui/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Opposite returns the direct reverse of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the per-tick cell offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// State represents the round lifecycle.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "running"
}

// Event is a discrete gameplay event emitted by Tick, consumed by
// decorative collaborators (sound cues). Events never affect state.
type Event int

const (
	EventFoodEaten Event = iota
	EventGameOver
)

// TickResult is returned by Tick after each simulation step.
type TickResult struct {
	State  State
	Events []Event
}

// Engine holds one round of snake plus the process-lifetime best score.
type Engine struct {
	cfg config.Game
	rng *rand.Rand

	ticks      uint64
	snake      []core.Cell // Head at index 0
	food       core.Cell
	dir        Direction
	pendingDir Direction // Set by input, applied at next tick
	score      int
	bestScore  int
	foodEaten  int
	state      State
}

// New creates an engine for the given config and random source and starts
// the first round. The random source is injected for deterministic tests.
func New(cfg config.Game, rng *rand.Rand) *Engine {
	cfg.Validate()
	e := &Engine{
		cfg: cfg,
		rng: rng,
	}
	e.Reset()
	return e
}

// Reset starts a new round: a StartLength snake centered horizontally
// with the head at the middle of the grid and the body extending left,
// moving right, score zero, fresh food. The best score survives resets.
func (e *Engine) Reset() {
	e.ticks = 0
	e.score = 0
	e.foodEaten = 0
	e.state = StateRunning
	e.dir = DirRight
	e.pendingDir = DirRight

	midX := e.cfg.Board.Width / 2
	midY := e.cfg.Board.Height / 2
	e.snake = make([]core.Cell, e.cfg.Rules.StartLength)
	for i := range e.snake {
		e.snake[i] = core.Cell{X: midX - i, Y: midY}
	}

	e.placeFood()
}

// SetDirection buffers a direction change to be applied on the next tick.
// It is silently ignored when the round is over or when the requested
// direction is the exact opposite of the direction applied at the last
// tick. Between two ticks the last accepted call wins; there is no queue.
func (e *Engine) SetDirection(d Direction) {
	if e.state != StateRunning {
		return
	}
	if d == e.dir.Opposite() {
		return
	}
	e.pendingDir = d
}

// Tick advances the game by one step. It is a no-op after game over:
// no state field changes until Reset is called.
func (e *Engine) Tick() TickResult {
	if e.state != StateRunning {
		return TickResult{State: e.state}
	}

	e.ticks++
	e.dir = e.pendingDir

	dx, dy := e.dir.Delta()
	newHead := e.snake[0].Add(dx, dy)

	if e.cfg.Rules.Wrap {
		newHead = newHead.Wrap(e.cfg.Board.Width, e.cfg.Board.Height)
	} else if !newHead.In(e.cfg.Board.Width, e.cfg.Board.Height) {
		e.state = StateGameOver
		return TickResult{State: e.state, Events: []Event{EventGameOver}}
	}

	// Self collision is checked against the body as it exists before the
	// move commits, so the tail cell about to be dropped still counts.
	for _, seg := range e.snake {
		if seg == newHead {
			e.state = StateGameOver
			return TickResult{State: e.state, Events: []Event{EventGameOver}}
		}
	}

	e.snake = append([]core.Cell{newHead}, e.snake...)

	if newHead == e.food {
		e.score += e.cfg.Rules.FoodPoints
		e.foodEaten++
		if e.cfg.Rules.TrackBest && e.score > e.bestScore {
			e.bestScore = e.score
		}
		e.placeFood()
		return TickResult{State: e.state, Events: []Event{EventFoodEaten}}
	}

	e.snake = e.snake[:len(e.snake)-1]
	return TickResult{State: e.state}
}

// placeFood picks a uniformly random cell that is not occupied by the
// snake. When the snake fills the whole board the food is parked off-grid.
func (e *Engine) placeFood() {
	if len(e.snake) >= e.cfg.Board.Width*e.cfg.Board.Height {
		e.food = core.Cell{X: -1, Y: -1}
		return
	}
	for {
		c := core.Cell{
			X: e.rng.Intn(e.cfg.Board.Width),
			Y: e.rng.Intn(e.cfg.Board.Height),
		}
		if !e.isSnakeAt(c) {
			e.food = c
			return
		}
	}
}

// isSnakeAt reports whether the snake occupies the given cell.
func (e *Engine) isSnakeAt(c core.Cell) bool {
	for _, seg := range e.snake {
		if seg == c {
			return true
		}
	}
	return false
}

// Interval returns the current tick period. With a speed ramp configured
// the period shrinks as food is eaten, capped at the configured maximum
// moves per second; otherwise it stays fixed at the base tick.
func (e *Engine) Interval() time.Duration {
	base := time.Duration(e.cfg.Timing.TickMS) * time.Millisecond
	if e.cfg.Timing.SpeedUpPerFood <= 0 {
		return base
	}

	baseMPS := 1000.0 / float64(e.cfg.Timing.TickMS)
	mps := core.ClampF(
		baseMPS+float64(e.foodEaten)*e.cfg.Timing.SpeedUpPerFood,
		baseMPS,
		e.cfg.Timing.MaxMPS,
	)
	return time.Duration(float64(time.Second) / mps)
}

// State returns the round lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Score returns the current round score.
func (e *Engine) Score() int {
	return e.score
}

// BestScore returns the highest score observed since the engine was
// created. Always zero for variants that do not track it.
func (e *Engine) BestScore() int {
	return e.bestScore
}

// Config returns the variant configuration the engine was built with.
func (e *Engine) Config() config.Game {
	return e.cfg
}
