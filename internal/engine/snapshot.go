package engine

import "github.com/vovakirdan/snake-tui/internal/core"

// Snapshot captures the complete observable game state for rendering,
// determinism testing and replay. The snake slice is a copy; mutating it
// does not affect the engine.
type Snapshot struct {
	Tick      uint64
	Snake     []core.Cell // Head at index 0
	Food      core.Cell
	Dir       Direction
	Score     int
	BestScore int
	FoodEaten int
	State     State
}

// Head returns the snake's head cell.
func (s Snapshot) Head() core.Cell {
	return s.Snake[0]
}

// Snapshot returns the current observable state.
func (e *Engine) Snapshot() Snapshot {
	snake := make([]core.Cell, len(e.snake))
	copy(snake, e.snake)

	return Snapshot{
		Tick:      e.ticks,
		Snake:     snake,
		Food:      e.food,
		Dir:       e.dir,
		Score:     e.score,
		BestScore: e.bestScore,
		FoodEaten: e.foodEaten,
		State:     e.state,
	}
}
