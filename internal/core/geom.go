// Package core provides fundamental types shared by the engine and the
// platform layers. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Cell is a 0-indexed grid coordinate (column, row).
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// In reports whether the cell lies inside the [0,w) x [0,h) board.
func (c Cell) In(w, h int) bool {
	return c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h
}

// Wrap returns the cell taken modulo the board dimensions, so that a
// coordinate one step past an edge reappears on the opposite side.
func (c Cell) Wrap(w, h int) Cell {
	return Cell{X: mod(c.X, w), Y: mod(c.Y, h)}
}

// mod is a modulo that stays non-negative for single-step underflow.
func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
