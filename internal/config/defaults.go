package config

import (
	_ "embed"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/arcade.yaml
var defaultArcadeYAML []byte

// DefaultClassic returns the default configuration for the classic
// (desktop-style) variant: 20x20 board, 150ms tick, one point per food,
// best score tracked in memory.
func DefaultClassic() Game {
	return Game{
		Board: Board{
			Width:  20,
			Height: 20,
		},
		Timing: Timing{
			TickMS: 150,
		},
		Rules: Rules{
			StartLength: 3,
			FoodPoints:  1,
			TrackBest:   true,
		},
	}
}

// DefaultArcade returns the default configuration for the arcade
// (browser-style) variant: ten points per food, sound cues, no best score.
func DefaultArcade() Game {
	return Game{
		Board: Board{
			Width:  20,
			Height: 20,
		},
		Timing: Timing{
			TickMS: 150,
		},
		Rules: Rules{
			StartLength: 3,
			FoodPoints:  10,
			Sound:       true,
		},
	}
}
