// Package config provides YAML-based game configuration loading for the
// snake variants.
package config

// Game contains all tunable parameters for one snake variant.
type Game struct {
	Board  Board  `yaml:"board"`
	Timing Timing `yaml:"timing"`
	Rules  Rules  `yaml:"rules"`
}

// Board defines the playfield dimensions in grid cells.
type Board struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Timing defines how fast the game ticks.
//
// When SpeedUpPerFood is zero the tick interval stays fixed at TickMS.
// Otherwise each food eaten adds SpeedUpPerFood moves per second, capped
// at MaxMPS.
type Timing struct {
	TickMS         int     `yaml:"tick_ms"`
	SpeedUpPerFood float64 `yaml:"speed_up_per_food"`
	MaxMPS         float64 `yaml:"max_mps"`
}

// Rules defines the scoring and movement rules of a variant.
type Rules struct {
	StartLength int  `yaml:"start_length"`
	FoodPoints  int  `yaml:"food_points"`
	TrackBest   bool `yaml:"track_best"`
	Wrap        bool `yaml:"wrap"`
	Sound       bool `yaml:"sound"`
}

// Validate fills in zero fields with safe minimums so a partial YAML
// file cannot produce a degenerate game.
func (g *Game) Validate() {
	if g.Board.Width < 5 {
		g.Board.Width = 5
	}
	if g.Board.Height < 5 {
		g.Board.Height = 5
	}
	if g.Timing.TickMS <= 0 {
		g.Timing.TickMS = 150
	}
	if g.Rules.StartLength < 1 {
		g.Rules.StartLength = 1
	}
	if g.Rules.StartLength > g.Board.Width/2 {
		g.Rules.StartLength = g.Board.Width / 2
	}
	if g.Rules.FoodPoints <= 0 {
		g.Rules.FoodPoints = 1
	}
}
