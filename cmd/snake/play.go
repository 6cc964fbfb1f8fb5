package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-tui/internal/config"
	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/engine"
	"github.com/vovakirdan/snake-tui/internal/platform/tui"
	"github.com/vovakirdan/snake-tui/internal/storage"
	"github.com/vovakirdan/snake-tui/internal/variant"
)

var (
	flagConfig  string
	flagWrap    bool
	flagSpeedMS int
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Arrows/WASD - Steer
  P           - Pause
  Space/R     - Restart (after game over)
  M           - Toggle sound
  Q/Ctrl+C    - Quit

Examples:
  snake play classic
  snake play arcade
  snake play classic --config ./my-snake.yaml
  snake play classic --wrap
  snake play classic --speed-ms 100
  snake play classic --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagWrap, "wrap", false, "Wrap around the board edges instead of dying")
	playCmd.Flags().IntVar(&flagSpeedMS, "speed-ms", 0, "Override tick interval in milliseconds (0 = variant default)")
}

func runPlay(cmd *cobra.Command, args []string) {
	variantID := args[0]

	v, err := variant.Lookup(variantID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
		os.Exit(1)
	}

	gameCfg, err := config.Load(variantID, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags override whatever the config file says.
	if cmd.Flags().Changed("wrap") {
		gameCfg.Rules.Wrap = flagWrap
	}
	if flagSpeedMS > 0 {
		gameCfg.Timing.TickMS = flagSpeedMS
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	eng := engine.New(gameCfg, tui.NewSeededRand(cfg.Seed))

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// The game still works without score history
		store = nil
	}

	runErr := tui.Run(variantID, v.Title, eng, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
