package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mergetris/internal/core"
	"github.com/vovakirdan/tui-mergetris/internal/game"
	"github.com/vovakirdan/tui-mergetris/internal/platform/tui"
	"github.com/vovakirdan/tui-mergetris/internal/registry"
	"github.com/vovakirdan/tui-mergetris/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagZen        bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing.

Controls:
  A/D or Left/Right - Move piece
  W/Up              - Rotate clockwise
  S/Down            - Soft drop
  Space             - Hard drop
  E                 - Activate queued power-up
  P/Esc             - Pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower start, power-ups drop more often
  normal - Default balance
  hard   - Starts at level 5, rarer power-ups
  fixed  - No speed progression

Examples:
  mergetris play
  mergetris play --zen
  mergetris play --difficulty hard
  mergetris play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagZen, "zen", false, "Zen mode: fixed speed, no power-ups")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "mergetris"
	if flagZen {
		gameID = "mergetris_zen"
	}

	width, height := 80, 24 // defaults when not a terminal
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	g, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
