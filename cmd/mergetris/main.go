// mergetris is a terminal puzzle game crossing falling tetrominoes with
// power-of-two tile merging.
//
// Usage:
//
//	mergetris play           - Play (add --zen for the relaxed mode)
//	mergetris scores         - Show high scores
//	mergetris serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.mergetris/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register the modes
	_ "github.com/vovakirdan/tui-mergetris/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mergetris",
	Short: "Mergetris - falling blocks meet 2048 in your terminal",
	Long: `Mergetris is a terminal puzzle game: tetromino-shaped pieces fall
into a well, and blocks carrying equal power-of-two values merge and
cascade like 2048 tiles.

Available commands:
  play     - Play the game (use --zen for the relaxed mode)
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  mergetris play
  mergetris play --zen
  mergetris play --difficulty hard
  mergetris scores
  mergetris serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mergetris/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
