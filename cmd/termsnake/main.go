// termsnake is a snake game for the terminal.
//
// Usage:
//
//	termsnake                  - Play with the default configuration
//	termsnake --difficulty hard
//	termsnake --config my.yaml - Play with a custom config
//	termsnake config           - Print the default config YAML
//
// Controls:
//
//	Arrows/WASD/hjkl - steer
//	P                - pause
//	R                - restart after game over
//	Q/Esc/Ctrl+C     - quit
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"termsnake/internal/config"
	"termsnake/internal/core"
	"termsnake/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "termsnake",
})

var rootCmd = &cobra.Command{
	Use:   "termsnake",
	Short: "Snake in your terminal",
	Long: `termsnake is a terminal snake game: eat food, grow, don't hit
yourself or the walls. The game speeds up as your score climbs.

Difficulty presets:
  easy   - slower start, gentler speedup
  normal - config values as-is
  hard   - faster start, speedup kicks in sooner
  fixed  - constant speed, no speedup

Examples:
  termsnake
  termsnake --difficulty hard
  termsnake --config ./my-snake.yaml
  termsnake --seed 42`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("exiting", "error", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(configCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	// Terminal size for the initial frame; resizes arrive as events later
	rt := core.DefaultRuntimeConfig()
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	} else {
		logger.Warn("could not detect terminal size, using defaults", "error", termErr)
	}

	return tui.Run(cfg, rt)
}
