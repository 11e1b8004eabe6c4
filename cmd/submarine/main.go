// submarine is a terminal side-scroller: steer a submarine through the gaps
// between rock columns.
//
// Usage:
//
//	submarine                - Play
//	submarine scores         - Show high scores
//	submarine serve          - Start SSH server for remote play
//	submarine simulate       - Run a headless game with the autopilot
//	submarine config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.submarine/scores.db)
//	--config <path>       - Use a custom YAML config
//	--difficulty <preset> - fixed (default), easy, normal or hard
//	--no-scores           - Do not read or write high scores
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-submarine/internal/config"
	"github.com/vovakirdan/tui-submarine/internal/core"
	"github.com/vovakirdan/tui-submarine/internal/games/submarine"
	"github.com/vovakirdan/tui-submarine/internal/platform/tui"
	"github.com/vovakirdan/tui-submarine/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagNoScores   bool
	flagLogLevel   string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "submarine",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "submarine",
	Short: "Steer a submarine through underwater rocks in your terminal",
	Long: `Submarine is a terminal side-scroller. Rocks drift in from the right;
keep the submarine inside the gaps to score.

Controls:
  Space/Up   - Swim up
  O          - Add an obstacle now
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  fixed  - Constant speed, gap and spawn interval (default)
  easy   - Start at lowest difficulty with wider gaps, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty with narrower gaps

Examples:
  submarine
  submarine --difficulty hard
  submarine --config ./my-submarine.yaml
  submarine serve --ssh :2222
  submarine simulate --ticks 3600 --seed 42`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.submarine/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", string(config.DifficultyFixed), "Difficulty preset: fixed, easy, normal, hard")
	pf.BoolVar(&flagNoScores, "no-scores", false, "Disable the high score database")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)
	return nil
}

// loadConfig loads the game config and applies the difficulty preset.
func loadConfig() (config.SubmarineConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SubmarineConfig{}, "", err
	}

	cfg, err := config.LoadSubmarine(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	config.ApplySubmarinePreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, "", fmt.Errorf("difficulty %s: %w", preset, err)
	}
	logger.Debug("config loaded", "path", flagConfig, "difficulty", preset)

	return cfg, preset, nil
}

// openStore opens the score database unless scores are disabled.
// A database that cannot be opened is logged and the game goes on without it.
func openStore() *storage.Store {
	if flagNoScores {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := terminalSize()
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	final, err := tui.Run(submarine.New(cfg), rt, tui.Options{
		Store:      store,
		Difficulty: string(preset),
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Obstacles passed: %d\n", final.Score)
	fmt.Fprintf(out, "Fitness: %.1f\n", final.Fitness)
	return nil
}
