package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-submarine/internal/core"
	"github.com/vovakirdan/tui-submarine/internal/games/submarine"
)

var (
	flagSimTicks     int
	flagSimIdle      bool
	flagSimFrame     bool
	flagSimSpawnEach int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game with the autopilot",
	Long: `Run the simulation without a terminal UI and report the result.

The autopilot steers toward the next gap. Runs are deterministic for a
given --seed, config and difficulty.

Examples:
  submarine simulate --seed 42
  submarine simulate --ticks 7200 --difficulty hard --frame
  submarine simulate --idle              # never swim`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum number of ticks to simulate")
	simulateCmd.Flags().BoolVar(&flagSimIdle, "idle", false, "Disable the autopilot")
	simulateCmd.Flags().BoolVar(&flagSimFrame, "frame", false, "Print the final frame")
	simulateCmd.Flags().IntVar(&flagSimSpawnEach, "spawn-every", 0, "Also add an obstacle every N ticks (0 = never)")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	game := submarine.New(cfg)
	game.Reset(rt)

	start := time.Now()
	ticks := 0
	for ; ticks < flagSimTicks && !game.State().GameOver; ticks++ {
		in := core.NewInputFrame()
		if !flagSimIdle && submarine.Autopilot(game.Snapshot(), game.Params()).Swim {
			in.Set(core.ActionSwim)
		}
		if flagSimSpawnEach > 0 && ticks > 0 && ticks%flagSimSpawnEach == 0 {
			in.Set(core.ActionSpawn)
		}
		game.Step(in)
	}

	st := game.State()
	logger.Info("simulation finished",
		"seed", rt.Seed,
		"ticks", ticks,
		"game_over", st.GameOver,
		"elapsed", time.Since(start),
	)

	out := cmd.OutOrStdout()
	if flagSimFrame {
		scr := core.NewScreen(rt.ScreenW, rt.ScreenH)
		game.Render(scr)
		fmt.Fprintln(out, scr.String())
	}
	fmt.Fprintf(out, "Seed: %d\n", rt.Seed)
	fmt.Fprintf(out, "Ticks: %d\n", ticks)
	fmt.Fprintf(out, "Crashed: %t\n", st.GameOver)
	fmt.Fprintf(out, "Obstacles passed: %d\n", st.Score)
	fmt.Fprintf(out, "Distance: %d\n", st.Distance)
	fmt.Fprintf(out, "Fitness: %.1f\n", st.Fitness)
	return nil
}
