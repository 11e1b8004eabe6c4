package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-submarine/internal/games/submarine"
	"github.com/vovakirdan/tui-submarine/internal/platform/tui"
	"github.com/vovakirdan/tui-submarine/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores for the selected difficulty.

Examples:
  submarine scores
  submarine scores --difficulty hard
  submarine scores --all --limit 20
  submarine scores --all --limit 0   # every recorded run
  submarine scores --tui`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show scores of every difficulty")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show (0 = all)")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, _ []string) error {
	if flagNoScores {
		return errors.New("scores are disabled by --no-scores")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	difficulty := flagDifficulty
	if flagScoresAll {
		difficulty = ""
	}

	if flagScoresClear {
		if err := store.ClearScores(submarine.GameID); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Scores cleared.")
		return nil
	}

	if flagScoresTUI {
		width, height := terminalSize()
		return tui.RunScoreboard(store, submarine.GameID, "Submarine", difficulty, width, height)
	}

	var scores []storage.ScoreEntry
	if flagScoresLimit <= 0 {
		scores, err = store.AllScores(submarine.GameID, difficulty)
	} else {
		scores, err = store.TopScores(submarine.GameID, difficulty, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	label := difficulty
	if label == "" {
		label = "all difficulties"
	}
	fmt.Fprintf(out, "High Scores - Submarine (%s)\n\n", label)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'submarine' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-8s  %-10s  %-12s  %s\n", "Rank", "Score", "Distance", "Difficulty", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-8s  %-10s  %-12s  %s\n", "----", "-----", "--------", "----------", "------", "----")
	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-6d  %-8d  %-10s  %-12s  %s\n",
			i+1, e.Score, e.Distance, e.Difficulty, player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.HighScore(submarine.GameID, difficulty)
	if err == nil {
		fmt.Fprintf(out, "\nBest: %d\n", best)
	}
	if last, err := store.LastScore(submarine.GameID); err == nil && last != nil {
		fmt.Fprintf(out, "Last run: %d (%s, %s)\n",
			last.Score, last.Difficulty, last.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
