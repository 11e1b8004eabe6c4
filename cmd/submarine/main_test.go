package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-submarine/internal/config"
	"github.com/vovakirdan/tui-submarine/internal/games/submarine"
	"github.com/vovakirdan/tui-submarine/internal/storage"
)

// execute runs the root command. Flags keep their values between runs, so
// every call spells out the ones it depends on.
func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append(args, "--no-scores", "--config", ""))
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestSimulateIsDeterministic(t *testing.T) {
	args := []string{"simulate", "--seed", "7", "--ticks", "900", "--difficulty", "normal", "--idle=false", "--frame=false", "--spawn-every", "0"}
	first := execute(t, args...)
	second := execute(t, args...)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "Seed: 7\n")
	assert.Contains(t, first, "Obstacles passed: ")
	assert.Contains(t, first, "Fitness: ")
}

func TestSimulateIdleSinks(t *testing.T) {
	out := execute(t, "simulate", "--seed", "1", "--ticks", "600", "--difficulty", "normal", "--idle", "--frame", "--spawn-every", "0")

	assert.Contains(t, out, "Crashed: true\n")
	assert.Contains(t, out, "Obstacles passed: 0\n")
	assert.Contains(t, out, "GAME OVER")
}

func TestConfigAppliesPreset(t *testing.T) {
	out := execute(t, "config", "--defaults=false", "--difficulty", "easy")

	assert.Contains(t, out, "gap_size: 204\n")
	assert.Contains(t, out, "spawn_interval: 1s\n")
}

func TestConfigDefaults(t *testing.T) {
	out := execute(t, "config", "--defaults", "--difficulty", "normal")
	assert.Equal(t, string(config.DefaultYAML()), out)
}

func TestUnknownDifficulty(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"config", "--defaults=false", "--difficulty", "insane"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "insane"))
}

func TestScoresDisabled(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"scores", "--no-scores"})
	err := rootCmd.Execute()
	assert.Error(t, err)
}

func TestDefaultDifficultyIsFixed(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("difficulty")
	require.NotNil(t, flag)
	assert.Equal(t, string(config.DifficultyFixed), flag.DefValue)

	out := execute(t, "config", "--defaults=false", "--difficulty", flag.DefValue)
	assert.Contains(t, out, "enabled: false\n")
	assert.Contains(t, out, "speed: 5\n")
	assert.Contains(t, out, "gap_size: 170\n")
}

func TestPresetIsValidatedAfterApplying(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tall-gap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("obstacles:\n  gap_size: 600\n"), 0o600))
	t.Cleanup(func() { flagConfig = "" })

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"config", "--defaults=false", "--no-scores", "--config", path, "--difficulty", "easy"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "easy")

	// The same file is fine without the wider easy gap
	rootCmd.SetArgs([]string{"config", "--defaults=false", "--no-scores", "--config", path, "--difficulty", "fixed"})
	assert.NoError(t, rootCmd.Execute())
}

func TestScoresListing(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(dbPath)
	require.NoError(t, err)
	for i := 1; i <= 12; i++ {
		_, err := store.SaveScore(storage.Record{GameID: submarine.GameID, Difficulty: "fixed", Score: i})
		require.NoError(t, err)
	}
	_, err = store.SaveScore(storage.Record{GameID: submarine.GameID, Difficulty: "hard", Score: 3})
	require.NoError(t, err)
	require.NoError(t, store.Close())
	t.Cleanup(func() {
		flagDBPath = "~/.submarine/scores.db"
		flagScoresLimit = 10
	})

	list := func(limit string) string {
		var buf bytes.Buffer
		rootCmd.SetOut(&buf)
		rootCmd.SetArgs([]string{"scores", "--no-scores=false", "--db", dbPath,
			"--difficulty", "fixed", "--all=false", "--tui=false", "--clear=false", "--limit", limit})
		require.NoError(t, rootCmd.Execute())
		return buf.String()
	}

	top := list("10")
	assert.Equal(t, 10, strings.Count(top, "  fixed "))
	assert.Contains(t, top, "Best: 12\n")
	assert.Contains(t, top, "Last run: 3 (hard, ")

	every := list("0")
	assert.Equal(t, 12, strings.Count(every, "  fixed "))
}
