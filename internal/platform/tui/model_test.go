package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-submarine/internal/core"
	"github.com/vovakirdan/tui-submarine/internal/storage"
)

// fakeGame records the inputs it receives and ends the run on demand.
type fakeGame struct {
	resets   int
	inputs   []core.InputFrame
	state    core.GameState
	crashAt  int
	rendered int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
	g.inputs = nil
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if !g.state.GameOver {
		g.state.Distance++
		if in.Has(core.ActionSwim) {
			g.state.Score++
		}
		if g.crashAt > 0 && g.state.Distance >= g.crashAt {
			g.state.GameOver = true
		}
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	g.rendered++
	dst.DrawText(0, 0, "frame")
}

func (g *fakeGame) State() core.GameState { return g.state }

func newTestModel(t *testing.T, g *fakeGame, opts Options) Model {
	t.Helper()
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}, opts)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModelCollectsInputUntilTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, runeKey('o'))
	m, _ = update(t, m, runeKey(' '))
	m, cmd := update(t, m, TickMsg{})
	assert.NotNil(t, cmd, "tick loop continues")

	require.Len(t, g.inputs, 1)
	assert.True(t, g.inputs[0].Has(core.ActionSpawn))
	assert.True(t, g.inputs[0].Has(core.ActionSwim))

	// The frame is cleared after every tick
	m, _ = update(t, m, TickMsg{})
	require.Len(t, g.inputs, 2)
	assert.True(t, g.inputs[1].Empty())
	assert.Equal(t, 2, m.State().Distance)
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, runeKey(' '))
	m, _ = update(t, m, TickMsg{})
	m, cmd := update(t, m, runeKey('q'))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Equal(t, 1, m.State().Score)
	assert.Empty(t, m.View())
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &fakeGame{crashAt: 2}
	m := newTestModel(t, g, Options{})
	require.Equal(t, 1, g.resets)

	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg{})
	assert.Equal(t, 1, g.resets, "restart ignored while running")

	m, _ = update(t, m, TickMsg{})
	require.True(t, m.State().GameOver)

	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg{})
	assert.Equal(t, 2, g.resets)
	assert.False(t, m.State().GameOver)
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	g := &fakeGame{crashAt: 3}
	m := newTestModel(t, g, Options{Store: store, Difficulty: "hard", Player: "nemo"})

	swim := runeKey(' ')
	for i := 0; i < 6; i++ {
		m, _ = update(t, m, swim)
		m, _ = update(t, m, TickMsg{})
	}

	scores, err := store.TopScores("fake", "", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 3, scores[0].Score)
	assert.Equal(t, "hard", scores[0].Difficulty)
	assert.Equal(t, "nemo", scores[0].Player)
	assert.Equal(t, 3, scores[0].Distance)
}

func TestModelSkipsEmptyRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	g := &fakeGame{crashAt: 1}
	m := newTestModel(t, g, Options{Store: store})
	m, _ = update(t, m, TickMsg{})
	require.True(t, m.State().GameOver)

	scores, err := store.TopScores("fake", "", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	g := &fakeGame{}
	m := newTestModel(t, g, Options{ScreenshotDir: dir})

	path, err := m.saveScreenshot()
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "frame"))

	// The playfield leaves one row for the help line
	assert.Len(t, strings.Split(string(data), "\n"), 11)
}

func TestModelViewIncludesHelp(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})

	view := m.View()
	assert.Contains(t, view, "frame")
	assert.Contains(t, view, "swim")
	assert.Positive(t, g.rendered)
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 1, g.resets)
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 29, m.screen.Height())
}
