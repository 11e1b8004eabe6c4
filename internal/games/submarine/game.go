package submarine

import (
	"math/rand"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-submarine/internal/config"
	"github.com/vovakirdan/tui-submarine/internal/core"
)

// GameID identifies the game in score storage.
const GameID = "submarine"

// Animation timings in seconds.
const (
	wreckDuration = 1.2
	flashDuration = 0.5
)

// Game runs the submarine simulation for the platform layer.
// It owns the configuration, RNG and difficulty, and adds pause and the
// purely visual wreck and score-flash animations on top of Step.
type Game struct {
	cfg        config.SubmarineConfig
	base       Params
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	state      State
	runtime    core.RuntimeConfig
	tickDt     time.Duration
	paused     bool

	wreck  *gween.Tween // Sinks the wreck to the sea floor after a crash
	wreckY float64
	flash  *gween.Tween // Highlights the score after a pass
	glow   float32
}

// New creates a new game with the given configuration.
func New(cfg config.SubmarineConfig) *Game {
	return &Game{
		cfg:  cfg,
		base: ParamsFromConfig(cfg),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Submarine"
}

// Config returns the game configuration.
func (g *Game) Config() config.SubmarineConfig {
	return g.cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	tickRate := rt.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.tickDt = time.Second / time.Duration(tickRate)
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.state = NewState(g.base)
	g.paused = false
	g.wreck = nil
	g.flash = nil
	g.glow = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State()}
	}

	if g.state.Phase == PhaseGameOver {
		g.animate()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	p := g.Params()
	before := g.state.Score
	g.state = Step(g.state, Input{
		Swim:  in.Has(core.ActionSwim),
		Spawn: in.Has(core.ActionSpawn),
	}, g.tickDt, p, g.rng)

	scored := g.state.Score - before
	if scored > 0 {
		g.flash = gween.New(1, 0, flashDuration, ease.OutQuad)
	}
	if g.state.Phase == PhaseGameOver {
		floor := p.WorldH - g.state.Player.H
		start := core.ClampF(g.state.Player.Y, 0, floor)
		g.wreckY = start
		g.wreck = gween.New(float32(start), float32(floor), wreckDuration, ease.OutBounce)
	}
	g.animate()

	return core.StepResult{State: g.State(), Scored: scored}
}

// Params returns the parameters for the next tick at the current difficulty.
func (g *Game) Params() Params {
	return g.base.Scaled(g.difficulty, g.state.Score, g.state.Distance)
}

// animate advances the cosmetic tweens by one tick.
func (g *Game) animate() {
	dt := float32(g.tickDt.Seconds())
	if g.wreck != nil {
		y, done := g.wreck.Update(dt)
		g.wreckY = float64(y)
		if done {
			g.wreck = nil
		}
	}
	if g.flash != nil {
		v, done := g.flash.Update(dt)
		g.glow = v
		if done {
			g.flash = nil
			g.glow = 0
		}
	}
}

// Snapshot returns a copy of the simulation state.
func (g *Game) Snapshot() State {
	return g.state.clone()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.Phase == PhaseGameOver,
		Paused:   g.paused,
		Distance: g.state.Distance,
		Fitness:  Fitness(g.state),
	}
}
