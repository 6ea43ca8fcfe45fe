// Package flappy implements the Flappy Bird simulation: a bird falls under
// gravity, the player flaps to rise, and pipe pairs scroll in from the right.
// The package is pure logic; the platform layer supplies timestamps, input
// and geometry, and renders snapshots.
package flappy

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ErrFieldNotReady is returned when a run is requested before the layout
// has supplied a usable play field.
var ErrFieldNotReady = errors.New("flappy: play field not ready")

// State is the simulation lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateEnded
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Event is something that happened during a tick.
type Event int

const (
	EventStarted Event = iota + 1
	EventFlapped
	EventPassed
	EventEnded
	EventNewHighScore
	EventPersistFailed
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventFlapped:
		return "flapped"
	case EventPassed:
		return "passed"
	case EventEnded:
		return "ended"
	case EventNewHighScore:
		return "new_high_score"
	case EventPersistFailed:
		return "persist_failed"
	default:
		return "unknown"
	}
}

// StepResult is returned by Tick.
type StepResult struct {
	State  State
	Events []Event
	Err    error // Non-fatal condition raised during the tick
}

// Has reports whether the tick produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}

// Options configure a Game.
type Options struct {
	Config config.FlappyConfig
	Store  HighScoreStore // nil keeps the high score in memory
	Logger *log.Logger    // nil discards logs
	Seed   int64          // 0 seeds each run from the clock
}

// Game is one independent simulation instance. It is driven by a single
// goroutine calling Tick; Activate and SetField may be called from anywhere.
type Game struct {
	cfg        config.FlappyConfig
	body       *Body
	stream     *ObstacleStream
	score      *ScoreTracker
	difficulty *config.DifficultyManager
	inputs     *core.InputQueue
	logger     *log.Logger

	state State
	field fieldBox
	seed  int64
	runs  int64

	originMs   float64 // Timestamp of the current run's start
	lastTickMs float64
	endedMs    float64
}

// New creates a game in the Idle state. The stored high score is loaded here.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := opts.Config
	return &Game{
		cfg:        cfg,
		body:       NewBody(cfg.Physics, cfg.Player),
		stream:     NewObstacleStream(cfg.Obstacles, cfg.Physics.FrameReferenceMs),
		score:      NewScoreTracker(opts.Store, logger),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		inputs:     core.NewInputQueue(),
		logger:     logger,
		state:      StateIdle,
		seed:       opts.Seed,
	}
}

// Activate queues the single player action. It starts a run from Idle or
// Ended and flaps while Running; the decision is made at the next tick.
func (g *Game) Activate() {
	g.inputs.Push(core.ActionActivate)
}

// SetField records the play-field geometry. It takes effect at the next
// (re)start; a run in progress keeps its geometry.
func (g *Game) SetField(f core.Field) {
	g.field.set(f)
}

// Field returns the most recently supplied geometry.
func (g *Game) Field() core.Field {
	return g.field.get()
}

// State returns the current lifecycle state.
func (g *Game) State() State {
	return g.state
}

// WantsFrames reports whether the loop driver should schedule another tick.
// It is false once a run has ended and nothing is queued.
func (g *Game) WantsFrames() bool {
	return g.state == StateRunning || g.inputs.Len() > 0
}

// HighScore returns the best score seen, including the stored floor.
func (g *Game) HighScore() float64 {
	return g.score.HighScore()
}

// start begins a new run at nowMs. Only Tick calls it, so the state is
// written from the ticking goroutine alone.
func (g *Game) start(nowMs float64) error {
	if g.state == StateRunning {
		return nil
	}
	field := g.field.get()
	if !field.Ready() {
		return ErrFieldNotReady
	}

	g.runs++
	seed := g.seed + g.runs
	if g.seed == 0 {
		seed = time.Now().UnixNano()
	}

	layout := NewLayout(g.cfg, field)
	g.body.Reset(field)
	g.stream.Reset(layout, seed, nowMs)
	g.score.Reset()
	g.stream.Spawn(nowMs)

	g.originMs = nowMs
	g.lastTickMs = nowMs
	g.endedMs = 0
	g.state = StateRunning

	g.logger.Debug("run started", "run", g.runs, "seed", seed, "field_w", field.Width, "field_h", field.Height)
	return nil
}

// Tick advances the simulation to nowMs. Queued input is applied first.
func (g *Game) Tick(nowMs float64) StepResult {
	var res StepResult

	for _, a := range g.inputs.Drain() {
		if a == core.ActionActivate {
			g.activate(nowMs, &res)
		}
	}

	if g.state == StateRunning {
		g.step(nowMs, &res)
	}

	res.State = g.state
	return res
}

func (g *Game) activate(nowMs float64, res *StepResult) {
	switch g.state {
	case StateIdle, StateEnded:
		if err := g.start(nowMs); err != nil {
			g.logger.Warn("cannot start run", "error", err)
			res.Err = err
			return
		}
		res.Events = append(res.Events, EventStarted)
	case StateRunning:
		g.body.Flap()
		res.Events = append(res.Events, EventFlapped)
	default:
		// Unrecognized state: nothing to do.
	}
}

// step runs one Running tick: physics, scrolling, scoring, cleanup,
// spawning, then the collision test.
func (g *Game) step(nowMs float64, res *StepResult) {
	delta := nowMs - g.lastTickMs
	if delta < 0 {
		delta = 0
	}
	g.lastTickMs = nowMs
	elapsed := nowMs - g.originMs

	g.body.Integrate(delta)

	g.stream.SetSpeed(g.difficulty.Speed(g.cfg.Obstacles.PipeSpeed, g.score.Display(), elapsed))
	g.stream.Advance(delta)

	for n := g.stream.MarkPassed(g.body.X); n > 0; n-- {
		g.score.OnPass()
		res.Events = append(res.Events, EventPassed)
	}

	g.stream.EvictOffscreen()

	g.stream.SetSpawnInterval(g.difficulty.SpawnInterval(g.cfg.Obstacles.SpawnIntervalMs, g.score.Display(), elapsed))
	g.stream.MaybeSpawn(nowMs)

	if CheckCollision(g.body.Rect(), g.stream.Obstacles(), g.stream.Layout()) {
		g.end(nowMs, res)
	}
}

// end performs the Running -> Ended transition and finalizes the score.
func (g *Game) end(nowMs float64, res *StepResult) {
	g.state = StateEnded
	g.endedMs = nowMs
	res.Events = append(res.Events, EventEnded)

	newHigh, err := g.score.Finalize()
	if newHigh {
		res.Events = append(res.Events, EventNewHighScore)
	}
	if err != nil {
		res.Events = append(res.Events, EventPersistFailed)
		res.Err = err
	}

	g.logger.Info("run ended",
		"run", g.runs,
		"score", g.score.Current(),
		"high_score", g.score.HighScore(),
		"duration_ms", nowMs-g.originMs,
	)
}

// fieldBox guards the pending geometry, which the layout collaborator may
// update from another goroutine.
type fieldBox struct {
	mu sync.Mutex
	f  core.Field
}

func (b *fieldBox) set(f core.Field) {
	b.mu.Lock()
	b.f = f
	b.mu.Unlock()
}

func (b *fieldBox) get() core.Field {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.f
}
