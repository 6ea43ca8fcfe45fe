package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// PipePair is the pair of rectangles drawn for one obstacle.
type PipePair struct {
	Top    core.Rect
	Bottom core.Rect
	Passed bool
}

// Snapshot is the read-only view handed to the renderer each frame.
type Snapshot struct {
	State     State
	Field     core.Field // Geometry of the current run, or the pending one when Idle
	Body      core.Rect
	Pipes     []PipePair
	Score     int     // Current score floored for display
	Current   float64 // Current score in half-point steps
	HighScore float64 // Only set when Ended
	ElapsedMs float64 // Run duration so far, frozen when Ended
}

// Snapshot captures the current game state. The returned value shares no
// memory with the game.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		State:   g.state,
		Score:   g.score.Display(),
		Current: g.score.Current(),
	}

	if g.state == StateIdle {
		snap.Field = g.field.get()
		return snap
	}

	layout := g.stream.Layout()
	snap.Field = layout.Field
	snap.Body = g.body.Rect()

	obstacles := g.stream.Obstacles()
	snap.Pipes = make([]PipePair, len(obstacles))
	for i, o := range obstacles {
		snap.Pipes[i] = PipePair{
			Top:    o.TopRect(layout),
			Bottom: o.BottomRect(layout),
			Passed: o.Passed,
		}
	}

	snap.ElapsedMs = g.lastTickMs - g.originMs
	if g.state == StateEnded {
		snap.HighScore = g.score.HighScore()
		snap.ElapsedMs = g.endedMs - g.originMs
	}
	return snap
}
