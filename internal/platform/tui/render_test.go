package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

func testFrame(snap flappy.Snapshot) (*core.Screen, Frame) {
	field, vp := ComputeLayout(80, 24, config.DefaultFlappyConfig().Field)
	if snap.Field == (core.Field{}) {
		snap.Field = field
	}
	return core.NewScreen(80, 23), Frame{Snapshot: snap, Viewport: vp, MinCols: 30, MinRows: 12}
}

func TestDrawFrameRunning(t *testing.T) {
	screen, frame := testFrame(flappy.Snapshot{
		State: flappy.StateRunning,
		Body:  core.NewRect(50, 330, 34, 24),
		Pipes: []flappy.PipePair{{
			Top:    core.NewRect(190, -300, 64, 512),
			Bottom: core.NewRect(190, 354.2, 64, 512),
		}},
		Score: 3,
	})
	DrawFrame(screen, frame)

	// Viewport starts at (28,1) and is 24x21 cells
	if got := screen.Get(31, 11); got != BirdChar {
		t.Errorf("bird body cell = %q, expected %q", got, BirdChar)
	}
	if got := screen.Get(33, 11); got != BirdBeakChar {
		t.Errorf("bird beak cell = %q, expected %q", got, BirdBeakChar)
	}
	if got := screen.Get(41, 3); got != PipeChar {
		t.Errorf("top pipe cell = %q, expected %q", got, PipeChar)
	}
	if got := screen.Get(41, 7); got != PipeCapTop {
		t.Errorf("top pipe cap = %q, expected %q", got, PipeCapTop)
	}
	if got := screen.Get(39, 1); got != '3' {
		t.Errorf("score cell = %q, expected '3'", got)
	}
	if got := screen.Get(27, 0); got != '┌' {
		t.Errorf("frame corner = %q", got)
	}
	if strings.Contains(screen.String(), "High Score") {
		t.Error("high score shown while running")
	}
}

func TestDrawFrameIdle(t *testing.T) {
	screen, frame := testFrame(flappy.Snapshot{State: flappy.StateIdle})
	DrawFrame(screen, frame)

	if !strings.Contains(screen.String(), "Press SPACE to start") {
		t.Errorf("idle prompt missing:\n%s", screen.String())
	}
}

func TestDrawFrameEnded(t *testing.T) {
	screen, frame := testFrame(flappy.Snapshot{
		State:     flappy.StateEnded,
		Body:      core.NewRect(50, 600, 34, 24),
		Score:     2,
		HighScore: 7.5,
	})
	frame.Notice = "high score not saved"
	DrawFrame(screen, frame)

	out := screen.String()
	for _, want := range []string{"GAME OVER", "Score: 2", "High Score: 7", "high score not saved"} {
		if !strings.Contains(out, want) {
			t.Errorf("ended frame missing %q", want)
		}
	}
}

func TestDrawFrameTooSmall(t *testing.T) {
	screen := core.NewScreen(20, 6)
	DrawFrame(screen, Frame{
		Snapshot: flappy.Snapshot{State: flappy.StateIdle},
		MinCols:  30,
		MinRows:  12,
	})

	out := screen.String()
	if !strings.Contains(out, "Terminal too small") || !strings.Contains(out, "need 30x12") {
		t.Errorf("too-small message missing:\n%s", out)
	}
}

func TestDrawBirdClippedAboveField(t *testing.T) {
	screen, frame := testFrame(flappy.Snapshot{
		State: flappy.StateEnded,
		Body:  core.NewRect(50, -100, 34, 24),
	})
	// Must not draw over the frame or panic
	DrawFrame(screen, frame)
	if got := screen.Get(31, 0); got != '─' {
		t.Errorf("frame overwritten by off-field bird: %q", got)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "abc", core.ColorGreen)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	if !strings.Contains(out, "abc") || !strings.Contains(out, "xyz") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}
