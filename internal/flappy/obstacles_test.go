package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func newTestStream(seed int64) *ObstacleStream {
	cfg := config.DefaultFlappyConfig()
	s := NewObstacleStream(cfg.Obstacles, cfg.Physics.FrameReferenceMs)
	s.Reset(NewLayout(cfg, testField), seed, 0)
	return s
}

func TestLayoutFromField(t *testing.T) {
	l := NewLayout(config.DefaultFlappyConfig(), testField)
	if l.PipeWidth != 64 || l.PipeHeight != 512 {
		t.Errorf("layout pipe %vx%v, expected 64x512", l.PipeWidth, l.PipeHeight)
	}
	if l.PipeGap != 640/4.5 {
		t.Errorf("layout gap %v, expected %v", l.PipeGap, 640/4.5)
	}
}

func TestSpawnKeepsGapInsideField(t *testing.T) {
	s := newTestStream(99)
	l := s.Layout()

	for i := 0; i < 500; i++ {
		s.Spawn(float64(i))
	}

	for i, o := range s.Obstacles() {
		if o.X != testField.Width {
			t.Fatalf("obstacle %d spawned at x=%v, expected right edge", i, o.X)
		}
		if o.TopY > -128 || o.TopY < -384 {
			t.Fatalf("obstacle %d TopY=%v outside [-384, -128]", i, o.TopY)
		}
		gapTop := o.TopRect(l).Bottom()
		gapBottom := o.BottomRect(l).Y
		if gapTop <= 0 || gapBottom >= testField.Height {
			t.Fatalf("obstacle %d gap [%v, %v] not inside field", i, gapTop, gapBottom)
		}
		// Both pipes reach past the field edges
		if o.TopY >= 0 || o.BottomRect(l).Bottom() <= testField.Height {
			t.Fatalf("obstacle %d pipes do not cover the field edges", i)
		}
	}
}

func TestSpawnDeterministicPerSeed(t *testing.T) {
	a, b := newTestStream(5), newTestStream(5)
	for i := 0; i < 10; i++ {
		a.Spawn(0)
		b.Spawn(0)
	}
	for i := range a.Obstacles() {
		if a.Obstacles()[i] != b.Obstacles()[i] {
			t.Fatalf("obstacle %d differs for the same seed", i)
		}
	}
}

func TestMaybeSpawnInterval(t *testing.T) {
	s := newTestStream(1)

	if s.MaybeSpawn(999.9) {
		t.Error("should not spawn before the interval elapses")
	}
	if !s.MaybeSpawn(1000) {
		t.Error("should spawn exactly at the interval")
	}
	if s.MaybeSpawn(1500) {
		t.Error("timer should restart from the last spawn")
	}
	if !s.MaybeSpawn(2000) {
		t.Error("should spawn again after another interval")
	}
	if n := len(s.Obstacles()); n != 2 {
		t.Errorf("expected 2 obstacles, got %d", n)
	}
}

func TestAdvanceScrollsLeft(t *testing.T) {
	s := newTestStream(1)
	s.Spawn(0)
	s.Advance(16.67)

	if x := s.Obstacles()[0].X; x != 356 {
		t.Errorf("after one frame x=%v, expected 356", x)
	}

	s.Advance(0)
	if x := s.Obstacles()[0].X; x != 356 {
		t.Errorf("zero delta moved obstacle to x=%v", x)
	}

	s.Advance(16.67)
	if x := s.Obstacles()[0].X; x != 352 {
		t.Errorf("after two frames x=%v, expected 352", x)
	}
}

func TestEvictExactlyWhenRightEdgeNegative(t *testing.T) {
	s := newTestStream(1)
	s.obstacles = append(s.obstacles,
		Obstacle{X: -64},    // right edge at 0: still visible
		Obstacle{X: 100},    // live
		Obstacle{X: -64.01}, // behind a live one; never examined out of order
	)

	if n := s.EvictOffscreen(); n != 0 {
		t.Fatalf("evicted %d, expected 0 while front right edge is 0", n)
	}

	s.obstacles[0].X = -64.01
	if n := s.EvictOffscreen(); n != 1 {
		t.Fatalf("evicted %d, expected 1", n)
	}
	if len(s.Obstacles()) != 2 || s.Obstacles()[0].X != 100 {
		t.Errorf("unexpected remaining obstacles: %+v", s.Obstacles())
	}

	// Evicting again removes nothing new
	if n := s.EvictOffscreen(); n != 0 {
		t.Errorf("second eviction removed %d", n)
	}
}

func TestMarkPassedOncePerPair(t *testing.T) {
	s := newTestStream(1)
	s.obstacles = append(s.obstacles,
		Obstacle{X: -30}, // right edge 34 < 45
		Obstacle{X: -19}, // right edge 45, not strictly behind
		Obstacle{X: 200},
	)

	if n := s.MarkPassed(45); n != 1 {
		t.Fatalf("MarkPassed = %d, expected 1", n)
	}
	if n := s.MarkPassed(45); n != 0 {
		t.Errorf("second MarkPassed = %d, expected 0", n)
	}

	s.Advance(16.67)
	if n := s.MarkPassed(45); n != 1 {
		t.Errorf("MarkPassed after scroll = %d, expected 1", n)
	}
	if !s.Obstacles()[0].Passed || !s.Obstacles()[1].Passed || s.Obstacles()[2].Passed {
		t.Errorf("unexpected passed flags: %+v", s.Obstacles())
	}
}

func TestResetClearsStream(t *testing.T) {
	s := newTestStream(1)
	s.Spawn(0)
	s.SetSpeed(-10)
	s.Reset(s.Layout(), 2, 500)

	if len(s.Obstacles()) != 0 {
		t.Error("Reset should clear obstacles")
	}
	if s.speed != -4 {
		t.Errorf("Reset should restore base speed, got %v", s.speed)
	}
	if s.MaybeSpawn(1499) {
		t.Error("spawn timer should restart at the reset timestamp")
	}
}
