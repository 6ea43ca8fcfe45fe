package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Layout holds the pipe geometry derived from the field at (re)start.
// It stays constant for the whole run.
type Layout struct {
	Field      core.Field
	PipeWidth  float64
	PipeHeight float64
	PipeGap    float64
}

// NewLayout derives pipe geometry for a field.
func NewLayout(cfg config.FlappyConfig, field core.Field) Layout {
	return Layout{
		Field:      field,
		PipeWidth:  cfg.Obstacles.PipeWidth,
		PipeHeight: cfg.PipeHeight(field.Height),
		PipeGap:    cfg.PipeGap(field.Height),
	}
}

// Obstacle is one pipe pair. TopY is the y of the top pipe's upper edge;
// the gap starts at TopY+PipeHeight.
type Obstacle struct {
	X      float64
	TopY   float64
	Passed bool
}

// TopRect returns the collision rectangle of the upper pipe.
func (o Obstacle) TopRect(l Layout) core.Rect {
	return core.NewRect(o.X, o.TopY, l.PipeWidth, l.PipeHeight)
}

// BottomRect returns the collision rectangle of the lower pipe.
func (o Obstacle) BottomRect(l Layout) core.Rect {
	return core.NewRect(o.X, o.TopY+l.PipeHeight+l.PipeGap, l.PipeWidth, l.PipeHeight)
}

// ObstacleStream spawns, scrolls and retires pipe pairs.
// Obstacles are kept in spawn order, so the oldest is always at the front.
type ObstacleStream struct {
	obstacles []Obstacle
	rng       *rand.Rand
	layout    Layout
	cfg       config.FlappyObstacles

	frameRefMs      float64
	speed           float64
	spawnIntervalMs float64
	lastSpawnMs     float64
}

// NewObstacleStream creates an empty stream.
func NewObstacleStream(cfg config.FlappyObstacles, frameRefMs float64) *ObstacleStream {
	return &ObstacleStream{
		obstacles:       make([]Obstacle, 0, 8),
		rng:             rand.New(rand.NewSource(1)),
		cfg:             cfg,
		frameRefMs:      frameRefMs,
		speed:           cfg.PipeSpeed,
		spawnIntervalMs: cfg.SpawnIntervalMs,
	}
}

// Reset clears all obstacles, reseeds the RNG and adopts a new layout.
func (s *ObstacleStream) Reset(layout Layout, seed int64, nowMs float64) {
	s.obstacles = s.obstacles[:0]
	s.rng = rand.New(rand.NewSource(seed))
	s.layout = layout
	s.speed = s.cfg.PipeSpeed
	s.spawnIntervalMs = s.cfg.SpawnIntervalMs
	s.lastSpawnMs = nowMs
}

// SetSpeed overrides the scroll speed (negative = leftward).
func (s *ObstacleStream) SetSpeed(speed float64) {
	s.speed = speed
}

// SetSpawnInterval overrides the spawn cadence.
func (s *ObstacleStream) SetSpawnInterval(ms float64) {
	s.spawnIntervalMs = ms
}

// Spawn creates a pipe pair at the right edge of the field and restarts the
// spawn timer. The top pipe is shifted up by a random amount inside the
// configured band so the gap always lands inside the field.
func (s *ObstacleStream) Spawn(nowMs float64) {
	ph := s.layout.PipeHeight
	topY := -(ph * s.cfg.OffsetMin) - s.rng.Float64()*(ph*s.cfg.OffsetSpan)

	s.obstacles = append(s.obstacles, Obstacle{
		X:    s.layout.Field.Width,
		TopY: topY,
	})
	s.lastSpawnMs = nowMs
}

// MaybeSpawn spawns a pair if the spawn interval has elapsed.
func (s *ObstacleStream) MaybeSpawn(nowMs float64) bool {
	if nowMs-s.lastSpawnMs < s.spawnIntervalMs {
		return false
	}
	s.Spawn(nowMs)
	return true
}

// Advance scrolls every live obstacle by the elapsed time.
func (s *ObstacleStream) Advance(deltaMs float64) {
	dx := s.speed * (deltaMs / s.frameRefMs)
	for i := range s.obstacles {
		s.obstacles[i].X += dx
	}
}

// EvictOffscreen drops obstacles whose right edge has crossed x=0.
// Only the front of the queue needs checking.
func (s *ObstacleStream) EvictOffscreen() int {
	n := 0
	for n < len(s.obstacles) && s.obstacles[n].X+s.layout.PipeWidth < 0 {
		n++
	}
	if n > 0 {
		s.obstacles = append(s.obstacles[:0], s.obstacles[n:]...)
	}
	return n
}

// MarkPassed flags every pair whose right edge is behind bodyX and returns
// how many pairs were newly passed.
func (s *ObstacleStream) MarkPassed(bodyX float64) int {
	passed := 0
	for i := range s.obstacles {
		o := &s.obstacles[i]
		if !o.Passed && o.X+s.layout.PipeWidth < bodyX {
			o.Passed = true
			passed++
		}
	}
	return passed
}

// Obstacles returns the live obstacles, oldest first.
func (s *ObstacleStream) Obstacles() []Obstacle {
	return s.obstacles
}

// Layout returns the geometry of the current run.
func (s *ObstacleStream) Layout() Layout {
	return s.layout
}
