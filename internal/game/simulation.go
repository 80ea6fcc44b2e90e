package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/iburimskiy/bouncing-balls/internal/config"
	"github.com/iburimskiy/bouncing-balls/internal/physics"
)

// Clock is the frame timer. Now must be monotonic.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads time.Now, which carries a monotonic reading.
var SystemClock Clock = systemClock{}

// Surface reports the current drawable size in pixels.
type Surface interface {
	Size() physics.Vector2
}

// FrameStats describes one Tick.
type FrameStats struct {
	Elapsed     time.Duration
	Reflections int
}

// Simulation owns the bodies and drives them one frame at a time. It is not
// safe for concurrent use; the game loop is its only caller.
type Simulation struct {
	opts    config.Options
	rng     *rand.Rand
	clock   Clock
	surface Surface

	bodies   []physics.Body
	bounds   physics.Vector2
	previous time.Time
	bounces  int
}

func NewSimulation(opts config.Options, rng *rand.Rand, clock Clock, surface Surface) (*Simulation, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("nil random source")
	}
	if clock == nil {
		clock = SystemClock
	}
	return &Simulation{
		opts:     opts,
		rng:      rng,
		clock:    clock,
		surface:  surface,
		bounds:   surface.Size(),
		previous: clock.Now(),
	}, nil
}

// Spawn appends n random bodies that fit inside bounds. Nothing is added
// when an error is returned.
func (s *Simulation) Spawn(n int, bounds physics.Vector2) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	if n == 0 {
		return nil
	}
	if err := checkSpawnBounds(bounds, s.opts.MaxRadius); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		s.bodies = append(s.bodies, randomBody(s.rng, s.opts, bounds))
	}
	return nil
}

// Tick advances every body by the time elapsed since the previous tick,
// reflecting them off the surface edges. The surface size is read once and
// kept as the frame's bounds for rendering.
func (s *Simulation) Tick(now time.Time) FrameStats {
	elapsed := now.Sub(s.previous)
	if elapsed < 0 {
		elapsed = 0
	}
	s.previous = now
	s.bounds = s.surface.Size()

	dt := elapsed.Seconds()
	stats := FrameStats{Elapsed: elapsed}
	for i := range s.bodies {
		r := s.bodies[i].AdvanceBounded(dt, s.bounds, s.opts.Boundary)
		stats.Reflections += r.Count()
	}
	s.bounces += stats.Reflections
	return stats
}

// Render clears the frame and draws every body. A failed draw is logged and
// the remaining bodies are still drawn.
func (s *Simulation) Render(r Renderer, background color.Color) {
	r.Clear(background)
	for i := range s.bodies {
		snap := s.bodies[i].Snapshot()
		if err := r.FillCircle(snap.Position, snap.Radius, snap.Color); err != nil {
			log.Printf("draw ball %d: %v", i, err)
		}
	}
}

func (s *Simulation) Len() int { return len(s.bodies) }

// Bounds is the surface size captured by the last Tick.
func (s *Simulation) Bounds() physics.Vector2 { return s.bounds }

func (s *Simulation) TotalBounces() int { return s.bounces }

func (s *Simulation) Clock() Clock { return s.clock }

func (s *Simulation) Bodies() []physics.Snapshot {
	out := make([]physics.Snapshot, len(s.bodies))
	for i := range s.bodies {
		out[i] = s.bodies[i].Snapshot()
	}
	return out
}
