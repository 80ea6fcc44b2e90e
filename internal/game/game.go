package game

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/bouncing-balls/internal/config"
	"github.com/iburimskiy/bouncing-balls/internal/physics"
)

// Game adapts a Simulation to ebiten's Update/Draw/Layout loop.
type Game struct {
	sim  *Simulation
	opts config.Options

	// surface size from the last Layout call
	width, height int

	// reused every frame by pollEvents
	events []Event
	keys   []ebiten.Key

	hud     bool
	frames  *frameHistory
	started time.Time
	lastErr error

	sound *bounceSound
	out   io.Writer
}

// NewGame builds a game whose simulation draws from rng and times frames
// with clock (SystemClock when nil).
func NewGame(opts config.Options, rng *rand.Rand, clock Clock) (*Game, error) {
	g := &Game{
		opts:   opts,
		width:  opts.WindowWidth,
		height: opts.WindowHeight,
		hud:    opts.HUD,
		frames: newFrameHistory(config.FrameHistorySize),
		sound:  newBounceSound(),
		out:    os.Stdout,
	}
	sim, err := NewSimulation(opts, rng, clock, g)
	if err != nil {
		return nil, err
	}
	g.sim = sim
	g.started = sim.Clock().Now()

	if opts.Sound {
		g.setSound(true)
	}
	return g, nil
}

// Size implements Surface.
func (g *Game) Size() physics.Vector2 {
	return physics.Vector2{X: float64(g.width), Y: float64(g.height)}
}

func (g *Game) Update() error {
	g.events, g.keys = pollEvents(g.events[:0], g.keys)
	return g.step(FoldEvents(g.events))
}

// step applies one frame of folded input, then advances the simulation.
func (g *Game) step(sig Signals) error {
	if sig.Quit {
		// spawns that arrived before the quit still land
		for i := 0; i < sig.Spawns; i++ {
			g.spawn()
		}
		g.Close()
		return ebiten.Termination
	}
	if sig.ToggleHUD {
		g.hud = !g.hud
	}
	if sig.ToggleSound {
		g.setSound(!g.sound.enabled)
	}
	for i := 0; i < sig.Spawns; i++ {
		g.spawn()
	}

	stats := g.sim.Tick(g.sim.Clock().Now())
	g.frames.add(stats.Elapsed)
	g.sound.bounce(stats.Reflections)
	return nil
}

func (g *Game) spawn() {
	if err := g.sim.Spawn(g.opts.BallInc, g.Size()); err != nil {
		log.Printf("spawn: %v", err)
		g.lastErr = err
		return
	}
	fmt.Fprintf(g.out, "There are %d balls!\n", g.sim.Len())
}

func (g *Game) setSound(on bool) {
	if err := g.sound.setEnabled(on); err != nil {
		log.Printf("audio: %v", err)
		g.lastErr = fmt.Errorf("audio: %w", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.sim.Render(screenRenderer{screen: screen}, config.Background)
	if g.hud {
		g.drawHUD(screen)
	}
}

// Layout tracks the window size so the surface follows resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}

// Close releases the audio device. Safe to call more than once.
func (g *Game) Close() {
	g.sound.close()
}
