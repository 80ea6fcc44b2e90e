package game

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/bouncing-balls/internal/config"
	"github.com/iburimskiy/bouncing-balls/internal/physics"
)

var (
	// ErrBoundsTooSmall is returned by Spawn when the surface cannot hold a
	// disc of the largest configured radius.
	ErrBoundsTooSmall = errors.New("surface too small to spawn")
	ErrInvalidCount   = errors.New("invalid spawn count")
)

func checkSpawnBounds(bounds physics.Vector2, maxRadius float64) error {
	if bounds.X < 2*maxRadius || bounds.Y < 2*maxRadius {
		return fmt.Errorf("%w: %gx%g, need at least %gx%g",
			ErrBoundsTooSmall, bounds.X, bounds.Y, 2*maxRadius, 2*maxRadius)
	}
	return nil
}

// randomBody places a disc fully inside bounds with a random speed, heading
// and light color. bounds must already have passed checkSpawnBounds.
func randomBody(rng *rand.Rand, opts config.Options, bounds physics.Vector2) physics.Body {
	radius := uniform(rng, opts.MinRadius, opts.MaxRadius)

	var pos physics.Vector2
	for axis := physics.AxisX; axis <= physics.AxisY; axis++ {
		pos.SetAxis(axis, uniform(rng, radius, bounds.Axis(axis)-radius))
	}

	speed := uniform(rng, opts.MinSpeed, opts.MaxSpeed)
	angle := rng.Float64() * 2 * math.Pi

	return physics.Body{
		Position: pos,
		Velocity: physics.Vector2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
		Radius:   radius,
		Color:    randomColor(rng, opts.Color),
	}
}

func randomColor(rng *rand.Rand, mode config.ColorMode) color.RGBA {
	if mode == config.ColorHSV {
		return lighten(hsvToRGBA(rng.Float64()*360, uniform(rng, 0.4, 0.8), uniform(rng, 0.85, 1.0)))
	}
	channel := func() uint8 {
		return uint8(config.MinChannel + rng.Intn(config.MaxChannel-config.MinChannel+1))
	}
	return color.RGBA{R: channel(), G: channel(), B: channel(), A: 0xff}
}

// lighten maps every channel from [0, 255] onto [MinChannel, MaxChannel].
func lighten(c color.RGBA) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(config.MinChannel + int(v)*(config.MaxChannel-config.MinChannel)/255)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: 0xff}
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
