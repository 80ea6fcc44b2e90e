package game

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/bouncing-balls/internal/physics"
)

var ErrInvalidPrimitive = errors.New("invalid draw primitive")

// Renderer is the drawing surface a Simulation renders into.
type Renderer interface {
	Clear(c color.Color)
	FillCircle(center physics.Vector2, radius float64, c color.Color) error
}

// screenRenderer draws onto an ebiten frame.
type screenRenderer struct {
	screen *ebiten.Image
}

func (r screenRenderer) Clear(c color.Color) {
	r.screen.Fill(c)
}

func (r screenRenderer) FillCircle(center physics.Vector2, radius float64, c color.Color) error {
	if err := checkCircle(center, radius); err != nil {
		return err
	}
	vector.DrawFilledCircle(r.screen, float32(center.X), float32(center.Y), float32(radius), c, true)
	return nil
}

func checkCircle(center physics.Vector2, radius float64) error {
	if !center.IsFinite() {
		return fmt.Errorf("%w: center (%g, %g)", ErrInvalidPrimitive, center.X, center.Y)
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return fmt.Errorf("%w: radius %g", ErrInvalidPrimitive, radius)
	}
	// float32 coordinates past this lose whole pixels
	const limit = 1 << 24
	if math.Abs(center.X) > limit || math.Abs(center.Y) > limit || radius > limit {
		return fmt.Errorf("%w: out of range (%g, %g) r=%g", ErrInvalidPrimitive, center.X, center.Y, radius)
	}
	return nil
}
