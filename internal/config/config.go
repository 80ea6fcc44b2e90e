package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/iburimskiy/bouncing-balls/internal/physics"
)

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "ball"

	DefaultBallInc = 1

	// Spawn ranges, lower bound inclusive, upper exclusive
	MinRadius = 5
	MaxRadius = 30
	MinSpeed  = 100
	MaxSpeed  = 1000

	// Color channels stay light so bodies read against the background
	MinChannel = 0x80
	MaxChannel = 0xff

	// Frames averaged for the HUD FPS readout
	FrameHistorySize = 120

	// Bounce click
	SoundSampleRate = 44100
	SoundFrequency  = 880
	SoundDecay      = 40 // per second
	SoundLength     = 60 // milliseconds
	SoundMaxVolume  = 0.4
)

// Background is the clear color of every frame.
var Background = color.RGBA{R: 0, G: 0, B: 0, A: 0xff}

// ColorMode chooses how spawned bodies are colored.
type ColorMode string

const (
	ColorRGB ColorMode = "rgb"
	ColorHSV ColorMode = "hsv"
)

var ErrInvalidOptions = errors.New("invalid options")

// Options holds everything tunable from the command line.
type Options struct {
	BallInc      int
	WindowWidth  int
	WindowHeight int
	Seed         int64
	Boundary     physics.BoundaryMode
	Color        ColorMode
	Sound        bool
	HUD          bool

	MinRadius, MaxRadius float64
	MinSpeed, MaxSpeed   float64
}

func Default() Options {
	return Options{
		BallInc:      DefaultBallInc,
		WindowWidth:  WindowWidth,
		WindowHeight: WindowHeight,
		Boundary:     physics.BoundaryExact,
		Color:        ColorRGB,
		MinRadius:    MinRadius,
		MaxRadius:    MaxRadius,
		MinSpeed:     MinSpeed,
		MaxSpeed:     MaxSpeed,
	}
}

// Validate reports the first inconsistent field, wrapped in ErrInvalidOptions.
func (o Options) Validate() error {
	switch {
	case o.BallInc < 0:
		return fmt.Errorf("%w: ball increment %d is negative", ErrInvalidOptions, o.BallInc)
	case o.WindowWidth <= 0 || o.WindowHeight <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidOptions, o.WindowWidth, o.WindowHeight)
	case o.MinRadius <= 0 || o.MaxRadius <= o.MinRadius:
		return fmt.Errorf("%w: radius range [%g, %g)", ErrInvalidOptions, o.MinRadius, o.MaxRadius)
	case o.MinSpeed < 0 || o.MaxSpeed <= o.MinSpeed:
		return fmt.Errorf("%w: speed range [%g, %g)", ErrInvalidOptions, o.MinSpeed, o.MaxSpeed)
	case o.Color != ColorRGB && o.Color != ColorHSV:
		return fmt.Errorf("%w: color mode %q (want rgb or hsv)", ErrInvalidOptions, o.Color)
	}
	return nil
}
