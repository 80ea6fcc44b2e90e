package physics

import "math"

const (
	AxisX = 0
	AxisY = 1
)

// Vector2 is a point or displacement in screen pixel coordinates.
type Vector2 struct {
	X, Y float64
}

// Axis returns the component for AxisX or AxisY.
func (v Vector2) Axis(axis int) float64 {
	if axis == AxisX {
		return v.X
	}
	return v.Y
}

func (v *Vector2) SetAxis(axis int, value float64) {
	if axis == AxisX {
		v.X = value
		return
	}
	v.Y = value
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vector2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
