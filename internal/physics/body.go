package physics

import (
	"fmt"
	"image/color"
	"math"
)

// BoundaryMode selects how the near-edge test compares position and radius.
type BoundaryMode uint8

const (
	// BoundaryExact compares position and radius as floats.
	BoundaryExact BoundaryMode = iota
	// BoundaryTruncate truncates both values to unsigned integers before the
	// near-edge comparison, saturating negatives to zero. Kept for parity with
	// the legacy SDL build; a body sitting up to one pixel inside the edge is
	// not reflected in this mode.
	BoundaryTruncate
)

func (m BoundaryMode) String() string {
	switch m {
	case BoundaryExact:
		return "exact"
	case BoundaryTruncate:
		return "truncate"
	default:
		return fmt.Sprintf("BoundaryMode(%d)", uint8(m))
	}
}

// ParseBoundaryMode accepts "exact" or "truncate".
func ParseBoundaryMode(s string) (BoundaryMode, error) {
	switch s {
	case "exact", "":
		return BoundaryExact, nil
	case "truncate":
		return BoundaryTruncate, nil
	}
	return BoundaryExact, fmt.Errorf("unknown boundary mode %q (want exact or truncate)", s)
}

// Reflection is a bitmask of the axes that bounced during one step.
type Reflection uint8

const (
	ReflectX Reflection = 1 << AxisX
	ReflectY Reflection = 1 << AxisY
)

func (r Reflection) Has(axis int) bool { return r&(1<<axis) != 0 }

// Count returns how many axes reflected (0, 1 or 2).
func (r Reflection) Count() int {
	n := 0
	for axis := AxisX; axis <= AxisY; axis++ {
		if r.Has(axis) {
			n++
		}
	}
	return n
}

// Body is one simulated disc. Radius and Color never change after spawn.
type Body struct {
	Position Vector2
	Velocity Vector2
	Radius   float64
	Color    color.RGBA
}

// Snapshot is the read-only view of a Body handed to a renderer.
type Snapshot struct {
	Position Vector2
	Radius   float64
	Color    color.RGBA
}

func (b Body) Snapshot() Snapshot {
	return Snapshot{Position: b.Position, Radius: b.Radius, Color: b.Color}
}

// Advance moves the body along its velocity for dt seconds.
func (b *Body) Advance(dt float64) {
	for axis := AxisX; axis <= AxisY; axis++ {
		b.advanceAxis(axis, dt)
	}
}

// AdvanceBounded advances the body and reflects it off the edges of a
// surface of the given size. An axis found out of bounds has its velocity
// negated and the step for that axis is applied once more with the reflected
// velocity. The position is not clamped, so a fast body can sit past an edge
// for a frame before the next step brings it back.
func (b *Body) AdvanceBounded(dt float64, bounds Vector2, mode BoundaryMode) Reflection {
	b.Advance(dt)

	var r Reflection
	for axis := AxisX; axis <= AxisY; axis++ {
		if !b.outOfBounds(axis, bounds, mode) {
			continue
		}
		b.Velocity.SetAxis(axis, -b.Velocity.Axis(axis))
		b.advanceAxis(axis, dt)
		r |= 1 << axis
	}
	return r
}

func (b *Body) advanceAxis(axis int, dt float64) {
	b.Position.SetAxis(axis, b.Position.Axis(axis)+b.Velocity.Axis(axis)*dt)
}

func (b *Body) outOfBounds(axis int, bounds Vector2, mode BoundaryMode) bool {
	pos := b.Position.Axis(axis)
	if pos > bounds.Axis(axis)-b.Radius {
		return true
	}
	if mode == BoundaryTruncate {
		return truncateUint32(pos) < truncateUint32(b.Radius)
	}
	return pos < b.Radius
}

// truncateUint32 converts with saturation: NaN and negatives become 0, values
// past the range become MaxUint32. A plain uint32(f) is implementation
// defined for those inputs.
func truncateUint32(f float64) uint32 {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(f)
}
