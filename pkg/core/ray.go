package core

import "math"

const (
	// Epsilon is the tolerance for floating point comparisons of positions
	// and normals, e.g. deciding which box face a hit point lies on.
	Epsilon = 1e-6

	// ShadowEpsilon offsets both ends of a shadow ray so that it neither
	// re-hits the surface it leaves nor treats the light as an occluder.
	ShadowEpsilon = 1e-6
)

// Ray is an origin, a direction and the parametric interval [Start, End]
// in which hits are accepted. The direction need not be unit length.
//
// Rays are passed by value. A callee that narrows End while scanning for
// the closest hit only changes its own copy.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Start     float64
	End       float64
}

// NewRay creates a ray valid over [0, +Inf)
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, Start: 0, End: math.Inf(1)}
}

// NewSegment creates a ray valid over [start, end]
func NewSegment(origin, direction Vec3, start, end float64) Ray {
	return Ray{Origin: origin, Direction: direction, Start: start, End: end}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Contains reports whether t is finite and lies in [Start, End]. NaN and
// the infinities produced by dividing by a zero direction component are
// never contained.
func (r Ray) Contains(t float64) bool {
	return t >= r.Start && t <= r.End && !math.IsInf(t, 0)
}
