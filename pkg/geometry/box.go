package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Box represents an axis-aligned box given by its two extreme corners
type Box struct {
	MinPt  core.Vec3 // Corner with the smallest x, y and z
	MaxPt  core.Vec3 // Corner with the largest x, y and z
	Shader core.Shader
}

// NewBox creates a new axis-aligned box
func NewBox(minPt, maxPt core.Vec3, shader core.Shader) (*Box, error) {
	if minPt.X > maxPt.X || minPt.Y > maxPt.Y || minPt.Z > maxPt.Z {
		return nil, fmt.Errorf("box min corner %v must not exceed max corner %v", minPt, maxPt)
	}
	return &Box{
		MinPt:  minPt,
		MaxPt:  maxPt,
		Shader: shader,
	}, nil
}

// GetShader returns the box's material
func (b *Box) GetShader() core.Shader {
	return b.Shader
}

// Hit tests the ray against the three slabs of the box. A zero direction
// component makes the inverse an infinity, which turns that slab into
// (-Inf, +Inf) or an empty interval as appropriate.
func (b *Box) Hit(ray core.Ray) (core.HitRecord, bool) {
	txMin, txMax := slab(b.MinPt.X, b.MaxPt.X, ray.Origin.X, ray.Direction.X)
	tyMin, tyMax := slab(b.MinPt.Y, b.MaxPt.Y, ray.Origin.Y, ray.Direction.Y)
	tzMin, tzMax := slab(b.MinPt.Z, b.MaxPt.Z, ray.Origin.Z, ray.Direction.Z)

	tEnter := math.Max(txMin, math.Max(tyMin, tzMin))
	tExit := math.Min(txMax, math.Min(tyMax, tzMax))
	if !(tEnter <= tExit) {
		return core.HitRecord{}, false
	}

	t := tEnter
	if !ray.Contains(t) {
		// The ray starts inside the box
		t = tExit
		if !ray.Contains(t) {
			return core.HitRecord{}, false
		}
	}

	location := ray.At(t)
	return core.HitRecord{
		Location: location,
		Normal:   b.faceNormal(location),
		Surface:  b,
		T:        t,
	}, true
}

// slab returns the parametric interval in which the ray lies between the
// two planes lo and hi of one axis
func slab(lo, hi, origin, direction float64) (float64, float64) {
	inv := 1 / direction
	t1 := (lo - origin) * inv
	t2 := (hi - origin) * inv
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return t1, t2
}

// faceNormal returns the normal of the face the point lies closest to
func (b *Box) faceNormal(p core.Vec3) core.Vec3 {
	faces := [6]struct {
		dist   float64
		normal core.Vec3
	}{
		{math.Abs(p.X - b.MaxPt.X), core.NewVec3(1, 0, 0)},
		{math.Abs(p.X - b.MinPt.X), core.NewVec3(-1, 0, 0)},
		{math.Abs(p.Y - b.MaxPt.Y), core.NewVec3(0, 1, 0)},
		{math.Abs(p.Y - b.MinPt.Y), core.NewVec3(0, -1, 0)},
		{math.Abs(p.Z - b.MaxPt.Z), core.NewVec3(0, 0, 1)},
		{math.Abs(p.Z - b.MinPt.Z), core.NewVec3(0, 0, -1)},
	}

	best := 0
	for i := 1; i < len(faces); i++ {
		// Faces within Epsilon of each other keep the earlier one (x before y before z)
		if faces[i].dist < faces[best].dist-core.Epsilon {
			best = i
		}
	}
	return faces[best].normal
}
