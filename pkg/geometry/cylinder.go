package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Cylinder represents a closed, capped cylinder whose axis is parallel to z.
// It extends from Center.Z-Height/2 to Center.Z+Height/2.
type Cylinder struct {
	Center core.Vec3
	Radius float64
	Height float64
	Shader core.Shader
}

// NewCylinder creates a new cylinder
func NewCylinder(center core.Vec3, radius, height float64, shader core.Shader) (*Cylinder, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("cylinder radius must be positive, got %f", radius)
	}
	if !(height > 0) {
		return nil, fmt.Errorf("cylinder height must be positive, got %f", height)
	}
	return &Cylinder{
		Center: center,
		Radius: radius,
		Height: height,
		Shader: shader,
	}, nil
}

// GetShader returns the cylinder's material
func (c *Cylinder) GetShader() core.Shader {
	return c.Shader
}

// Hit tests the ray against the lateral surface and both caps and returns
// the closest candidate that lies on the finite cylinder
func (c *Cylinder) Hit(ray core.Ray) (core.HitRecord, bool) {
	oc := ray.Origin.Subtract(c.Center)
	d := ray.Direction
	halfHeight := c.Height / 2

	// Infinite lateral surface: (x-cx)² + (y-cy)² = r²
	a := d.X*d.X + d.Y*d.Y
	b := 2 * (d.X*oc.X + d.Y*oc.Y)
	cc := oc.X*oc.X + oc.Y*oc.Y - c.Radius*c.Radius

	var buf [4]candidate
	candidates := appendQuadraticRoots(buf[:0], a, b, cc, lateralPart)
	candidates = append(candidates,
		candidate{t: (halfHeight - oc.Z) / d.Z, part: topCapPart},
		candidate{t: (-halfHeight - oc.Z) / d.Z, part: bottomCapPart},
	)

	radiusSq := c.Radius * c.Radius
	for _, cand := range admissible(ray, candidates) {
		p := ray.At(cand.t)
		switch cand.part {
		case lateralPart:
			if math.Abs(p.Z-c.Center.Z) <= halfHeight {
				normal := core.NewVec3(p.X-c.Center.X, p.Y-c.Center.Y, 0).Normalize()
				return c.record(p, normal, cand.t), true
			}
		case topCapPart:
			if radialDistanceSquared(p, c.Center) <= radiusSq {
				return c.record(p, core.NewVec3(0, 0, 1), cand.t), true
			}
		case bottomCapPart:
			if radialDistanceSquared(p, c.Center) <= radiusSq {
				return c.record(p, core.NewVec3(0, 0, -1), cand.t), true
			}
		}
	}

	return core.HitRecord{}, false
}

func (c *Cylinder) record(location, normal core.Vec3, t float64) core.HitRecord {
	return core.HitRecord{Location: location, Normal: normal, Surface: c, T: t}
}
