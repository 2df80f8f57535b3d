package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Cone represents a capped, truncated cone whose axis is parallel to z.
// Its apex lies at (Center.X, Center.Y, TipZ) and its radius at the plane
// z = Center.Z is Radius. The surface is cut at Center.Z ± Height/2; only
// the nappe containing Center belongs to it.
type Cone struct {
	Center core.Vec3
	Radius float64
	Height float64
	TipZ   float64
	Shader core.Shader

	// Cached derived values
	ratio float64 // Radius / (TipZ - Center.Z); radius at z is ratio*(TipZ-z)
	apex  core.Vec3
}

// NewCone creates a new cone
func NewCone(center core.Vec3, radius, height, tipZ float64, shader core.Shader) (*Cone, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("cone radius must be positive, got %f", radius)
	}
	if !(height > 0) {
		return nil, fmt.Errorf("cone height must be positive, got %f", height)
	}
	if tipZ == center.Z {
		return nil, fmt.Errorf("cone tip z (%f) must differ from center z", tipZ)
	}

	return &Cone{
		Center: center,
		Radius: radius,
		Height: height,
		TipZ:   tipZ,
		Shader: shader,
		ratio:  radius / (tipZ - center.Z),
		apex:   core.NewVec3(center.X, center.Y, tipZ),
	}, nil
}

// GetShader returns the cone's material
func (c *Cone) GetShader() core.Shader {
	return c.Shader
}

// radiusAt returns the cone radius in the plane z. It is negative on the
// nappe beyond the apex.
func (c *Cone) radiusAt(z float64) float64 {
	return c.ratio * (c.TipZ - z)
}

// Hit tests the ray against the lateral surface and both caps and returns
// the closest candidate that lies on the truncated cone
func (c *Cone) Hit(ray core.Ray) (core.HitRecord, bool) {
	e := ray.Origin.Subtract(c.apex)
	d := ray.Direction
	s := c.ratio * c.ratio
	halfHeight := c.Height / 2

	// Infinite double cone: (x-cx)² + (y-cy)² = s·(z-tipZ)²
	a := d.X*d.X + d.Y*d.Y - s*d.Z*d.Z
	b := 2 * (d.X*e.X + d.Y*e.Y - s*d.Z*e.Z)
	cc := e.X*e.X + e.Y*e.Y - s*e.Z*e.Z

	topZ := c.Center.Z + halfHeight
	bottomZ := c.Center.Z - halfHeight

	var buf [4]candidate
	candidates := appendQuadraticRoots(buf[:0], a, b, cc, lateralPart)
	candidates = append(candidates,
		candidate{t: (topZ - ray.Origin.Z) / d.Z, part: topCapPart},
		candidate{t: (bottomZ - ray.Origin.Z) / d.Z, part: bottomCapPart},
	)

	for _, cand := range admissible(ray, candidates) {
		p := ray.At(cand.t)
		switch cand.part {
		case lateralPart:
			if math.Abs(p.Z-c.Center.Z) <= halfHeight && c.radiusAt(p.Z) >= 0 {
				normal := core.NewVec3(p.X-c.Center.X, p.Y-c.Center.Y, -s*(p.Z-c.TipZ)).Normalize()
				return c.record(p, normal, cand.t), true
			}
		case topCapPart:
			if c.capContains(p, topZ) {
				return c.record(p, core.NewVec3(0, 0, 1), cand.t), true
			}
		case bottomCapPart:
			if c.capContains(p, bottomZ) {
				return c.record(p, core.NewVec3(0, 0, -1), cand.t), true
			}
		}
	}

	return core.HitRecord{}, false
}

// capContains checks whether p lies on the disc cut by the plane z
func (c *Cone) capContains(p core.Vec3, z float64) bool {
	r := c.radiusAt(z)
	if r < 0 {
		// The plane is beyond the apex; there is no cap there
		return false
	}
	return radialDistanceSquared(p, c.Center) <= r*r
}

func (c *Cone) record(location, normal core.Vec3, t float64) core.HitRecord {
	return core.HitRecord{Location: location, Normal: normal, Surface: c, T: t}
}
