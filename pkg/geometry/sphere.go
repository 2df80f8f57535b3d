package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	Shader core.Shader
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, shader core.Shader) (*Sphere, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("sphere radius must be positive, got %f", radius)
	}
	return &Sphere{
		Center: center,
		Radius: radius,
		Shader: shader,
	}, nil
}

// GetShader returns the sphere's material
func (s *Sphere) GetShader() core.Shader {
	return s.Shader
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray) (core.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}

	// A zero discriminant is a tangent ray with a single root
	sqrtD := math.Sqrt(discriminant)
	root := (-b - sqrtD) / (2 * a)
	if !ray.Contains(root) {
		root = (-b + sqrtD) / (2 * a)
		if !ray.Contains(root) {
			return core.HitRecord{}, false
		}
	}

	location := ray.At(root)
	return core.HitRecord{
		Location: location,
		Normal:   location.Subtract(s.Center).Normalize(),
		Surface:  s,
		T:        root,
	}, true
}
