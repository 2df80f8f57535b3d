package material

import (
	"fmt"
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	DiffuseColor core.Vec3
}

// NewLambertian creates a new lambertian material
func NewLambertian(diffuseColor core.Vec3) *Lambertian {
	return &Lambertian{DiffuseColor: diffuseColor}
}

// Shade sums diffuse ⊙ intensity ⊙ max(0, n·l) over every unoccluded light
// and clamps the result to [0,1]
func (l *Lambertian) Shade(hit core.HitRecord, scene core.Intersector, lights []core.Light, toEye core.Vec3) core.Vec3 {
	color := core.Vec3{}

	for _, light := range lights {
		if IsShadowed(scene, light, hit) {
			continue
		}
		lightDir := light.Position().Subtract(hit.Location).Normalize()
		cosTheta := math.Max(0, hit.Normal.Dot(lightDir))
		color = color.Add(l.DiffuseColor.MultiplyVec(light.Intensity()).Multiply(cosTheta))
	}

	return color.Clamp(0, 1)
}

func (l *Lambertian) String() string {
	return fmt.Sprintf("Lambertian: %v", l.DiffuseColor)
}
