package material

import (
	"fmt"
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Phong implements the modified Blinn-Phong model: a Lambertian diffuse
// lobe plus a specular lobe around the half vector between light and eye
type Phong struct {
	DiffuseColor  core.Vec3
	SpecularColor core.Vec3
	Exponent      float64 // Sharpness of the specular highlight
}

// NewPhong creates a new phong material
func NewPhong(diffuseColor, specularColor core.Vec3, exponent float64) *Phong {
	return &Phong{
		DiffuseColor:  diffuseColor,
		SpecularColor: specularColor,
		Exponent:      exponent,
	}
}

// Shade sums the diffuse and specular terms over every unoccluded light and
// clamps the result to [0,1]
func (p *Phong) Shade(hit core.HitRecord, scene core.Intersector, lights []core.Light, toEye core.Vec3) core.Vec3 {
	color := core.Vec3{}
	eyeDir := toEye.Normalize()

	for _, light := range lights {
		if IsShadowed(scene, light, hit) {
			continue
		}
		lightDir := light.Position().Subtract(hit.Location).Normalize()
		halfDir := lightDir.Add(eyeDir).Normalize()

		diffuse := math.Max(0, hit.Normal.Dot(lightDir))
		specular := math.Pow(math.Max(0, hit.Normal.Dot(halfDir)), p.Exponent)

		reflectance := p.DiffuseColor.Multiply(diffuse).Add(p.SpecularColor.Multiply(specular))
		color = color.Add(reflectance.MultiplyVec(light.Intensity()))
	}

	return color.Clamp(0, 1)
}

func (p *Phong) String() string {
	return fmt.Sprintf("Phong: diffuse %v specular %v exponent %g", p.DiffuseColor, p.SpecularColor, p.Exponent)
}
