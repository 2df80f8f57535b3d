package material

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// IsShadowed reports whether anything in the scene blocks the path from the
// hit point to the light. The shadow ray is trimmed by core.ShadowEpsilon at
// both ends so the originating surface and the light itself never count as
// occluders.
func IsShadowed(scene core.Intersector, light core.Light, hit core.HitRecord) bool {
	toLight := light.Position().Subtract(hit.Location)
	distance := toLight.Length()
	if distance <= 2*core.ShadowEpsilon {
		return false
	}

	shadowRay := core.NewSegment(hit.Location, toLight.Multiply(1/distance),
		core.ShadowEpsilon, distance-core.ShadowEpsilon)
	return scene.FindAny(shadowRay)
}
