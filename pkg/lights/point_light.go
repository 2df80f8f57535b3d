package lights

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// PointLight emits light equally in all directions from a single point
type PointLight struct {
	position  core.Vec3
	intensity core.Vec3 // Per-channel radiance
}

// NewPointLight creates a new point light
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{position: position, intensity: intensity}
}

// Position returns the light's location
func (pl *PointLight) Position() core.Vec3 {
	return pl.position
}

// Intensity returns the light's per-channel radiance
func (pl *PointLight) Intensity() core.Vec3 {
	return pl.intensity
}
