package renderer

import (
	"fmt"
	"sync"

	"github.com/df07/go-raycaster/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	ViewPoint    core.Vec3 // Eye position
	ViewDir      core.Vec3 // Direction the camera looks along
	ViewUp       core.Vec3 // Approximate up direction
	ProjNormal   core.Vec3 // Normal of the view plane (defaults to -ViewDir)
	ViewWidth    float64   // Width of the view plane in world units
	ViewHeight   float64   // Height of the view plane in world units
	ProjDistance float64   // Distance from the eye to the view plane
}

// DefaultCameraConfig returns a camera at the origin looking down -z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		ViewPoint:    core.NewVec3(0, 0, 0),
		ViewDir:      core.NewVec3(0, 0, -1),
		ViewUp:       core.NewVec3(0, 1, 0),
		ProjNormal:   core.NewVec3(0, 0, 1),
		ViewWidth:    1.0,
		ViewHeight:   1.0,
		ProjDistance: 1.0,
	}
}

// MergeCameraConfig merges a partial camera config with a base config.
// Only non-zero values in the override config replace base config values.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base

	if !override.ViewPoint.IsZero() {
		result.ViewPoint = override.ViewPoint
	}
	if !override.ViewDir.IsZero() {
		result.ViewDir = override.ViewDir
	}
	if !override.ViewUp.IsZero() {
		result.ViewUp = override.ViewUp
	}
	if !override.ProjNormal.IsZero() {
		result.ProjNormal = override.ProjNormal
	}
	if override.ViewWidth != 0 {
		result.ViewWidth = override.ViewWidth
	}
	if override.ViewHeight != 0 {
		result.ViewHeight = override.ViewHeight
	}
	if override.ProjDistance != 0 {
		result.ProjDistance = override.ProjDistance
	}

	return result
}

// ViewNormal returns the view plane normal, falling back to -ViewDir when
// ProjNormal is zero
func (cfg CameraConfig) ViewNormal() core.Vec3 {
	if cfg.ProjNormal.IsZero() {
		return cfg.ViewDir.Negate()
	}
	return cfg.ProjNormal
}

// Validate reports configurations from which no view plane basis can be
// built: non-positive plane dimensions, a zero normal, or an up vector
// parallel to the normal
func (cfg CameraConfig) Validate() error {
	if cfg.ViewWidth <= 0 || cfg.ViewHeight <= 0 || cfg.ProjDistance <= 0 {
		return fmt.Errorf("view width, height and projection distance must be positive")
	}
	normal := cfg.ViewNormal()
	if normal.LengthSquared() == 0 {
		return fmt.Errorf("camera needs a non-zero projection normal or view direction")
	}
	if cfg.ViewUp.Cross(normal.Normalize()).LengthSquared() < core.Epsilon*core.Epsilon {
		return fmt.Errorf("view up %v must not be parallel to the projection normal %v", cfg.ViewUp, normal)
	}
	return nil
}

// Camera generates primary rays through a rectangular view plane. The
// orthonormal basis is derived on first use and shared by all workers.
type Camera struct {
	config CameraConfig

	basisOnce sync.Once
	u, v, w   core.Vec3
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	return &Camera{config: config}
}

// GetConfig returns the configuration the camera was created with
func (c *Camera) GetConfig() CameraConfig {
	return c.config
}

// ViewPoint returns the eye position
func (c *Camera) ViewPoint() core.Vec3 {
	return c.config.ViewPoint
}

// Basis returns the camera's right (u), up (v) and backward (w) unit vectors
func (c *Camera) Basis() (u, v, w core.Vec3) {
	c.basisOnce.Do(c.initBasis)
	return c.u, c.v, c.w
}

func (c *Camera) initBasis() {
	c.w = c.config.ViewNormal().Normalize()
	c.u = c.config.ViewUp.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u).Normalize()
}

// GetRay generates a ray through view plane coordinates (s, t) where
// 0 <= s,t <= 1 and (0,0) is the lower left corner. The direction is
// scaled so that ray.At(ProjDistance) is the view plane point itself.
func (c *Camera) GetRay(s, t float64) core.Ray {
	u, v, w := c.Basis()
	d := c.config.ProjDistance

	planePoint := w.Multiply(-d).
		Add(u.Multiply(s*c.config.ViewWidth - c.config.ViewWidth/2)).
		Add(v.Multiply(t*c.config.ViewHeight - c.config.ViewHeight/2))

	return core.NewRay(c.config.ViewPoint, planePoint.Multiply(1/d))
}
