package renderer

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
)

// DisplayGamma is the gamma applied to shaded colors before display
const DisplayGamma = 2.2

// Scene interface to avoid circular imports
type Scene interface {
	core.Intersector
	GetCamera() *Camera
	GetLights() []core.Light
	GetImageSize() (width, height int)
}

// Raytracer evaluates the color seen along rays through a scene
type Raytracer struct {
	scene  Scene
	width  int
	height int
	gamma  float64
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		gamma:  DisplayGamma,
	}
}

// SetGamma overrides the display gamma used by RenderPixel
func (rt *Raytracer) SetGamma(gamma float64) {
	if gamma > 0 {
		rt.gamma = gamma
	}
}

// ShadeRay returns the color seen along the ray: the shaded color of the
// closest surface, or black when nothing is hit
func (rt *Raytracer) ShadeRay(ray core.Ray) core.Vec3 {
	hit, isHit := rt.scene.FindClosest(ray)
	if !isHit {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	shader := material.ShaderOrDefault(hit.Surface.GetShader())
	toEye := rt.scene.GetCamera().ViewPoint().Subtract(hit.Location)
	return shader.Shade(hit, rt.scene, rt.scene.GetLights(), toEye)
}

// RenderPixel shades the ray through the center of pixel (x, y), where
// y=0 is the bottom row, and returns the gamma corrected, clamped color
func (rt *Raytracer) RenderPixel(x, y int) core.Vec3 {
	s := (float64(x) + 0.5) / float64(rt.width)
	t := (float64(y) + 0.5) / float64(rt.height)

	ray := rt.scene.GetCamera().GetRay(s, t)
	color := rt.ShadeRay(ray)

	return color.GammaCorrect(rt.gamma).Clamp(0.0, 1.0)
}
