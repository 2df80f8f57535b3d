package scene

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS, then cube
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// NewSphereGridScene creates a scene with a 10x10 grid of spheres
func NewSphereGridScene(cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	// 40 degree vertical field of view at 16:9
	viewHeight := 2 * math.Tan(20*math.Pi/180)
	defaults := renderer.CameraConfig{
		ViewPoint:    core.NewVec3(4.5, 6, 18),
		ViewDir:      core.NewVec3(0, -5.2, -13.5), // Look at center of grid, slightly lower
		ViewUp:       core.NewVec3(0, 1, 0),
		ViewWidth:    viewHeight * 16.0 / 9.0,
		ViewHeight:   viewHeight,
		ProjDistance: 1,
	}
	s := newSceneWithCamera(defaults, 320, 180, cameraOverrides)

	adder := &surfaceAdder{scene: s}
	adder.add(geometry.NewBox(
		core.NewVec3(-1, -0.2, -1),
		core.NewVec3(10, 0, 10),
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
	))

	gridSize := 10
	sphereRadius := 0.35
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			hue := float64(i*gridSize+j) * 360.0 / float64(gridSize*gridSize)
			shader := material.NewPhong(oklchToRGB(0.7, 0.15, hue), core.NewVec3(0.6, 0.6, 0.6), 30)
			center := core.NewVec3(float64(i), sphereRadius, float64(j))
			adder.add(geometry.NewSphere(center, sphereRadius, shader))
		}
	}
	if adder.err != nil {
		return nil, adder.err
	}

	s.AddLight(
		lights.NewPointLight(core.NewVec3(20, 25, 20), core.NewVec3(1, 1, 1)),
		lights.NewPointLight(core.NewVec3(-10, 15, 5), core.NewVec3(0.4, 0.4, 0.5)),
	)

	return s, nil
}
