package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// defaultCameraConfig frames the origin from above and to the side, y up
func defaultCameraConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		ViewPoint:    core.NewVec3(10, 4.8, 6),
		ViewDir:      core.NewVec3(-5, -2.4, -3),
		ViewUp:       core.NewVec3(0, 1, 0),
		ProjNormal:   core.NewVec3(5, 2.4, 3),
		ViewWidth:    4,
		ViewHeight:   2.25,
		ProjDistance: 6,
	}
}

// NewDefaultScene creates a default scene with spheres, a box floor and two lights
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	s := newSceneWithCamera(defaultCameraConfig(), 400, 225, cameraOverrides)

	// Create materials
	phongBlue := material.NewPhong(core.NewVec3(0.2, 0.3, 0.8), core.NewVec3(1, 1, 0), 20)
	lambertianRed := material.NewLambertian(core.NewVec3(0.8, 0.2, 0.2))
	lambertianGreen := material.NewLambertian(core.NewVec3(0.3, 0.7, 0.3))
	lambertianGray := material.NewLambertian(core.NewVec3(0.6, 0.6, 0.6))
	for name, shader := range map[string]core.Shader{
		"blue":  phongBlue,
		"red":   lambertianRed,
		"green": lambertianGreen,
		"floor": lambertianGray,
	} {
		if err := s.AddShader(name, shader); err != nil {
			return nil, err
		}
	}

	adder := &surfaceAdder{scene: s}
	adder.add(geometry.NewBox(core.NewVec3(-4, -1.5, -4), core.NewVec3(4, -1, 4), lambertianGray))
	adder.add(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, phongBlue))
	adder.add(geometry.NewSphere(core.NewVec3(1.5, -0.4, -2), 0.6, lambertianRed))
	adder.add(geometry.NewSphere(core.NewVec3(-1, -0.5, 2), 0.5, lambertianGreen))
	if adder.err != nil {
		return nil, adder.err
	}

	s.AddLight(
		lights.NewPointLight(core.NewVec3(4, 5, -3), core.NewVec3(1, 1, 1)),
		lights.NewPointLight(core.NewVec3(-5, 5, 6), core.NewVec3(0.7, 0.7, 0.3)),
	)

	return s, nil
}
