package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// NewShapesScene creates a z-up scene with one of each primitive standing on
// a box floor. Cylinders and cones are aligned with z, so the camera uses
// z as its up direction.
func NewShapesScene(cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	defaults := renderer.CameraConfig{
		ViewPoint:    core.NewVec3(10, 4.8, 4),
		ViewDir:      core.NewVec3(-5, -2.4, -2),
		ViewUp:       core.NewVec3(0, 0, 1),
		ProjNormal:   core.NewVec3(5, 2.4, 2),
		ViewWidth:    8,
		ViewHeight:   6,
		ProjDistance: 4.5,
	}
	s := newSceneWithCamera(defaults, 400, 300, cameraOverrides)

	floor := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	red := material.NewPhong(core.NewVec3(0.8, 0.2, 0.2), core.NewVec3(1, 1, 1), 40)
	blue := material.NewPhong(core.NewVec3(0.2, 0.3, 0.8), core.NewVec3(1, 1, 0), 10)
	yellow := material.NewLambertian(core.NewVec3(0.8, 0.7, 0.2))
	green := material.NewLambertian(core.NewVec3(0.2, 0.7, 0.3))

	adder := &surfaceAdder{scene: s}
	adder.add(geometry.NewBox(core.NewVec3(-5, -5, -0.2), core.NewVec3(5, 5, 0), floor))
	adder.add(geometry.NewSphere(core.NewVec3(-2, 0, 1), 1, red))
	adder.add(geometry.NewCylinder(core.NewVec3(0, -2.5, 1), 0.8, 2, blue))
	adder.add(geometry.NewCone(core.NewVec3(0, 2.5, 1), 1, 2, 2, yellow))
	adder.add(geometry.NewBox(core.NewVec3(2, -0.5, 0), core.NewVec3(3, 0.5, 1), green))
	if adder.err != nil {
		return nil, adder.err
	}

	s.AddLight(
		lights.NewPointLight(core.NewVec3(4, 5, 8), core.NewVec3(1, 1, 1)),
		lights.NewPointLight(core.NewVec3(-5, -5, 6), core.NewVec3(0.7, 0.7, 0.3)),
	)

	return s, nil
}
