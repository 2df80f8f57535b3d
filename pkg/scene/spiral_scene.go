package scene

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// NewSpiralScene creates fifty boxes that grow as they wind outward and
// downward around the y axis
func NewSpiralScene(cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	s := newSceneWithCamera(defaultCameraConfig(), 400, 225, cameraOverrides)

	blue := material.NewPhong(core.NewVec3(0.2, 0.3, 0.8), core.NewVec3(1, 1, 0), 20)
	if err := s.AddShader("blue", blue); err != nil {
		return nil, err
	}

	adder := &surfaceAdder{scene: s}
	for count := 0; count < 50; count++ {
		i := float64(count) / 25.0
		minPt := core.NewVec3(i*math.Cos(25*i), 1-math.Sqrt(i), i*math.Sin(25*i))
		size := i / 10.0
		adder.add(geometry.NewBox(minPt, minPt.Add(core.NewVec3(size, size, size)), blue))
	}
	if adder.err != nil {
		return nil, adder.err
	}

	s.AddLight(
		lights.NewPointLight(core.NewVec3(4, 5, -3), core.NewVec3(1, 1, 1)),
		lights.NewPointLight(core.NewVec3(-5, -5, 6), core.NewVec3(1, 1, 1)),
	)

	return s, nil
}
