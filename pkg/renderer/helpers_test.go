package renderer

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/material"
)

// testScene is a minimal linear-scan scene for renderer tests
type testScene struct {
	camera   *Camera
	surfaces []core.Surface
	lights   []core.Light
	width    int
	height   int
}

func (s *testScene) FindClosest(ray core.Ray) (core.HitRecord, bool) {
	var closest core.HitRecord
	found := false
	for _, surface := range s.surfaces {
		if hit, ok := surface.Hit(ray); ok {
			closest, found = hit, true
			ray.End = hit.T
		}
	}
	return closest, found
}

func (s *testScene) FindAny(ray core.Ray) bool {
	for _, surface := range s.surfaces {
		if _, ok := surface.Hit(ray); ok {
			return true
		}
	}
	return false
}

func (s *testScene) GetCamera() *Camera                { return s.camera }
func (s *testScene) GetLights() []core.Light           { return s.lights }
func (s *testScene) GetImageSize() (width, height int) { return s.width, s.height }

// newSphereScene places a red sphere in front of a default camera and a
// light behind the eye
func newSphereScene(t *testing.T, width, height int) *testScene {
	t.Helper()
	sphere, err := geometry.NewSphere(core.NewVec3(0, 0, -3), 1.5, material.NewLambertian(core.NewVec3(1, 0, 0)))
	if err != nil {
		t.Fatalf("NewSphere failed: %v", err)
	}
	floor, err := geometry.NewBox(core.NewVec3(-5, -3, -8), core.NewVec3(5, -1.5, 0), material.NewPhong(
		core.NewVec3(0.4, 0.4, 0.4), core.NewVec3(0.5, 0.5, 0.5), 10))
	if err != nil {
		t.Fatalf("NewBox failed: %v", err)
	}

	config := DefaultCameraConfig()
	config.ViewWidth = 2
	config.ViewHeight = 2
	return &testScene{
		camera:   NewCamera(config),
		surfaces: []core.Surface{sphere, floor},
		lights: []core.Light{
			lights.NewPointLight(core.NewVec3(2, 3, 1), core.NewVec3(1, 1, 1)),
			lights.NewPointLight(core.NewVec3(-3, 1, 0), core.NewVec3(0.3, 0.3, 0.6)),
		},
		width:  width,
		height: height,
	}
}

// panicSurface panics whenever a ray passes close to the z axis
type panicSurface struct{}

func (panicSurface) Hit(ray core.Ray) (core.HitRecord, bool) {
	d := ray.Direction.Normalize()
	if math.Abs(d.X) < 0.3 && math.Abs(d.Y) < 0.3 {
		panic("broken surface")
	}
	return core.HitRecord{}, false
}

func (panicSurface) GetShader() core.Shader { return nil }

// testLogger records log lines and is safe for concurrent use
type testLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *testLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func vecNear(a, b core.Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}
