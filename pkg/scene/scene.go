package scene

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// Scene contains all the elements needed for rendering. It is read-only
// once rendering starts.
type Scene struct {
	Camera   *renderer.Camera
	Surfaces []core.Surface         // Objects in the scene, scanned in order
	Lights   []core.Light           // Lights in the scene
	Shaders  map[string]core.Shader // Named shaders
	Width    int                    // Image width
	Height   int                    // Image height
}

// NewScene creates an empty scene
func NewScene(camera *renderer.Camera, width, height int) *Scene {
	return &Scene{
		Camera:   camera,
		Surfaces: make([]core.Surface, 0),
		Lights:   make([]core.Light, 0),
		Shaders:  make(map[string]core.Shader),
		Width:    width,
		Height:   height,
	}
}

// AddSurface appends surfaces to the scan order
func (s *Scene) AddSurface(surfaces ...core.Surface) {
	s.Surfaces = append(s.Surfaces, surfaces...)
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(lights ...core.Light) {
	s.Lights = append(s.Lights, lights...)
}

// AddShader registers a named shader. Names must be unique.
func (s *Scene) AddShader(name string, shader core.Shader) error {
	if s.Shaders == nil {
		s.Shaders = make(map[string]core.Shader)
	}
	if _, exists := s.Shaders[name]; exists {
		return fmt.Errorf("duplicate shader name %q", name)
	}
	s.Shaders[name] = shader
	return nil
}

// FindClosest returns the nearest hit inside the ray's interval. Each hit
// narrows the end of this call's copy of the ray, so later surfaces must
// be strictly closer to replace an earlier one.
func (s *Scene) FindClosest(ray core.Ray) (core.HitRecord, bool) {
	var closest core.HitRecord
	hitAnything := false

	for _, surface := range s.Surfaces {
		if hit, isHit := surface.Hit(ray); isHit && (!hitAnything || hit.T < closest.T) {
			hitAnything = true
			closest = hit
			ray.End = hit.T
		}
	}

	return closest, hitAnything
}

// FindAny reports whether any surface is hit inside the ray's interval
func (s *Scene) FindAny(ray core.Ray) bool {
	for _, surface := range s.Surfaces {
		if _, isHit := surface.Hit(ray); isHit {
			return true
		}
	}
	return false
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetLights implements renderer.Scene
func (s *Scene) GetLights() []core.Light {
	return s.Lights
}

// GetImageSize implements renderer.Scene
func (s *Scene) GetImageSize() (int, int) {
	return s.Width, s.Height
}

// GetSurfaceCount returns the number of surfaces in the scene
func (s *Scene) GetSurfaceCount() int {
	return len(s.Surfaces)
}
