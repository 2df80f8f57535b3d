package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// BuiltinGroup is the group name reported for built-in scenes
const BuiltinGroup = "Built-in Scenes"

// Constructor builds a built-in scene, optionally overriding its camera
type Constructor func(cameraOverrides ...renderer.CameraConfig) (*Scene, error)

type builtinScene struct {
	name        string
	description string
	create      Constructor
}

var builtinScenes = map[string]builtinScene{
	"default": {
		name:        "Default Scene",
		description: "Three spheres on a box floor lit by two point lights",
		create:      NewDefaultScene,
	},
	"shapes": {
		name:        "Shapes",
		description: "Sphere, box, cylinder and cone with Phong materials",
		create:      NewShapesScene,
	},
	"spheregrid": {
		name:        "Sphere Grid",
		description: "10x10 grid of rainbow-colored Phong spheres",
		create:      NewSphereGridScene,
	},
	"spiral": {
		name:        "Box Spiral",
		description: "Fifty boxes winding outward along a spiral",
		create:      NewSpiralScene,
	},
}

// BuiltinSceneNames returns the registered scene identifiers in sorted order
func BuiltinSceneNames() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListBuiltinScenes returns metadata for every built-in scene
func ListBuiltinScenes() []SceneInfo {
	var scenes []SceneInfo
	for _, id := range BuiltinSceneNames() {
		b := builtinScenes[id]
		scenes = append(scenes, SceneInfo{
			ID:          id,
			Name:        b.name,
			Description: b.description,
			Group:       BuiltinGroup,
			Type:        "builtin",
		})
	}
	return scenes
}

// NewBuiltinScene creates the built-in scene registered under name
func NewBuiltinScene(name string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	b, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, BuiltinSceneNames())
	}
	s, err := b.create(cameraOverrides...)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %q: %w", name, err)
	}
	return s, nil
}

// newSceneWithCamera applies camera overrides to a scene's default camera
func newSceneWithCamera(defaults renderer.CameraConfig, width, height int, cameraOverrides []renderer.CameraConfig) *Scene {
	cameraConfig := defaults
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaults, cameraOverrides[0])
	}
	return NewScene(renderer.NewCamera(cameraConfig), width, height)
}

// surfaceAdder collects surfaces from constructors that may fail and
// remembers the first error
type surfaceAdder struct {
	scene *Scene
	err   error
}

func (a *surfaceAdder) add(surface core.Surface, err error) {
	if a.err != nil {
		return
	}
	if err != nil {
		a.err = err
		return
	}
	a.scene.AddSurface(surface)
}
