package material

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// DefaultShader is used for surfaces that do not name a material
var DefaultShader core.Shader = NewLambertian(core.NewVec3(1, 1, 1))

// ShaderOrDefault returns s, or DefaultShader when s is nil
func ShaderOrDefault(s core.Shader) core.Shader {
	if s == nil {
		return DefaultShader
	}
	return s
}
