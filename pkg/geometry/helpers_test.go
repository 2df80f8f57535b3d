package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

const tolerance = 1e-9

func vecNear(a, b core.Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

// hitCase describes an expected outcome of shooting one ray at a surface
type hitCase struct {
	name         string
	ray          core.Ray
	expectHit    bool
	expectedT    float64
	expectedLoc  core.Vec3
	expectedNorm core.Vec3
}

func runHitCases(t *testing.T, surface core.Surface, cases []hitCase) {
	t.Helper()
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := surface.Hit(tt.ray)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v (record %+v)", tt.expectHit, isHit, hit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if !vecNear(hit.Location, tt.expectedLoc, tolerance) {
				t.Errorf("Expected location %v, got %v", tt.expectedLoc, hit.Location)
			}
			if !vecNear(hit.Normal, tt.expectedNorm, 1e-6) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNorm, hit.Normal)
			}
			if math.Abs(hit.Normal.Length()-1) > 1e-9 {
				t.Errorf("Normal should be unit length, got %f", hit.Normal.Length())
			}
			if hit.Surface != surface {
				t.Errorf("Hit record should reference the hit surface")
			}
		})
	}
}
