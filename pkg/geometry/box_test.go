package geometry

import (
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

func TestBoxHit(t *testing.T) {
	box, err := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), nil)
	if err != nil {
		t.Fatalf("NewBox failed: %v", err)
	}

	runHitCases(t, box, []hitCase{
		{
			// 0 * Inf is NaN, so a ray lying in a face plane grazes past
			name:      "in face plane",
			ray:       core.NewRay(core.NewVec3(2, 1, 0), core.NewVec3(-1, 0, 0)),
			expectHit: false,
		},
		{
			name:         "head on from +x",
			ray:          core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(-1, 0, 0)),
			expectHit:    true,
			expectedT:    1,
			expectedLoc:  core.NewVec3(1, 0, 0),
			expectedNorm: core.NewVec3(1, 0, 0),
		},
		{
			name:         "head on from -x",
			ray:          core.NewRay(core.NewVec3(-3, 0.5, 0.5), core.NewVec3(1, 0, 0)),
			expectHit:    true,
			expectedT:    2,
			expectedLoc:  core.NewVec3(-1, 0.5, 0.5),
			expectedNorm: core.NewVec3(-1, 0, 0),
		},
		{
			name:         "top face",
			ray:          core.NewRay(core.NewVec3(0.5, 5, 0.25), core.NewVec3(0, -1, 0)),
			expectHit:    true,
			expectedT:    4,
			expectedLoc:  core.NewVec3(0.5, 1, 0.25),
			expectedNorm: core.NewVec3(0, 1, 0),
		},
		{
			name:         "bottom z face",
			ray:          core.NewRay(core.NewVec3(0, 0, -4), core.NewVec3(0, 0, 2)),
			expectHit:    true,
			expectedT:    1.5,
			expectedLoc:  core.NewVec3(0, 0, -1),
			expectedNorm: core.NewVec3(0, 0, -1),
		},
		{
			name:      "parallel ray outside slab",
			ray:       core.NewRay(core.NewVec3(2, 2, 0), core.NewVec3(-1, 0, 0)),
			expectHit: false,
		},
		{
			name:      "box behind ray",
			ray:       core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(1, 0, 0)),
			expectHit: false,
		},
		{
			name:         "origin inside hits exit face",
			ray:          core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),
			expectHit:    true,
			expectedT:    1,
			expectedLoc:  core.NewVec3(0, 1, 0),
			expectedNorm: core.NewVec3(0, 1, 0),
		},
		{
			name:      "interval ends before box",
			ray:       core.NewSegment(core.NewVec3(2, 0, 0), core.NewVec3(-1, 0, 0), 0, 0.5),
			expectHit: false,
		},
		{
			name:         "diagonal",
			ray:          core.NewRay(core.NewVec3(3, 3, 0), core.NewVec3(-1, -1, 0)),
			expectHit:    true,
			expectedT:    2,
			expectedLoc:  core.NewVec3(1, 1, 0),
			expectedNorm: core.NewVec3(1, 0, 0), // edge: x face wins the tie
		},
	})
}

func TestBoxHit_NonCubic(t *testing.T) {
	box, _ := NewBox(core.NewVec3(0, 2, -1), core.NewVec3(4, 3, 1), nil)

	runHitCases(t, box, []hitCase{
		{
			name:         "from below",
			ray:          core.NewRay(core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)),
			expectHit:    true,
			expectedT:    2,
			expectedLoc:  core.NewVec3(1, 2, 0),
			expectedNorm: core.NewVec3(0, -1, 0),
		},
		{
			name:      "passes beside",
			ray:       core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(0, 1, 0)),
			expectHit: false,
		},
	})
}

func TestNewBox_Validation(t *testing.T) {
	if _, err := NewBox(core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 1), nil); err == nil {
		t.Error("Expected error for inverted x extents")
	}
	if _, err := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 1), nil); err != nil {
		t.Errorf("A flat box is allowed, got %v", err)
	}
}
