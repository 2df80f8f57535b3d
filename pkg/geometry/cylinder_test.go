package geometry

import (
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

func TestCylinderHit(t *testing.T) {
	// Unit radius, spans z in [-1, 1]
	cylinder, err := NewCylinder(core.NewVec3(0, 0, 0), 1, 2, nil)
	if err != nil {
		t.Fatalf("NewCylinder failed: %v", err)
	}

	runHitCases(t, cylinder, []hitCase{
		{
			name:         "lateral surface from +x",
			ray:          core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0)),
			expectHit:    true,
			expectedT:    4,
			expectedLoc:  core.NewVec3(1, 0, 0),
			expectedNorm: core.NewVec3(1, 0, 0),
		},
		{
			name:         "lateral surface from -y",
			ray:          core.NewRay(core.NewVec3(0, -3, 0.5), core.NewVec3(0, 1, 0)),
			expectHit:    true,
			expectedT:    2,
			expectedLoc:  core.NewVec3(0, -1, 0.5),
			expectedNorm: core.NewVec3(0, -1, 0),
		},
		{
			name:         "top cap along axis",
			ray:          core.NewRay(core.NewVec3(0.5, 0, 5), core.NewVec3(0, 0, -1)),
			expectHit:    true,
			expectedT:    4,
			expectedLoc:  core.NewVec3(0.5, 0, 1),
			expectedNorm: core.NewVec3(0, 0, 1),
		},
		{
			name:         "bottom cap along axis",
			ray:          core.NewRay(core.NewVec3(0, 0.5, -3), core.NewVec3(0, 0, 1)),
			expectHit:    true,
			expectedT:    2,
			expectedLoc:  core.NewVec3(0, 0.5, -1),
			expectedNorm: core.NewVec3(0, 0, -1),
		},
		{
			name:         "oblique ray enters through cap before lateral",
			ray:          core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0.1, 0, -1)),
			expectHit:    true,
			expectedT:    4,
			expectedLoc:  core.NewVec3(0.4, 0, 1),
			expectedNorm: core.NewVec3(0, 0, 1),
		},
		{
			name:      "axis-parallel ray outside radius",
			ray:       core.NewRay(core.NewVec3(2, 0, 5), core.NewVec3(0, 0, -1)),
			expectHit: false,
		},
		{
			name:      "horizontal ray above the top",
			ray:       core.NewRay(core.NewVec3(5, 0, 3), core.NewVec3(-1, 0, 0)),
			expectHit: false,
		},
		{
			name:         "origin inside hits lateral exit",
			ray:          core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)),
			expectHit:    true,
			expectedT:    1,
			expectedLoc:  core.NewVec3(1, 0, 0),
			expectedNorm: core.NewVec3(1, 0, 0),
		},
		{
			name:      "cylinder behind ray",
			ray:       core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(1, 0, 0)),
			expectHit: false,
		},
		{
			name:      "interval ends before cap",
			ray:       core.NewSegment(core.NewVec3(0.5, 0, 5), core.NewVec3(0, 0, -1), 0, 3),
			expectHit: false,
		},
		{
			name:         "interval start skips top cap",
			ray:          core.NewSegment(core.NewVec3(0.5, 0, 5), core.NewVec3(0, 0, -1), 4.5, 100),
			expectHit:    true,
			expectedT:    6,
			expectedLoc:  core.NewVec3(0.5, 0, -1),
			expectedNorm: core.NewVec3(0, 0, -1),
		},
	})
}

func TestCylinderHit_OffsetCenter(t *testing.T) {
	cylinder, _ := NewCylinder(core.NewVec3(1, 2, 3), 0.5, 2, nil)

	runHitCases(t, cylinder, []hitCase{
		{
			name:         "top cap at z=4",
			ray:          core.NewRay(core.NewVec3(1, 2, 10), core.NewVec3(0, 0, -1)),
			expectHit:    true,
			expectedT:    6,
			expectedLoc:  core.NewVec3(1, 2, 4),
			expectedNorm: core.NewVec3(0, 0, 1),
		},
		{
			name:         "lateral at x=1.5",
			ray:          core.NewRay(core.NewVec3(4, 2, 3), core.NewVec3(-1, 0, 0)),
			expectHit:    true,
			expectedT:    2.5,
			expectedLoc:  core.NewVec3(1.5, 2, 3),
			expectedNorm: core.NewVec3(1, 0, 0),
		},
	})
}

func TestNewCylinder_Validation(t *testing.T) {
	tests := []struct {
		name    string
		radius  float64
		height  float64
		wantErr bool
	}{
		{"valid", 1, 2, false},
		{"zero radius", 0, 2, true},
		{"negative height", 1, -2, true},
		{"zero height", 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCylinder(core.NewVec3(0, 0, 0), tt.radius, tt.height, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewCylinder() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
