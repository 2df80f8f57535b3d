package geometry

import (
	"cmp"
	"math"
	"slices"

	"github.com/df07/go-raycaster/pkg/core"
)

// surfacePart identifies which piece of a composite surface a candidate
// intersection belongs to
type surfacePart int

const (
	lateralPart surfacePart = iota
	topCapPart
	bottomCapPart
)

// candidate is a parametric intersection distance that still has to pass
// a shape-specific containment test
type candidate struct {
	t    float64
	part surfacePart
}

// appendQuadraticRoots appends the real roots of at² + bt + c = 0. A zero
// discriminant yields the single tangent root once.
func appendQuadraticRoots(candidates []candidate, a, b, c float64, part surfacePart) []candidate {
	if a == 0 {
		// Ray runs parallel to the surface's generating lines
		return candidates
	}
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return candidates
	}
	if discriminant == 0 {
		return append(candidates, candidate{t: -b / (2 * a), part: part})
	}
	sqrtD := math.Sqrt(discriminant)
	return append(candidates,
		candidate{t: (-b - sqrtD) / (2 * a), part: part},
		candidate{t: (-b + sqrtD) / (2 * a), part: part},
	)
}

// admissible drops candidates outside the ray interval (including NaN and
// the infinities produced by planes parallel to the ray) and sorts the rest
// by increasing t. Equal distances keep their insertion order.
func admissible(ray core.Ray, candidates []candidate) []candidate {
	kept := candidates[:0]
	for _, c := range candidates {
		if ray.Contains(c.t) {
			kept = append(kept, c)
		}
	}
	slices.SortStableFunc(kept, func(a, b candidate) int {
		return cmp.Compare(a.t, b.t)
	})
	return kept
}

// radialDistanceSquared returns the squared distance of p from the vertical
// axis through center
func radialDistanceSquared(p, center core.Vec3) float64 {
	dx := p.X - center.X
	dy := p.Y - center.Y
	return dx*dx + dy*dy
}
