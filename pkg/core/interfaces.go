package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// HitRecord describes a ray-surface intersection. Surfaces return it by
// value together with an ok flag; on a miss the zero value is returned and
// must be ignored.
type HitRecord struct {
	Location Vec3    // Point of intersection
	Normal   Vec3    // Unit surface normal at the intersection
	Surface  Surface // Surface that was hit
	T        float64 // Parameter t along the ray
}

// Surface is anything a ray can intersect
type Surface interface {
	// Hit returns the closest intersection with t in [ray.Start, ray.End]
	Hit(ray Ray) (HitRecord, bool)
	// GetShader returns the material used to shade this surface
	GetShader() Shader
}

// Shader computes the color leaving a hit point towards the eye
type Shader interface {
	Shade(hit HitRecord, scene Intersector, lights []Light, toEye Vec3) Vec3
}

// Light is a point light source
type Light interface {
	Position() Vec3
	Intensity() Vec3
}

// Intersector answers ray queries against a whole scene. Implementations
// must be safe for concurrent use by many goroutines.
type Intersector interface {
	// FindClosest returns the nearest hit along the ray
	FindClosest(ray Ray) (HitRecord, bool)
	// FindAny reports whether anything lies along the ray
	FindAny(ray Ray) bool
}
