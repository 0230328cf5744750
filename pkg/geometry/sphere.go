package geometry

import (
	"math"

	"github.com/go-raybench/raybench/pkg/core"
)

// Sphere is the only primitive in the benchmark scene. Surface behavior is
// carried directly on the sphere: Reflectivity and Transparency are both in
// [0,1] and default to zero (plain diffuse surface).
type Sphere struct {
	Center       core.Vec3
	Radius       float64
	Color        core.Vec3
	Reflectivity float64
	Transparency float64
}

// NewSphere creates an opaque diffuse sphere
func NewSphere(center core.Vec3, radius float64, color core.Vec3) Sphere {
	return Sphere{Center: center, Radius: radius, Color: color}
}

// NewSurfaceSphere creates a sphere with explicit reflectivity and transparency
func NewSurfaceSphere(center core.Vec3, radius float64, color core.Vec3, reflectivity, transparency float64) Sphere {
	return Sphere{
		Center:       center,
		Radius:       radius,
		Color:        color,
		Reflectivity: reflectivity,
		Transparency: transparency,
	}
}

// Normal returns the outward surface normal at a point on the sphere.
// The point must lie on the surface; callers only invoke this after a
// confirmed intersection.
func (s *Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// Intersects reports whether the ray hits the sphere at all. This is the
// cheap existence test used for shadow rays: it rejects without computing
// the hit distance.
func (s *Sphere) Intersects(ray core.Ray) bool {
	l := s.Center.Subtract(ray.Origin)

	// Sphere center projects behind the ray origin
	a := l.Dot(ray.Direction)
	if a < 0 {
		return false
	}

	// Squared perpendicular distance from center to the ray line
	b2 := l.Dot(l) - a*a
	return b2 <= s.Radius*s.Radius
}

// Intersect returns the distance along the ray to the hit point, using the
// same rejection tests as Intersects. When the near root is behind the
// origin (ray starts inside the sphere) the far root is reported instead,
// which makes refraction rays that originate inside a transparent sphere
// exit through the correct surface.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	l := s.Center.Subtract(ray.Origin)

	a := l.Dot(ray.Direction)
	if a < 0 {
		return 0, false
	}

	b2 := l.Dot(l) - a*a
	r2 := s.Radius * s.Radius
	if b2 > r2 {
		return 0, false
	}

	c := math.Sqrt(r2 - b2)
	near := a - c
	far := a + c
	if near < 0 {
		return far, true
	}
	return near, true
}
