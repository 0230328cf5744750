package renderer

import (
	"math"

	"github.com/go-raybench/raybench/pkg/core"
	"github.com/go-raybench/raybench/pkg/geometry"
	"github.com/go-raybench/raybench/pkg/scene"
)

// refractiveIndex is the nominal index of refraction for transparent
// spheres (glass). Rays exiting a sphere use the inverse.
const refractiveIndex = 1.5

// Raytracer resolves rays against a scene using recursive Whitted shading:
// direct lighting with hard shadows, plus Fresnel-weighted reflection and
// refraction. It holds no mutable state, so a single instance can be shared
// by concurrent render workers.
type Raytracer struct {
	scene  *scene.Scene
	config RenderConfig
}

// NewRaytracer creates a new raytracer for the given scene
func NewRaytracer(s *scene.Scene, config RenderConfig) *Raytracer {
	return &Raytracer{scene: s, config: config}
}

// hitNearest finds the closest sphere intersected by the ray. Returns nil
// if the ray escapes the scene.
func (rt *Raytracer) hitNearest(ray core.Ray) (*geometry.Sphere, float64) {
	var nearest *geometry.Sphere
	nearestDist := math.Inf(1)

	for i := range rt.scene.Spheres {
		s := &rt.scene.Spheres[i]
		if dist, ok := s.Intersect(ray); ok && dist < nearestDist {
			nearest = s
			nearestDist = dist
		}
	}

	return nearest, nearestDist
}

// occluded reports whether any sphere blocks the shadow ray
func (rt *Raytracer) occluded(shadowRay core.Ray) bool {
	for i := range rt.scene.Spheres {
		if rt.scene.Spheres[i].Intersects(shadowRay) {
			return true
		}
	}
	return false
}

// Trace returns the shaded color for a ray. The direction must be unit
// length. Depth counts recursion levels starting at 0 for primary rays;
// reflection and refraction stop recursing at config.MaxDepth, so the call
// tree is bounded regardless of scene configuration.
func (rt *Raytracer) Trace(ray core.Ray, depth int) core.Vec3 {
	sphere, dist := rt.hitNearest(ray)
	if sphere == nil {
		return core.Vec3{} // Background is black
	}

	point := ray.At(dist)
	normal := sphere.Normal(point)

	// A ray leaving the sphere hits the back of the surface; flip the
	// normal so shading and refraction see the side the ray is on.
	inside := false
	if normal.Dot(ray.Direction) > 0 {
		normal = normal.Negate()
		inside = true
	}

	color := core.Vec3{}

	// Direct illumination with hard shadows. Reflective surfaces show
	// proportionally less diffuse color.
	for _, light := range rt.scene.Lights {
		lightDir := light.Position.Subtract(point).Normalize()
		shadowRay := core.NewRay(point.Add(normal.Multiply(rt.config.SurfaceBias)), lightDir)
		if rt.occluded(shadowRay) {
			continue
		}

		diffuse := math.Max(0, normal.Dot(lightDir)) * (1 - sphere.Reflectivity)
		color = color.Add(light.Color.Multiply(diffuse).MultiplyVec(sphere.Color))
	}

	// Schlick-style blend between base reflectivity and grazing-angle
	// reflectivity
	facing := math.Max(0, -ray.Direction.Dot(normal))
	fresnel := sphere.Reflectivity + (1-sphere.Reflectivity)*math.Pow(1-facing, 5)

	if depth < rt.config.MaxDepth && sphere.Reflectivity > 0 {
		reflectDir := ray.Direction.Subtract(normal.Multiply(2 * ray.Direction.Dot(normal)))
		reflectRay := core.NewRay(point.Add(normal.Multiply(rt.config.SurfaceBias)), reflectDir)
		color = color.Add(rt.Trace(reflectRay, depth+1).Multiply(fresnel))
	}

	if depth < rt.config.MaxDepth && sphere.Transparency > 0 {
		ior := refractiveIndex
		if inside {
			ior = 1 / refractiveIndex
		}
		eta := 1 / ior

		cosI := -ray.Direction.Dot(normal)
		sinT2 := (1 - cosI*cosI) * eta * eta

		// A sine above 1 means total internal reflection: no
		// transmitted ray exists.
		if sinT2 < 1 {
			refractDir := ray.Direction.Add(normal.Multiply(cosI)).
				Multiply(eta).
				Subtract(normal.Multiply(math.Sqrt(1 - sinT2)))
			// Transmission rays get a larger bias to clear the
			// surface on the far side.
			refractRay := core.NewRay(point.Subtract(normal.Multiply(rt.config.TransmissionBias)), refractDir)
			color = color.Add(rt.Trace(refractRay, depth+1).Multiply((1 - fresnel) * sphere.Transparency))
		}
	}

	return color
}
