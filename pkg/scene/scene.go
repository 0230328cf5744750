// Package scene holds the immutable world rendered by the benchmark.
// Scenes are built once before rendering and never mutated afterwards, so
// they can be shared by concurrent render workers without locking.
package scene

import (
	"github.com/go-raybench/raybench/pkg/core"
	"github.com/go-raybench/raybench/pkg/geometry"
)

// Scene is an ordered collection of spheres and point lights
type Scene struct {
	Spheres []geometry.Sphere
	Lights  []geometry.Light
}

// NewScene creates a scene from explicit sphere and light lists
func NewScene(spheres []geometry.Sphere, lights []geometry.Light) *Scene {
	return &Scene{Spheres: spheres, Lights: lights}
}

// NewBenchmarkScene creates the fixed reference scene: four spheres with
// varying reflectivity and transparency floating above a huge ground
// sphere, lit by a single point light. The benchmark always renders this
// scene so results are comparable across runs and machines.
func NewBenchmarkScene() *Scene {
	s := &Scene{
		Spheres: make([]geometry.Sphere, 0, 5),
		Lights:  make([]geometry.Light, 0, 1),
	}

	// Ground is a sphere large enough to look flat from the camera
	s.Spheres = append(s.Spheres,
		geometry.NewSphere(core.NewVec3(0, -10004, -20), 10000, core.NewVec3(0.20, 0.20, 0.20)),
		geometry.NewSurfaceSphere(core.NewVec3(0, 0, -20), 4, core.NewVec3(1.00, 0.32, 0.36), 1, 0.5),
		geometry.NewSurfaceSphere(core.NewVec3(5, -1, -15), 2, core.NewVec3(0.90, 0.76, 0.46), 1, 0),
		geometry.NewSurfaceSphere(core.NewVec3(5, 0, -25), 3, core.NewVec3(0.65, 0.77, 0.97), 1, 0),
		geometry.NewSurfaceSphere(core.NewVec3(-5.5, 0, -15), 3, core.NewVec3(0.90, 0.90, 0.90), 1, 0),
	)

	s.Lights = append(s.Lights,
		geometry.NewLight(core.NewVec3(0, 20, -30), core.NewVec3(3, 3, 3)),
	)

	return s
}

// NewMirrorBoxScene creates a pathological scene of fully reflective
// spheres surrounding the camera, so every traced ray keeps bouncing until
// the recursion limit. Used to exercise the depth bound.
func NewMirrorBoxScene() *Scene {
	mirror := core.NewVec3(0.95, 0.95, 0.95)

	s := &Scene{
		Spheres: make([]geometry.Sphere, 0, 6),
		Lights:  make([]geometry.Light, 0, 1),
	}

	for _, center := range []core.Vec3{
		core.NewVec3(0, 0, -12),
		core.NewVec3(0, 0, 12),
		core.NewVec3(-12, 0, 0),
		core.NewVec3(12, 0, 0),
		core.NewVec3(0, -12, 0),
		core.NewVec3(0, 12, 0),
	} {
		s.Spheres = append(s.Spheres, geometry.NewSurfaceSphere(center, 8, mirror, 1, 0))
	}

	s.Lights = append(s.Lights,
		geometry.NewLight(core.NewVec3(0, 3, 0), core.NewVec3(2, 2, 2)),
	)

	return s
}
