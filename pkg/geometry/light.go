package geometry

import "github.com/go-raybench/raybench/pkg/core"

// Light is a point light. Intensity is encoded in the color magnitude,
// which may exceed 1.
type Light struct {
	Position core.Vec3
	Color    core.Vec3
}

// NewLight creates a new point light
func NewLight(position, color core.Vec3) Light {
	return Light{Position: position, Color: color}
}
