package renderer

// RenderConfig contains the render parameters. Collecting them in one
// immutable value (instead of package constants) lets tests render at
// alternate resolutions and depths.
type RenderConfig struct {
	Width            int     // Image width in pixels
	Height           int     // Image height in pixels
	FieldOfView      float64 // Vertical field of view in degrees
	MaxDepth         int     // Maximum recursion depth for reflection/refraction
	SurfaceBias      float64 // Origin offset for shadow and reflection rays
	TransmissionBias float64 // Origin offset for refraction rays (larger, to clear the far side)
	NumWorkers       int     // Parallel render workers (0 = CPU count)
}

// DefaultRenderConfig returns the reference benchmark configuration
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:            1280,
		Height:           720,
		FieldOfView:      45.0,
		MaxDepth:         6,
		SurfaceBias:      1e-5,
		TransmissionBias: 1e-4,
		NumWorkers:       0,
	}
}

// BufferSize returns the required output buffer length in bytes
// (three bytes per pixel, RGB)
func (c RenderConfig) BufferSize() int {
	return c.Width * c.Height * 3
}
