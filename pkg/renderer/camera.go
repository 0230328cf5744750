package renderer

import (
	"math"

	"github.com/go-raybench/raybench/pkg/core"
)

// Camera generates primary rays for rendering. The eye sits at the world
// origin looking down -Z; the viewport plane sits one unit away.
type Camera struct {
	origin         core.Vec3
	viewportWidth  float64
	viewportHeight float64
	width, height  int
}

// NewCamera creates a pinhole camera for the configured image size and
// vertical field of view
func NewCamera(config RenderConfig) *Camera {
	fovRadians := config.FieldOfView * math.Pi / 180
	viewportHeight := 2 * math.Tan(fovRadians/2)
	viewportWidth := viewportHeight * float64(config.Width) / float64(config.Height)

	return &Camera{
		origin:         core.NewVec3(0, 0, 0),
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
		width:          config.Width,
		height:         config.Height,
	}
}

// GetRay generates the primary ray for pixel (x, y), with (0, 0) the
// top-left pixel of the image
func (c *Camera) GetRay(x, y int) core.Ray {
	direction := core.NewVec3(
		(float64(x)-float64(c.width)/2)/float64(c.width)*c.viewportWidth,
		(float64(c.height)/2-float64(y))/float64(c.height)*c.viewportHeight,
		-1,
	).Normalize()

	return core.NewRay(c.origin, direction)
}
