package renderer

import (
	"math"
	"testing"
)

func TestCamera_CenterRay(t *testing.T) {
	cfg := DefaultRenderConfig()
	camera := NewCamera(cfg)

	ray := camera.GetRay(cfg.Width/2, cfg.Height/2)

	const tolerance = 1e-12
	if ray.Origin != (camera.origin) {
		t.Errorf("Expected eye at origin, got %v", ray.Origin)
	}
	if math.Abs(ray.Direction.X) > tolerance || math.Abs(ray.Direction.Y) > tolerance {
		t.Errorf("Expected center ray along -Z, got %v", ray.Direction)
	}
	if ray.Direction.Z >= 0 {
		t.Errorf("Expected ray to look down -Z, got %v", ray.Direction)
	}
}

func TestCamera_FieldOfView(t *testing.T) {
	cfg := DefaultRenderConfig()
	camera := NewCamera(cfg)

	// The top edge of the image subtends half the vertical field of view.
	// Normalization preserves the Y/-Z ratio, so it must equal tan(fov/2).
	ray := camera.GetRay(cfg.Width/2, 0)
	got := ray.Direction.Y / -ray.Direction.Z
	expected := math.Tan(cfg.FieldOfView * math.Pi / 180 / 2)

	const tolerance = 1e-9
	if math.Abs(got-expected) > tolerance {
		t.Errorf("Expected tan(fov/2)=%f at the top edge, got %f", expected, got)
	}
}

func TestCamera_UnitDirections(t *testing.T) {
	cfg := DefaultRenderConfig()
	cfg.Width = 64
	cfg.Height = 36
	camera := NewCamera(cfg)

	const tolerance = 1e-12
	for _, px := range [][2]int{{0, 0}, {63, 0}, {0, 35}, {63, 35}, {32, 18}} {
		ray := camera.GetRay(px[0], px[1])
		if math.Abs(ray.Direction.Length()-1) > tolerance {
			t.Errorf("Pixel %v: expected unit direction, got length %f", px, ray.Direction.Length())
		}
	}
}

func TestCamera_ImageOrientation(t *testing.T) {
	cfg := DefaultRenderConfig()
	camera := NewCamera(cfg)

	topLeft := camera.GetRay(0, 0)
	bottomRight := camera.GetRay(cfg.Width-1, cfg.Height-1)

	// Pixel (0,0) is the top-left of the image: up and to the left
	if topLeft.Direction.X >= 0 || topLeft.Direction.Y <= 0 {
		t.Errorf("Expected top-left ray up-left, got %v", topLeft.Direction)
	}
	if bottomRight.Direction.X <= 0 || bottomRight.Direction.Y >= 0 {
		t.Errorf("Expected bottom-right ray down-right, got %v", bottomRight.Direction)
	}
}
