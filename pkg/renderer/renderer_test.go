package renderer

import (
	"bytes"
	"testing"

	"github.com/go-raybench/raybench/pkg/core"
	"github.com/go-raybench/raybench/pkg/geometry"
	"github.com/go-raybench/raybench/pkg/scene"
)

func TestRenderer_EmptySceneRendersBlack(t *testing.T) {
	cfg := DefaultRenderConfig()
	cfg.Width = 32
	cfg.Height = 18
	cfg.NumWorkers = 2

	buf, stats := NewRenderer(scene.NewScene(nil, nil), cfg).Render()

	if stats.TotalPixels != 32*18 {
		t.Errorf("Expected %d pixels, got %d", 32*18, stats.TotalPixels)
	}
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("Expected black frame, found byte %d at offset %d", b, i)
		}
	}
}

func TestRenderer_CenteredSphereBrightCenterDarkCorners(t *testing.T) {
	// A single opaque white sphere on the camera axis, lit from directly
	// in front
	s := scene.NewScene(
		[]geometry.Sphere{
			geometry.NewSphere(core.NewVec3(0, 0, -5), 2, core.NewVec3(1, 1, 1)),
		},
		[]geometry.Light{
			geometry.NewLight(core.NewVec3(0, 0, 0), core.NewVec3(2, 2, 2)),
		},
	)

	cfg := DefaultRenderConfig()
	cfg.Width = 64
	cfg.Height = 36
	cfg.NumWorkers = 2

	buf, _ := NewRenderer(s, cfg).Render()

	center := (cfg.Height/2*cfg.Width + cfg.Width/2) * 3
	if buf[center] != 255 || buf[center+1] != 255 || buf[center+2] != 255 {
		t.Errorf("Expected saturated center pixel, got %v", buf[center:center+3])
	}

	for _, corner := range []int{
		0,
		(cfg.Width - 1) * 3,
		(cfg.Height - 1) * cfg.Width * 3,
		((cfg.Height-1)*cfg.Width + cfg.Width - 1) * 3,
	} {
		if buf[corner] != 0 || buf[corner+1] != 0 || buf[corner+2] != 0 {
			t.Errorf("Expected black corner at offset %d, got %v", corner, buf[corner:corner+3])
		}
	}
}

func TestRenderer_Deterministic(t *testing.T) {
	cfg := DefaultRenderConfig()
	cfg.Width = 160
	cfg.Height = 90
	cfg.NumWorkers = 4

	rend := NewRenderer(scene.NewBenchmarkScene(), cfg)

	first, _ := rend.Render()
	second, _ := rend.Render()

	if !bytes.Equal(first, second) {
		t.Error("Expected repeated renders to be byte-identical")
	}
}

func TestRenderer_WorkerCountDoesNotChangeOutput(t *testing.T) {
	s := scene.NewBenchmarkScene()

	single := DefaultRenderConfig()
	single.Width = 80
	single.Height = 45
	single.NumWorkers = 1

	parallel := single
	parallel.NumWorkers = 8

	bufSingle, _ := NewRenderer(s, single).Render()
	bufParallel, _ := NewRenderer(s, parallel).Render()

	if !bytes.Equal(bufSingle, bufParallel) {
		t.Error("Expected identical output regardless of worker count")
	}
}

func TestRenderer_RenderIntoChecksBufferSize(t *testing.T) {
	cfg := DefaultRenderConfig()
	cfg.Width = 8
	cfg.Height = 8

	rend := NewRenderer(scene.NewScene(nil, nil), cfg)

	if _, err := rend.RenderInto(make([]byte, 7)); err == nil {
		t.Error("Expected an error for an undersized buffer")
	}
	if _, err := rend.RenderInto(make([]byte, cfg.BufferSize())); err != nil {
		t.Errorf("Expected no error for an exact buffer, got %v", err)
	}
}

func TestChannelToByte(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected byte
	}{
		{name: "black", value: 0, expected: 0},
		{name: "white", value: 1, expected: 255},
		{name: "mid", value: 0.5, expected: 127},
		{name: "over-bright clamps high", value: 3.7, expected: 255},
		{name: "negative clamps low", value: -0.25, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := channelToByte(tt.value); got != tt.expected {
				t.Errorf("channelToByte(%f) = %d, expected %d", tt.value, got, tt.expected)
			}
		})
	}
}

func TestRGBToBGRA(t *testing.T) {
	rgb := []byte{10, 20, 30, 200, 150, 100}
	expected := []byte{30, 20, 10, 255, 100, 150, 200, 255}

	if got := RGBToBGRA(rgb); !bytes.Equal(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestRGBToARGB(t *testing.T) {
	rgb := []byte{0x10, 0x20, 0x30, 0xFF, 0x00, 0x80}
	expected := []uint32{0xFF102030, 0xFFFF0080}

	got := RGBToARGB(rgb)
	if len(got) != len(expected) {
		t.Fatalf("Expected %d pixels, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Pixel %d: expected %08X, got %08X", i, expected[i], got[i])
		}
	}
}
