package bench

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRawFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.rgb")
	rgb := []byte{1, 2, 3, 4, 5, 6}

	sink := &RawFileSink{Path: path}
	if err := sink.Consume(2, 1, rgb); err != nil {
		t.Fatalf("Expected write to succeed, got %v", err)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading written frame: %v", err)
	}
	// Raw output is the buffer verbatim, no header
	if !bytes.Equal(written, rgb) {
		t.Errorf("Expected %v, got %v", rgb, written)
	}
}

func TestPNGFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	rgb := []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 255, 255,
	}

	sink := &PNGFileSink{Path: path}
	if err := sink.Consume(2, 2, rgb); err != nil {
		t.Fatalf("Expected write to succeed, got %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Opening written frame: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Decoding written frame: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Errorf("Expected 2x2 image, got %v", img.Bounds())
	}

	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 || a>>8 != 255 {
		t.Errorf("Expected opaque red at (0,0), got r=%d g=%d b=%d a=%d", r>>8, g>>8, b>>8, a>>8)
	}
}
