package bench

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// RawFileSink writes the frame verbatim as headerless RGB bytes, for
// external inspection of the exact benchmark output.
type RawFileSink struct {
	Path string
}

func (s *RawFileSink) Consume(width, height int, rgb []byte) error {
	if err := os.WriteFile(s.Path, rgb, 0644); err != nil {
		return fmt.Errorf("writing raw frame: %w", err)
	}
	return nil
}

// PNGFileSink encodes the frame as a PNG image
type PNGFileSink struct {
	Path string
}

func (s *PNGFileSink) Consume(width, height int, rgb []byte) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, j := 0, 0; i+2 < len(rgb); i, j = i+3, j+4 {
		img.Pix[j+0] = rgb[i+0]
		img.Pix[j+1] = rgb[i+1]
		img.Pix[j+2] = rgb[i+2]
		img.Pix[j+3] = 0xFF
	}

	file, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", s.Path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
