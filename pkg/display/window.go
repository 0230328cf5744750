// Package display presents a rendered frame in a desktop window.
package display

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-raybench/raybench/pkg/renderer"
)

// WindowSink implements core.ImageSink by opening a window and showing the
// frame until the user closes it. Consume blocks for the lifetime of the
// window, so it should be the last sink in a run.
type WindowSink struct {
	Title string
}

func (s *WindowSink) Consume(width, height int, rgb []byte) error {
	title := s.Title
	if title == "" {
		title = "raybench"
	}

	g := &frameGame{
		width:  width,
		height: height,
		// The window keeps the frame in BGRA, the native order of most
		// display surfaces; Draw swizzles on upload.
		bgra: renderer.RGBToBGRA(rgb),
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type frameGame struct {
	width, height int
	bgra          []byte
	frame         *ebiten.Image
}

func (g *frameGame) Update() error { return nil }

func (g *frameGame) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		img := image.NewRGBA(image.Rect(0, 0, g.width, g.height))
		for i := 0; i+3 < len(g.bgra); i += 4 {
			img.Pix[i+0] = g.bgra[i+2]
			img.Pix[i+1] = g.bgra[i+1]
			img.Pix[i+2] = g.bgra[i+0]
			img.Pix[i+3] = g.bgra[i+3]
		}
		g.frame = ebiten.NewImage(g.width, g.height)
		g.frame.WritePixels(img.Pix)
	}
	screen.DrawImage(g.frame, nil)
}

func (g *frameGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
