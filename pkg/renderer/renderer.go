package renderer

import (
	"fmt"

	"github.com/go-raybench/raybench/pkg/scene"
)

// rowBandHeight is the number of image rows per worker task. Bands are
// coarse enough to amortize channel traffic and fine enough to keep all
// workers busy near the end of a frame.
const rowBandHeight = 16

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// Renderer drives the per-pixel render loop: it builds a primary ray for
// each pixel, shades it with the raytracer, and writes the clamped RGB
// bytes into the output buffer. Rows are partitioned into bands rendered
// in parallel; bands never overlap, so workers write to disjoint byte
// ranges of the shared buffer without synchronization.
type Renderer struct {
	raytracer *Raytracer
	camera    *Camera
	config    RenderConfig
}

// NewRenderer creates a renderer for the given scene and configuration
func NewRenderer(s *scene.Scene, config RenderConfig) *Renderer {
	return &Renderer{
		raytracer: NewRaytracer(s, config),
		camera:    NewCamera(config),
		config:    config,
	}
}

// Render renders one frame into a freshly allocated buffer
func (r *Renderer) Render() ([]byte, RenderStats) {
	buf := make([]byte, r.config.BufferSize())
	stats, _ := r.RenderInto(buf)
	return buf, stats
}

// RenderInto renders one frame into the caller-owned buffer, which must be
// exactly Width*Height*3 bytes. The buffer is written, never resized.
func (r *Renderer) RenderInto(buf []byte) (RenderStats, error) {
	if len(buf) != r.config.BufferSize() {
		return RenderStats{}, fmt.Errorf("output buffer is %d bytes, need %d", len(buf), r.config.BufferSize())
	}

	pool := NewWorkerPool(r, r.config.NumWorkers)
	pool.Start()

	bands := 0
	for firstRow := 0; firstRow < r.config.Height; firstRow += rowBandHeight {
		lastRow := min(firstRow+rowBandHeight, r.config.Height)
		pool.SubmitTask(RowBandTask{
			TaskID:   bands,
			FirstRow: firstRow,
			LastRow:  lastRow,
			Buffer:   buf,
		})
		bands++
	}

	for i := 0; i < bands; i++ {
		if _, ok := pool.GetResult(); !ok {
			return RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
	}
	pool.Stop()

	return RenderStats{
		TotalPixels: r.config.Width * r.config.Height,
		Bands:       bands,
		Workers:     pool.GetNumWorkers(),
	}, nil
}

// renderRows renders rows [firstRow, lastRow) into the buffer. Each pixel
// depends only on the scene and its own coordinates, so bands can render
// concurrently.
func (r *Renderer) renderRows(firstRow, lastRow int, buf []byte) {
	for y := firstRow; y < lastRow; y++ {
		rowOffset := y * r.config.Width * 3
		for x := 0; x < r.config.Width; x++ {
			color := r.raytracer.Trace(r.camera.GetRay(x, y), 0)

			i := rowOffset + x*3
			buf[i+0] = channelToByte(color.X)
			buf[i+1] = channelToByte(color.Y)
			buf[i+2] = channelToByte(color.Z)
		}
	}
}
