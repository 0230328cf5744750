package renderer

// RenderStats contains statistics about one rendered frame
type RenderStats struct {
	TotalPixels int // Total number of pixels rendered
	Bands       int // Number of row bands the frame was split into
	Workers     int // Number of parallel workers used
}
