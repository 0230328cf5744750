// Package bench runs the raytracer as a repeatable CPU benchmark: an
// optional warm-up delay, a number of timed frames over the fixed scene,
// and summary statistics over the per-frame times.
package bench

import (
	"bytes"
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/go-raybench/raybench/pkg/core"
	"github.com/go-raybench/raybench/pkg/renderer"
	"github.com/go-raybench/raybench/pkg/scene"
)

// Config contains benchmark parameters
type Config struct {
	Frames            int           // Number of timed frames
	Warmup            time.Duration // Delay before the first timed frame
	VerifyDeterminism bool          // Re-render the last frame and byte-compare
}

// DefaultConfig returns sensible benchmark defaults
func DefaultConfig() Config {
	return Config{
		Frames: 5,
		Warmup: 2 * time.Second,
	}
}

// Report summarizes a benchmark run
type Report struct {
	FrameTimes []time.Duration
	Mean       time.Duration
	StdDev     time.Duration
	Stats      renderer.RenderStats
}

// Runner executes the benchmark. The clock and sink are collaborator
// interfaces: the runner does not care whether the clock is a real
// stopwatch or the sink a file, a window, or nothing.
type Runner struct {
	scene        *scene.Scene
	renderConfig renderer.RenderConfig
	config       Config
	clock        core.TimeSource
	sink         core.ImageSink
	logger       core.Logger
}

// NewRunner creates a benchmark runner. A nil sink discards the frame.
func NewRunner(s *scene.Scene, renderConfig renderer.RenderConfig, config Config, clock core.TimeSource, sink core.ImageSink, logger core.Logger) *Runner {
	return &Runner{
		scene:        s,
		renderConfig: renderConfig,
		config:       config,
		clock:        clock,
		sink:         sink,
		logger:       logger,
	}
}

// Run executes the warm-up and the timed frames, then delivers the final
// frame to the sink
func (r *Runner) Run() (Report, error) {
	if r.config.Frames <= 0 {
		return Report{}, fmt.Errorf("benchmark needs at least 1 frame, got %d", r.config.Frames)
	}

	if r.config.Warmup > 0 {
		r.logger.Printf("Warming up for %v...\n", r.config.Warmup)
		time.Sleep(r.config.Warmup)
	}

	rend := renderer.NewRenderer(r.scene, r.renderConfig)
	buf := make([]byte, r.renderConfig.BufferSize())

	report := Report{
		FrameTimes: make([]time.Duration, 0, r.config.Frames),
	}

	for frame := 1; frame <= r.config.Frames; frame++ {
		r.clock.Start()
		stats, err := rend.RenderInto(buf)
		r.clock.Stop()
		if err != nil {
			return Report{}, fmt.Errorf("frame %d: %w", frame, err)
		}

		elapsed := r.clock.Elapsed()
		report.FrameTimes = append(report.FrameTimes, elapsed)
		report.Stats = stats
		r.logger.Printf("Frame %d/%d: %v (%d workers, %d bands)\n",
			frame, r.config.Frames, elapsed, stats.Workers, stats.Bands)
	}

	if r.config.VerifyDeterminism {
		check := make([]byte, r.renderConfig.BufferSize())
		if _, err := rend.RenderInto(check); err != nil {
			return Report{}, fmt.Errorf("determinism check: %w", err)
		}
		if !bytes.Equal(buf, check) {
			return Report{}, fmt.Errorf("determinism check: repeated renders differ")
		}
		r.logger.Printf("Determinism check passed\n")
	}

	report.Mean, report.StdDev = summarize(report.FrameTimes)

	if r.sink != nil {
		if err := r.sink.Consume(r.renderConfig.Width, r.renderConfig.Height, buf); err != nil {
			return Report{}, fmt.Errorf("delivering frame: %w", err)
		}
	}

	return report, nil
}

// summarize computes the mean and standard deviation of the frame times
func summarize(times []time.Duration) (mean, stdDev time.Duration) {
	seconds := make([]float64, len(times))
	for i, t := range times {
		seconds[i] = t.Seconds()
	}

	m := stat.Mean(seconds, nil)
	sd := 0.0
	if len(seconds) > 1 {
		sd = stat.StdDev(seconds, nil)
	}

	return time.Duration(m * float64(time.Second)), time.Duration(sd * float64(time.Second))
}
