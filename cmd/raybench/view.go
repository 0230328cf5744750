package main

import (
	"github.com/spf13/cobra"

	"github.com/go-raybench/raybench/pkg/bench"
	"github.com/go-raybench/raybench/pkg/display"
	"github.com/go-raybench/raybench/pkg/renderer"
	"github.com/go-raybench/raybench/pkg/scene"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Render one frame and show it in a window",
	RunE:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg := renderConfig()
	logger := &renderer.DefaultLogger{}
	rend := renderer.NewRenderer(scene.NewBenchmarkScene(), cfg)

	clock := &bench.Stopwatch{}
	clock.Start()
	buf, stats := rend.Render()
	clock.Stop()

	logger.Printf("Rendered %dx%d in %v (%d workers, %d bands)\n",
		cfg.Width, cfg.Height, clock.Elapsed(), stats.Workers, stats.Bands)

	sink := &display.WindowSink{Title: appName}
	return sink.Consume(cfg.Width, cfg.Height, buf)
}
