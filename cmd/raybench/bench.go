package main

import (
	"github.com/spf13/cobra"

	"github.com/go-raybench/raybench/pkg/bench"
	"github.com/go-raybench/raybench/pkg/core"
	"github.com/go-raybench/raybench/pkg/renderer"
	"github.com/go-raybench/raybench/pkg/scene"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the timed benchmark and report frame statistics",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().Int("frames", 5, "number of timed frames")
	benchCmd.Flags().Duration("warmup", bench.DefaultConfig().Warmup, "delay before the first timed frame")
	benchCmd.Flags().Bool("verify", false, "re-render the final frame and check it is byte-identical")
	benchCmd.Flags().StringP("output", "o", "", "save the final frame to this file (optional)")
	benchCmd.Flags().String("format", "png", "output format: 'png' or 'raw'")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	frames, _ := cmd.Flags().GetInt("frames")
	warmup, _ := cmd.Flags().GetDuration("warmup")
	verify, _ := cmd.Flags().GetBool("verify")
	output, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")

	var sink core.ImageSink
	if output != "" {
		var err error
		sink, err = sinkFor(format, output)
		if err != nil {
			return err
		}
	}

	cfg := renderConfig()
	logger := &renderer.DefaultLogger{}

	runner := bench.NewRunner(
		scene.NewBenchmarkScene(),
		cfg,
		bench.Config{Frames: frames, Warmup: warmup, VerifyDeterminism: verify},
		&bench.Stopwatch{},
		sink,
		logger,
	)

	report, err := runner.Run()
	if err != nil {
		return err
	}

	logger.Printf("\n%d frames at %dx%d: mean %v, std dev %v\n",
		len(report.FrameTimes), cfg.Width, cfg.Height, report.Mean, report.StdDev)
	if output != "" {
		logger.Printf("Final frame saved as %s\n", output)
	}
	return nil
}
