package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-raybench/raybench/pkg/renderer"
)

const (
	appName = "raybench"
	version = "v1.0.0"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Deterministic ray-tracing CPU benchmark",
	Long: `raybench renders a fixed scene of spheres and point lights with a
recursive Whitted ray tracer and reports how long each frame takes. The
scene, camera and shading are fully deterministic, so frame times measure
the machine, not the workload.

Rendering runs across a pool of workers, one band of image rows per task.
Output can be written as headerless raw RGB bytes or as PNG, or shown in
a desktop window.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.raybench.yaml)")
	rootCmd.PersistentFlags().Int("width", 1280, "image width in pixels")
	rootCmd.PersistentFlags().Int("height", 720, "image height in pixels")
	rootCmd.PersistentFlags().Float64("fov", 45.0, "vertical field of view in degrees")
	rootCmd.PersistentFlags().Int("depth", 6, "maximum recursion depth")
	rootCmd.PersistentFlags().Int("workers", 0, "number of render workers (0 = CPU count)")

	viper.BindPFlag("render.width", rootCmd.PersistentFlags().Lookup("width"))
	viper.BindPFlag("render.height", rootCmd.PersistentFlags().Lookup("height"))
	viper.BindPFlag("render.fov", rootCmd.PersistentFlags().Lookup("fov"))
	viper.BindPFlag("render.depth", rootCmd.PersistentFlags().Lookup("depth"))
	viper.BindPFlag("render.workers", rootCmd.PersistentFlags().Lookup("workers"))
}

// initConfig reads in the config file and environment variables if set
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".raybench")
	}

	viper.SetEnvPrefix("RAYBENCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Only an explicitly requested config file has to exist
		if cfgFile != "" {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	return nil
}

// renderConfig builds the render configuration from flags, environment and
// config file
func renderConfig() renderer.RenderConfig {
	cfg := renderer.DefaultRenderConfig()
	cfg.Width = viper.GetInt("render.width")
	cfg.Height = viper.GetInt("render.height")
	cfg.FieldOfView = viper.GetFloat64("render.fov")
	cfg.MaxDepth = viper.GetInt("render.depth")
	cfg.NumWorkers = viper.GetInt("render.workers")
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
