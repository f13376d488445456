package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/robabibert/htree/render"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "htree",
	Short: "Generate and render H-tree fractals",
	Long: `htree generates the line-segment skeleton of an H-tree fractal and
rasterizes it to PNG images. The fractal is produced as a lazy sequence
of segments normalized into [0,1] x [0,1/sqrt(2)]; the render command
maps them to pixel space.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
