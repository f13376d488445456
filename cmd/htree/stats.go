package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robabibert/htree"
)

var statsOrder int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show segment statistics for an order without rendering",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsOrder, "order", 10, "Recursion order of the H-tree")
}

func runStats(cmd *cobra.Command, args []string) error {
	t, err := htree.New[float64](statsOrder)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "order:    %d\n", t.Order())
	fmt.Fprintf(out, "segments: %d\n", t.SegmentCount())
	fmt.Fprintf(out, "bounds:   [0,1] x [0,%.6f]\n", htree.ScaleHeight)
	for level := 0; level <= t.Order(); level++ {
		fmt.Fprintf(out, "level %2d: %d segments\n", level, uint64(1)<<uint(level))
	}
	return nil
}
