package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridstar/gridgraph"
	"github.com/katalvlaran/gridstar/render"
)

func newRenderCmd() *cobra.Command {
	sf := &scenarioFlags{}
	var (
		outPath  string
		cellSize int
	)

	cmd := &cobra.Command{
		Use:   "render <scenario.yaml>",
		Short: "Solve a scenario and write the grid and path as a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := sf.load(args[0])
			if err != nil {
				return err
			}
			g, res, err := sc.Solve()
			if err != nil {
				return err
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outPath, err)
			}
			start, goal := gridgraph.Cell(sc.Start), gridgraph.Cell(sc.Goal)
			err = render.PNG(f, g, res, render.PNGOptions{CellSize: cellSize, Start: &start, Goal: &goal})
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}

			printStatus(cmd.OutOrStdout(), res)
			printLabelValue(cmd.OutOrStdout(), "Image", outPath)
			return nil
		},
	}
	sf.register(cmd)
	cmd.Flags().StringVarP(&outPath, "out", "o", "path.png", "Output PNG file")
	cmd.Flags().IntVar(&cellSize, "cell", render.DefaultPNGOptions().CellSize, "Cell size in pixels")

	return cmd
}
