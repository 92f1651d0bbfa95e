package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/gridgraph"
)

// ErrBadCellSize indicates a non-positive cell size.
var ErrBadCellSize = errors.New("render: cell size must be positive")

// Palette used for PNG output.
var (
	OpenColor    = color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}
	BlockedColor = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	PathColor    = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	StartColor   = color.RGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0xff}
	GoalColor    = color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
)

// PNGOptions configures PNG rendering.
type PNGOptions struct {
	// CellSize is the side of one cell in pixels.
	CellSize int
	// Start and Goal are highlighted when they lie inside the grid.
	Start, Goal *gridgraph.Cell
}

// DefaultPNGOptions returns 16-pixel cells without endpoint markers.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{CellSize: 16}
}

// PNG draws g with the cells of res.Path highlighted and writes the image to w.
// Start and goal markers default to the first and last path cells.
func PNG(w io.Writer, g *gridgraph.GridGraph, res astar.Result, opts PNGOptions) error {
	if opts.CellSize <= 0 {
		return ErrBadCellSize
	}
	if opts.Start == nil && len(res.Path) > 0 {
		opts.Start = &res.Path[0]
	}
	if opts.Goal == nil && len(res.Path) > 0 {
		opts.Goal = &res.Path[len(res.Path)-1]
	}

	size := float64(opts.CellSize)
	dc := gg.NewContext(g.Cols()*opts.CellSize, g.Rows()*opts.CellSize)
	fill := func(c gridgraph.Cell, clr color.Color) {
		dc.SetColor(clr)
		dc.DrawRectangle(float64(c.Col)*size, float64(c.Row)*size, size, size)
		dc.Fill()
	}

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			clr := OpenColor
			if !g.IsOpen(r, c) {
				clr = BlockedColor
			}
			fill(gridgraph.Cell{Row: r, Col: c}, clr)
		}
	}
	for _, c := range res.Path {
		fill(c, PathColor)
	}
	for _, m := range []struct {
		cell *gridgraph.Cell
		clr  color.Color
	}{{opts.Start, StartColor}, {opts.Goal, GoalColor}} {
		if m.cell != nil && g.InBounds(m.cell.Row, m.cell.Col) {
			fill(*m.cell, m.clr)
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}

	return nil
}
