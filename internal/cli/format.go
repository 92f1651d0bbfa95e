package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/gridgraph"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	valueColor   = color.New(color.FgHiBlack)
	pathColor    = color.New(color.FgCyan, color.Bold)
)

// printStatus prints a check mark for outcomes with a path, a warning otherwise.
func printStatus(w io.Writer, res astar.Result) {
	if res.HasPath() {
		_, _ = successColor.Fprintf(w, "✓ %s\n", res.Status)
		return
	}
	_, _ = warningColor.Fprintf(w, "⚠ %s\n", res.Status)
}

func printLabelValue(w io.Writer, label string, value interface{}) {
	_, _ = labelColor.Fprintf(w, "  %s: ", label)
	_, _ = valueColor.Fprintln(w, value)
}

// overlay draws g with '.' open, '#' blocked, 'S' start, 'G' goal and '*'
// for intermediate path cells.
func overlay(g *gridgraph.GridGraph, res astar.Result) string {
	marks := make(map[gridgraph.Cell]byte, len(res.Path))
	for i, c := range res.Path {
		switch i {
		case 0:
			marks[c] = 'S'
		case len(res.Path) - 1:
			marks[c] = 'G'
		default:
			marks[c] = '*'
		}
	}

	var sb strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if m, ok := marks[gridgraph.Cell{Row: r, Col: c}]; ok {
				sb.WriteString(pathColor.Sprint(string(m)))
				continue
			}
			if g.IsOpen(r, c) {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// solveOutput is the --json form of a solve result.
type solveOutput struct {
	Scenario string       `json:"scenario,omitempty"`
	Status   astar.Status `json:"status"`
	Path     [][2]int     `json:"path"`
	Cost     float64      `json:"cost"`
	Expanded int          `json:"expanded"`
}

func newSolveOutput(name string, res astar.Result) solveOutput {
	out := solveOutput{
		Scenario: name,
		Status:   res.Status,
		Path:     make([][2]int, 0, len(res.Path)),
		Cost:     res.Cost,
		Expanded: res.Expanded,
	}
	for _, c := range res.Path {
		out.Path = append(out.Path, [2]int{c.Row, c.Col})
	}

	return out
}

func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
