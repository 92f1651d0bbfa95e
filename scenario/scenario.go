// Package scenario loads path-search scenarios (grid, start, goal and search
// settings) from YAML documents.
//
// Example document:
//
//	name: corridor
//	conn: conn8          # conn8 (default) or conn4
//	heuristic: chebyshev # euclidean (default), chebyshev or zero
//	grid:
//	  - "..#."
//	  - ".##."
//	  - "...."
//	start: [0, 0]
//	goal: [0, 3]
//
// Grid rows are either strings, where '.' or '1' is open and '#' or '0' is
// blocked, or integer lists compared against an open threshold of 1. Both
// notations may be mixed within one grid.
package scenario

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/gridgraph"
	"github.com/katalvlaran/gridstar/heuristic"
)

// Sentinel errors for scenario decoding.
var (
	// ErrBadCell indicates a grid character other than '.', '1', '#' or '0'.
	ErrBadCell = errors.New("scenario: unknown grid cell character")
	// ErrBadCoordinate indicates a start or goal that is not a [row, col] pair.
	ErrBadCoordinate = errors.New("scenario: coordinate must be a [row, col] pair")
	// ErrBadRow indicates a grid row that is neither a string nor an integer list.
	ErrBadRow = errors.New("scenario: grid row must be a string or a list of integers")
	// ErrUnknownConn indicates an unsupported connectivity name.
	ErrUnknownConn = errors.New("scenario: conn must be conn8 or conn4")
)

// Scenario describes one search request.
type Scenario struct {
	Name      string `yaml:"name,omitempty"`
	Conn      string `yaml:"conn,omitempty"`
	Heuristic string `yaml:"heuristic,omitempty"`
	Grid      Grid   `yaml:"grid"`
	Start     Coord  `yaml:"start"`
	Goal      Coord  `yaml:"goal"`
}

// Grid holds cell values row by row; values ≥ 1 are open.
type Grid [][]int

// Coord is a [row, col] pair.
type Coord gridgraph.Cell

// Cell converts c to a gridgraph.Cell.
func (c Coord) Cell() gridgraph.Cell { return gridgraph.Cell(c) }

// UnmarshalYAML decodes "[row, col]".
func (c *Coord) UnmarshalYAML(node *yaml.Node) error {
	var pair []int
	if err := node.Decode(&pair); err != nil || len(pair) != 2 {
		return fmt.Errorf("%w (line %d)", ErrBadCoordinate, node.Line)
	}
	*c = Coord{Row: pair[0], Col: pair[1]}

	return nil
}

// UnmarshalJSON decodes "[row, col]". Arrays of any other length are rejected.
func (c *Coord) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil || len(pair) != 2 {
		return fmt.Errorf("%w: got %s", ErrBadCoordinate, data)
	}
	*c = Coord{Row: pair[0], Col: pair[1]}

	return nil
}

// MarshalYAML encodes c as a flow sequence.
func (c Coord) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(c.Row)},
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(c.Col)},
		},
	}, nil
}

// UnmarshalYAML decodes a sequence of rows in either notation.
func (g *Grid) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w (line %d)", ErrBadRow, node.Line)
	}
	rows := make(Grid, 0, len(node.Content))
	for _, rowNode := range node.Content {
		switch rowNode.Kind {
		case yaml.ScalarNode:
			row, err := parseRow(rowNode.Value)
			if err != nil {
				return fmt.Errorf("%w (line %d)", err, rowNode.Line)
			}
			rows = append(rows, row)
		case yaml.SequenceNode:
			var row []int
			if err := rowNode.Decode(&row); err != nil {
				return fmt.Errorf("%w (line %d): %v", ErrBadRow, rowNode.Line, err)
			}
			rows = append(rows, row)
		default:
			return fmt.Errorf("%w (line %d)", ErrBadRow, rowNode.Line)
		}
	}
	*g = rows

	return nil
}

// MarshalYAML encodes the grid in string notation.
func (g Grid) MarshalYAML() (interface{}, error) {
	out := make([]string, len(g))
	for r, row := range g {
		var b strings.Builder
		for _, v := range row {
			if v >= 1 {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		out[r] = b.String()
	}

	return out, nil
}

func parseRow(s string) ([]int, error) {
	row := make([]int, 0, len(s))
	for _, ch := range s {
		switch ch {
		case '.', '1':
			row = append(row, 1)
		case '#', '0':
			row = append(row, 0)
		case ' ', '\t':
		default:
			return nil, fmt.Errorf("%w %q", ErrBadCell, ch)
		}
	}

	return row, nil
}

// Decode parses a scenario document from r. Both start and goal are required.
func Decode(r io.Reader) (*Scenario, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("scenario: read: %w", err)
	}

	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}

	// Coord.UnmarshalYAML never runs for an absent key.
	var seen struct {
		Start *yaml.Node `yaml:"start"`
		Goal  *yaml.Node `yaml:"goal"`
	}
	if err := yaml.Unmarshal(data, &seen); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	switch {
	case seen.Start == nil:
		return nil, fmt.Errorf("%w: start is missing", ErrBadCoordinate)
	case seen.Goal == nil:
		return nil, fmt.Errorf("%w: goal is missing", ErrBadCoordinate)
	}

	return &s, nil
}

// Load reads a scenario file from disk.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Encode writes s as YAML to w.
func Encode(w io.Writer, s *Scenario) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("scenario: encode: %w", err)
	}

	return enc.Close()
}

// Connectivity resolves the Conn field.
func (s *Scenario) Connectivity() (gridgraph.Connectivity, error) {
	switch strings.ToLower(strings.TrimSpace(s.Conn)) {
	case "", "conn8", "8":
		return gridgraph.Conn8, nil
	case "conn4", "4":
		return gridgraph.Conn4, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownConn, s.Conn)
	}
}

// Build constructs the occupancy grid.
func (s *Scenario) Build() (*gridgraph.GridGraph, error) {
	conn, err := s.Connectivity()
	if err != nil {
		return nil, err
	}
	g, err := gridgraph.From2D(s.Grid, conn)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	return g, nil
}

// Options returns the search options the scenario asks for.
func (s *Scenario) Options() ([]astar.Option, error) {
	h, err := heuristic.ByName(s.Heuristic)
	if err != nil {
		return nil, err
	}

	return []astar.Option{astar.WithHeuristic(h)}, nil
}

// Solve builds the grid and runs FindPath with the scenario options followed by extra.
func (s *Scenario) Solve(extra ...astar.Option) (*gridgraph.GridGraph, astar.Result, error) {
	g, err := s.Build()
	if err != nil {
		return nil, astar.Result{}, err
	}
	opts, err := s.Options()
	if err != nil {
		return nil, astar.Result{}, err
	}
	res, err := astar.FindPath(g, s.Start.Cell(), s.Goal.Cell(), append(opts, extra...)...)
	if err != nil {
		return nil, astar.Result{}, err
	}

	return g, res, nil
}
