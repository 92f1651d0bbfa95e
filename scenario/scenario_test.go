package scenario_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/gridgraph"
	"github.com/katalvlaran/gridstar/scenario"
)

const corridor = `
name: corridor
heuristic: chebyshev
grid:
  - "..#."
  - ".##."
  - [1, 1, 1, 1]
start: [0, 0]
goal: [0, 3]
`

func TestDecode_MixedNotation(t *testing.T) {
	s, err := scenario.Decode(strings.NewReader(corridor))
	require.NoError(t, err)

	assert.Equal(t, "corridor", s.Name)
	assert.Equal(t, scenario.Grid{
		{1, 1, 0, 1},
		{1, 0, 0, 1},
		{1, 1, 1, 1},
	}, s.Grid)
	assert.Equal(t, gridgraph.Cell{Row: 0, Col: 0}, s.Start.Cell())
	assert.Equal(t, gridgraph.Cell{Row: 0, Col: 3}, s.Goal.Cell())
}

func TestSolve(t *testing.T) {
	s, err := scenario.Decode(strings.NewReader(corridor))
	require.NoError(t, err)

	g, res, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, astar.StatusFound, res.Status)
	assert.Equal(t, 5.0, res.Cost)
}

func TestSolve_Conn4(t *testing.T) {
	s, err := scenario.Decode(strings.NewReader(corridor + "conn: conn4\n"))
	require.NoError(t, err)

	g, res, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Conn4, g.Conn())
	assert.Equal(t, 7.0, res.Cost)
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"BadCell", "grid: [\"..x\"]\nstart: [0, 0]\ngoal: [0, 1]\n", scenario.ErrBadCell},
		{"ShortCoord", "grid: [\"..\"]\nstart: [0]\ngoal: [0, 1]\n", scenario.ErrBadCoordinate},
		{"MapRow", "grid:\n  - {a: 1}\nstart: [0, 0]\ngoal: [0, 1]\n", scenario.ErrBadRow},
		{"MissingStart", "grid: [\"..\"]\ngoal: [0, 1]\n", scenario.ErrBadCoordinate},
		{"MissingGoal", "grid: [\"..\"]\nstart: [0, 0]\n", scenario.ErrBadCoordinate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Decode(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := scenario.Decode(strings.NewReader("grid: [\"..\"]\nstart: [0, 0]\ngoal: [0, 1]\nweights: 3\n"))
	assert.Error(t, err, "unknown fields are rejected")
}

func TestCoord_UnmarshalJSON(t *testing.T) {
	var c scenario.Coord
	require.NoError(t, json.Unmarshal([]byte("[2, 5]"), &c))
	assert.Equal(t, gridgraph.Cell{Row: 2, Col: 5}, c.Cell())

	for _, doc := range []string{"[1]", "[0, 0, 7]", "[]", `"0,0"`, `{"row": 1}`} {
		err := json.Unmarshal([]byte(doc), &c)
		assert.ErrorIs(t, err, scenario.ErrBadCoordinate, doc)
	}
}

func TestBuild_Errors(t *testing.T) {
	s := &scenario.Scenario{Grid: scenario.Grid{{1, 1}, {1}}}
	_, err := s.Build()
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)

	s = &scenario.Scenario{Grid: scenario.Grid{{1}}, Conn: "hex"}
	_, err = s.Build()
	assert.ErrorIs(t, err, scenario.ErrUnknownConn)

	s = &scenario.Scenario{Grid: scenario.Grid{{1}}, Heuristic: "manhattan"}
	_, _, err = s.Solve()
	assert.ErrorContains(t, err, "unknown heuristic")
}

func TestEncodeLoad_RoundTrip(t *testing.T) {
	in := &scenario.Scenario{
		Name:  "round-trip",
		Grid:  scenario.Grid{{1, 0, 1}, {1, 1, 0}},
		Start: scenario.Coord{Row: 0, Col: 0},
		Goal:  scenario.Coord{Row: 0, Col: 2},
	}
	var buf bytes.Buffer
	require.NoError(t, scenario.Encode(&buf, in))
	assert.Contains(t, buf.String(), ".#.")
	assert.Contains(t, buf.String(), "start: [0, 0]")

	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	out, err := scenario.Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoad_Missing(t *testing.T) {
	_, err := scenario.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
