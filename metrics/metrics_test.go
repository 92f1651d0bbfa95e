package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/gridgraph"
	"github.com/katalvlaran/gridstar/metrics"
)

func TestCollector_CountsByStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	col := metrics.NewCollector(reg)

	g, err := gridgraph.From2D([][]int{{1, 1, 0, 1}}, gridgraph.Conn8)
	require.NoError(t, err)
	queries := [][2]gridgraph.Cell{
		{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, // found
		{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, // found
		{{Row: 0, Col: 0}, {Row: 0, Col: 3}}, // not_found
		{{Row: 0, Col: 2}, {Row: 0, Col: 0}}, // blocked_start
		{{Row: 0, Col: 3}, {Row: 0, Col: 3}}, // trivial_path
	}
	for _, q := range queries {
		_, err := astar.FindPath(g, q[0], q[1], astar.WithObserver(col))
		require.NoError(t, err)
	}

	// One series per status exists from the start.
	n, err := testutil.GatherAndCount(reg, "gridstar_searches_total")
	require.NoError(t, err)
	assert.Equal(t, len(astar.Statuses), n)

	families, err := reg.Gather()
	require.NoError(t, err)
	got := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "gridstar_searches_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			got[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 2.0, got["found"])
	assert.Equal(t, 1.0, got["not_found"])
	assert.Equal(t, 1.0, got["blocked_start"])
	assert.Equal(t, 1.0, got["trivial_path"])
	assert.Equal(t, 0.0, got["invalid_goal"])

	n, err = testutil.GatherAndCount(reg, "gridstar_path_steps")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNewCollector_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewCollector(reg)
	assert.Panics(t, func() { metrics.NewCollector(reg) })
}
