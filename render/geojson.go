package render

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/gridgraph"
)

// point maps a cell to grid space (x = col, y = row).
func point(c gridgraph.Cell) orb.Point {
	return orb.Point{float64(c.Col), float64(c.Row)}
}

// FeatureCollection builds a GeoJSON collection with:
//
//   - a "path" feature (LineString, or Point for a trivial path) carrying the
//     status, cost and expansion count as properties, when res has a path;
//   - an "obstacles" feature (MultiPoint of blocked cells), when g has any.
func FeatureCollection(g *gridgraph.GridGraph, res astar.Result) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if res.HasPath() {
		var geom orb.Geometry
		if len(res.Path) == 1 {
			geom = point(res.Path[0])
		} else {
			ls := make(orb.LineString, 0, len(res.Path))
			for _, c := range res.Path {
				ls = append(ls, point(c))
			}
			geom = ls
		}
		f := geojson.NewFeature(geom)
		f.Properties["kind"] = "path"
		f.Properties["status"] = res.Status.String()
		f.Properties["cost"] = res.Cost
		f.Properties["expanded"] = res.Expanded
		fc.Append(f)
	}

	var blocked orb.MultiPoint
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if !g.IsOpen(r, c) {
				blocked = append(blocked, point(gridgraph.Cell{Row: r, Col: c}))
			}
		}
	}
	if len(blocked) > 0 {
		f := geojson.NewFeature(blocked)
		f.Properties["kind"] = "obstacles"
		fc.Append(f)
	}

	return fc
}

// GeoJSON encodes FeatureCollection(g, res).
func GeoJSON(g *gridgraph.GridGraph, res astar.Result) ([]byte, error) {
	return FeatureCollection(g, res).MarshalJSON()
}
