// Package render turns a grid and a search result into artifacts for people
// and other tools: PNG images (fogleman/gg) and GeoJSON documents
// (paulmach/orb).
//
// Both use grid space: x is the column and y is the row, so the origin is the
// top-left cell.
package render
