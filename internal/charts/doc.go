// Package charts contains the chart computations the synchronized
// filter drives.
//
// Allowed here:
// - pure rendering functions from (table, range, viewport) to a string
// - axis scaling, palettes and bar composition helpers
//
// Not allowed here:
// - knowledge of pages, controls or the shared cell
// - dataset loading or storage access
package charts
