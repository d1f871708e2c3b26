// Package layout loads the page declarations that wire controls to
// chart computations.
//
// Allowed here:
// - layout.toml parsing, defaults and validation
// - registering parsed pages with the filter engine
//
// Not allowed here:
// - rendering, key handling or any bubbletea types
// - dataset or storage access
package layout
