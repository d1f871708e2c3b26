// Package tui is the terminal frontend. It owns the Bubble Tea update
// loop, one tab per dashboard page, the year-range control on each tab
// and the panels the chart computations render into.
//
// Allowed here:
//   - bubbletea model, key handling, styles, layout
//   - driving crossfilter adapters from key events
//   - issuing chart commands and applying their results
//
// Not allowed here:
//   - chart drawing (internal/charts)
//   - SQL or dataset loading (internal/database, internal/dataset)
//   - layout file parsing (internal/layout)
//
// Everything runs on the update loop. Chart commands are the only
// goroutines; they post a message carrying the cell version they were
// started under, and results from superseded versions are dropped on
// receipt.
package tui
