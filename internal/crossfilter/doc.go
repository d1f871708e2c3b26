// Package crossfilter synchronizes one range filter across pages.
//
// Allowed here:
// - the shared versioned cell and its subscription contract
// - per-page adapters bridging a local control and the cell
// - target resolution and computation invocation
//
// Not allowed here:
// - rendering, chart math, or dataset access
// - event scheduling (the hosting update loop owns dispatch)
package crossfilter
