// Package gridpath finds walkable routes across rectangular tile grids.
//
// It exposes three entry points:
//
//   - FindPath: run the search to completion and get the route as coordinates.
//   - Search: same search, returning a Result with cost and expansion counts.
//   - FindPaths: run many independent searches over one grid on a worker pool.
//
// Cells take part in a search by implementing Walkable. Movement is
// four-directional and every coordinate is expanded at most once, so the
// first route that reaches a cell is the one kept for it.
package gridpath
