// Package window implements the incremental virtualization engine: a
// sliding window of materialised rows over an ordered contact list.
//
// # Overview
//
// Only enough rows exist to cover the viewport plus a fixed overscan margin
// on each side. As the scroll offset moves, rows that slide out of the
// spawnable band are released to a recycle pool and rows that slide in are
// acquired from it, so steady-state scrolling allocates nothing.
//
// # Coordinates
//
// All vertical measures are terminal cells with y growing downward. Record
// index i lives at content-local y = i * step, where step is row height
// plus the inter-row gap. Applying the scroll offset gives the screen
// position; a row is eligible to exist while that position stays inside
//
//	[-overscan*step, viewportHeight + overscan*step]
//
// with both bounds inclusive — a row exactly on the edge fits, which stops
// edge rows from oscillating between spawn and trim.
//
// # Window state
//
// The window is the contiguous run spawned[0..n), ordered top to bottom,
// with top and bottom holding the first and last record indices (both -1
// while uninitialised). Contiguity is the structural invariant:
//
//	bottom - top + 1 == len(spawned)
//
// # Tick protocol
//
// The host drives Tick once per render frame with the current offset. One
// tick at a time: an updating guard makes a tick arriving mid-tick a no-op.
// A tick seeds row 0 when uninitialised, reseats the window if a scroll
// jump detached it from the band entirely, then runs top and bottom
// maintenance. Both sides trim rows that no longer fit before either side
// grows, so rows released this tick are pooled before growth acquires; a
// side that trimmed does not also grow within the same tick. The loops
// yield to the cooperative scheduler after every 7 rows, the full-reset
// release loop after every 30, so large windows cannot stall other tasks.
//
// # Full reset
//
// A new result set goes through Reset: rendering is disabled, every spawned
// row is released back to the pool, the window indices clear to -1, the new
// list is installed and rendering re-enables. Suspend lets the host disable
// rendering before it even starts fetching, covering the whole exchange.
//
// # Failure semantics
//
// An empty record list is valid; ticks are no-ops. Everything here is pure
// in-memory bookkeeping with no error paths; indexing past the record list
// would be a programmer error, not a handled condition.
package window
