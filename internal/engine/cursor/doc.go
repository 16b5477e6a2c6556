// Package cursor provides the cursor model for the viewer: a cell
// position over the buffer plus the sticky-column memory carried
// across consecutive vertical moves.
//
// All motion arithmetic saturates. Out-of-range positions are
// structurally unreachable rather than being an error state, which is
// what lets the rest of the engine index lines without guards.
package cursor
