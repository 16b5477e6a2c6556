// Package buffer provides the immutable text buffer backing the
// viewer. A buffer is an ordered sequence of lines loaded once from a
// file (or created empty) and never mutated afterwards.
//
// Line lengths are reported in grapheme clusters via rivo/uniseg, so
// a combining sequence or an emoji counts as one column regardless of
// how many bytes or code points it spans. Counts are computed once at
// construction; since content never changes, queries are O(1).
//
// Loading fails open: a read error produces an empty buffer that still
// remembers the path it was asked for. The viewer treats the empty
// buffer as a perfectly normal state.
package buffer
