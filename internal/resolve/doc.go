// Package resolve maps user references onto stored movies.
//
// Ordinals are 1-based positions in the listing the user last saw; they are
// never cached and every resolution re-derives the listing from the store so
// a concurrent removal cannot make an ordinal silently point at the wrong
// movie. Text references use a deliberately simple two-tier match: folded
// exact equality first, then folded substring containment in creation order.
package resolve
