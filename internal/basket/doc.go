// Package basket implements the collaborative vote basket: each participant
// collects to-watch positions from the list rendering, and the union across
// participants becomes the candidate set for a poll.
//
// Entries store the ordinal value captured at selection time, not the movie
// id, so the basket always reads the way the numbered list looked when the
// participant picked. The tradeoff is staleness: a removal that shifts
// pending positions re-points existing entries at whatever movie now holds
// the ordinal. That matches the product's addressing model and is left as a
// documented limitation.
package basket
