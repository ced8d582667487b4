// Package poll turns a bounded movie subset into a structured choice set.
// Composition only validates and shapes; it never dispatches anything.
package poll
