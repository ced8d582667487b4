// Package export writes point-in-time snapshots of a group's movie lists as
// JSON or Markdown. It reads through the store and never mutates anything.
package export
