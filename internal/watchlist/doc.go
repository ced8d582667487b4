// Package watchlist persists group movie lists in SQLite and exposes helpers
// for driving the to-watch/watched lifecycle.
//
// The Store manages database connections, schema initialization, the
// insert-or-report-existing add path, status transitions, and the vote basket
// tables. Titles are unique per group under Unicode case folding; the folded
// form is stored alongside the display title so the constraint lives in a
// single unique index instead of application-side checks.
//
// Treat this package as the single source of truth for list semantics; when
// you add new statuses or fields, update schema.sql and bump schemaVersion.
package watchlist
