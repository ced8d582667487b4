// Package engine is the operation surface the transport layer calls.
//
// Every operation is keyed by a group id and a Participant and returns
// either a result payload or a typed error carrying the offending input, so
// the transport can render precise messages. The engine holds no state of
// its own between calls; everything lives in the store.
package engine
