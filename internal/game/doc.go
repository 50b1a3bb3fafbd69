// Package game owns the lifecycle of one code-breaking round.
//
// Session is the state machine over a single server-side game:
// created in progress, advanced by sequential guess submissions, and
// deleted best-effort when the round ends. Loop drives a session through
// the attempt budget, feeding it guesses from a GuessSource and emitting
// game-state events to a Reporter. The server is authoritative for all
// scoring; nothing in this package computes feedback locally.
package game
