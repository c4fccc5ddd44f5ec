// Package io provides output sink implementations for the GritVM machine.
// The OUTPUT instruction emits the accumulator's value to a Sink each time
// it executes, in execution order. Sinks include a sequential text stream
// (Tape) and a bounded in-memory recorder (Ring).
package io

// Sink defines the interface for all output sinks in the GritVM system.
type Sink interface {
	// Emit writes a single machine value to the sink.
	Emit(value int) error
	// Rewind resets the sink to its initial state.
	Rewind()
}
