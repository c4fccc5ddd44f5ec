// Package vm implements the GritVM accumulator machine and its program decoder.
//
// The machine consists of a single signed integer accumulator, a resizable
// data memory of signed integer cells, and an instruction store that is
// immutable once loaded, paired with a cursor moved by signed relative
// distances. A five-state status lifecycle (WAITING, READY, RUNNING, HALTED,
// ERRORED) governs when loading and running are legal.
//
// The decoder turns GVM program text into an instruction sequence. Beyond
// the plain `OPERATION argument` form it supports comments, equates, jump
// labels, and compile-time expression evaluation.
package vm
