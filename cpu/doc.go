// Package cpu implements the Aurora-16 processor core and its assembler.
//
// The processor is a 16-bit word-oriented machine with eight general
// registers (R7 aliases the stack pointer), a four-flag status register, and
// variable-length instructions: a fixed 4-byte header followed by up to two
// 16-bit extension words. All memory traffic goes through a bus that routes
// addresses to memory-mapped devices first and flat RAM otherwise.
//
// The assembler is a single-pass encoder for the Aurora-16 source language,
// supporting labels, constants, data directives, forward references resolved
// by a patch list, and compile-time $(...) expression evaluation.
package cpu
