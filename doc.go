// Package denocore provides the value-marshalling boundary between a Go host
// and an embedded script engine.
//
// Passing data into scripted code requires serializing native Go values into
// engine-managed values, and receiving arguments back requires the reverse.
// This package defines the two sides of that boundary and the small library
// of adapters built on them.
//
// # Architecture Overview
//
//	denocore/            Root package with the Scope, Value and Array interfaces
//	├── convert/         ToValue/FromValue capabilities and the primitive,
//	│                    numeric and sequence adapters
//	├── errors/          Structured error types for conversion failures
//	├── jsengine/        goja-backed Scope implementation
//	└── cmd/denoconv     REPL for inspecting conversions interactively
//
// # Quick Start
//
// Marshal a slice of integers into the engine and back:
//
//	scope := jsengine.NewScope()
//
//	val, err := convert.ToSeq(scope, []convert.Smi[int32]{{1}, {2}, {3}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	back, err := convert.FromSeq[convert.Smi[int32]](scope, val)
//	fmt.Println(back, err) // [{1} {2} {3}] <nil>
//
// # Representation Choices
//
// Numbers cross the boundary in one of two engine representations:
//
//   - Smi: the engine's compact immediate integer. No engine heap
//     allocation, fastest for values known to fit in 32 bits.
//   - Number: the engine's general double-precision number. Accepts any
//     native numeric type; 64-bit integers above 2^53 lose precision.
//
// # Ownership
//
// A Scope is borrowed for exactly one top-level conversion call. Engine
// values are garbage-collector managed and must not outlive their scope.
// Outbound conversion consumes the native value; inbound conversion
// produces a newly-owned one.
//
// # Thread Safety
//
// Scopes and the values they produce are not safe for concurrent use.
// Conversions are synchronous and run to completion on the calling
// goroutine.
package denocore
