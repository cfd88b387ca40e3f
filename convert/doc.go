// Package convert defines the two conversion capabilities of the
// host/engine boundary and the adapters built on them.
//
// # Capabilities
//
// Outbound conversion consumes a native value and serializes it into the
// engine's heap:
//
//	type ToValue interface {
//	    ToValue(scope denocore.Scope) (denocore.Value, error)
//	}
//
// Inbound conversion borrows an engine value and deserializes it into the
// receiver, following the standard library's decode-into idiom:
//
//	type FromValue interface {
//	    FromValue(scope denocore.Scope, val denocore.Value) error
//	}
//
// Implementations are supplied per native type. The adapters in this
// package cover the primitive cases; user-defined types implement the
// interfaces directly, typically by delegating to an adapter:
//
//	type Foo struct{ n int32 }
//
//	func (f Foo) ToValue(scope denocore.Scope) (denocore.Value, error) {
//	    // Pass as an immediate integer for performance.
//	    return convert.Smi[int32]{f.n}.ToValue(scope)
//	}
//
// # Adapters
//
//	Smi[T]     engine immediate integer, 32-bit intermediate
//	Number[T]  engine double-precision number
//	Bool       engine boolean, inbound uses engine truthiness
//	Seq[E, PE] engine indexed array of convertible elements
//
// Conversions documented as infallible always return a nil error; callers
// may discard it.
//
// # Compound atomicity
//
// Sequence conversion is all-or-nothing. Outbound stops at the first
// element failure before any engine array exists. Inbound rolls back every
// already-converted element (running Release on elements that implement
// Releaser) before propagating the failure, so no partially-initialized
// native sequence is ever observable.
package convert
