// Package jsengine binds the conversion layer to the goja ECMAScript
// engine.
//
// A Scope wraps a goja runtime and implements denocore.Scope; the values it
// allocates and the results of Eval implement denocore.Value with the
// engine's own semantics (integer immediates, double numbers, ECMAScript
// truthiness, array indexing).
//
//	scope := jsengine.NewScope()
//	val, err := scope.Eval("[1, 2, 3]")
//
// A Scope is not safe for concurrent use, and values must not outlive the
// scope that produced them.
package jsengine
