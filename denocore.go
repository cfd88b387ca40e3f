package denocore

// Value is an engine-managed handle to a value living in the embedded
// engine's heap. Values are owned by the engine's garbage collector and are
// only valid for the lifetime of the Scope that produced them.
//
// The reader operations report the value interpreted as a particular native
// kind. Each returns ok=false when the engine value is not of that kind;
// none of them coerce across kinds except IsTrue, which applies the engine's
// truthiness rule to any value.
type Value interface {
	Int32() (int32, bool)
	Int64() (int64, bool)
	Uint32() (uint32, bool)
	Uint64() (uint64, bool)
	Float32() (float32, bool)
	Float64() (float64, bool)

	// IsTrue reports the engine's truthiness of the value. It is total:
	// every engine value is either truthy or falsy.
	IsTrue() bool

	// AsArray returns the value as an indexed array, or ok=false if the
	// value is not array-like.
	AsArray() (Array, bool)
}

// Array is an engine value with positional access.
type Array interface {
	Value

	Len() uint32
	Get(i uint32) (Value, error)
}

// Scope is a handle into the embedded engine's value allocation machinery.
//
// A Scope is borrowed for the duration of a single conversion call and must
// not be retained past it or shared across goroutines. Allocated values are
// bound to the scope's lifetime.
type Scope interface {
	// NewInteger allocates the engine's compact immediate-integer
	// representation. No engine heap allocation takes place.
	NewInteger(v int32) Value

	// NewNumber allocates the engine's general double-precision number.
	NewNumber(v float64) Value

	// NewBoolean allocates an engine boolean.
	NewBoolean(v bool) Value

	// NewArray allocates an indexed array holding the given elements in
	// order. The elements must have been allocated from the same scope.
	NewArray(elems []Value) Value
}
