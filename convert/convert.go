package convert

import (
	denocore "github.com/nathanwhit/deno-core"
)

// ToValue is the outbound conversion capability. Implementations consume
// the native value and allocate exactly one engine value through the scope
// (plus one per contained element for compound values).
//
// Implementations whose conversion cannot fail must always return a nil
// error.
type ToValue interface {
	ToValue(scope denocore.Scope) (denocore.Value, error)
}

// FromValue is the inbound conversion capability. Implementations borrow
// the engine value for the duration of the call and fill in the receiver.
//
// Failures carry a message naming the expected native type.
type FromValue interface {
	FromValue(scope denocore.Scope, val denocore.Value) error
}

// FromValuePtr constrains a pointer to E implementing FromValue. Compound
// adapters are generic over their element's own capability through it.
type FromValuePtr[E any] interface {
	*E
	FromValue
}

// Releaser is implemented by native types that hold resources needing
// explicit release. Compound inbound conversion releases every
// already-converted element exactly once when a later element fails.
type Releaser interface {
	Release()
}
