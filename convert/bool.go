package convert

import (
	denocore "github.com/nathanwhit/deno-core"
)

// Bool adapts the native bool to the engine's boolean value.
type Bool bool

// ToValue never fails.
func (b Bool) ToValue(scope denocore.Scope) (denocore.Value, error) {
	return scope.NewBoolean(bool(b)), nil
}

// FromValue coerces any engine value through the engine's truthiness rule.
// Unlike the numeric adapters it never fails: there is no type-mismatch
// case for boolean inbound conversion.
func (b *Bool) FromValue(_ denocore.Scope, val denocore.Value) error {
	*b = Bool(val.IsTrue())
	return nil
}
