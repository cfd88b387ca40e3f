package convert

import (
	"reflect"

	denocore "github.com/nathanwhit/deno-core"
	"github.com/nathanwhit/deno-core/errors"
)

// SmallInt is the set of native integral types encodable as the engine's
// immediate integer.
type SmallInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Numeric is the set of native numeric types encodable as the engine's
// general number.
type Numeric interface {
	~int | ~int32 | ~int64 |
		~uint | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Smi marks an integral value for encoding as the engine's compact
// immediate-integer representation. This is the fastest representation for
// values known to fit in 32 bits: immediates are not allocated on the
// engine heap and need no garbage collection.
//
// The conversion goes through a 32-bit signed intermediate. Out-of-range
// values truncate to the low 32 bits, two's complement; callers who cannot
// accept that should use Number instead.
type Smi[T SmallInt] struct {
	Val T
}

// ToValue never fails.
func (s Smi[T]) ToValue(scope denocore.Scope) (denocore.Value, error) {
	return scope.NewInteger(int32(s.Val)), nil
}

// FromValue reads the engine value as an integer. It fails with a type
// mismatch if the value is not integer-like.
func (s *Smi[T]) FromValue(_ denocore.Scope, val denocore.Value) error {
	v, ok := val.Int32()
	if !ok {
		return errors.TypeMismatch(errors.PhaseFromValue, typeName[T]())
	}
	s.Val = T(v)
	return nil
}

// Number marks a numeric value for encoding as the engine's double-precision
// number. 64-bit integers outside the exact-integer range of a double lose
// precision on round-trip; this is accepted, not an error.
type Number[T Numeric] struct {
	Val T
}

// ToValue never fails.
func (n Number[T]) ToValue(scope denocore.Scope) (denocore.Value, error) {
	return scope.NewNumber(float64(n.Val)), nil
}

// FromValue reads the engine value as T's numeric kind. It fails with a
// type mismatch if the value is not a number of that kind.
func (n *Number[T]) FromValue(_ denocore.Scope, val denocore.Value) error {
	v, ok := readNumeric[T](val)
	if !ok {
		return errors.TypeMismatch(errors.PhaseFromValue, typeName[T]())
	}
	n.Val = v
	return nil
}

// readNumeric dispatches to the width-specific reader for T.
func readNumeric[T Numeric](val denocore.Value) (T, bool) {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Float32:
		v, ok := val.Float32()
		return T(v), ok
	case reflect.Float64:
		v, ok := val.Float64()
		return T(v), ok
	case reflect.Int32:
		v, ok := val.Int32()
		return T(v), ok
	case reflect.Int, reflect.Int64:
		v, ok := val.Int64()
		return T(v), ok
	case reflect.Uint32:
		v, ok := val.Uint32()
		return T(v), ok
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		v, ok := val.Uint64()
		return T(v), ok
	}
	var zero T
	return zero, false
}

// typeName returns T's displayable name, used verbatim in error messages.
func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
