package convert

import (
	denocore "github.com/nathanwhit/deno-core"
	"github.com/nathanwhit/deno-core/errors"
)

// Seq adapts an ordered native collection of convertible elements to the
// engine's indexed array value. Length and element order are preserved
// exactly; conversion in either direction is all-or-nothing.
//
// E is the element type, PE its pointer implementing the inbound
// capability:
//
//	var s convert.Seq[convert.Smi[int32], *convert.Smi[int32]]
type Seq[E ToValue, PE FromValuePtr[E]] []E

func (s Seq[E, PE]) ToValue(scope denocore.Scope) (denocore.Value, error) {
	return ToSeq(scope, []E(s))
}

func (s *Seq[E, PE]) FromValue(scope denocore.Scope, val denocore.Value) error {
	out, err := FromSeq[E, PE](scope, val)
	if err != nil {
		return err
	}
	*s = Seq[E, PE](out)
	return nil
}

// ToSeq converts every element with the element type's outbound capability
// and allocates one engine array holding the results in order.
//
// The first element failure aborts the conversion and is propagated as-is.
// The engine array is only allocated after every element has converted, so
// no partial array is observable past a failure.
func ToSeq[E ToValue](scope denocore.Scope, elems []E) (denocore.Value, error) {
	buf := make([]denocore.Value, len(elems))
	for i, e := range elems {
		v, err := e.ToValue(scope)
		if err != nil {
			return nil, err
		}
		buf[i] = v
	}
	return scope.NewArray(buf), nil
}

// FromSeq converts an engine array into a native slice, converting each
// element with the element type's inbound capability.
//
// Each output slot is touched exactly once: converted elements are
// committed in place, and on a failure at index i the already-committed
// slots 0..i-1 are released (elements implementing Releaser have Release
// run once) before the element's error is returned wrapped. The caller
// never observes a partially-initialized slice.
func FromSeq[E any, PE FromValuePtr[E]](scope denocore.Scope, val denocore.Value) ([]E, error) {
	arr, ok := val.AsArray()
	if !ok {
		return nil, errors.New(errors.PhaseFromValue, errors.KindTypeMismatch).
			Expected(typeName[[]E]()).
			Detail("value is not array-like").
			Build()
	}

	n := int(arr.Len())
	buf := makeSlots[E](n)

	for i := 0; i < n; i++ {
		ev, err := arr.Get(uint32(i))
		if err == nil {
			err = PE(&buf[i].elem).FromValue(scope, ev)
		}
		if err != nil {
			releaseSlots(buf[:i])
			return nil, errors.Element(errors.PhaseFromValue, i, err)
		}
	}

	return commitSlots(buf), nil
}
