package convert

import (
	"unsafe"
)

// slot holds one logically-uninitialized output element of a sequence
// conversion. The zero value is the uninitialized state; assigning elem
// commits the slot. Wrapping E in a single-field struct keeps the committed
// and uninitialized representations layout-identical, which commitSlots
// asserts before reinterpreting the buffer.
type slot[E any] struct {
	elem E
}

// makeSlots allocates storage for exactly n elements without requiring E to
// carry an initialized marker per slot.
func makeSlots[E any](n int) []slot[E] {
	return make([]slot[E], n)
}

// releaseSlots releases every committed slot. The pointer type assertion
// covers Releaser implementations with either receiver kind, so each
// element is released exactly once.
func releaseSlots[E any](committed []slot[E]) {
	for i := range committed {
		if r, ok := any(&committed[i].elem).(Releaser); ok {
			r.Release()
		}
	}
}

// commitSlots reinterprets a fully-committed slot buffer as the element
// slice in place, avoiding a second pass that would move every element just
// to strip the slot wrapper. Sequence conversion sits on a hot path when
// arrays cross the boundary frequently, so the copy matters.
func commitSlots[E any](buf []slot[E]) []E {
	var zero E
	if sizeofSlot[E]() != unsafe.Sizeof(zero) ||
		alignofSlot[E]() != unsafe.Alignof(zero) {
		panic("convert: slot layout differs from element layout")
	}
	if len(buf) == 0 {
		return []E{}
	}
	return unsafe.Slice((*E)(unsafe.Pointer(unsafe.SliceData(buf))), len(buf))
}

func sizeofSlot[E any]() uintptr {
	var s slot[E]
	return unsafe.Sizeof(s)
}

func alignofSlot[E any]() uintptr {
	var s slot[E]
	return unsafe.Alignof(s)
}
