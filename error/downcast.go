package error

import (
	"github.com/next-trace/scg-errbox/contract"
)

// Is reports whether the handle's payload is of concrete type T.
func Is[T contract.Error, V View](h *Handle[V]) bool {
	return h.boxed().holds(TagOf[T]())
}

// DowncastRef returns a copy of the payload if it is of type T. The payload
// itself is neither moved nor modified.
func DowncastRef[T contract.Error, V View](h *Handle[V]) (T, bool) {
	return refOf[T](h.boxed())
}

// DowncastMut returns a pointer to the payload if it is of type T, nil otherwise.
// The pointer stays valid until the handle is consumed or released.
func DowncastMut[T contract.Error, V View](h *Handle[V]) *T {
	return mutOf[T](h.boxed())
}

// Downcast moves the payload out of h if it is of type T.
//
// On success it returns the value and a nil handle, and h is left empty.
// On mismatch it returns the zero T and h itself, untouched: same payload,
// same view. A failed Downcast is indistinguishable from not calling it.
func Downcast[T contract.Error, V View](h *Handle[V]) (T, *Handle[V]) {
	b := h.boxed()

	v, ok := refOf[T](b)
	if !ok {
		return v, h
	}

	b.release()

	return v, nil
}

// ------ borrowed forms

// ValueIs reports whether e is of concrete type T. When e is a handle that is
// not itself a T, its payload is inspected instead.
func ValueIs[T contract.Error](e contract.Error) bool {
	if e == nil {
		return false
	}

	if tagOfValue(e) == TagOf[T]() {
		return true
	}

	if u, ok := e.(unboxer); ok {
		return u.unbox().holds(TagOf[T]())
	}

	return false
}

// ValueAs returns e as a T, looking through a handle like ValueIs does.
func ValueAs[T contract.Error](e contract.Error) (T, bool) {
	if v, ok := e.(T); ok && tagOfValue(e) == TagOf[T]() {
		return v, true
	}

	if u, ok := e.(unboxer); ok {
		return refOf[T](u.unbox())
	}

	var zero T

	return zero, false
}

// ValueAsMut returns a pointer through which the T behind e can be modified:
// e itself when it is a *T, or the payload storage when e is a handle holding a T.
func ValueAsMut[T contract.Error](e contract.Error) *T {
	if p, ok := any(e).(*T); ok {
		return p
	}

	if u, ok := e.(unboxer); ok {
		return mutOf[T](u.unbox())
	}

	return nil
}

// ------ guarded casts

func (h *Handle[V]) boxed() *box {
	if h == nil {
		return nil
	}

	return &h.box
}

func refOf[T contract.Error](b *box) (T, bool) {
	var zero T
	if !b.holds(TagOf[T]()) {
		return zero, false
	}

	if c, ok := b.slot.(*cell[T]); ok {
		return c.v, true
	}

	v, ok := b.slot.value().(T)

	return v, ok
}

func mutOf[T contract.Error](b *box) *T {
	if !b.holds(TagOf[T]()) {
		return nil
	}

	if c, ok := b.slot.(*cell[T]); ok {
		return &c.v
	}

	v, ok := b.slot.value().(T)
	if !ok {
		return nil
	}

	// re-seat a dynamically erased payload so its storage has a stable *T
	c := &cell[T]{v: v}
	b.slot = c

	return &c.v
}
