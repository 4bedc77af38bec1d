package error

import (
	"fmt"
	"io"

	"github.com/next-trace/scg-errbox/contract"
)

// Handle owns exactly one error value behind a type-erased interface.
//
// V is the view the handle was constructed or narrowed to: Unmarked,
// Transferable or Shareable. It carries no data and only decides which
// functions accept the handle.
//
// A handle is the sole owner of its payload. Operations that move the payload
// out (Downcast on success, Erase, ToTransferable, Release) leave the handle
// empty; an empty handle renders as "<nil>" and never matches a downcast.
//
// Handles are used through pointers and must not be copied by value; go vet's
// copylocks check reports copies. The [0]V field makes each view a distinct
// underlying type, so one view cannot be converted into another.
type Handle[V View] struct {
	_ [0]V
	_ noCopy
	box
}

// noCopy is recognised by go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// compile-time guarantee that every view of Handle is itself an error value
var (
	_ contract.Error = (*Handle[Unmarked])(nil)
	_ contract.Error = (*Handle[Transferable])(nil)
	_ contract.Error = (*Handle[Shareable])(nil)
)

// From erases v into an unmarked handle. A nil interface value yields a nil handle.
func From[T contract.Error](v T) *Handle[Unmarked] {
	return wrapBox[Unmarked](newBox(v))
}

// FromTransferable erases v into a handle that may be handed to another goroutine.
func FromTransferable[T contract.Transferable](v T) *Handle[Transferable] {
	return wrapBox[Transferable](newBox(v))
}

// FromShareable erases v into a handle that may also be read concurrently.
func FromShareable[T contract.Shareable](v T) *Handle[Shareable] {
	return wrapBox[Shareable](newBox(v))
}

func wrapBox[V View](b box) *Handle[V] {
	if b.slot == nil {
		return nil
	}

	return &Handle[V]{box: b}
}

// Valid reports whether the handle still owns a payload.
func (h *Handle[V]) Valid() bool { return h != nil && h.slot != nil }

// Release drops the payload. Releasing an empty handle is a no-op.
func (h *Handle[V]) Release() {
	if h != nil {
		h.release()
	}
}

// Tag returns the type tag of the payload, or the zero Tag for an empty handle.
func (h *Handle[V]) Tag() Tag {
	if h == nil {
		return Tag{}
	}

	return h.tag
}

// Marks reports the transferability guarantees of the handle's view.
func (h *Handle[V]) Marks() Marks { return marksOf[V]() }

// ------ contract.Error

func (h *Handle[V]) Error() string {
	if !h.Valid() {
		return "<nil>"
	}

	return h.slot.value().Error()
}

func (h *Handle[V]) Description() string {
	if !h.Valid() {
		return "<nil>"
	}

	return h.slot.value().Description()
}

func (h *Handle[V]) Cause() contract.Error {
	if !h.Valid() {
		return nil
	}

	return h.slot.value().Cause()
}

// Unwrap exposes the payload so errors.Is / errors.As can see through the handle.
func (h *Handle[V]) Unwrap() error {
	if !h.Valid() {
		return nil
	}

	return h.slot.value()
}

// ------ formatting

// Format renders the payload's Display text for %v and %s, the payload and
// its cause chain for %+v, and the handle's structure for %#v.
func (h *Handle[V]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		switch {
		case s.Flag('#'):
			_, _ = io.WriteString(s, h.GoString())
		case s.Flag('+'):
			_, _ = io.WriteString(s, h.Error())
			for c := range Chain(h.Cause()) {
				_, _ = fmt.Fprintf(s, "\ncaused by: %s", c.Description())
			}
		default:
			_, _ = io.WriteString(s, h.Error())
		}
	case 's':
		_, _ = io.WriteString(s, h.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", h.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(%s)", verb, h.Error())
	}
}

func (h *Handle[V]) GoString() string {
	if !h.Valid() {
		return fmt.Sprintf("error.Handle[%s](nil)", h.Marks())
	}

	return fmt.Sprintf("error.Handle[%s]{tag: %s, value: %#v}", h.Marks(), h.tag, h.slot.value())
}

// ------ erased storage

// slot holds the payload. cell[T] is used whenever the concrete type is known
// at erasure; dynCell when the value arrived through an interface type.
type slot interface {
	value() contract.Error
}

type cell[T contract.Error] struct{ v T }

func (c *cell[T]) value() contract.Error { return c.v }

type dynCell struct{ v contract.Error }

func (c *dynCell) value() contract.Error { return c.v }

// box is the representation shared by all views.
type box struct {
	slot slot
	tag  Tag
}

// unboxer is implemented by every *Handle[V].
type unboxer interface {
	unbox() *box
}

func (b *box) unbox() *box { return b }

func newBox[T contract.Error](v T) box {
	tag := TagOf[T]()
	if tag.isInterface() {
		var e contract.Error = v
		if e == nil {
			return box{}
		}

		return box{slot: &dynCell{v: e}, tag: tagOfValue(e)}
	}

	return box{slot: &cell[T]{v: v}, tag: tag}
}

func (b *box) holds(t Tag) bool {
	return b != nil && b.slot != nil && b.tag == t
}

func (b *box) release() {
	b.slot = nil
	b.tag = Tag{}
}

// move transfers the payload into a new box and empties b.
func (b *box) move() box {
	out := *b
	b.release()

	return out
}
