package primitive

import (
	"go.uber.org/atomic"

	"github.com/next-trace/scg-errbox/contract"
)

// BorrowError is returned when a shared borrow is refused because the value is
// exclusively borrowed.
type BorrowError struct {
	contract.ShareSafe
	contract.NoCause
}

func (BorrowError) Description() string { return "already mutably borrowed" }

func (e BorrowError) Error() string { return e.Description() }

// BorrowMutError is returned when an exclusive borrow is refused because the
// value is already borrowed.
type BorrowMutError struct {
	contract.ShareSafe
	contract.NoCause
}

func (BorrowMutError) Description() string { return "already borrowed" }

func (e BorrowMutError) Error() string { return e.Description() }

var (
	_ contract.Shareable = BorrowError{}
	_ contract.Shareable = BorrowMutError{}
)

// exclusive is the borrow state of a Cell held by a RefMut.
const exclusive = -1

// Cell guards a value with a dynamically checked borrow discipline: any number
// of shared borrows, or a single exclusive one. Conflicts are reported as
// errors; nothing ever blocks.
type Cell[T any] struct {
	value T
	state *atomic.Int32 // >0: shared borrows, exclusive: mutably borrowed
}

// NewCell returns a Cell holding v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v, state: atomic.NewInt32(0)}
}

// Ref is a shared borrow of a Cell.
type Ref[T any] struct {
	c *Cell[T]
}

// RefMut is an exclusive borrow of a Cell.
type RefMut[T any] struct {
	c *Cell[T]
}

// TryBorrow takes a shared borrow, failing with BorrowError while an
// exclusive borrow is held.
func (c *Cell[T]) TryBorrow() (*Ref[T], error) {
	for {
		s := c.state.Load()
		if s == exclusive {
			return nil, BorrowError{}
		}

		if c.state.CompareAndSwap(s, s+1) {
			return &Ref[T]{c: c}, nil
		}
	}
}

// TryBorrowMut takes the exclusive borrow, failing with BorrowMutError while
// any other borrow is held.
func (c *Cell[T]) TryBorrowMut() (*RefMut[T], error) {
	if !c.state.CompareAndSwap(0, exclusive) {
		return nil, BorrowMutError{}
	}

	return &RefMut[T]{c: c}, nil
}

// Get returns the borrowed value.
func (r *Ref[T]) Get() T { return r.c.value }

// Release ends the borrow. Further calls are no-ops.
func (r *Ref[T]) Release() {
	if r.c != nil {
		r.c.state.Dec()
		r.c = nil
	}
}

// Get returns a pointer to the borrowed value, valid until Release.
func (r *RefMut[T]) Get() *T { return &r.c.value }

// Release ends the borrow. Further calls are no-ops.
func (r *RefMut[T]) Release() {
	if r.c != nil {
		r.c.state.Store(0)
		r.c = nil
	}
}
