package error

// View is the set of access modes a Handle can be held in.
type View interface {
	Unmarked | Transferable | Shareable
}

// Unmarked handles carry no transferability guarantee.
type Unmarked struct{}

// Transferable handles may be handed to another goroutine.
type Transferable struct{}

// Shareable handles may be handed over and read concurrently.
type Shareable struct{}

// Marks is the run-time rendering of a view.
type Marks struct {
	Transferable bool
	Shareable    bool
}

func (m Marks) String() string {
	switch {
	case m.Shareable:
		return "shareable"
	case m.Transferable:
		return "transferable"
	default:
		return "unmarked"
	}
}

func marksOf[V View]() Marks {
	var v V
	switch any(v).(type) {
	case Shareable:
		return Marks{Transferable: true, Shareable: true}
	case Transferable:
		return Marks{Transferable: true}
	default:
		return Marks{}
	}
}

// Erase narrows the handle to the unmarked view, moving the payload into the
// returned handle. h is left empty.
func (h *Handle[V]) Erase() *Handle[Unmarked] {
	if !h.Valid() {
		return nil
	}

	return &Handle[Unmarked]{box: h.move()}
}

// ToTransferable narrows a shareable handle to the transferable view, moving
// the payload into the returned handle. h is left empty.
//
// There is no conversion in the other direction: a stronger view can only be
// obtained by constructing a new handle from a value that declares it.
func ToTransferable(h *Handle[Shareable]) *Handle[Transferable] {
	if !h.Valid() {
		return nil
	}

	return &Handle[Transferable]{box: h.move()}
}
