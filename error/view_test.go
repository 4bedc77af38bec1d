package error_test

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	errbox "github.com/next-trace/scg-errbox/error"
)

func TestMarks_FollowView(t *testing.T) {
	tests := []struct {
		name  string
		marks errbox.Marks
		want  string
	}{
		{name: "shareable", marks: errbox.FromShareable(A{}).Marks(), want: "shareable"},
		{name: "transferable", marks: errbox.FromTransferable(A{}).Marks(), want: "transferable"},
		{name: "unmarked", marks: errbox.From(A{}).Marks(), want: "unmarked"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.marks.String())
			assert.Equal(t, tc.marks.Shareable, tc.want == "shareable")
			assert.Equal(t, tc.marks.Transferable, tc.want != "unmarked")
		})
	}
}

func TestNarrowing_MovesPayload(t *testing.T) {
	s := errbox.FromShareable(A{})

	tr := errbox.ToTransferable(s)
	require.NotNil(t, tr)
	assert.False(t, s.Valid(), "source handle must be emptied by narrowing")
	assert.True(t, errbox.Is[A](tr))
	assert.Equal(t, "transferable", tr.Marks().String())

	u := tr.Erase()
	require.NotNil(t, u)
	assert.False(t, tr.Valid())
	assert.Equal(t, "A-desc", u.Description())
	assert.False(t, u.Marks().Transferable)

	// narrowing an empty handle yields nothing
	assert.Nil(t, errbox.ToTransferable(s))
	assert.Nil(t, tr.Erase())
}

func TestNarrowing_IsOneDirectional(t *testing.T) {
	u := errbox.FromString("oops").Erase()

	// the only way back to a shareable view is reconstructing from the value
	text, rest := errbox.Downcast[errbox.TextError](u)
	require.Nil(t, rest)

	again := errbox.FromShareable(text)
	assert.True(t, again.Marks().Shareable)
	assert.Equal(t, "oops", again.Description())
	assert.False(t, u.Marks().Shareable)
}

func TestViews_NotConvertible(t *testing.T) {
	views := map[string]reflect.Type{
		"unmarked":     reflect.TypeFor[errbox.Handle[errbox.Unmarked]](),
		"transferable": reflect.TypeFor[errbox.Handle[errbox.Transferable]](),
		"shareable":    reflect.TypeFor[errbox.Handle[errbox.Shareable]](),
	}

	for from, ft := range views {
		for to, tt := range views {
			if from == to {
				continue
			}

			t.Run(from+" to "+to, func(t *testing.T) {
				assert.False(t, ft.ConvertibleTo(tt))
				assert.False(t, reflect.PointerTo(ft).ConvertibleTo(reflect.PointerTo(tt)))
			})
		}
	}
}

func TestHandle_CarriesNoCopyMarker(t *testing.T) {
	locker := reflect.TypeFor[sync.Locker]()
	ht := reflect.TypeFor[errbox.Handle[errbox.Shareable]]()

	found := false
	for i := 0; i < ht.NumField(); i++ {
		f := ht.Field(i)
		if !f.Anonymous && reflect.PointerTo(f.Type).Implements(locker) {
			found = true
		}
	}

	assert.True(t, found, "go vet copylocks relies on a Lock/Unlock field")
}

func TestDowncast_FailureKeepsView(t *testing.T) {
	tr := errbox.FromTransferable(A{})

	_, rest := errbox.Downcast[B](tr)
	require.Same(t, tr, rest)
	assert.Equal(t, "transferable", rest.Marks().String())
	assert.Equal(t, errbox.TagOf[A](), rest.Tag())
}

func TestShareable_ConcurrentReaders(t *testing.T) {
	h := errbox.FromString("disk full")

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				if !errbox.Is[errbox.TextError](h) || h.Description() != "disk full" {
					return errbox.FromString("shared read observed a changed handle")
				}

				if _, ok := errbox.DowncastRef[errbox.TextError](h); !ok {
					return errbox.FromString("shared downcast failed")
				}
			}

			return nil
		})
	}

	require.NoError(t, g.Wait())
}

func TestTransferable_MovesAcrossGoroutines(t *testing.T) {
	ch := make(chan *errbox.Handle[errbox.Transferable])
	done := make(chan A)

	go func() {
		h := <-ch
		a, rest := errbox.Downcast[A](h)
		if rest != nil {
			close(done)
			return
		}
		done <- a
	}()

	ch <- errbox.FromTransferable(A{})

	a, ok := <-done
	require.True(t, ok)
	assert.Equal(t, A{}, a)
}

func TestValueForms_OnBorrowedErrors(t *testing.T) {
	c := C{inner: A{}}

	assert.True(t, errbox.ValueIs[A](c.Cause()))
	assert.False(t, errbox.ValueIs[B](c.Cause()))
	assert.False(t, errbox.ValueIs[A](nil))

	a, ok := errbox.ValueAs[A](c.Cause())
	require.True(t, ok)
	assert.Equal(t, A{}, a)

	// a handle can be inspected as itself or through to its payload
	h := errbox.From(Counter{N: 1})
	assert.True(t, errbox.ValueIs[*errbox.Handle[errbox.Unmarked]](h))
	assert.True(t, errbox.ValueIs[Counter](h))

	p := errbox.ValueAsMut[Counter](h)
	require.NotNil(t, p)
	p.N = 9
	assert.Equal(t, "counter 9", h.Error())

	cp := &Counter{N: 4}
	assert.Same(t, cp, errbox.ValueAsMut[Counter](cp))
	assert.Nil(t, errbox.ValueAsMut[B](c))
}
