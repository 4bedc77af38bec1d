package primitive_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errbox "github.com/next-trace/scg-errbox/error"
	"github.com/next-trace/scg-errbox/primitive"
)

func TestCell_BorrowConflicts(t *testing.T) {
	c := primitive.NewCell(10)

	r1, err := c.TryBorrow()
	require.NoError(t, err)
	r2, err := c.TryBorrow()
	require.NoError(t, err)
	assert.Equal(t, 10, r1.Get())
	assert.Equal(t, 10, r2.Get())

	_, err = c.TryBorrowMut()
	require.ErrorIs(t, err, primitive.BorrowMutError{})
	assert.Equal(t, "already borrowed", err.(primitive.BorrowMutError).Description())

	r1.Release()
	r1.Release() // no-op
	_, err = c.TryBorrowMut()
	require.Error(t, err, "one shared borrow is still held")

	r2.Release()

	m, err := c.TryBorrowMut()
	require.NoError(t, err)
	*m.Get() = 11

	_, err = c.TryBorrow()
	require.ErrorIs(t, err, primitive.BorrowError{})
	assert.Equal(t, "already mutably borrowed", err.(primitive.BorrowError).Description())

	m.Release()

	r, err := c.TryBorrow()
	require.NoError(t, err)
	assert.Equal(t, 11, r.Get())
	r.Release()
}

func TestBorrowErrors_Downcastable(t *testing.T) {
	c := primitive.NewCell("x")
	m, err := c.TryBorrowMut()
	require.NoError(t, err)
	defer m.Release()

	_, err = c.TryBorrow()
	h := errbox.FromShareable(err.(primitive.BorrowError))

	assert.True(t, errbox.Is[primitive.BorrowError](h))
	assert.False(t, errbox.Is[primitive.BorrowMutError](h))
	assert.True(t, errors.Is(h, primitive.BorrowError{}))
}

func TestFprintf_FormatError(t *testing.T) {
	_, err := primitive.Fprintf(failingWriter{}, "%d", 1)
	require.Error(t, err)
	assert.Equal(t, "an error occurred when formatting an argument", err.(primitive.FormatError).Description())
	assert.Nil(t, err.(primitive.FormatError).Cause())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }
