package uniqueres_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uniqueres "github.com/cxw42/unique-resource"
)

func TestStackClosesInReverseOrder(t *testing.T) {
	var out strings.Builder
	var s uniqueres.Stack

	s.Defer(func() error { out.WriteString("a"); return nil })
	s.Defer(func() error { out.WriteString("b"); return nil })
	s.Defer(func() error { out.WriteString("c"); return nil })
	require.Equal(t, 3, s.Len())

	require.NoError(t, s.Close())
	assert.Equal(t, "cba", out.String())
	assert.Equal(t, 0, s.Len())
}

func TestStackCloseIdempotent(t *testing.T) {
	var runs int
	var s uniqueres.Stack

	s.Defer(func() error { runs++; return nil })

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.Equal(t, 1, runs)
}

func TestStackJoinsErrors(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	var out strings.Builder
	var s uniqueres.Stack

	s.Defer(func() error { out.WriteString("a"); return errA })
	s.Defer(func() error { out.WriteString("b"); return errB })

	err := s.Close()
	require.ErrorIs(t, err, errA)
	require.ErrorIs(t, err, errB)
	assert.Equal(t, "ba", out.String(), "later cleanups still run when earlier ones fail")
}

func TestStackRelease(t *testing.T) {
	var runs int
	var s uniqueres.Stack

	s.Defer(func() error { runs++; return nil })
	s.Defer(func() error { runs++; return nil })
	s.Release()

	require.NoError(t, s.Close())
	assert.Equal(t, 0, runs)
	assert.Equal(t, 0, s.Len())
}

func TestStackAdopt(t *testing.T) {
	var out strings.Builder
	var s uniqueres.Stack

	h := uniqueres.Make(1, appendDeleter[int](&out))
	uniqueres.Adopt(&s, h)

	assert.False(t, h.Valid(), "adopted handle must be disarmed")
	require.NoError(t, h.Close())
	assert.Empty(t, out.String(), "the stack now owes the cleanup, not the handle")

	require.NoError(t, s.Close())
	assert.Equal(t, "cleaned 1", out.String())
}

func TestStackAdoptDisarmed(t *testing.T) {
	var out strings.Builder
	var s uniqueres.Stack

	h := uniqueres.Make(1, appendDeleter[int](&out))
	h.Release()
	uniqueres.Adopt(&s, h)

	require.NoError(t, s.Close())
	assert.Empty(t, out.String())
}

func TestStackPartialAcquisitionUnwind(t *testing.T) {
	var out strings.Builder

	// A constructor acquiring three resources fails on the third; the
	// stack unwinds the first two in reverse order.
	construct := func() (err error) {
		var s uniqueres.Stack
		defer func() {
			err = errors.Join(err, s.Close())
		}()

		for _, r := range []int{1, 2} {
			uniqueres.Adopt(&s, uniqueres.Make(r, appendDeleter[int](&out)))
		}
		return errors.New("third acquisition failed")
	}

	require.Error(t, construct())
	assert.Equal(t, "cleaned 2cleaned 1", out.String())
}

func TestStackNilCleanupPanics(t *testing.T) {
	var s uniqueres.Stack
	assert.Panics(t, func() { s.Defer(nil) })
}
