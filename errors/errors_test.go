package errors_test

import (
	"fmt"
	"testing"

	"github.com/molecula/coffer/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	t.Run("Is", func(t *testing.T) {
		uncoded := errors.New(errors.ErrUncoded, "uncoded error")
		oob := newErrIndexOutOfRange(12, 4)
		empty := newErrEmptyStructure("list")
		oobCustom := errors.New(errors.IndexOutOfRange, "custom out of range message")

		tests := []struct {
			err    error
			target errors.Code
			exp    bool
		}{
			{
				err:    uncoded,
				target: errors.ErrUncoded,
				exp:    true,
			},
			{
				err:    uncoded,
				target: errors.IndexOutOfRange,
				exp:    false,
			},
			{
				err:    oob,
				target: errors.IndexOutOfRange,
				exp:    true,
			},
			{
				err:    oob,
				target: errors.EmptyStructure,
				exp:    false,
			},
			{
				err:    errors.Wrap(empty, "with message"),
				target: errors.EmptyStructure,
				exp:    true,
			},
			{
				err:    oobCustom,
				target: errors.IndexOutOfRange,
				exp:    true,
			},
		}

		for i, test := range tests {
			t.Run(fmt.Sprintf("test-%d", i), func(t *testing.T) {
				got := errors.Is(test.err, test.target)
				assert.Equal(t, test.exp, got)
			})
		}
	})

	t.Run("Newf", func(t *testing.T) {
		err := errors.Newf(errors.DomainMismatch, "universe %d vs %d", 8, 16)
		assert.True(t, errors.Is(err, errors.DomainMismatch))
		assert.Equal(t, "universe 8 vs 16", err.Error())
	})
}

func newErrIndexOutOfRange(index, size int) error {
	return errors.Newf(
		errors.IndexOutOfRange,
		"index %d out of range [0,%d)", index, size,
	)
}

func newErrEmptyStructure(what string) error {
	return errors.New(
		errors.EmptyStructure,
		"remove from empty "+what,
	)
}
