package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAt_WrapsSentinelAndCapturesLocation(t *testing.T) {
	err := raise()

	require.Error(t, err)
	require.ErrorIs(t, err, ErrDataTooShort)

	var e *Error
	require.True(t, errors.As(err, &e))
	require.Contains(t, e.Loc, "errs_test.go")
}

func raise() error {
	return At(ErrDataTooShort)
}

func TestUnknownFilterElementError(t *testing.T) {
	err := &UnknownFilterElementError{Type: 0xAB}
	require.Contains(t, err.Error(), "0xab")
}
