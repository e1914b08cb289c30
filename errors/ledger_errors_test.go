package errors

import (
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeOf(t *testing.T) {
	require.Equal(t, ErrCodeCapExceeded, CodeOf(ErrCapExceeded()))
	require.Equal(t, ErrCodeInternal, CodeOf(goerrors.New("plain")))
	require.Equal(t, ErrCodeInternal, CodeOf(nil))
}

func TestCodeSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("%w: quote was 25, paid 10", ErrFeeNotPaid())

	require.True(t, HasCode(wrapped, ErrCodeFeeNotPaid))
	require.False(t, HasCode(wrapped, ErrCodeCapExceeded))
	require.Equal(t, ErrCodeFeeNotPaid, CodeOf(wrapped))
}

func TestErrorStringCarriesCode(t *testing.T) {
	err := ErrInsufficientBalance()
	require.Contains(t, err.Error(), string(ErrCodeInsufficientBalance))
}
