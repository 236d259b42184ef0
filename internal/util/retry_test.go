package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetryErrStopsOnSuccess(t *testing.T) {
	calls := 0
	err := RetryErr(5, func() error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	})

	assert.NoError(t, err, "RetryErr should succeed once fn does")
	assert.Equal(t, 3, calls, "RetryErr should stop after the first success")
}

func TestRetryErrReturnsLastError(t *testing.T) {
	lastErr := errors.New("still broken")
	calls := 0
	err := RetryErr(3, func() error {
		calls++
		return lastErr
	})

	assert.ErrorIs(t, err, lastErr)
	assert.Equal(t, 3, calls)
}

func TestRetryErrDefaultsToOneTry(t *testing.T) {
	calls := 0
	_ = RetryErr(0, func() error {
		calls++
		return errors.New("boom")
	})

	assert.Equal(t, 1, calls, "maxTries <= 0 should mean a single attempt")
}
