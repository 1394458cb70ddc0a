package client

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithRetrySucceedsFirstTry(t *testing.T) {
	calls := 0
	err := WithRetry(func() error {
		calls++
		return nil
	}, 3, time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetryRecoversAfterTransientFailures(t *testing.T) {
	calls := 0
	err := WithRetry(func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, 3, time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetryExhaustsAndReturnsLastError(t *testing.T) {
	calls := 0
	err := WithRetry(func() error {
		calls++
		return errors.New("still broken")
	}, 3, time.Millisecond)

	assert.EqualError(t, err, "still broken")
	assert.Equal(t, 3, calls)
}

func TestWithRetryStopsOnPermanent(t *testing.T) {
	terminal := errors.New("not found")
	calls := 0
	err := WithRetry(func() error {
		calls++
		return Permanent(terminal)
	}, 5, time.Millisecond)

	assert.Equal(t, 1, calls)
	// The permanent wrapper is stripped before returning
	assert.Equal(t, terminal, err)
}

func TestWithRetryPermanentAfterTransient(t *testing.T) {
	calls := 0
	err := WithRetry(func() error {
		calls++
		if calls == 1 {
			return errors.New("transient")
		}
		return Permanent(errors.New("gone"))
	}, 5, time.Millisecond)

	assert.Equal(t, 2, calls)
	assert.EqualError(t, err, "gone")
}

func TestPermanentNil(t *testing.T) {
	assert.NoError(t, Permanent(nil))
}

func TestWithRetryClampsAttempts(t *testing.T) {
	calls := 0
	err := WithRetry(func() error {
		calls++
		return errors.New("nope")
	}, 0, time.Millisecond)

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
