package services

import (
	"errors"
	"testing"

	"github.com/infplatform/inf_backend/scheduling"
	"github.com/stretchr/testify/assert"
)

func TestWithRetry_BusinessErrorsAreNotRetried(t *testing.T) {
	calls := 0
	err := withRetry(func() error {
		calls++
		return scheduling.ErrSlotFull
	})

	assert.ErrorIs(t, err, scheduling.ErrSlotFull)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_TransientErrorRetriedOnce(t *testing.T) {
	calls := 0
	err := withRetry(func() error {
		calls++
		if calls == 1 {
			return errors.New("connection reset by peer")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWithRetry_RepeatedFailureSurfacedAsTransient(t *testing.T) {
	calls := 0
	err := withRetry(func() error {
		calls++
		return errors.New("connection reset by peer")
	})

	assert.ErrorIs(t, err, ErrTransientStore)
	assert.Equal(t, 2, calls)
}

func TestWithRetry_TransientThenBusinessError(t *testing.T) {
	// The retry can legitimately land on a rule rejection: someone else
	// grabbed the seat while we were backing off.
	calls := 0
	err := withRetry(func() error {
		calls++
		if calls == 1 {
			return errors.New("connection reset by peer")
		}
		return scheduling.ErrSlotFull
	})

	assert.ErrorIs(t, err, scheduling.ErrSlotFull)
	assert.NotErrorIs(t, err, ErrTransientStore)
	assert.Equal(t, 2, calls)
}
