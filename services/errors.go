package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/infplatform/inf_backend/scheduling"
	"gorm.io/gorm"
)

var (
	ErrTransientStore             = errors.New("transient store error")
	ErrRegenerationPartialFailure = errors.New("slot regeneration failed for some sessions")
	ErrNotFound                   = errors.New("record not found")
	ErrBookingNotCancellable      = errors.New("booking can no longer be cancelled")
	ErrForbidden                  = errors.New("operation not permitted for this user")
)

const transientRetryDelay = 250 * time.Millisecond

// isBusinessError distinguishes expected rule rejections from store faults.
// Only the latter are retried.
func isBusinessError(err error) bool {
	for _, sentinel := range []error{
		scheduling.ErrInvalidConfiguration,
		scheduling.ErrPhaseClosed,
		scheduling.ErrQuotaExceeded,
		scheduling.ErrSlotFull,
		scheduling.ErrDuplicateBooking,
		scheduling.ErrOverlappingBooking,
		scheduling.ErrSlotInactive,
		scheduling.ErrSessionInactive,
		gorm.ErrRecordNotFound,
		ErrNotFound,
		ErrBookingNotCancellable,
		ErrForbidden,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// withRetry runs fn and retries it once after a short delay when it fails
// with anything other than a business rejection. A second failure is
// surfaced as ErrTransientStore so callers can offer a retry affordance.
func withRetry(fn func() error) error {
	err := fn()
	if err == nil || isBusinessError(err) {
		return err
	}

	time.Sleep(transientRetryDelay)
	if err = fn(); err == nil || isBusinessError(err) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrTransientStore, err)
}
