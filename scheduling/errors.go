package scheduling

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid slot configuration")
	ErrPhaseClosed          = errors.New("booking phase is closed")
	ErrQuotaExceeded        = errors.New("booking quota for the current phase exceeded")
	ErrSlotFull             = errors.New("slot capacity already claimed")
	ErrDuplicateBooking     = errors.New("student already holds a booking on this slot")
	ErrOverlappingBooking   = errors.New("student already holds a booking overlapping this time range")
	ErrSlotInactive         = errors.New("slot is not active")
	ErrSessionInactive      = errors.New("session is not active")
)
