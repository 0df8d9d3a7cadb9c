package domain

import "errors"

var (
	// validation
	ErrSliceBounds   = errors.New("slice lower bound must be less than upper bound")
	ErrSliceOverlap  = errors.New("slice range overlaps with another commission slice")
	ErrNotCoach      = errors.New("commission tracking is only available for coaches")
	ErrTrackDates    = errors.New("track start date must not be after close date")
	ErrInvalidAmount = errors.New("top-up amount must be positive")

	// authorization
	ErrNotAllowed = errors.New("not allowed")

	// settlement
	ErrNoBalance            = errors.New("no closed commissions available")
	ErrAmountExceedsBalance = errors.New("amount exceeds current balance")

	// external dependencies
	ErrWalletProgramNotFound = errors.New("ewallet program not found")

	ErrSliceNotFound = errors.New("commission slice not found")
	ErrTrackNotFound = errors.New("commission track not found")
	ErrUserNotFound  = errors.New("user not found")
)
