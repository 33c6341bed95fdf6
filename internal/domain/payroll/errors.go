package payroll

import "errors"

var (
	// Cycle errors
	ErrCycleNotFound   = errors.New("payroll cycle not found")
	ErrCycleOverlap    = errors.New("payroll cycle overlaps an existing cycle")
	ErrCycleHasDetails = errors.New("payroll cycle already has calculated results")
	ErrCycleCompleted  = errors.New("payroll cycle is already completed")

	// Period validation errors, in the order the rules are checked
	ErrPeriodRequired       = errors.New("start and end dates are required")
	ErrPeriodInvalidFormat  = errors.New("invalid date format")
	ErrPeriodOrder          = errors.New("start date must precede end date")
	ErrPeriodTooLong        = errors.New("date range exceeds 1 year")
	ErrPeriodTooFarInFuture = errors.New("end date is too far in the future")

	// Detail errors
	ErrDetailNotFound = errors.New("payroll detail not found")
)
