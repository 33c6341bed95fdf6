package response

import (
	"errors"
	"net/http"

	"github.com/blackriis/nobicha-sub001/internal/domain/attendance"
	"github.com/blackriis/nobicha-sub001/internal/domain/auth"
	"github.com/blackriis/nobicha-sub001/internal/domain/branch"
	"github.com/blackriis/nobicha-sub001/internal/domain/employee"
	"github.com/blackriis/nobicha-sub001/internal/domain/payroll"
	"github.com/blackriis/nobicha-sub001/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Payroll period validation errors
	case errors.Is(err, payroll.ErrPeriodRequired),
		errors.Is(err, payroll.ErrPeriodInvalidFormat),
		errors.Is(err, payroll.ErrPeriodOrder),
		errors.Is(err, payroll.ErrPeriodTooLong),
		errors.Is(err, payroll.ErrPeriodTooFarInFuture):
		BadRequest(w, err.Error(), nil)

	// Payroll cycle errors
	case errors.Is(err, payroll.ErrCycleNotFound):
		NotFound(w, "Payroll cycle not found")
	case errors.Is(err, payroll.ErrCycleOverlap):
		Conflict(w, "Payroll cycle overlaps an existing cycle")
	case errors.Is(err, payroll.ErrCycleHasDetails):
		Conflict(w, "Payroll cycle already has calculated results")
	case errors.Is(err, payroll.ErrCycleCompleted):
		Conflict(w, "Payroll cycle is already completed")
	case errors.Is(err, payroll.ErrDetailNotFound):
		NotFound(w, "Payroll detail not found")

	// Attendance errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "You have already checked in")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "You have not checked in yet")
	case errors.Is(err, attendance.ErrOutsideAllowedRadius):
		BadRequest(w, "You are outside the allowed branch radius", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Employee / branch errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is not active")
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, "Branch not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
