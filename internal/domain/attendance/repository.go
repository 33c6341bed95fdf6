package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, attendance Attendance) error

	// GetOpenSession returns the employee's attendance record without a
	// check-out, if any.
	GetOpenSession(ctx context.Context, employeeID string) (*Attendance, error)

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter ListFilter) ([]Attendance, int64, error)
}
