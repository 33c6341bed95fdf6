package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access methods for payroll cycles and
// persisted calculation results.
type PayrollRepository interface {
	// Cycles
	CreateCycle(ctx context.Context, cycle PayrollCycle) (PayrollCycle, error)
	GetCycleByID(ctx context.Context, id string) (PayrollCycle, error)
	ListCycles(ctx context.Context) ([]PayrollCycle, error)
	DeleteCycle(ctx context.Context, id string) error
	UpdateCycleStatus(ctx context.Context, id string, status CycleStatus) error
	HasOverlappingCycle(ctx context.Context, start, end time.Time, excludeCycleID *string) (bool, error)

	// Details
	UpsertDetail(ctx context.Context, detail PayrollDetail) (PayrollDetail, error)
	GetDetailsByCycle(ctx context.Context, cycleID string) ([]PayrollDetail, error)
	CycleHasDetails(ctx context.Context, cycleID string) (bool, error)

	// GetTimeEntries returns the raw attendance sessions for one employee
	// whose check-in falls inside [start, end], as the engine consumes them.
	GetTimeEntries(ctx context.Context, employeeID string, start, end time.Time) ([]TimeEntry, error)
}
