package payroll

import "context"

// PayrollService defines business logic for payroll cycles and runs.
type PayrollService interface {
	// CreateCycle validates the requested period (ordering, span, overlap)
	// and creates a cycle with a generated name when none is given.
	CreateCycle(ctx context.Context, req CreateCycleRequest) (CycleResponse, error)

	// ListCycles returns all cycles, newest period first.
	ListCycles(ctx context.Context) ([]CycleResponse, error)

	// GetCycle returns a single cycle by ID.
	GetCycle(ctx context.Context, id string) (CycleResponse, error)

	// DeleteCycle removes a cycle that has no calculated results yet.
	DeleteCycle(ctx context.Context, id string) error

	// CalculateEmployee computes the payroll for one employee over the
	// cycle's period without persisting anything.
	CalculateEmployee(ctx context.Context, cycleID, employeeID string) (EmployeePayrollResponse, error)

	// RunCycle computes and persists payroll for every active employee in
	// the cycle's period and marks the cycle completed.
	RunCycle(ctx context.Context, cycleID string) (RunCycleResponse, error)

	// GetCycleResults returns previously persisted results for a cycle.
	GetCycleResults(ctx context.Context, cycleID string) (RunCycleResponse, error)
}
