package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/blackriis/nobicha-sub001/internal/domain/employee"
	"github.com/blackriis/nobicha-sub001/internal/domain/payroll"
	"github.com/blackriis/nobicha-sub001/internal/pkg/database"
	"github.com/blackriis/nobicha-sub001/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db           database.Transactor
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
}

func NewPayrollService(
	db database.Transactor,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:           db,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
	}
}

// ========== CYCLES ==========

func (s *PayrollServiceImpl) CreateCycle(ctx context.Context, req payroll.CreateCycleRequest) (payroll.CycleResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.CycleResponse{}, err
	}

	if err := ValidateDateRange(req.StartDate, req.EndDate); err != nil {
		return payroll.CycleResponse{}, err
	}

	startDate, _ := validator.ParseTimestamp(req.StartDate)
	endDate, _ := validator.ParseTimestamp(req.EndDate)

	overlap, err := s.payrollRepo.HasOverlappingCycle(ctx, startDate, endDate, nil)
	if err != nil {
		return payroll.CycleResponse{}, fmt.Errorf("failed to check cycle overlap: %w", err)
	}
	if overlap {
		return payroll.CycleResponse{}, payroll.ErrCycleOverlap
	}

	name := CycleName(req.StartDate, req.EndDate)
	if req.Name != nil {
		name = *req.Name
	}

	cycle := payroll.PayrollCycle{
		ID:        uuid.NewString(),
		Name:      name,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    payroll.CycleStatusActive,
	}

	created, err := s.payrollRepo.CreateCycle(ctx, cycle)
	if err != nil {
		return payroll.CycleResponse{}, fmt.Errorf("failed to create payroll cycle: %w", err)
	}

	return toCycleResponse(created), nil
}

func (s *PayrollServiceImpl) ListCycles(ctx context.Context) ([]payroll.CycleResponse, error) {
	cycles, err := s.payrollRepo.ListCycles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll cycles: %w", err)
	}

	responses := make([]payroll.CycleResponse, 0, len(cycles))
	for _, c := range cycles {
		responses = append(responses, toCycleResponse(c))
	}
	return responses, nil
}

func (s *PayrollServiceImpl) GetCycle(ctx context.Context, id string) (payroll.CycleResponse, error) {
	cycle, err := s.payrollRepo.GetCycleByID(ctx, id)
	if err != nil {
		return payroll.CycleResponse{}, err
	}
	return toCycleResponse(cycle), nil
}

func (s *PayrollServiceImpl) DeleteCycle(ctx context.Context, id string) error {
	if _, err := s.payrollRepo.GetCycleByID(ctx, id); err != nil {
		return err
	}

	hasDetails, err := s.payrollRepo.CycleHasDetails(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check cycle details: %w", err)
	}
	if hasDetails {
		return payroll.ErrCycleHasDetails
	}

	return s.payrollRepo.DeleteCycle(ctx, id)
}

// ========== CALCULATION ==========

func (s *PayrollServiceImpl) CalculateEmployee(ctx context.Context, cycleID, employeeID string) (payroll.EmployeePayrollResponse, error) {
	cycle, err := s.payrollRepo.GetCycleByID(ctx, cycleID)
	if err != nil {
		return payroll.EmployeePayrollResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.EmployeePayrollResponse{}, err
	}

	result, err := s.calculateForEmployee(ctx, cycle, emp)
	if err != nil {
		return payroll.EmployeePayrollResponse{}, err
	}

	return toEmployeeResponse(emp, result), nil
}

func (s *PayrollServiceImpl) RunCycle(ctx context.Context, cycleID string) (payroll.RunCycleResponse, error) {
	cycle, err := s.payrollRepo.GetCycleByID(ctx, cycleID)
	if err != nil {
		return payroll.RunCycleResponse{}, err
	}
	if cycle.Status == payroll.CycleStatusCompleted {
		return payroll.RunCycleResponse{}, payroll.ErrCycleCompleted
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return payroll.RunCycleResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	response := payroll.RunCycleResponse{
		CycleID:      cycle.ID,
		CycleName:    cycle.Name,
		TotalBasePay: decimal.Zero,
		Employees:    make([]payroll.EmployeePayrollResponse, 0, len(employees)),
	}

	// Details and the cycle status move together or not at all.
	err = s.db.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, emp := range employees {
			result, err := s.calculateForEmployee(txCtx, cycle, emp)
			if err != nil {
				return err
			}

			detail := payroll.PayrollDetail{
				ID:                uuid.NewString(),
				CycleID:           cycle.ID,
				EmployeeID:        emp.ID,
				TotalHours:        result.TotalHours,
				TotalDaysWorked:   result.TotalDaysWorked,
				BasePay:           result.BasePay,
				CalculationMethod: result.CalculationMethod,
				DailyBreakdown:    result.DailyBreakdown,
			}
			if _, err := s.payrollRepo.UpsertDetail(txCtx, detail); err != nil {
				return fmt.Errorf("failed to save payroll detail for employee %s: %w", emp.ID, err)
			}

			response.Employees = append(response.Employees, toEmployeeResponse(emp, result))
			response.TotalBasePay = response.TotalBasePay.Add(result.BasePay)
		}

		return s.payrollRepo.UpdateCycleStatus(txCtx, cycle.ID, payroll.CycleStatusCompleted)
	})
	if err != nil {
		return payroll.RunCycleResponse{}, err
	}
	response.TotalEmployees = len(response.Employees)

	return response, nil
}

func (s *PayrollServiceImpl) GetCycleResults(ctx context.Context, cycleID string) (payroll.RunCycleResponse, error) {
	cycle, err := s.payrollRepo.GetCycleByID(ctx, cycleID)
	if err != nil {
		return payroll.RunCycleResponse{}, err
	}

	details, err := s.payrollRepo.GetDetailsByCycle(ctx, cycleID)
	if err != nil {
		return payroll.RunCycleResponse{}, fmt.Errorf("failed to load payroll details: %w", err)
	}

	response := payroll.RunCycleResponse{
		CycleID:      cycle.ID,
		CycleName:    cycle.Name,
		TotalBasePay: decimal.Zero,
		Employees:    make([]payroll.EmployeePayrollResponse, 0, len(details)),
	}
	for _, d := range details {
		response.Employees = append(response.Employees, detailToEmployeeResponse(d))
		response.TotalBasePay = response.TotalBasePay.Add(d.BasePay)
	}
	response.TotalEmployees = len(response.Employees)

	return response, nil
}

// calculateForEmployee loads the employee's sessions for the cycle period
// and runs the pure engine over them.
func (s *PayrollServiceImpl) calculateForEmployee(ctx context.Context, cycle payroll.PayrollCycle, emp employee.Employee) (payroll.EmployeePayrollResult, error) {
	entries, err := s.payrollRepo.GetTimeEntries(ctx, emp.ID, cycle.StartDate, cycle.EndDate)
	if err != nil {
		return payroll.EmployeePayrollResult{}, fmt.Errorf("failed to load time entries for employee %s: %w", emp.ID, err)
	}

	input := payroll.PayrollInput{
		EmployeeRates: emp.Rates(),
		TimeEntries:   entries,
		PeriodStart:   cycle.StartDate.Format("2006-01-02"),
		PeriodEnd:     cycle.EndDate.Format("2006-01-02"),
	}
	return EmployeePayroll(input), nil
}

// ========== MAPPERS ==========

func toCycleResponse(c payroll.PayrollCycle) payroll.CycleResponse {
	return payroll.CycleResponse{
		ID:        c.ID,
		Name:      c.Name,
		StartDate: c.StartDate.Format("2006-01-02"),
		EndDate:   c.EndDate.Format("2006-01-02"),
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func toBreakdownResponse(breakdown []payroll.DayPayResult) []payroll.DayPayResponse {
	days := make([]payroll.DayPayResponse, 0, len(breakdown))
	for _, day := range breakdown {
		days = append(days, payroll.DayPayResponse{
			Date:   day.Date,
			Hours:  day.Hours,
			Pay:    day.Pay,
			Method: string(day.Method),
		})
	}
	return days
}

func toEmployeeResponse(emp employee.Employee, result payroll.EmployeePayrollResult) payroll.EmployeePayrollResponse {
	name := emp.FullName
	return payroll.EmployeePayrollResponse{
		EmployeeID:        emp.ID,
		EmployeeName:      &name,
		TotalHours:        result.TotalHours,
		TotalDaysWorked:   result.TotalDaysWorked,
		BasePay:           result.BasePay,
		CalculationMethod: string(result.CalculationMethod),
		DailyBreakdown:    toBreakdownResponse(result.DailyBreakdown),
	}
}

func detailToEmployeeResponse(d payroll.PayrollDetail) payroll.EmployeePayrollResponse {
	return payroll.EmployeePayrollResponse{
		EmployeeID:        d.EmployeeID,
		EmployeeName:      d.EmployeeName,
		TotalHours:        d.TotalHours,
		TotalDaysWorked:   d.TotalDaysWorked,
		BasePay:           d.BasePay,
		CalculationMethod: string(d.CalculationMethod),
		DailyBreakdown:    toBreakdownResponse(d.DailyBreakdown),
	}
}
