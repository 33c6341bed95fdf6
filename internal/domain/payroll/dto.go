package payroll

import (
	"github.com/blackriis/nobicha-sub001/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== CYCLE DTOs ==========

type CreateCycleRequest struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Name      *string `json:"name,omitempty"` // auto-generated when omitted
}

func (r *CreateCycleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "is required"})
	}
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "is required"})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be blank"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CycleResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// ========== CALCULATION DTOs ==========

type DayPayResponse struct {
	Date   string          `json:"date"`
	Hours  decimal.Decimal `json:"hours"`
	Pay    decimal.Decimal `json:"pay"`
	Method string          `json:"method"`
}

type EmployeePayrollResponse struct {
	EmployeeID        string           `json:"employee_id"`
	EmployeeName      *string          `json:"employee_name,omitempty"`
	TotalHours        decimal.Decimal  `json:"total_hours"`
	TotalDaysWorked   int              `json:"total_days_worked"`
	BasePay           decimal.Decimal  `json:"base_pay"`
	CalculationMethod string           `json:"calculation_method"`
	DailyBreakdown    []DayPayResponse `json:"daily_breakdown"`
}

type RunCycleResponse struct {
	CycleID        string                    `json:"cycle_id"`
	CycleName      string                    `json:"cycle_name"`
	TotalEmployees int                       `json:"total_employees"`
	TotalBasePay   decimal.Decimal           `json:"total_base_pay"`
	Employees      []EmployeePayrollResponse `json:"employees"`
}
