package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayMethod enum
type PayMethod string

const (
	PayMethodHourly PayMethod = "hourly"
	PayMethodDaily  PayMethod = "daily"
	PayMethodMixed  PayMethod = "mixed"
)

// TimeEntry is one attendance session as the calculation engine sees it:
// raw timestamp strings straight from the attendance store. A nil check-out
// marks an open session.
type TimeEntry struct {
	CheckInTime  *string
	CheckOutTime *string
}

// RateConfig is the per-employee wage policy. The engine never mutates or
// sanity-checks it; misconfigured (zero, negative) rates are computed as-is.
type RateConfig struct {
	HourlyRate decimal.Decimal
	DailyRate  decimal.Decimal
}

// DayPayResult is the derived pay for one calendar date.
type DayPayResult struct {
	Date   string
	Hours  decimal.Decimal
	Pay    decimal.Decimal
	Method PayMethod
}

// PayrollInput bundles everything the period aggregator needs for one
// employee: the wage policy, the raw sessions, and the inclusive period
// boundaries as YYYY-MM-DD strings.
type PayrollInput struct {
	EmployeeRates RateConfig
	TimeEntries   []TimeEntry
	PeriodStart   string
	PeriodEnd     string
}

// EmployeePayrollResult is the derived per-employee, per-period wage
// computation. BasePay excludes bonuses and deductions; those are applied by
// the adjustment layer downstream.
type EmployeePayrollResult struct {
	TotalHours        decimal.Decimal
	TotalDaysWorked   int
	BasePay           decimal.Decimal
	CalculationMethod PayMethod
	DailyBreakdown    []DayPayResult
}

// CycleStatus enum
type CycleStatus string

const (
	CycleStatusActive    CycleStatus = "active"
	CycleStatusCompleted CycleStatus = "completed"
)

// PayrollCycle - a named payroll period
type PayrollCycle struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Status    CycleStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayrollDetail - persisted calculation result for one employee in one cycle
type PayrollDetail struct {
	ID                string
	CycleID           string
	EmployeeID        string
	TotalHours        decimal.Decimal
	TotalDaysWorked   int
	BasePay           decimal.Decimal
	CalculationMethod PayMethod
	DailyBreakdown    []DayPayResult
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	EmployeeName *string
}
