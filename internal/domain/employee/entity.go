package employee

import (
	"time"

	"github.com/blackriis/nobicha-sub001/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	FullName   string
	Email      string
	BranchID   string
	HourlyRate decimal.Decimal
	DailyRate  decimal.Decimal
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Rates returns the employee's wage policy as the calculation engine
// consumes it.
func (e Employee) Rates() payroll.RateConfig {
	return payroll.RateConfig{
		HourlyRate: e.HourlyRate,
		DailyRate:  e.DailyRate,
	}
}
