package payroll

import (
	"log/slog"
	"sort"

	"github.com/blackriis/nobicha-sub001/internal/domain/payroll"
	"github.com/blackriis/nobicha-sub001/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// An employee whose summed hours for one calendar day exceed this threshold
// is paid the flat daily rate instead of hours times the hourly rate.
// Exactly 12 hours is still hourly. Business policy, not configurable.
var dailyRateThresholdHours = decimal.NewFromInt(12)

var millisPerHour = decimal.NewFromInt(3_600_000)

// HoursWorked returns the elapsed hours between two timestamp strings,
// rounded to two decimal places (half up). Unparsable timestamps and
// check-outs at or before the check-in yield zero; a bad attendance row must
// never abort a payroll run. Offsets are resolved to absolute instants, so
// cross-midnight and mixed-timezone sessions need no special handling.
func HoursWorked(checkIn, checkOut string) decimal.Decimal {
	in, ok := validator.ParseTimestamp(checkIn)
	if !ok {
		return decimal.Zero
	}
	out, ok := validator.ParseTimestamp(checkOut)
	if !ok {
		return decimal.Zero
	}
	if !out.After(in) {
		// Equal or reversed timestamps are clock skew or corrupted data.
		return decimal.Zero
	}
	return decimal.NewFromInt(out.Sub(in).Milliseconds()).
		Div(millisPerHour).
		Round(2)
}

// checkInDate derives the YYYY-MM-DD bucket key from an entry's check-in
// timestamp, in the timestamp's own zone. The check-in date owns the session
// even when the check-out spills into the next day.
func checkInDate(entry payroll.TimeEntry) (string, bool) {
	if entry.CheckInTime == nil {
		return "", false
	}
	t, ok := validator.ParseTimestamp(*entry.CheckInTime)
	if !ok {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// GroupEntriesByDate partitions sessions into buckets keyed by their
// check-in calendar date. Entries with unparsable check-ins are skipped.
func GroupEntriesByDate(entries []payroll.TimeEntry) map[string][]payroll.TimeEntry {
	groups := make(map[string][]payroll.TimeEntry)
	for _, entry := range entries {
		key, ok := checkInDate(entry)
		if !ok {
			slog.Debug("skipping attendance entry with unparsable check-in time")
			continue
		}
		groups[key] = append(groups[key], entry)
	}
	return groups
}

// DayPay computes the pay for one calendar date from all of its sessions.
// Open sessions (no check-out) are omitted entirely; they neither add hours
// nor influence the method classification. Rates are applied as given, even
// when zero or negative.
func DayPay(date string, entries []payroll.TimeEntry, rates payroll.RateConfig) payroll.DayPayResult {
	totalHours := decimal.Zero
	for _, entry := range entries {
		if entry.CheckInTime == nil || entry.CheckOutTime == nil {
			continue
		}
		totalHours = totalHours.Add(HoursWorked(*entry.CheckInTime, *entry.CheckOutTime))
	}

	result := payroll.DayPayResult{
		Date:  date,
		Hours: totalHours,
	}
	if totalHours.GreaterThan(dailyRateThresholdHours) {
		result.Method = payroll.PayMethodDaily
		result.Pay = rates.DailyRate
	} else {
		result.Method = payroll.PayMethodHourly
		// Hours are already rounded; the pay keeps whatever precision
		// hours times rate produces.
		result.Pay = totalHours.Mul(rates.HourlyRate)
	}
	return result
}

// EmployeePayroll folds an employee's raw sessions into the per-period wage
// computation: filter to the period, bucket by check-in date, pay each day,
// then total and classify. The call is pure; identical inputs always produce
// identical output.
func EmployeePayroll(input payroll.PayrollInput) payroll.EmployeePayrollResult {
	result := payroll.EmployeePayrollResult{
		TotalHours:        decimal.Zero,
		BasePay:           decimal.Zero,
		CalculationMethod: payroll.PayMethodHourly,
		DailyBreakdown:    []payroll.DayPayResult{},
	}

	periodStart := FormatDateForInput(input.PeriodStart)
	periodEnd := FormatDateForInput(input.PeriodEnd)
	if periodStart == "" || periodEnd == "" {
		return result
	}

	var inPeriod []payroll.TimeEntry
	for _, entry := range input.TimeEntries {
		key, ok := checkInDate(entry)
		if !ok {
			continue
		}
		// Normalized date keys compare correctly as strings.
		if key >= periodStart && key <= periodEnd {
			inPeriod = append(inPeriod, entry)
		}
	}

	sawHourly, sawDaily := false, false
	for date, entries := range GroupEntriesByDate(inPeriod) {
		day := DayPay(date, entries, input.EmployeeRates)
		if !day.Hours.IsPositive() {
			// All sessions open (or zero-length): the day is not worked
			// and does not appear in the breakdown.
			continue
		}

		result.DailyBreakdown = append(result.DailyBreakdown, day)
		result.TotalHours = result.TotalHours.Add(day.Hours)
		result.BasePay = result.BasePay.Add(day.Pay)
		result.TotalDaysWorked++

		switch day.Method {
		case payroll.PayMethodHourly:
			sawHourly = true
		case payroll.PayMethodDaily:
			sawDaily = true
		}
	}

	sort.Slice(result.DailyBreakdown, func(i, j int) bool {
		return result.DailyBreakdown[i].Date < result.DailyBreakdown[j].Date
	})

	switch {
	case sawHourly && sawDaily:
		result.CalculationMethod = payroll.PayMethodMixed
	case sawDaily:
		result.CalculationMethod = payroll.PayMethodDaily
	default:
		result.CalculationMethod = payroll.PayMethodHourly
	}

	return result
}
