package payroll

import (
	"testing"

	"github.com/blackriis/nobicha-sub001/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func entry(checkIn, checkOut string) payroll.TimeEntry {
	return payroll.TimeEntry{
		CheckInTime:  strPtr(checkIn),
		CheckOutTime: strPtr(checkOut),
	}
}

func openEntry(checkIn string) payroll.TimeEntry {
	return payroll.TimeEntry{CheckInTime: strPtr(checkIn)}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var testRates = payroll.RateConfig{
	HourlyRate: decimal.NewFromInt(50),
	DailyRate:  decimal.NewFromInt(600),
}

func TestHoursWorked(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     string
	}{
		{"plain eight hours", "2025-06-15T08:00:00Z", "2025-06-15T16:00:00Z", "8"},
		{"cross midnight", "2025-06-15T22:00:00Z", "2025-06-16T06:00:00Z", "8"},
		{"offset bearing zones", "2025-06-15T08:00:00+07:00", "2025-06-15T08:00:00Z", "7"},
		{"rounds half up", "2025-06-15T08:00:00Z", "2025-06-15T16:00:18Z", "8.01"},
		{"thirty six seconds over twelve", "2025-06-15T08:00:00Z", "2025-06-15T20:00:36Z", "12.01"},
		{"rounds down", "2025-06-15T08:00:00Z", "2025-06-15T16:20:03Z", "8.33"},
		{"fractional seconds", "2025-06-15T08:00:00.25Z", "2025-06-15T16:00:00.25Z", "8"},
		{"millisecond precision", "2025-06-15T08:00:00.5Z", "2025-06-15T20:00:18.5Z", "12.01"},
		{"checkout equals checkin", "2025-06-15T08:00:00Z", "2025-06-15T08:00:00Z", "0"},
		{"checkout before checkin", "2025-06-15T08:00:00Z", "2025-06-15T07:00:00Z", "0"},
		{"invalid checkin", "not-a-date", "2025-06-15T16:00:00Z", "0"},
		{"invalid checkout", "2025-06-15T08:00:00Z", "later", "0"},
		{"both empty", "", "", "0"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := HoursWorked(c.checkIn, c.checkOut)
			assert.True(t, got.Equal(dec(c.want)),
				"HoursWorked(%q, %q) = %s, want %s", c.checkIn, c.checkOut, got, c.want)
		})
	}
}

func TestGroupEntriesByDate(t *testing.T) {
	entries := []payroll.TimeEntry{
		entry("2025-06-15T08:00:00Z", "2025-06-15T12:00:00Z"),
		entry("2025-06-15T13:00:00Z", "2025-06-15T17:00:00Z"),
		entry("2025-06-16T08:00:00Z", "2025-06-16T16:00:00Z"),
		// Check-in date owns the bucket even when check-out spills over.
		entry("2025-06-17T22:00:00Z", "2025-06-18T06:00:00Z"),
		{CheckInTime: strPtr("garbage"), CheckOutTime: strPtr("2025-06-18T06:00:00Z")},
		{CheckInTime: nil, CheckOutTime: strPtr("2025-06-18T06:00:00Z")},
	}

	groups := GroupEntriesByDate(entries)

	require.Len(t, groups, 3)
	assert.Len(t, groups["2025-06-15"], 2)
	assert.Len(t, groups["2025-06-16"], 1)
	assert.Len(t, groups["2025-06-17"], 1)
}

func TestDayPay_ThresholdBoundary(t *testing.T) {
	// Exactly 12.00 hours stays hourly.
	exact := DayPay("2025-06-15", []payroll.TimeEntry{
		entry("2025-06-15T08:00:00Z", "2025-06-15T20:00:00Z"),
	}, testRates)
	assert.Equal(t, payroll.PayMethodHourly, exact.Method)
	assert.True(t, exact.Hours.Equal(dec("12")))
	assert.True(t, exact.Pay.Equal(dec("600")), "12 * 50 = 600, got %s", exact.Pay)

	// 12.01 hours flips to the flat daily rate.
	over := DayPay("2025-06-15", []payroll.TimeEntry{
		entry("2025-06-15T08:00:00Z", "2025-06-15T20:00:36Z"),
	}, testRates)
	assert.Equal(t, payroll.PayMethodDaily, over.Method)
	assert.True(t, over.Hours.Equal(dec("12.01")))
	assert.True(t, over.Pay.Equal(dec("600")))
}

func TestDayPay_MultiSessionAggregation(t *testing.T) {
	// 4h + 9h on the same check-in date sums to 13h and selects daily.
	day := DayPay("2025-06-15", []payroll.TimeEntry{
		entry("2025-06-15T06:00:00Z", "2025-06-15T10:00:00Z"),
		entry("2025-06-15T11:00:00Z", "2025-06-15T20:00:00Z"),
	}, testRates)

	assert.True(t, day.Hours.Equal(dec("13")))
	assert.Equal(t, payroll.PayMethodDaily, day.Method)
	assert.True(t, day.Pay.Equal(dec("600")))
}

func TestDayPay_OpenSessionsOmitted(t *testing.T) {
	day := DayPay("2025-06-15", []payroll.TimeEntry{
		entry("2025-06-15T08:00:00Z", "2025-06-15T16:00:00Z"),
		openEntry("2025-06-15T17:00:00Z"),
	}, testRates)

	assert.True(t, day.Hours.Equal(dec("8")))
	assert.Equal(t, payroll.PayMethodHourly, day.Method)
	assert.True(t, day.Pay.Equal(dec("400")))
}

func TestDayPay_NegativeRateHonored(t *testing.T) {
	rates := payroll.RateConfig{
		HourlyRate: decimal.NewFromInt(-10),
		DailyRate:  decimal.NewFromInt(600),
	}
	day := DayPay("2025-06-15", []payroll.TimeEntry{
		entry("2025-06-15T08:00:00Z", "2025-06-15T12:00:00Z"),
	}, rates)

	assert.True(t, day.Pay.Equal(dec("-40")), "misconfigured rates are computed, not rejected")
}

func TestDayPay_RoundedHoursTimesRatePrecision(t *testing.T) {
	// Hours are rounded to 8.33 before multiplying; the pay keeps the full
	// product precision.
	rates := payroll.RateConfig{
		HourlyRate: dec("33.33"),
		DailyRate:  decimal.NewFromInt(600),
	}
	day := DayPay("2025-06-15", []payroll.TimeEntry{
		entry("2025-06-15T08:00:00Z", "2025-06-15T16:19:48Z"),
	}, rates)

	assert.True(t, day.Hours.Equal(dec("8.33")))
	assert.True(t, day.Pay.Equal(dec("277.6389")), "got %s", day.Pay)
}

func payrollInput(entries []payroll.TimeEntry) payroll.PayrollInput {
	return payroll.PayrollInput{
		EmployeeRates: testRates,
		TimeEntries:   entries,
		PeriodStart:   "2025-06-01",
		PeriodEnd:     "2025-06-30",
	}
}

func TestEmployeePayroll_AllHourly(t *testing.T) {
	result := EmployeePayroll(payrollInput([]payroll.TimeEntry{
		entry("2025-06-10T08:00:00Z", "2025-06-10T16:00:00Z"),
		entry("2025-06-11T08:00:00Z", "2025-06-11T16:00:00Z"),
		entry("2025-06-12T08:00:00Z", "2025-06-12T16:00:00Z"),
	}))

	assert.True(t, result.TotalHours.Equal(dec("24")))
	assert.Equal(t, 3, result.TotalDaysWorked)
	assert.True(t, result.BasePay.Equal(dec("1200")))
	assert.Equal(t, payroll.PayMethodHourly, result.CalculationMethod)
}

func TestEmployeePayroll_AllDaily(t *testing.T) {
	result := EmployeePayroll(payrollInput([]payroll.TimeEntry{
		entry("2025-06-10T06:00:00Z", "2025-06-10T19:00:00Z"), // 13h
		entry("2025-06-11T06:00:00Z", "2025-06-11T20:00:00Z"), // 14h
	}))

	assert.True(t, result.TotalHours.Equal(dec("27")))
	assert.True(t, result.BasePay.Equal(dec("1200")), "2 x 600")
	assert.Equal(t, payroll.PayMethodDaily, result.CalculationMethod)
}

func TestEmployeePayroll_Mixed(t *testing.T) {
	result := EmployeePayroll(payrollInput([]payroll.TimeEntry{
		entry("2025-06-10T08:00:00Z", "2025-06-10T16:00:00Z"), // 8h hourly, 400
		entry("2025-06-11T06:00:00Z", "2025-06-11T19:00:00Z"), // 13h daily, 600
	}))

	assert.True(t, result.TotalHours.Equal(dec("21")))
	assert.True(t, result.BasePay.Equal(dec("1000")))
	assert.Equal(t, payroll.PayMethodMixed, result.CalculationMethod)
}

func TestEmployeePayroll_EmptyPeriod(t *testing.T) {
	result := EmployeePayroll(payrollInput(nil))

	assert.True(t, result.TotalHours.IsZero())
	assert.True(t, result.BasePay.IsZero())
	assert.Equal(t, 0, result.TotalDaysWorked)
	assert.Equal(t, payroll.PayMethodHourly, result.CalculationMethod)
	assert.Empty(t, result.DailyBreakdown)
}

func TestEmployeePayroll_PeriodFiltering(t *testing.T) {
	result := EmployeePayroll(payrollInput([]payroll.TimeEntry{
		entry("2025-05-31T08:00:00Z", "2025-05-31T16:00:00Z"), // before period
		entry("2025-06-15T08:00:00Z", "2025-06-15T16:00:00Z"),
		entry("2025-07-01T08:00:00Z", "2025-07-01T16:00:00Z"), // after period
	}))

	assert.Equal(t, 1, result.TotalDaysWorked)
	assert.True(t, result.BasePay.Equal(dec("400")))
	require.Len(t, result.DailyBreakdown, 1)
	assert.Equal(t, "2025-06-15", result.DailyBreakdown[0].Date)
}

func TestEmployeePayroll_BreakdownSortedAscending(t *testing.T) {
	result := EmployeePayroll(payrollInput([]payroll.TimeEntry{
		entry("2025-06-20T08:00:00Z", "2025-06-20T16:00:00Z"),
		entry("2025-06-05T08:00:00Z", "2025-06-05T16:00:00Z"),
		entry("2025-06-12T08:00:00Z", "2025-06-12T16:00:00Z"),
	}))

	require.Len(t, result.DailyBreakdown, 3)
	assert.Equal(t, "2025-06-05", result.DailyBreakdown[0].Date)
	assert.Equal(t, "2025-06-12", result.DailyBreakdown[1].Date)
	assert.Equal(t, "2025-06-20", result.DailyBreakdown[2].Date)
}

func TestEmployeePayroll_OpenOnlyDayOmitted(t *testing.T) {
	result := EmployeePayroll(payrollInput([]payroll.TimeEntry{
		entry("2025-06-10T08:00:00Z", "2025-06-10T16:00:00Z"),
		openEntry("2025-06-11T08:00:00Z"), // never checked out
	}))

	assert.Equal(t, 1, result.TotalDaysWorked)
	require.Len(t, result.DailyBreakdown, 1)
	assert.Equal(t, "2025-06-10", result.DailyBreakdown[0].Date)
}

func TestEmployeePayroll_Idempotent(t *testing.T) {
	input := payrollInput([]payroll.TimeEntry{
		entry("2025-06-10T08:00:00Z", "2025-06-10T16:19:48Z"),
		entry("2025-06-11T06:00:00Z", "2025-06-11T19:00:00Z"),
	})

	first := EmployeePayroll(input)
	second := EmployeePayroll(input)

	assert.Equal(t, first, second)
}
