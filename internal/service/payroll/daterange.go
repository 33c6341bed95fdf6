package payroll

import (
	"fmt"
	"time"

	"github.com/blackriis/nobicha-sub001/internal/domain/payroll"
	"github.com/blackriis/nobicha-sub001/internal/pkg/validator"
)

// DateRangesOverlap reports whether two closed date ranges intersect. Any
// unparsable boundary yields false; no overlap is assumed from bad data.
func DateRangesOverlap(startA, endA, startB, endB string) bool {
	sa, ok := validator.ParseTimestamp(startA)
	if !ok {
		return false
	}
	ea, ok := validator.ParseTimestamp(endA)
	if !ok {
		return false
	}
	sb, ok := validator.ParseTimestamp(startB)
	if !ok {
		return false
	}
	eb, ok := validator.ParseTimestamp(endB)
	if !ok {
		return false
	}
	return !sa.After(eb) && !sb.After(ea)
}

// ValidateDateRange checks a payroll period before a cycle is created.
// It returns nil when the range is acceptable, otherwise the first violated
// rule in priority order: presence, format, ordering, span, then how far the
// end reaches past today.
func ValidateDateRange(start, end string) error {
	return validateDateRangeAt(start, end, time.Now())
}

func validateDateRangeAt(start, end string, now time.Time) error {
	if validator.IsEmpty(start) || validator.IsEmpty(end) {
		return payroll.ErrPeriodRequired
	}

	startDate, ok := validator.ParseTimestamp(start)
	if !ok {
		return payroll.ErrPeriodInvalidFormat
	}
	endDate, ok := validator.ParseTimestamp(end)
	if !ok {
		return payroll.ErrPeriodInvalidFormat
	}

	if !startDate.Before(endDate) {
		return payroll.ErrPeriodOrder
	}

	// The span rule is checked before the future rule, so a range violating
	// both reports the span error.
	if endDate.After(startDate.AddDate(1, 0, 0)) {
		return payroll.ErrPeriodTooLong
	}

	if endDate.After(now.AddDate(1, 0, 0)) {
		return payroll.ErrPeriodTooFarInFuture
	}

	return nil
}

// Thai month names for cycle labels, January first.
var thaiMonths = [12]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน",
	"พฤษภาคม", "มิถุนายน", "กรกฎาคม", "สิงหาคม",
	"กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

// CycleName builds the display label for a payroll cycle using Thai month
// names and the Buddhist year. A period inside one month yields a
// single-month label; otherwise both months appear. Unparsable inputs
// degrade to embedding the raw strings rather than failing.
func CycleName(start, end string) string {
	startDate, okStart := validator.ParseTimestamp(start)
	endDate, okEnd := validator.ParseTimestamp(end)
	if !okStart || !okEnd {
		return fmt.Sprintf("%s - %s", start, end)
	}

	buddhistYear := endDate.Year() + 543
	if startDate.Year() == endDate.Year() && startDate.Month() == endDate.Month() {
		return fmt.Sprintf("%s %d", thaiMonths[startDate.Month()-1], buddhistYear)
	}
	return fmt.Sprintf("%s - %s %d", thaiMonths[startDate.Month()-1], thaiMonths[endDate.Month()-1], buddhistYear)
}

// FormatDateForInput normalizes any accepted date or timestamp string to
// YYYY-MM-DD. It returns an empty string when the input cannot be parsed.
func FormatDateForInput(s string) string {
	t, ok := validator.ParseTimestamp(s)
	if !ok {
		return ""
	}
	return t.Format("2006-01-02")
}
