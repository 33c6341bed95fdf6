package payroll

import (
	"testing"
	"time"

	"github.com/blackriis/nobicha-sub001/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
)

func TestDateRangesOverlap(t *testing.T) {
	cases := []struct {
		name                       string
		startA, endA, startB, endB string
		want                       bool
	}{
		{"disjoint", "2025-01-01", "2025-01-31", "2025-02-01", "2025-02-28", false},
		{"contained", "2025-01-01", "2025-12-31", "2025-03-01", "2025-03-31", true},
		{"partial overlap", "2025-01-15", "2025-02-15", "2025-02-01", "2025-02-28", true},
		{"touching boundary counts", "2025-01-01", "2025-01-31", "2025-01-31", "2025-02-28", true},
		{"invalid date fails safe", "garbage", "2025-01-31", "2025-01-15", "2025-02-28", false},
		{"empty fails safe", "", "", "2025-01-15", "2025-02-28", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DateRangesOverlap(c.startA, c.endA, c.startB, c.endB)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestValidateDateRange(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{"valid month", "2025-06-01", "2025-06-30", nil},
		{"missing start", "", "2025-06-30", payroll.ErrPeriodRequired},
		{"missing end", "2025-06-01", "  ", payroll.ErrPeriodRequired},
		{"unparsable start", "junk", "2025-06-30", payroll.ErrPeriodInvalidFormat},
		{"unparsable end", "2025-06-01", "junk", payroll.ErrPeriodInvalidFormat},
		{"reversed", "2025-01-31", "2025-01-01", payroll.ErrPeriodOrder},
		{"equal dates", "2025-06-01", "2025-06-01", payroll.ErrPeriodOrder},
		{"span over a year", "2025-01-01", "2026-01-02", payroll.ErrPeriodTooLong},
		{"too far in future", "2026-05-01", "2026-07-01", payroll.ErrPeriodTooFarInFuture},
		// Span is checked before the future rule when both are violated.
		{"span wins over future", "2026-01-01", "2027-06-01", payroll.ErrPeriodTooLong},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := validateDateRangeAt(c.start, c.end, now)
			if c.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, c.wantErr)
			}
		})
	}
}

func TestCycleName(t *testing.T) {
	// Buddhist year: 2025 + 543 = 2568.
	assert.Equal(t, "มกราคม 2568", CycleName("2025-01-01", "2025-01-31"))
	assert.Equal(t, "มกราคม - กุมภาพันธ์ 2568", CycleName("2025-01-15", "2025-02-14"))
	// December to January labels with the end date's year.
	assert.Equal(t, "ธันวาคม - มกราคม 2568", CycleName("2024-12-16", "2025-01-15"))
	// Invalid inputs degrade to the raw strings.
	assert.Equal(t, "bad - 2025-01-31", CycleName("bad", "2025-01-31"))
}

func TestFormatDateForInput(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2025-06-15", "2025-06-15"},
		{"2025-06-15T10:30:00Z", "2025-06-15"},
		{"2025-06-15T23:30:00+07:00", "2025-06-15"},
		{"garbage", ""},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatDateForInput(c.input), "input %q", c.input)
	}
}
