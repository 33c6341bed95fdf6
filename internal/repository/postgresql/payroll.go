package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/blackriis/nobicha-sub001/internal/domain/payroll"
	"github.com/blackriis/nobicha-sub001/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== CYCLES ==========

func (r *payrollRepository) CreateCycle(ctx context.Context, cycle payroll.PayrollCycle) (payroll.PayrollCycle, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		INSERT INTO payroll_cycles (id, name, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, start_date, end_date, status, created_at, updated_at
	`

	var c payroll.PayrollCycle
	err := q.QueryRow(ctx, query,
		cycle.ID, cycle.Name, cycle.StartDate, cycle.EndDate, cycle.Status,
	).Scan(&c.ID, &c.Name, &c.StartDate, &c.EndDate, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return payroll.PayrollCycle{}, fmt.Errorf("failed to create payroll cycle: %w", err)
	}

	return c, nil
}

func (r *payrollRepository) GetCycleByID(ctx context.Context, id string) (payroll.PayrollCycle, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		SELECT id, name, start_date, end_date, status, created_at, updated_at
		FROM payroll_cycles
		WHERE id = $1
	`

	var c payroll.PayrollCycle
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.StartDate, &c.EndDate, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollCycle{}, payroll.ErrCycleNotFound
		}
		return payroll.PayrollCycle{}, fmt.Errorf("failed to get payroll cycle: %w", err)
	}

	return c, nil
}

func (r *payrollRepository) ListCycles(ctx context.Context) ([]payroll.PayrollCycle, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		SELECT id, name, start_date, end_date, status, created_at, updated_at
		FROM payroll_cycles
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll cycles: %w", err)
	}
	defer rows.Close()

	var cycles []payroll.PayrollCycle
	for rows.Next() {
		var c payroll.PayrollCycle
		if err := rows.Scan(&c.ID, &c.Name, &c.StartDate, &c.EndDate, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payroll cycle: %w", err)
		}
		cycles = append(cycles, c)
	}

	return cycles, rows.Err()
}

func (r *payrollRepository) DeleteCycle(ctx context.Context, id string) error {
	q := database.QuerierFrom(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_cycles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll cycle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrCycleNotFound
	}

	return nil
}

func (r *payrollRepository) UpdateCycleStatus(ctx context.Context, id string, status payroll.CycleStatus) error {
	q := database.QuerierFrom(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE payroll_cycles SET status = $2, updated_at = NOW() WHERE id = $1
	`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update payroll cycle status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrCycleNotFound
	}

	return nil
}

func (r *payrollRepository) HasOverlappingCycle(ctx context.Context, start, end time.Time, excludeCycleID *string) (bool, error) {
	q := database.QuerierFrom(ctx, r.db)

	// Closed intervals: sharing a boundary day counts as overlap.
	query := `
		SELECT EXISTS (
			SELECT 1 FROM payroll_cycles
			WHERE start_date <= $2
			  AND end_date >= $1
			  AND ($3::uuid IS NULL OR id <> $3)
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, start, end, excludeCycleID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping cycles: %w", err)
	}

	return exists, nil
}

// ========== DETAILS ==========

// dayPayRow is the JSONB shape of one breakdown day.
type dayPayRow struct {
	Date   string          `json:"date"`
	Hours  decimal.Decimal `json:"hours"`
	Pay    decimal.Decimal `json:"pay"`
	Method string          `json:"method"`
}

func marshalBreakdown(breakdown []payroll.DayPayResult) ([]byte, error) {
	rows := make([]dayPayRow, 0, len(breakdown))
	for _, day := range breakdown {
		rows = append(rows, dayPayRow{
			Date:   day.Date,
			Hours:  day.Hours,
			Pay:    day.Pay,
			Method: string(day.Method),
		})
	}
	return json.Marshal(rows)
}

func unmarshalBreakdown(data []byte) ([]payroll.DayPayResult, error) {
	var rows []dayPayRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	breakdown := make([]payroll.DayPayResult, 0, len(rows))
	for _, row := range rows {
		breakdown = append(breakdown, payroll.DayPayResult{
			Date:   row.Date,
			Hours:  row.Hours,
			Pay:    row.Pay,
			Method: payroll.PayMethod(row.Method),
		})
	}
	return breakdown, nil
}

func (r *payrollRepository) UpsertDetail(ctx context.Context, detail payroll.PayrollDetail) (payroll.PayrollDetail, error) {
	q := database.QuerierFrom(ctx, r.db)

	breakdownJSON, err := marshalBreakdown(detail.DailyBreakdown)
	if err != nil {
		return payroll.PayrollDetail{}, fmt.Errorf("failed to marshal daily breakdown: %w", err)
	}

	query := `
		INSERT INTO payroll_details (
			id, cycle_id, employee_id, total_hours, total_days_worked,
			base_pay, calculation_method, daily_breakdown
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (cycle_id, employee_id) DO UPDATE SET
			total_hours = EXCLUDED.total_hours,
			total_days_worked = EXCLUDED.total_days_worked,
			base_pay = EXCLUDED.base_pay,
			calculation_method = EXCLUDED.calculation_method,
			daily_breakdown = EXCLUDED.daily_breakdown,
			updated_at = NOW()
		RETURNING id, cycle_id, employee_id, total_hours, total_days_worked,
			base_pay, calculation_method, daily_breakdown, created_at, updated_at
	`

	var d payroll.PayrollDetail
	var storedBreakdown []byte
	err = q.QueryRow(ctx, query,
		detail.ID, detail.CycleID, detail.EmployeeID, detail.TotalHours,
		detail.TotalDaysWorked, detail.BasePay, detail.CalculationMethod, breakdownJSON,
	).Scan(
		&d.ID, &d.CycleID, &d.EmployeeID, &d.TotalHours, &d.TotalDaysWorked,
		&d.BasePay, &d.CalculationMethod, &storedBreakdown, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return payroll.PayrollDetail{}, fmt.Errorf("failed to upsert payroll detail: %w", err)
	}

	d.DailyBreakdown, err = unmarshalBreakdown(storedBreakdown)
	if err != nil {
		return payroll.PayrollDetail{}, fmt.Errorf("failed to unmarshal daily breakdown: %w", err)
	}

	return d, nil
}

func (r *payrollRepository) GetDetailsByCycle(ctx context.Context, cycleID string) ([]payroll.PayrollDetail, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		SELECT d.id, d.cycle_id, d.employee_id, d.total_hours, d.total_days_worked,
			   d.base_pay, d.calculation_method, d.daily_breakdown,
			   d.created_at, d.updated_at, e.full_name
		FROM payroll_details d
		JOIN employees e ON e.id = d.employee_id
		WHERE d.cycle_id = $1
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, cycleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll details: %w", err)
	}
	defer rows.Close()

	var details []payroll.PayrollDetail
	for rows.Next() {
		var d payroll.PayrollDetail
		var storedBreakdown []byte
		if err := rows.Scan(
			&d.ID, &d.CycleID, &d.EmployeeID, &d.TotalHours, &d.TotalDaysWorked,
			&d.BasePay, &d.CalculationMethod, &storedBreakdown,
			&d.CreatedAt, &d.UpdatedAt, &d.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll detail: %w", err)
		}

		if d.DailyBreakdown, err = unmarshalBreakdown(storedBreakdown); err != nil {
			return nil, fmt.Errorf("failed to unmarshal daily breakdown: %w", err)
		}
		details = append(details, d)
	}

	return details, rows.Err()
}

func (r *payrollRepository) CycleHasDetails(ctx context.Context, cycleID string) (bool, error) {
	q := database.QuerierFrom(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM payroll_details WHERE cycle_id = $1)
	`, cycleID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check payroll details: %w", err)
	}

	return exists, nil
}

// ========== TIME ENTRIES ==========

func (r *payrollRepository) GetTimeEntries(ctx context.Context, employeeID string, start, end time.Time) ([]payroll.TimeEntry, error) {
	q := database.QuerierFrom(ctx, r.db)

	// The engine re-filters by check-in date; the query just keeps the
	// result set proportional to the period.
	query := `
		SELECT check_in_time, check_out_time
		FROM attendances
		WHERE employee_id = $1
		  AND check_in_time >= $2::date
		  AND check_in_time < ($3::date + INTERVAL '1 day')
		ORDER BY check_in_time
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load time entries: %w", err)
	}
	defer rows.Close()

	var entries []payroll.TimeEntry
	for rows.Next() {
		var checkIn time.Time
		var checkOut *time.Time
		if err := rows.Scan(&checkIn, &checkOut); err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}

		in := checkIn.Format(time.RFC3339Nano)
		e := payroll.TimeEntry{CheckInTime: &in}
		if checkOut != nil {
			out := checkOut.Format(time.RFC3339Nano)
			e.CheckOutTime = &out
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
