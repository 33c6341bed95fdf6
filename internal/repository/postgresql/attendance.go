package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blackriis/nobicha-sub001/internal/domain/attendance"
	"github.com/blackriis/nobicha-sub001/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.branch_id, a.check_in_time, a.check_out_time,
	a.check_in_latitude, a.check_in_longitude, a.check_in_selfie_url,
	a.check_out_latitude, a.check_out_longitude, a.check_out_selfie_url,
	a.created_at, a.updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.BranchID, &a.CheckInTime, &a.CheckOutTime,
		&a.CheckInLatitude, &a.CheckInLongitude, &a.CheckInSelfieURL,
		&a.CheckOutLatitude, &a.CheckOutLongitude, &a.CheckOutSelfieURL,
		&a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (r *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, branch_id, check_in_time,
			check_in_latitude, check_in_longitude, check_in_selfie_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_id, branch_id, check_in_time, check_out_time,
			check_in_latitude, check_in_longitude, check_in_selfie_url,
			check_out_latitude, check_out_longitude, check_out_selfie_url,
			created_at, updated_at
	`

	a, err := scanAttendance(q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.BranchID, record.CheckInTime,
		record.CheckInLatitude, record.CheckInLongitude, record.CheckInSelfieURL,
	))
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances a WHERE a.id = $1`

	a, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) Update(ctx context.Context, record attendance.Attendance) error {
	q := database.QuerierFrom(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE attendances SET
			check_out_time = $2,
			check_out_latitude = $3,
			check_out_longitude = $4,
			check_out_selfie_url = $5,
			updated_at = NOW()
		WHERE id = $1
	`, record.ID, record.CheckOutTime, record.CheckOutLatitude,
		record.CheckOutLongitude, record.CheckOutSelfieURL)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func (r *attendanceRepository) GetOpenSession(ctx context.Context, employeeID string) (*attendance.Attendance, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.check_out_time IS NULL
		ORDER BY a.check_in_time DESC
		LIMIT 1
	`

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open session: %w", err)
	}

	return &a, nil
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	q := database.QuerierFrom(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.EmployeeID != nil {
		where = append(where, "a.employee_id = "+arg(*filter.EmployeeID))
	}
	if filter.BranchID != nil {
		where = append(where, "a.branch_id = "+arg(*filter.BranchID))
	}
	if filter.StartDate != nil {
		where = append(where, "a.check_in_time >= "+arg(*filter.StartDate)+"::date")
	}
	if filter.EndDate != nil {
		where = append(where, "a.check_in_time < ("+arg(*filter.EndDate)+"::date + INTERVAL '1 day')")
	}
	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	query := `
		SELECT ` + attendanceColumns + `, e.full_name, b.name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		JOIN branches b ON b.id = a.branch_id
		WHERE ` + whereClause + `
		ORDER BY a.check_in_time DESC
		LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg((filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.BranchID, &a.CheckInTime, &a.CheckOutTime,
			&a.CheckInLatitude, &a.CheckInLongitude, &a.CheckInSelfieURL,
			&a.CheckOutLatitude, &a.CheckOutLongitude, &a.CheckOutSelfieURL,
			&a.CreatedAt, &a.UpdatedAt, &a.EmployeeName, &a.BranchName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}

	return records, total, rows.Err()
}
