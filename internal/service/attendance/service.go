package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blackriis/nobicha-sub001/internal/domain/attendance"
	"github.com/blackriis/nobicha-sub001/internal/domain/branch"
	"github.com/blackriis/nobicha-sub001/internal/domain/employee"
	"github.com/blackriis/nobicha-sub001/internal/pkg/database"
	"github.com/blackriis/nobicha-sub001/internal/pkg/utils"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	branchRepo     branch.BranchRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	branchRepo branch.BranchRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		branchRepo:     branchRepo,
	}
}

// employeeIDFromContext reads the authenticated employee from JWT claims.
func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}

// timePtrToString safely converts a *time.Time to an RFC3339 string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !emp.IsActive {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeInactive
	}

	open, err := a.attendanceRepo.GetOpenSession(ctx, employeeID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check open session: %w", err)
	}
	if open != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	br, err := a.branchRepo.GetByID(ctx, req.BranchID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if !utils.IsWithinRadius(req.Latitude, req.Longitude, br.Latitude, br.Longitude, br.RadiusMeters) {
		return attendance.AttendanceResponse{}, attendance.ErrOutsideAllowedRadius
	}

	record := attendance.Attendance{
		ID:               uuid.NewString(),
		EmployeeID:       employeeID,
		BranchID:         br.ID,
		CheckInTime:      time.Now().UTC(),
		CheckInLatitude:  req.Latitude,
		CheckInLongitude: req.Longitude,
		CheckInSelfieURL: req.SelfieURL,
	}

	created, err := a.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return toAttendanceResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	open, err := a.attendanceRepo.GetOpenSession(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load open session: %w", err)
	}
	if open == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}

	// Check-out is accepted from anywhere; the payroll engine guards
	// against skewed timestamps on its own.
	now := time.Now().UTC()
	open.CheckOutTime = &now
	open.CheckOutLatitude = &req.Latitude
	open.CheckOutLongitude = &req.Longitude
	open.CheckOutSelfieURL = &req.SelfieURL

	if err := a.attendanceRepo.Update(ctx, *open); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return toAttendanceResponse(*open), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	filter.EmployeeID = &employeeID
	return a.ListAttendance(ctx, filter)
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	filter.Normalize()

	records, total, err := a.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	data := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		data = append(data, toAttendanceResponse(record))
	}

	return attendance.ListAttendanceResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func toAttendanceResponse(record attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:                record.ID,
		EmployeeID:        record.EmployeeID,
		EmployeeName:      record.EmployeeName,
		BranchID:          record.BranchID,
		BranchName:        record.BranchName,
		CheckInTime:       record.CheckInTime.Format(time.RFC3339),
		CheckOutTime:      timePtrToString(record.CheckOutTime),
		CheckInSelfieURL:  record.CheckInSelfieURL,
		CheckOutSelfieURL: record.CheckOutSelfieURL,
	}
}
