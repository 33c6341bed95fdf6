package attendance

import (
	"time"
)

type Attendance struct {
	ID                string
	EmployeeID        string
	BranchID          string
	CheckInTime       time.Time
	CheckOutTime      *time.Time
	CheckInLatitude   float64
	CheckInLongitude  float64
	CheckInSelfieURL  string
	CheckOutLatitude  *float64
	CheckOutLongitude *float64
	CheckOutSelfieURL *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO
	EmployeeName *string
	BranchName   *string
}
