package domain

import (
	"time"
)

type ShiftType string

const (
	ShiftDay   ShiftType = "day"
	ShiftNight ShiftType = "night"
	ShiftBoth  ShiftType = "both"
)

type DriveThruType string

const (
	DriveThruSingle DriveThruType = "single-lane"
	DriveThruDual   DriveThruType = "dual-lane"
	DriveThruNone   DriveThruType = "none"
)

// DeploymentRecord is one employee working one dated shift. ShiftType is
// always derived from the start/end times, never set directly.
type DeploymentRecord struct {
	ID           int64     `json:"id"`
	ImportID     string    `json:"importId"`
	EmployeeName string    `json:"employeeName"`
	Role         string    `json:"role"`
	Date         string    `json:"date"` // YYYY-MM-DD
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	ShiftType    ShiftType `json:"shiftType"`
	StaffID      *int64    `json:"staffId"`
	IsUnder18    bool      `json:"isUnder18"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DeploymentContext is the aggregate a staffing rule is evaluated against:
// one (location, date, shift) slice of the deployment table.
type DeploymentContext struct {
	DTType    string `json:"dt_type"`
	NumCooks  int    `json:"num_cooks"`
	ShiftType string `json:"shift_type"`
	DayOfWeek string `json:"day_of_week"`
}
