package domain

import (
	"time"
)

// Day names in the order a schedule week runs. Deployment documents are
// expected to start on Monday, but the parser verifies this against the
// day header of each document.
var WeekDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// TimeRange holds the start and end of a single shift. During parsing the
// values are the raw 12-hour tokens from the document ("9:00a"); after
// normalization they are 24-hour "HH:mm:ss" strings. An end at or before
// the start means the shift runs overnight, which is valid.
type TimeRange struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type EmployeeSchedule struct {
	Name     string               `json:"name"`
	Role     string               `json:"role"`
	Schedule map[string]TimeRange `json:"schedule"` // day name -> shift
}

// ScheduleDocument is the structured form of one weekly schedule.
// It is built once per parse and never mutated afterwards.
type ScheduleDocument struct {
	Location     string             `json:"location"`
	LocationCode string             `json:"locationCode"`
	WeekStart    time.Time          `json:"weekStart"`
	WeekEnd      time.Time          `json:"weekEnd"`
	Employees    []EmployeeSchedule `json:"employees"`
}

// ScheduleImport is the persisted record of one upload.
type ScheduleImport struct {
	ID            string    `json:"id"`
	Location      string    `json:"location"`
	LocationCode  string    `json:"locationCode"`
	WeekStart     time.Time `json:"weekStart"`
	WeekEnd       time.Time `json:"weekEnd"`
	EmployeeCount int32     `json:"employeeCount"`
	ShiftCount    int32     `json:"shiftCount"`
	CreatedAt     time.Time `json:"createdAt"`
}
