package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
)

var columns = []string{"Date", "Day", "Employee", "Role", "Start", "End", "Shift", "Roster Match"}

// BuildWorkbook renders one schedule import as a spreadsheet, one row per
// deployment record in the order they were loaded.
func BuildWorkbook(imp *domain.ScheduleImport, records []*domain.DeploymentRecord, sheet string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	title := fmt.Sprintf("%s %s deployments for week of %s", imp.Location, imp.LocationCode, imp.WeekStart.Format("2006-01-02"))
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, err
	}

	for i, name := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(columns), 2)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A2", lastHeader, headerStyle); err != nil {
		return nil, err
	}

	for i, rec := range records {
		row := i + 3
		values := []any{
			rec.Date,
			dayName(rec.Date),
			rec.EmployeeName,
			rec.Role,
			rec.StartTime,
			rec.EndTime,
			string(rec.ShiftType),
			rosterMatch(rec),
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "H", 16); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}

// Filename returns the attachment name for an import's workbook.
func Filename(imp *domain.ScheduleImport) string {
	return fmt.Sprintf("deployments_%s_%s.xlsx", imp.LocationCode, imp.WeekStart.Format("2006-01-02"))
}

func dayName(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}

func rosterMatch(rec *domain.DeploymentRecord) string {
	if rec.StaffID == nil {
		return "unmatched"
	}
	return "matched"
}
