package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
)

func testImport() *domain.ScheduleImport {
	return &domain.ScheduleImport{
		ID:           "8a9f6f8e-8f3e-4a3a-9d6e-2b1c0d4e5f60",
		Location:     "Maple Grove",
		LocationCode: "4821",
		WeekStart:    time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		WeekEnd:      time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildWorkbook(t *testing.T) {
	staffID := int64(7)
	records := []*domain.DeploymentRecord{
		{
			EmployeeName: "Alice Johnson",
			Role:         "Kitchen",
			Date:         "2025-06-02",
			StartTime:    "09:00:00",
			EndTime:      "17:00:00",
			ShiftType:    domain.ShiftDay,
			StaffID:      &staffID,
		},
		{
			EmployeeName: "Bob Smith",
			Role:         "Front Counter",
			Date:         "2025-06-03",
			StartTime:    "16:00:00",
			EndTime:      "23:00:00",
			ShiftType:    domain.ShiftNight,
		},
	}

	buf, err := BuildWorkbook(testImport(), records, "Deployments")
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Deployments"}, f.GetSheetList())

	title, err := f.GetCellValue("Deployments", "A1")
	require.NoError(t, err)
	require.Equal(t, "Maple Grove 4821 deployments for week of 2025-06-02", title)

	rows, err := f.GetRows("Deployments")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	require.Equal(t, columns, rows[1])
	require.Equal(t, []string{"2025-06-02", "Monday", "Alice Johnson", "Kitchen", "09:00:00", "17:00:00", "day", "matched"}, rows[2])
	require.Equal(t, "unmatched", rows[3][7])
}

func TestFilename(t *testing.T) {
	require.Equal(t, "deployments_4821_2025-06-02.xlsx", Filename(testImport()))
}
