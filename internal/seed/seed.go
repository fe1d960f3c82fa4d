package seed

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
	"github.com/crewdeck-dev/deploy-manager/backend/internal/reconcile"
	"github.com/crewdeck-dev/deploy-manager/backend/internal/repository"
	"github.com/crewdeck-dev/deploy-manager/backend/internal/roster"
	"github.com/crewdeck-dev/deploy-manager/backend/internal/schedule"
)

const sampleRoster = `name,is_under_18
Alice Johnson,no
Bob Smith,no
Carol Perez,yes
Dan Wilson,no
Erin Castillo,no
`

const sampleDocument = `Weekly Deployment Report
Maple Grove 4821's schedule for 6/2/2025 - 6/8/2025

Monday 2 Tuesday 3 Wednesday 4 Thursday 5 Friday 6 Saturday 7 Sunday 8

Kitchen Deployment
Name
Alice Johnson 9:00a 5:00p 9:00a 5:00p 9:00a 5:00p 9:00a 5:00p 9:00a 5:00p
Dan Wilson 11:00a 7:00p 11:00a 7:00p 11:00a 7:00p

Front Counter Deployment
Name
Bob Smith 4:00p 11:00p 4:00p 11:00p 4:00p 11:00p 4:00p 11:00p
Carol Perez 10:00a 4:00p 10:00a 4:00p
`

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func defaultRules() []*domain.StaffingRule {
	return []*domain.StaffingRule{
		{
			Name:     "Dual-lane nights need a dedicated runner",
			Priority: 10,
			IsActive: true,
			Condition: domain.RuleCondition{
				DTType:    strPtr(string(domain.DriveThruDual)),
				ShiftType: strPtr(string(domain.ShiftNight)),
			},
			Action: domain.RuleAction{
				RequirePosition: &domain.PositionCount{Position: "Runner", Count: 1},
			},
		},
		{
			Name:     "Short kitchens drop the greeter",
			Priority: 20,
			IsActive: true,
			Condition: domain.RuleCondition{
				NumCooks: &domain.CookBounds{LTE: intPtr(2)},
			},
			Action: domain.RuleAction{
				ExcludePosition: strPtr("Greeter"),
			},
		},
		{
			Name:     "Saturday nights staff up the front counter",
			Priority: 30,
			IsActive: true,
			Condition: domain.RuleCondition{
				DayOfWeek: strPtr("Saturday"),
				ShiftType: strPtr(string(domain.ShiftNight)),
			},
			Action: domain.RuleAction{
				AdjustPositionCount: map[string]int{"Front Counter": 4},
			},
		},
	}
}

// SeedStaff inserts the sample roster through the same CSV path the import
// endpoint uses.
func SeedStaff(r *repository.Repository) {
	result, err := roster.Import(strings.NewReader(sampleRoster))
	if err != nil {
		slog.Error("failed to read sample roster", "error", err)
		return
	}
	for _, rowErr := range result.Errors {
		slog.Error("sample roster row rejected", "line", rowErr.Line, "message", rowErr.Message)
	}

	if err := r.CreateStaffBatch(result.Records); err != nil {
		slog.Error("failed to insert sample roster", "error", err)
		return
	}

	slog.Info("sample roster inserted", "count", len(result.Records))
}

// SeedRules inserts the default staffing rules.
func SeedRules(r *repository.Repository) {
	cnt := 0
	for _, rule := range defaultRules() {
		if err := r.CreateStaffingRule(rule); err != nil {
			slog.Error("failed to insert staffing rule", "name", rule.Name, "error", err)
			continue
		}
		cnt++
	}

	slog.Info("staffing rules inserted", "count", cnt)
}

// SeedSchedule runs the sample document through the full import pipeline.
// The roster must be seeded first for the records to link.
func SeedSchedule(r *repository.Repository) {
	parser := schedule.NewParser(nil)

	doc, err := parser.Parse(sampleDocument)
	if err != nil {
		slog.Error("failed to parse sample document", "error", err)
		return
	}

	records, err := schedule.BuildDeployments(doc)
	if err != nil {
		slog.Error("failed to build deployments", "error", err)
		return
	}

	staff, err := r.GetAllStaff()
	if err != nil {
		slog.Error("failed to load staff", "error", err)
		return
	}

	linked := reconcile.Link(doc, staff)
	byName := make(map[string]reconcile.LinkedEmployee, len(linked.Employees))
	for _, emp := range linked.Employees {
		byName[emp.Name] = emp
	}
	for i := range records {
		if emp, ok := byName[records[i].EmployeeName]; ok {
			records[i].StaffID = emp.StaffID
			records[i].IsUnder18 = emp.IsUnder18
		}
	}

	imp := &domain.ScheduleImport{
		ID:            uuid.NewString(),
		Location:      doc.Location,
		LocationCode:  doc.LocationCode,
		WeekStart:     doc.WeekStart,
		WeekEnd:       doc.WeekEnd,
		EmployeeCount: int32(len(doc.Employees)),
		ShiftCount:    int32(len(records)),
	}

	if err := r.CreateScheduleImport(imp, records); err != nil {
		slog.Error("failed to insert sample schedule", "error", err)
		return
	}

	slog.Info("sample schedule inserted", "importId", imp.ID, "shifts", len(records), "matchRate", linked.Stats.MatchRate)
}
