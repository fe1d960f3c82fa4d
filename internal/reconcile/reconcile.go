package reconcile

import (
	"math"
	"strings"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
)

// LinkedEmployee is one schedule employee with its roster match attached.
// An unmatched employee keeps a nil StaffID and the under-18 default.
type LinkedEmployee struct {
	domain.EmployeeSchedule
	StaffID   *int64 `json:"staffId"`
	Matched   bool   `json:"matched"`
	IsUnder18 bool   `json:"isUnder18"`
}

type LinkStats struct {
	Matched   int     `json:"matched"`
	Unmatched int     `json:"unmatched"`
	MatchRate float64 `json:"matchRate"` // percent, one decimal
}

type LinkResult struct {
	Employees []LinkedEmployee `json:"employees"`
	Stats     LinkStats        `json:"stats"`
}

// Link matches every schedule employee against the canonical roster.
// Exact (case-insensitive, trimmed) equality wins; otherwise the first
// record where either name contains the other is taken. The substring
// pass is knowingly loose for short or nested names; it is kept for
// compatibility with existing rosters.
func Link(doc *domain.ScheduleDocument, staff []*domain.StaffRecord) *LinkResult {
	result := &LinkResult{
		Employees: make([]LinkedEmployee, 0, len(doc.Employees)),
	}

	for _, emp := range doc.Employees {
		linked := LinkedEmployee{EmployeeSchedule: emp}

		if record := match(emp.Name, staff); record != nil {
			id := record.ID
			linked.StaffID = &id
			linked.Matched = true
			linked.IsUnder18 = record.IsUnder18
			result.Stats.Matched++
		} else {
			result.Stats.Unmatched++
		}

		result.Employees = append(result.Employees, linked)
	}

	total := result.Stats.Matched + result.Stats.Unmatched
	if total > 0 {
		rate := float64(result.Stats.Matched) / float64(total) * 100
		result.Stats.MatchRate = math.Round(rate*10) / 10
	}

	return result
}

func match(name string, staff []*domain.StaffRecord) *domain.StaffRecord {
	needle := strings.ToLower(strings.TrimSpace(name))

	for _, record := range staff {
		if strings.ToLower(strings.TrimSpace(record.Name)) == needle {
			return record
		}
	}

	for _, record := range staff {
		candidate := strings.ToLower(strings.TrimSpace(record.Name))
		if strings.Contains(candidate, needle) || strings.Contains(needle, candidate) {
			return record
		}
	}

	return nil
}
