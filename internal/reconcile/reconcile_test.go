package reconcile

import (
	"testing"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docWith(names ...string) *domain.ScheduleDocument {
	doc := &domain.ScheduleDocument{}
	for _, name := range names {
		doc.Employees = append(doc.Employees, domain.EmployeeSchedule{Name: name})
	}
	return doc
}

func TestLinkExactMatch(t *testing.T) {
	staff := []*domain.StaffRecord{
		{ID: 1, Name: "Alice Johnson", IsUnder18: true},
	}

	result := Link(docWith("  alice johnson "), staff)

	require.Len(t, result.Employees, 1)
	emp := result.Employees[0]
	assert.True(t, emp.Matched)
	require.NotNil(t, emp.StaffID)
	assert.Equal(t, int64(1), *emp.StaffID)
	assert.True(t, emp.IsUnder18)
}

func TestLinkExactBeatsSubstring(t *testing.T) {
	// "Dan" is a substring of the first record, but the exact record later
	// in the roster must win.
	staff := []*domain.StaffRecord{
		{ID: 1, Name: "Daniela Ortiz"},
		{ID: 2, Name: "Dan"},
	}

	result := Link(docWith("Dan"), staff)

	require.NotNil(t, result.Employees[0].StaffID)
	assert.Equal(t, int64(2), *result.Employees[0].StaffID)
}

func TestLinkSubstringFallback(t *testing.T) {
	staff := []*domain.StaffRecord{
		{ID: 7, Name: "Robert Chen Jr."},
	}

	result := Link(docWith("Robert Chen"), staff)

	require.NotNil(t, result.Employees[0].StaffID)
	assert.Equal(t, int64(7), *result.Employees[0].StaffID)
}

func TestLinkUnmatchedDefaults(t *testing.T) {
	result := Link(docWith("Nobody Here"), []*domain.StaffRecord{{ID: 1, Name: "Alice"}})

	emp := result.Employees[0]
	assert.False(t, emp.Matched)
	assert.Nil(t, emp.StaffID)
	assert.False(t, emp.IsUnder18)
}

func TestLinkStats(t *testing.T) {
	staff := []*domain.StaffRecord{
		{ID: 1, Name: "Alice Johnson"},
		{ID: 2, Name: "Bob Smith"},
	}

	result := Link(docWith("Alice Johnson", "Bob Smith", "Carol Davis"), staff)

	assert.Equal(t, 2, result.Stats.Matched)
	assert.Equal(t, 1, result.Stats.Unmatched)
	assert.InDelta(t, 66.7, result.Stats.MatchRate, 0.001)
}

func TestLinkEmptyRosterRateIsZeroNotNaN(t *testing.T) {
	result := Link(&domain.ScheduleDocument{}, nil)

	assert.Equal(t, 0, result.Stats.Matched)
	assert.Equal(t, 0, result.Stats.Unmatched)
	assert.Equal(t, 0.0, result.Stats.MatchRate)
}
