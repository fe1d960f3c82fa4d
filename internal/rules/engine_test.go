package rules

import (
	"testing"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func saturdayNightContext() *domain.DeploymentContext {
	return &domain.DeploymentContext{
		DTType:    "dual-lane",
		NumCooks:  3,
		ShiftType: "night",
		DayOfWeek: "Saturday",
	}
}

func TestMatchesAllPresentKeys(t *testing.T) {
	rule := &domain.StaffingRule{
		IsActive: true,
		Condition: domain.RuleCondition{
			DTType:    strPtr("dual-lane"),
			NumCooks:  &domain.CookBounds{GTE: intPtr(2), LTE: intPtr(4)},
			ShiftType: strPtr("night"),
			DayOfWeek: strPtr("Saturday"),
		},
	}

	assert.True(t, Matches(rule, saturdayNightContext()))
}

func TestMatchesFailsWhenAnyKeyFails(t *testing.T) {
	tests := []struct {
		name      string
		condition domain.RuleCondition
	}{
		{"wrong drive-thru", domain.RuleCondition{DTType: strPtr("single-lane")}},
		{"cooks below gte", domain.RuleCondition{NumCooks: &domain.CookBounds{GTE: intPtr(4)}}},
		{"cooks above lte", domain.RuleCondition{NumCooks: &domain.CookBounds{LTE: intPtr(2)}}},
		{"cooks not eq", domain.RuleCondition{NumCooks: &domain.CookBounds{EQ: intPtr(2)}}},
		{"wrong shift", domain.RuleCondition{ShiftType: strPtr("day")}},
		{"wrong weekday", domain.RuleCondition{DayOfWeek: strPtr("Monday")}},
		{
			"one good key one bad key",
			domain.RuleCondition{DTType: strPtr("dual-lane"), DayOfWeek: strPtr("Monday")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &domain.StaffingRule{IsActive: true, Condition: tt.condition}
			assert.False(t, Matches(rule, saturdayNightContext()))
		})
	}
}

// Regression guard for the fail-closed policy: a rule whose condition has
// no recognized keys must match no context at all, never every context.
func TestEmptyConditionNeverMatches(t *testing.T) {
	rule := &domain.StaffingRule{IsActive: true, Condition: domain.RuleCondition{}}

	assert.False(t, Matches(rule, saturdayNightContext()))
	assert.False(t, Matches(rule, &domain.DeploymentContext{}))
}

func TestEvaluateSkipsInactiveRules(t *testing.T) {
	ruleSet := []*domain.StaffingRule{
		{
			IsActive:  false,
			Condition: domain.RuleCondition{ShiftType: strPtr("night")},
			Action:    domain.RuleAction{ExcludePosition: strPtr("Presenter")},
		},
	}

	assert.Empty(t, Evaluate(ruleSet, saturdayNightContext()))
}

func TestEvaluateOrdersByPriorityThenDeclaration(t *testing.T) {
	ruleSet := []*domain.StaffingRule{
		{
			Name:      "later",
			Priority:  10,
			IsActive:  true,
			Condition: domain.RuleCondition{ShiftType: strPtr("night")},
			Action:    domain.RuleAction{AdjustPositionCount: map[string]int{"Cook": 4}},
		},
		{
			Name:      "first",
			Priority:  5,
			IsActive:  true,
			Condition: domain.RuleCondition{ShiftType: strPtr("night")},
			Action:    domain.RuleAction{AdjustPositionCount: map[string]int{"Cook": 3}},
		},
		{
			Name:      "ties with later",
			Priority:  10,
			IsActive:  true,
			Condition: domain.RuleCondition{DayOfWeek: strPtr("Saturday")},
			Action:    domain.RuleAction{ExcludePosition: strPtr("Runner")},
		},
	}

	actions := Evaluate(ruleSet, saturdayNightContext())

	require.Len(t, actions, 3)
	assert.Equal(t, 3, actions[0].AdjustPositionCount["Cook"])
	assert.Equal(t, 4, actions[1].AdjustPositionCount["Cook"])
	assert.Equal(t, "Runner", *actions[2].ExcludePosition)
}

func TestEvaluateWithNoMatchesReturnsEmptySlice(t *testing.T) {
	ruleSet := []*domain.StaffingRule{
		{
			IsActive:  true,
			Condition: domain.RuleCondition{ShiftType: strPtr("day")},
			Action:    domain.RuleAction{ExcludePosition: strPtr("Presenter")},
		},
	}

	actions := Evaluate(ruleSet, saturdayNightContext())
	assert.NotNil(t, actions)
	assert.Empty(t, actions)
}
