package rules

import (
	"testing"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDescribeCondition(t *testing.T) {
	cond := domain.RuleCondition{
		DTType:    strPtr("dual-lane"),
		NumCooks:  &domain.CookBounds{GTE: intPtr(2), LTE: intPtr(5)},
		DayOfWeek: strPtr("Friday"),
	}

	fragments := DescribeCondition(&cond)

	assert.Equal(t, []string{
		"at least 2 cooks",
		"at most 5 cooks",
		"Drive-Thru is dual-lane",
		"on Friday",
	}, fragments)
}

func TestDescribeConditionExactCooks(t *testing.T) {
	cond := domain.RuleCondition{NumCooks: &domain.CookBounds{EQ: intPtr(3)}}

	assert.Equal(t, []string{"exactly 3 cooks"}, DescribeCondition(&cond))
}

func TestDescribeAction(t *testing.T) {
	tests := []struct {
		name   string
		action domain.RuleAction
		want   []string
	}{
		{
			"require",
			domain.RuleAction{RequirePosition: &domain.PositionCount{Position: "Cook", Count: 2}},
			[]string{"require 2 Cook(s)"},
		},
		{
			"exclude",
			domain.RuleAction{ExcludePosition: strPtr("Presenter")},
			[]string{"exclude Presenter"},
		},
		{
			"adjust",
			domain.RuleAction{AdjustPositionCount: map[string]int{"Runner": 1, "Cook": 3}},
			[]string{"set Cook to 3", "set Runner to 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DescribeAction(&tt.action))
		})
	}
}

func TestDescribeFullRule(t *testing.T) {
	rule := &domain.StaffingRule{
		Condition: domain.RuleCondition{ShiftType: strPtr("night"), DayOfWeek: strPtr("Saturday")},
		Action:    domain.RuleAction{RequirePosition: &domain.PositionCount{Position: "Cook", Count: 3}},
	}

	assert.Equal(t, []string{
		"during night shifts",
		"on Saturday",
		"require 3 Cook(s)",
	}, Describe(rule))
}
