package rules

import (
	"fmt"
	"sort"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
)

// Describe renders a rule's condition and action as English sentence
// fragments for display in the rule builder. The phrase patterns are part
// of the UI contract and must not be reworded.
func Describe(rule *domain.StaffingRule) []string {
	fragments := DescribeCondition(&rule.Condition)
	return append(fragments, DescribeAction(&rule.Action)...)
}

func DescribeCondition(c *domain.RuleCondition) []string {
	var fragments []string

	if c.NumCooks != nil {
		if c.NumCooks.GTE != nil {
			fragments = append(fragments, fmt.Sprintf("at least %d cooks", *c.NumCooks.GTE))
		}
		if c.NumCooks.LTE != nil {
			fragments = append(fragments, fmt.Sprintf("at most %d cooks", *c.NumCooks.LTE))
		}
		if c.NumCooks.EQ != nil {
			fragments = append(fragments, fmt.Sprintf("exactly %d cooks", *c.NumCooks.EQ))
		}
	}
	if c.DTType != nil {
		fragments = append(fragments, fmt.Sprintf("Drive-Thru is %s", *c.DTType))
	}
	if c.ShiftType != nil {
		fragments = append(fragments, fmt.Sprintf("during %s shifts", *c.ShiftType))
	}
	if c.DayOfWeek != nil {
		fragments = append(fragments, fmt.Sprintf("on %s", *c.DayOfWeek))
	}

	return fragments
}

func DescribeAction(a *domain.RuleAction) []string {
	var fragments []string

	if a.RequirePosition != nil {
		fragments = append(fragments, fmt.Sprintf("require %d %s(s)", a.RequirePosition.Count, a.RequirePosition.Position))
	}
	if a.ExcludePosition != nil {
		fragments = append(fragments, fmt.Sprintf("exclude %s", *a.ExcludePosition))
	}
	if len(a.AdjustPositionCount) > 0 {
		positions := make([]string, 0, len(a.AdjustPositionCount))
		for position := range a.AdjustPositionCount {
			positions = append(positions, position)
		}
		sort.Strings(positions)
		for _, position := range positions {
			fragments = append(fragments, fmt.Sprintf("set %s to %d", position, a.AdjustPositionCount[position]))
		}
	}

	return fragments
}
