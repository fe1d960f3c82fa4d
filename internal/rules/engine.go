package rules

import (
	"sort"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
)

// matcher checks one condition key against the deployment context.
type matcher func(ctx *domain.DeploymentContext) bool

// matchers returns one closure per key present on the condition. A rule
// matches only if every returned matcher holds, so a condition with no
// recognized keys yields an empty list and the rule matches nothing
// (fail-closed; an empty condition must never match everything).
func matchers(c *domain.RuleCondition) []matcher {
	var ms []matcher

	if c.DTType != nil {
		want := *c.DTType
		ms = append(ms, func(ctx *domain.DeploymentContext) bool {
			return ctx.DTType == want
		})
	}
	if c.NumCooks != nil {
		bounds := *c.NumCooks
		ms = append(ms, func(ctx *domain.DeploymentContext) bool {
			if bounds.GTE != nil && ctx.NumCooks < *bounds.GTE {
				return false
			}
			if bounds.LTE != nil && ctx.NumCooks > *bounds.LTE {
				return false
			}
			if bounds.EQ != nil && ctx.NumCooks != *bounds.EQ {
				return false
			}
			return true
		})
	}
	if c.ShiftType != nil {
		want := *c.ShiftType
		ms = append(ms, func(ctx *domain.DeploymentContext) bool {
			return ctx.ShiftType == want
		})
	}
	if c.DayOfWeek != nil {
		want := *c.DayOfWeek
		ms = append(ms, func(ctx *domain.DeploymentContext) bool {
			return ctx.DayOfWeek == want
		})
	}

	return ms
}

// Matches reports whether every condition key present on the rule holds
// for the context. Malformed or empty conditions never match and never
// error.
func Matches(rule *domain.StaffingRule, ctx *domain.DeploymentContext) bool {
	ms := matchers(&rule.Condition)
	if len(ms) == 0 {
		return false
	}
	for _, m := range ms {
		if !m(ctx) {
			return false
		}
	}
	return true
}

// Evaluate returns the actions of every active rule whose condition fully
// matches the context, ordered by ascending priority with declaration
// order as the tiebreak. The order matters downstream: when two adjust
// actions target the same position, the later action in this list wins
// when the caller merges them.
func Evaluate(ruleSet []*domain.StaffingRule, ctx *domain.DeploymentContext) []domain.RuleAction {
	matched := make([]*domain.StaffingRule, 0)
	for _, rule := range ruleSet {
		if !rule.IsActive {
			continue
		}
		if Matches(rule, ctx) {
			matched = append(matched, rule)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Priority < matched[j].Priority
	})

	actions := make([]domain.RuleAction, 0, len(matched))
	for _, rule := range matched {
		actions = append(actions, rule.Action)
	}

	return actions
}
