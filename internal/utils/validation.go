package utils

import (
	"errors"
	"fmt"
	"slices"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
)

var validDTTypes = []string{
	string(domain.DriveThruSingle),
	string(domain.DriveThruDual),
	string(domain.DriveThruNone),
}

var validShiftTypes = []string{
	string(domain.ShiftDay),
	string(domain.ShiftNight),
	string(domain.ShiftBoth),
}

// ValidateRuleCondition rejects conditions the engine would never match or
// that reference unknown vocabulary.
func ValidateRuleCondition(c *domain.RuleCondition) error {
	if c.DTType == nil && c.NumCooks == nil && c.ShiftType == nil && c.DayOfWeek == nil {
		return errors.New("the condition has no keys and would never match")
	}

	if c.DTType != nil && !slices.Contains(validDTTypes, *c.DTType) {
		return fmt.Errorf("unknown drive-thru type %q", *c.DTType)
	}

	if c.NumCooks != nil {
		b := c.NumCooks
		if b.GTE == nil && b.LTE == nil && b.EQ == nil {
			return errors.New("the cook bound has no keys")
		}
		if b.EQ != nil && (b.GTE != nil || b.LTE != nil) {
			return errors.New("an exact cook bound cannot be combined with a range")
		}
		if b.GTE != nil && b.LTE != nil && *b.GTE > *b.LTE {
			return fmt.Errorf("the cook range %d..%d is empty", *b.GTE, *b.LTE)
		}
	}

	if c.ShiftType != nil && !slices.Contains(validShiftTypes, *c.ShiftType) {
		return fmt.Errorf("unknown shift type %q", *c.ShiftType)
	}

	if c.DayOfWeek != nil && !slices.Contains(domain.WeekDays, *c.DayOfWeek) {
		return fmt.Errorf("unknown day of week %q", *c.DayOfWeek)
	}

	return nil
}

// ValidateRuleAction requires exactly one action family per rule.
func ValidateRuleAction(a *domain.RuleAction) error {
	families := 0
	if a.RequirePosition != nil {
		families++
	}
	if a.ExcludePosition != nil {
		families++
	}
	if a.AdjustPositionCount != nil {
		families++
	}
	if families != 1 {
		return fmt.Errorf("the action must carry exactly one directive, got %d", families)
	}

	if a.RequirePosition != nil {
		if a.RequirePosition.Position == "" {
			return errors.New("the required position has no name")
		}
		if a.RequirePosition.Count <= 0 {
			return fmt.Errorf("the required position count must be positive, got %d", a.RequirePosition.Count)
		}
	}

	if a.ExcludePosition != nil && *a.ExcludePosition == "" {
		return errors.New("the excluded position has no name")
	}

	if a.AdjustPositionCount != nil {
		if len(a.AdjustPositionCount) == 0 {
			return errors.New("the position adjustment is empty")
		}
		for position, count := range a.AdjustPositionCount {
			if position == "" {
				return errors.New("a position adjustment has no name")
			}
			if count < 0 {
				return fmt.Errorf("the adjusted count for %q must not be negative, got %d", position, count)
			}
		}
	}

	return nil
}
