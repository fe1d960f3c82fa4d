package domain

import (
	"time"
)

// CookBounds restricts the number of cooks on deployment. All present
// bounds must hold.
type CookBounds struct {
	GTE *int `json:"gte,omitempty"`
	LTE *int `json:"lte,omitempty"`
	EQ  *int `json:"eq,omitempty"`
}

// RuleCondition is the wire format shared with the rule-builder UI. Every
// present key must match (AND semantics); a condition with no present keys
// matches nothing.
type RuleCondition struct {
	DTType    *string     `json:"dt_type,omitempty"`
	NumCooks  *CookBounds `json:"num_cooks,omitempty"`
	ShiftType *string     `json:"shift_type,omitempty"`
	DayOfWeek *string     `json:"day_of_week,omitempty"`
}

type PositionCount struct {
	Position string `json:"position"`
	Count    int    `json:"count"`
}

// RuleAction carries exactly one meaningful action family per rule.
type RuleAction struct {
	RequirePosition     *PositionCount `json:"require_position,omitempty"`
	ExcludePosition     *string        `json:"exclude_position,omitempty"`
	AdjustPositionCount map[string]int `json:"adjust_position_count,omitempty"`
}

// StaffingRule is authored in the rule-builder UI and evaluated by the
// rule engine. Lower priority numbers apply first.
type StaffingRule struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Priority  int32         `json:"priority"`
	IsActive  bool          `json:"isActive"`
	Condition RuleCondition `json:"condition"`
	Action    RuleAction    `json:"action"`
	CreatedAt time.Time     `json:"createdAt"`
	Version   int32         `json:"-"`
}
