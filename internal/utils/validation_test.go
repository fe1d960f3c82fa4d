package utils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestValidateRuleCondition(t *testing.T) {
	tests := []struct {
		name      string
		condition domain.RuleCondition
		wantErr   bool
	}{
		{
			name:    "empty condition rejected",
			wantErr: true,
		},
		{
			name:      "valid single key",
			condition: domain.RuleCondition{ShiftType: strPtr("night")},
		},
		{
			name:      "unknown shift type",
			condition: domain.RuleCondition{ShiftType: strPtr("graveyard")},
			wantErr:   true,
		},
		{
			name:      "unknown drive-thru type",
			condition: domain.RuleCondition{DTType: strPtr("triple-lane")},
			wantErr:   true,
		},
		{
			name:      "unknown day",
			condition: domain.RuleCondition{DayOfWeek: strPtr("Funday")},
			wantErr:   true,
		},
		{
			name:      "valid cook range",
			condition: domain.RuleCondition{NumCooks: &domain.CookBounds{GTE: intPtr(2), LTE: intPtr(4)}},
		},
		{
			name:      "empty cook bound",
			condition: domain.RuleCondition{NumCooks: &domain.CookBounds{}},
			wantErr:   true,
		},
		{
			name:      "eq combined with range",
			condition: domain.RuleCondition{NumCooks: &domain.CookBounds{EQ: intPtr(3), LTE: intPtr(4)}},
			wantErr:   true,
		},
		{
			name:      "inverted cook range",
			condition: domain.RuleCondition{NumCooks: &domain.CookBounds{GTE: intPtr(5), LTE: intPtr(2)}},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRuleCondition(&tt.condition)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateRuleAction(t *testing.T) {
	tests := []struct {
		name    string
		action  domain.RuleAction
		wantErr bool
	}{
		{
			name:    "empty action rejected",
			wantErr: true,
		},
		{
			name:   "valid require",
			action: domain.RuleAction{RequirePosition: &domain.PositionCount{Position: "Runner", Count: 1}},
		},
		{
			name:    "require without count",
			action:  domain.RuleAction{RequirePosition: &domain.PositionCount{Position: "Runner"}},
			wantErr: true,
		},
		{
			name: "two directives rejected",
			action: domain.RuleAction{
				RequirePosition: &domain.PositionCount{Position: "Runner", Count: 1},
				ExcludePosition: strPtr("Greeter"),
			},
			wantErr: true,
		},
		{
			name:   "valid adjustment",
			action: domain.RuleAction{AdjustPositionCount: map[string]int{"Front Counter": 4}},
		},
		{
			name:    "empty adjustment rejected",
			action:  domain.RuleAction{AdjustPositionCount: map[string]int{}},
			wantErr: true,
		},
		{
			name:    "negative adjustment rejected",
			action:  domain.RuleAction{AdjustPositionCount: map[string]int{"Greeter": -1}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRuleAction(&tt.action)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
