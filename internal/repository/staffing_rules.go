package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
)

// Rule conditions and actions are stored as JSONB in the shared wire
// format, so the rule-builder UI, the database and the engine all read
// the same keys.

func (r *Repository) GetAllStaffingRules() ([]*domain.StaffingRule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, name, priority, is_active, condition, action, created_at, version
		FROM staffing_rules
		ORDER BY priority, id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ruleSet := make([]*domain.StaffingRule, 0)
	for rows.Next() {
		rule := &domain.StaffingRule{}
		var condition, action []byte

		dst := []any{&rule.ID, &rule.Name, &rule.Priority, &rule.IsActive, &condition, &action, &rule.CreatedAt, &rule.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(condition, &rule.Condition); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(action, &rule.Action); err != nil {
			return nil, err
		}

		ruleSet = append(ruleSet, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ruleSet, nil
}

func (r *Repository) GetStaffingRule(id int64) (*domain.StaffingRule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT name, priority, is_active, condition, action, created_at, version
		FROM staffing_rules
		WHERE id = $1
	`

	rule := &domain.StaffingRule{
		ID: id,
	}
	var condition, action []byte

	dst := []any{&rule.Name, &rule.Priority, &rule.IsActive, &condition, &action, &rule.CreatedAt, &rule.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(condition, &rule.Condition); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(action, &rule.Action); err != nil {
		return nil, err
	}

	return rule, nil
}

func (r *Repository) CreateStaffingRule(rule *domain.StaffingRule) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	condition, err := json.Marshal(rule.Condition)
	if err != nil {
		return err
	}
	action, err := json.Marshal(rule.Action)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO staffing_rules (name, priority, is_active, condition, action)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	args := []any{rule.Name, rule.Priority, rule.IsActive, condition, action}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&rule.ID, &rule.CreatedAt, &rule.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateStaffingRule(rule *domain.StaffingRule) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	condition, err := json.Marshal(rule.Condition)
	if err != nil {
		return err
	}
	action, err := json.Marshal(rule.Action)
	if err != nil {
		return err
	}

	query := `
		UPDATE staffing_rules
		SET
			name = $1,
			priority = $2,
			is_active = $3,
			condition = $4,
			action = $5,
			version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING version
	`

	args := []any{rule.Name, rule.Priority, rule.IsActive, condition, action, rule.ID, rule.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&rule.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteStaffingRule(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM staffing_rules WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
