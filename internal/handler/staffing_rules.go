package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
	"github.com/crewdeck-dev/deploy-manager/backend/internal/rules"
	"github.com/crewdeck-dev/deploy-manager/backend/internal/utils"
)

func (h *Handler) GetAllStaffingRules(w http.ResponseWriter, r *http.Request) {
	ruleSet, err := h.repository.GetAllStaffingRules()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "staffing rules fetched", ruleSet)
}

func (h *Handler) GetStaffingRule(w http.ResponseWriter, r *http.Request) {
	rule := r.Context().Value(StaffingRuleCtx).(*domain.StaffingRule)
	h.successResponse(w, r, "staffing rule fetched", rule)
}

// GetStaffingRuleDescription returns the rule rendered as the English
// fragments the rule builder shows in previews.
func (h *Handler) GetStaffingRuleDescription(w http.ResponseWriter, r *http.Request) {
	rule := r.Context().Value(StaffingRuleCtx).(*domain.StaffingRule)
	h.successResponse(w, r, "staffing rule described", rules.Describe(rule))
}

func (h *Handler) CreateStaffingRule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string               `json:"name" validate:"required"`
		Priority  int32                `json:"priority"`
		IsActive  bool                 `json:"isActive"`
		Condition domain.RuleCondition `json:"condition"`
		Action    domain.RuleAction    `json:"action"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateRuleCondition(&req.Condition); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}
	if err := utils.ValidateRuleAction(&req.Action); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	rule := &domain.StaffingRule{
		Name:      req.Name,
		Priority:  req.Priority,
		IsActive:  req.IsActive,
		Condition: req.Condition,
		Action:    req.Action,
	}

	if err := h.repository.CreateStaffingRule(rule); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "staffing_rules_name_key":
			h.errorResponse(w, r, "a rule with this name already exists")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "staffing rule created", rule)
}

func (h *Handler) UpdateStaffingRule(w http.ResponseWriter, r *http.Request) {
	rule := r.Context().Value(StaffingRuleCtx).(*domain.StaffingRule)

	var req struct {
		Name      *string               `json:"name"`
		Priority  *int32                `json:"priority"`
		IsActive  *bool                 `json:"isActive"`
		Condition *domain.RuleCondition `json:"condition"`
		Action    *domain.RuleAction    `json:"action"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		rule.Name = *req.Name
	}
	if req.Priority != nil {
		rule.Priority = *req.Priority
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	if req.Condition != nil {
		rule.Condition = *req.Condition
	}
	if req.Action != nil {
		rule.Action = *req.Action
	}

	if err := utils.ValidateRuleCondition(&rule.Condition); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}
	if err := utils.ValidateRuleAction(&rule.Action); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.UpdateStaffingRule(rule); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "staffing_rules_name_key":
			h.errorResponse(w, r, "a rule with this name already exists")
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "staffing rule updated", rule)
}

func (h *Handler) DeleteStaffingRule(w http.ResponseWriter, r *http.Request) {
	rule := r.Context().Value(StaffingRuleCtx).(*domain.StaffingRule)

	if err := h.repository.DeleteStaffingRule(rule.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "staffing rule deleted", nil)
}

// EvaluateStaffingRules runs every stored active rule against a posted
// deployment context and returns the matching actions in application
// order.
func (h *Handler) EvaluateStaffingRules(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Context domain.DeploymentContext `json:"context"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	ruleSet, err := h.repository.GetAllStaffingRules()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	actions := rules.Evaluate(ruleSet, &req.Context)

	h.successResponse(w, r, "staffing rules evaluated", actions)
}
