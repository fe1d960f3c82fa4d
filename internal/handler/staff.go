package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
	"github.com/crewdeck-dev/deploy-manager/backend/internal/roster"
)

func (h *Handler) GetAllStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.repository.GetAllStaff()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "staff fetched", staff)
}

func (h *Handler) GetStaff(w http.ResponseWriter, r *http.Request) {
	record := r.Context().Value(StaffCtx).(*domain.StaffRecord)
	h.successResponse(w, r, "staff record fetched", record)
}

func (h *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name" validate:"required"`
		IsUnder18 bool   `json:"isUnder18"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	record := &domain.StaffRecord{
		Name:      req.Name,
		IsUnder18: req.IsUnder18,
	}

	if err := h.repository.CreateStaff(record); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "staff_name_key":
			h.errorResponse(w, r, "a staff record with this name already exists")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "staff record created", record)
}

// ImportStaffRoster accepts a CSV roster in the request body. Invalid
// rows are reported back alongside the created records; only an
// unreadable file fails the request.
func (h *Handler) ImportStaffRoster(w http.ResponseWriter, r *http.Request) {
	result, err := roster.Import(r.Body)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if len(result.Records) > 0 {
		if err := h.repository.CreateStaffBatch(result.Records); err != nil {
			var pgErr *pgconn.PgError
			switch {
			case errors.As(err, &pgErr) && pgErr.ConstraintName == "staff_name_key":
				h.errorResponse(w, r, "the roster contains a name that already exists")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
	}

	h.successResponse(w, r, "roster imported", result)
}

func (h *Handler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	record := r.Context().Value(StaffCtx).(*domain.StaffRecord)

	var req struct {
		Name      *string `json:"name"`
		IsUnder18 *bool   `json:"isUnder18"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		record.Name = *req.Name
	}
	if req.IsUnder18 != nil {
		record.IsUnder18 = *req.IsUnder18
	}

	if err := h.repository.UpdateStaff(record); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "staff_name_key":
			h.errorResponse(w, r, "a staff record with this name already exists")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "staff record updated", record)
}

func (h *Handler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	record := r.Context().Value(StaffCtx).(*domain.StaffRecord)

	if err := h.repository.DeleteStaff(record.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "staff record deleted", nil)
}
