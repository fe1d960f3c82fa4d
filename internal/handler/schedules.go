package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
	"github.com/crewdeck-dev/deploy-manager/backend/internal/reconcile"
	"github.com/crewdeck-dev/deploy-manager/backend/internal/schedule"
)

// ImportSchedule runs the full pipeline on uploaded schedule text:
// parse, normalize and classify, reconcile against the roster, then
// persist the import and its deployment rows in one transaction.
func (h *Handler) ImportSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	doc, err := h.parser.Parse(req.Text)
	if err != nil {
		var parseErr *schedule.ParseError
		switch {
		case errors.As(err, &parseErr):
			h.errorResponse(w, r, parseErr.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if doc.WeekStart.IsZero() {
		h.errorResponse(w, r, "no week date range found in document")
		return
	}

	records, err := schedule.BuildDeployments(doc)
	if err != nil {
		// A malformed time token aborts the whole document.
		h.errorResponse(w, r, err.Error())
		return
	}

	staff, err := h.repository.GetAllStaff()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	linked := reconcile.Link(doc, staff)

	byName := make(map[string]reconcile.LinkedEmployee, len(linked.Employees))
	for _, emp := range linked.Employees {
		byName[emp.Name] = emp
	}
	for i := range records {
		if emp, ok := byName[records[i].EmployeeName]; ok {
			records[i].StaffID = emp.StaffID
			records[i].IsUnder18 = emp.IsUnder18
		}
	}

	imp := &domain.ScheduleImport{
		ID:            uuid.NewString(),
		Location:      doc.Location,
		LocationCode:  doc.LocationCode,
		WeekStart:     doc.WeekStart,
		WeekEnd:       doc.WeekEnd,
		EmployeeCount: int32(len(doc.Employees)),
		ShiftCount:    int32(len(records)),
	}

	if err := h.repository.CreateScheduleImport(imp, records); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "schedule_imports_location_code_week_start_key":
			h.errorResponse(w, r, "this location's week has already been imported")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "schedule imported", map[string]any{
		"import":   imp,
		"document": doc,
		"stats":    linked.Stats,
	})
}

func (h *Handler) GetAllScheduleImports(w http.ResponseWriter, r *http.Request) {
	imports, err := h.repository.GetAllScheduleImports()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedule imports fetched", imports)
}

func (h *Handler) GetScheduleImport(w http.ResponseWriter, r *http.Request) {
	imp := r.Context().Value(ScheduleImportCtx).(*domain.ScheduleImport)
	h.successResponse(w, r, "schedule import fetched", imp)
}

func (h *Handler) GetScheduleDeployments(w http.ResponseWriter, r *http.Request) {
	imp := r.Context().Value(ScheduleImportCtx).(*domain.ScheduleImport)

	records, err := h.repository.GetDeploymentsByImportID(imp.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "deployments fetched", records)
}

func (h *Handler) DeleteScheduleImport(w http.ResponseWriter, r *http.Request) {
	imp := r.Context().Value(ScheduleImportCtx).(*domain.ScheduleImport)

	if err := h.repository.DeleteScheduleImport(imp.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedule import deleted", nil)
}
