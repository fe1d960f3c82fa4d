package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
)

// RequestWeeklyReport queues a workbook build for one schedule import.
// The report worker loads the deployments, renders the spreadsheet and
// mails it to the recipient.
func (h *Handler) RequestWeeklyReport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ImportID string `json:"importId" validate:"required,uuid"`
		To       string `json:"to" validate:"required,email"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if _, err := h.repository.GetScheduleImportByID(req.ImportID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "schedule import not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	mailMessage := domain.MailMessage{
		Type: "weekly_report",
		To:   req.To,
		Data: domain.WeeklyReportMailData{
			ImportID: req.ImportID,
		},
	}

	if err := h.publishJob(mailMessage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "weekly report queued", nil)
}
