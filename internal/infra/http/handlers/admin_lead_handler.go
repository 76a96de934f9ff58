package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/londonlets/api/internal/entity"
	"github.com/londonlets/api/internal/infra/http/middleware"
	"github.com/londonlets/api/internal/usecase"
)

// AdminLeadHandler serves the leads management table: listing with
// filters, status changes and the CSV export.
type AdminLeadHandler struct {
	Repo     entity.LeadRepositoryInterface
	StatusUC *usecase.UpdateLeadStatusUseCase
}

func NewAdminLeadHandler(repo entity.LeadRepositoryInterface, statusUC *usecase.UpdateLeadStatusUseCase) *AdminLeadHandler {
	return &AdminLeadHandler{
		Repo:     repo,
		StatusUC: statusUC,
	}
}

type leadListResponse struct {
	Success bool           `json:"success"`
	Leads   []*entity.Lead `json:"leads"`
	Message string         `json:"message,omitempty"`
}

func (h *AdminLeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := entity.LeadFilter{
		Query:        r.URL.Query().Get("q"),
		Status:       r.URL.Query().Get("status"),
		InterestedIn: r.URL.Query().Get("interested_in"),
	}

	leads, err := h.Repo.FindAll(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, leadListResponse{
			Success: false,
			Message: "Could not load leads, please try again later",
		})
		return
	}
	if leads == nil {
		leads = []*entity.Lead{}
	}

	writeJSON(w, http.StatusOK, leadListResponse{Success: true, Leads: leads})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type updateStatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (h *AdminLeadHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, updateStatusResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	if err := h.StatusUC.Execute(r.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, entity.ErrLeadNotFound):
			writeJSON(w, http.StatusNotFound, updateStatusResponse{Success: false, Message: "Lead not found"})
		case usecase.IsDomainError(err):
			writeJSON(w, http.StatusBadRequest, updateStatusResponse{Success: false, Message: err.Error()})
		case usecase.IsTechnicalError(err):
			writeJSON(w, http.StatusServiceUnavailable, updateStatusResponse{Success: false, Message: err.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, updateStatusResponse{Success: false, Message: "Something went wrong"})
		}
		return
	}

	middleware.RecordLeadStatusChange(req.Status)
	writeJSON(w, http.StatusOK, updateStatusResponse{Success: true})
}

func (h *AdminLeadHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Repo.FindAll(r.Context(), entity.LeadFilter{})
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, updateStatusResponse{
			Success: false,
			Message: "Could not export leads, please try again later",
		})
		return
	}

	csv := usecase.ExportLeadsCSV(leads)
	filename := fmt.Sprintf("leads-%s.csv", time.Now().Format("2006-01-02"))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(csv)
}
