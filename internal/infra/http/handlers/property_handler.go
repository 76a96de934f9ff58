package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/londonlets/api/internal/entity"
	"github.com/londonlets/api/internal/usecase"
)

type PropertyHandler struct {
	Repo       entity.PropertyRepositoryInterface
	EstimateUC *usecase.EstimateRentUseCase
}

func NewPropertyHandler(repo entity.PropertyRepositoryInterface, estimateUC *usecase.EstimateRentUseCase) *PropertyHandler {
	return &PropertyHandler{
		Repo:       repo,
		EstimateUC: estimateUC,
	}
}

type propertyListResponse struct {
	Success    bool               `json:"success"`
	Properties []*entity.Property `json:"properties"`
	Message    string             `json:"message,omitempty"`
}

func (h *PropertyHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	properties, err := h.Repo.FindAll(r.Context())
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, propertyListResponse{
			Success: false,
			Message: "Could not load properties, please try again later",
		})
		return
	}
	if properties == nil {
		properties = []*entity.Property{}
	}

	writeJSON(w, http.StatusOK, propertyListResponse{Success: true, Properties: properties})
}

func (h *PropertyHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	property, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"success": false,
			"message": "Could not load the property, please try again later",
		})
		return
	}
	if property == nil {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false,
			"message": "Property not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	var input usecase.EstimateRentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Invalid JSON",
		})
		return
	}

	output := h.EstimateUC.Execute(r.Context(), input)
	writeJSON(w, http.StatusOK, output)
}
