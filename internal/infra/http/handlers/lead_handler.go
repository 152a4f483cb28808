package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/leadtrack/internal/infra/http/middleware"
	"github.com/xavierca1/leadtrack/internal/usecase"
)

type LeadHandler struct {
	CreateUC *usecase.CreateLeadUseCase
	ListUC   *usecase.ListLeadsUseCase
}

func NewLeadHandler(createUC *usecase.CreateLeadUseCase, listUC *usecase.ListLeadsUseCase) *LeadHandler {
	return &LeadHandler{
		CreateUC: createUC,
		ListUC:   listUC,
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

// HandleList serves GET /api/leads: every lead, newest first.
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	leads, err := h.ListUC.Execute(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, leads)
}

// HandleCreate serves POST /api/leads. Every rejection path answers 400 with
// a message; only the store decides success.
func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid JSON"})
		return
	}

	lead, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		middleware.RecordLeadCreateFailure()
		if usecase.IsDomainError(err) {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
			return
		}
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Failed to create lead"})
		return
	}

	middleware.RecordLeadCreated(lead.Status)
	writeJSON(w, http.StatusCreated, lead)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
