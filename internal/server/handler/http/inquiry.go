package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/plotvista/plotvista/internal/models"
	"github.com/plotvista/plotvista/internal/service"
	"github.com/plotvista/plotvista/internal/validation"
)

// InquiryService defines the pipeline operations required by the
// inquiry handlers.
type InquiryService interface {
	Create(ctx context.Context, in validation.InquiryInput) (string, error)
	List(ctx context.Context) ([]models.Inquiry, error)
}

// InquiryHandler handles the public contact-a-plot form and the
// dashboard's inquiry view.
type InquiryHandler struct {
	InquiryService InquiryService
}

// Create handles POST /api/inquiries.
func (h *InquiryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in validation.InquiryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, State{Success: false, Message: service.MsgInvalidInput})
		return
	}
	id, err := h.InquiryService.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, State{Success: true, Message: service.MsgInquirySubmitted, ID: id})
}

// List handles GET /api/inquiries.
func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.InquiryService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if inquiries == nil {
		inquiries = []models.Inquiry{}
	}
	writeJSON(w, http.StatusOK, inquiries)
}
