package http

import (
	"net/http"

	"github.com/plotvista/plotvista/internal/models"
)

// MetaHandler serves the fixed option lists the plot and contact forms
// render their selects from.
type MetaHandler struct{}

// Options handles GET /api/meta/options.
func (h *MetaHandler) Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"facings": models.PlotFacings,
		"statuses": []string{
			models.StatusAvailable,
			models.StatusReserved,
			models.StatusSold,
			models.StatusUnderNegotiation,
		},
		"contactTypes": []string{models.ContactSeller, models.ContactBuyer},
	})
}
