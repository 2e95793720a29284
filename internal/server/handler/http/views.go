package http

import (
	"net/http"
	"sort"

	"github.com/plotvista/plotvista/internal/views"
)

// ViewsHandler exposes the stale-view set to the dashboard so the
// frontend knows which rendered pages to rebuild after mutations.
type ViewsHandler struct {
	Tracker *views.Tracker
}

// Refresh handles POST /api/views/refresh. It returns the view paths
// made stale since the last call and resets the set.
func (h *ViewsHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	paths := h.Tracker.Drain()
	sort.Strings(paths)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "paths": paths})
}
