package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/plotvista/plotvista/internal/views"
)

func TestViewsHandler_Refresh(t *testing.T) {
	tracker := views.NewTracker(zap.NewNop())
	tracker.Invalidate(views.Plots, views.Dashboard, views.Plots)
	h := &ViewsHandler{Tracker: tracker}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/views/refresh", nil)
	h.Refresh(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var payload struct {
		Success bool     `json:"success"`
		Paths   []string `json:"paths"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if !payload.Success {
		t.Error("expected success")
	}
	want := []string{views.Dashboard, views.Plots}
	if len(payload.Paths) != 2 || payload.Paths[0] != want[0] || payload.Paths[1] != want[1] {
		t.Errorf("paths = %v, want %v", payload.Paths, want)
	}

	// A second refresh starts from a drained set.
	rec = httptest.NewRecorder()
	h.Refresh(rec, httptest.NewRequest("POST", "/api/views/refresh", nil))
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if len(payload.Paths) != 0 {
		t.Errorf("paths after drain = %v", payload.Paths)
	}
}
