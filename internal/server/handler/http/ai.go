package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/plotvista/plotvista/internal/ai"
)

// AIHandler fronts the optional content-generation service. Every
// endpoint degrades to a 503 "unavailable" payload when the generator
// is disabled or failing; nothing here is required for the mutation
// pipelines to work.
type AIHandler struct {
	Generator   ai.Generator
	PlotService PlotService
}

const msgGenerationUnavailable = "Content generation is currently unavailable."

// writeGenerationError distinguishes "the model is off/unreachable"
// from pipeline errors such as an unknown plot id.
func writeGenerationError(w http.ResponseWriter, err error) {
	if errors.Is(err, ai.ErrUnavailable) {
		writeJSON(w, http.StatusServiceUnavailable, State{Success: false, Message: msgGenerationUnavailable})
		return
	}
	writeError(w, err)
}

// plotRequest is the JSON payload naming the plot to generate for.
type plotRequest struct {
	PlotID string `json:"plotId"`
}

// Describe handles POST /api/ai/describe.
func (h *AIHandler) Describe(w http.ResponseWriter, r *http.Request) {
	var req plotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, State{Success: false, Message: "Invalid input data."})
		return
	}
	plot, err := h.PlotService.Get(r.Context(), req.PlotID)
	if err != nil {
		writeError(w, err)
		return
	}
	text, err := h.Generator.GenerateDescription(r.Context(), plot)
	if err != nil {
		writeGenerationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "description": text})
}

// Vastu handles POST /api/ai/vastu.
func (h *AIHandler) Vastu(w http.ResponseWriter, r *http.Request) {
	var req plotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, State{Success: false, Message: "Invalid input data."})
		return
	}
	plot, err := h.PlotService.Get(r.Context(), req.PlotID)
	if err != nil {
		writeError(w, err)
		return
	}
	report, err := h.Generator.AnalyzeVastu(r.Context(), plot)
	if err != nil {
		writeGenerationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "vastu": report})
}

// amenitiesRequest names the location to look up.
type amenitiesRequest struct {
	VillageName string `json:"villageName"`
	AreaName    string `json:"areaName"`
}

// Amenities handles POST /api/ai/amenities.
func (h *AIHandler) Amenities(w http.ResponseWriter, r *http.Request) {
	var req amenitiesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, State{Success: false, Message: "Invalid input data."})
		return
	}
	amenities, err := h.Generator.NearbyAmenities(r.Context(), req.VillageName, req.AreaName)
	if err != nil {
		writeGenerationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "amenities": amenities})
}

// SitePlan handles POST /api/ai/site-plan.
func (h *AIHandler) SitePlan(w http.ResponseWriter, r *http.Request) {
	var req plotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, State{Success: false, Message: "Invalid input data."})
		return
	}
	plot, err := h.PlotService.Get(r.Context(), req.PlotID)
	if err != nil {
		writeError(w, err)
		return
	}
	img, err := h.Generator.GenerateSitePlan(r.Context(), plot)
	if err != nil {
		writeGenerationError(w, err)
		return
	}
	writeImage(w, img)
}

// Visualize handles POST /api/ai/visualize: it feeds the plot's stored
// image back to the generator together with its location.
func (h *AIHandler) Visualize(w http.ResponseWriter, r *http.Request) {
	var req plotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, State{Success: false, Message: "Invalid input data."})
		return
	}
	plot, err := h.PlotService.Get(r.Context(), req.PlotID)
	if err != nil {
		writeError(w, err)
		return
	}
	raw, err := decodeDataURL(plot.ImageURL)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, State{Success: false, Message: "The plot image cannot be processed."})
		return
	}
	img, err := h.Generator.VisualizeFutureDevelopment(r.Context(), raw, plot.VillageName+", "+plot.AreaName)
	if err != nil {
		writeGenerationError(w, err)
		return
	}
	writeImage(w, img)
}

// MarketInsights handles POST /api/ai/market-insights: it summarizes
// the whole inventory into homepage teaser statements. Unlike the
// per-plot endpoints this one never reports the generator as
// unavailable; it serves fixed fallback insights instead so the
// homepage always has something to show.
func (h *AIHandler) MarketInsights(w http.ResponseWriter, r *http.Request) {
	plots, err := h.PlotService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	insights, err := h.Generator.MarketInsights(r.Context(), plots)
	if err != nil {
		insights = ai.FallbackInsights()
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "insights": insights})
}

func writeImage(w http.ResponseWriter, img *ai.Image) {
	contentType := img.MIMEType
	if contentType == "" {
		contentType = "image/png"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img.Data)
}

// decodeDataURL extracts the raw bytes from a data:<type>;base64,<...>
// string.
func decodeDataURL(url string) ([]byte, error) {
	_, payload, found := strings.Cut(url, ";base64,")
	if !found {
		return nil, errors.New("not a base64 data URL")
	}
	return base64.StdEncoding.DecodeString(payload)
}
