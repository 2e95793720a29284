package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/plotvista/plotvista/internal/apperr"
	"github.com/plotvista/plotvista/internal/models"
	"github.com/plotvista/plotvista/internal/service"
	"github.com/plotvista/plotvista/internal/validation"
)

// PlotService defines the pipeline operations required by the plot
// handlers.
type PlotService interface {
	Create(ctx context.Context, in validation.PlotInput, img validation.ImageUpload) (string, error)
	Update(ctx context.Context, id string, in validation.PlotInput, img validation.ImageUpload) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Plot, error)
	Get(ctx context.Context, id string) (models.Plot, error)
}

// PlotHandler handles HTTP requests for plot listings.
type PlotHandler struct {
	PlotService PlotService
}

// maxFormMemory bounds in-memory multipart parsing; larger parts spill
// to disk.
const maxFormMemory = 8 << 20

// parsePlotForm extracts the text fields and the optional image from a
// multipart form submission.
func parsePlotForm(r *http.Request) (validation.PlotInput, validation.ImageUpload, error) {
	var in validation.PlotInput
	var img validation.ImageUpload

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return in, img, apperr.Validation(service.MsgInvalidInput, nil)
	}

	in.PlotNumber = r.FormValue("plotNumber")
	in.VillageName = r.FormValue("villageName")
	in.AreaName = r.FormValue("areaName")
	in.PlotSize = r.FormValue("plotSize")
	in.PlotFacing = r.FormValue("plotFacing")
	in.Description = r.FormValue("description")
	in.Status = r.FormValue("status")
	in.PriceNegotiable = r.FormValue("priceNegotiable") == "true"

	if v := r.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return in, img, apperr.Validation(service.MsgInvalidInput,
				map[string][]string{"price": {"Please enter a valid price."}})
		}
		in.Price = &price
	}

	file, header, err := r.FormFile("imageUrl")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return in, img, nil
		}
		return in, img, apperr.Validation(service.MsgInvalidInput, nil)
	}
	defer file.Close()

	// Read one byte past the limit so the size check can reject
	// oversized uploads instead of silently truncating them.
	data, err := io.ReadAll(io.LimitReader(file, validation.ImageMaxSize+1))
	if err != nil {
		return in, img, apperr.Internal(err)
	}
	img.Data = data
	img.ContentType = header.Header.Get("Content-Type")
	return in, img, nil
}

// List handles GET /api/plots.
func (h *PlotHandler) List(w http.ResponseWriter, r *http.Request) {
	plots, err := h.PlotService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if plots == nil {
		plots = []models.Plot{}
	}
	writeJSON(w, http.StatusOK, plots)
}

// Get handles GET /api/plots/{id}.
func (h *PlotHandler) Get(w http.ResponseWriter, r *http.Request) {
	plot, err := h.PlotService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plot)
}

// Create handles POST /api/plots. The body is a multipart form with the
// text fields and a required "imageUrl" file part.
func (h *PlotHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, img, err := parsePlotForm(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := h.PlotService.Create(r.Context(), in, img)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, State{Success: true, Message: service.MsgPlotCreated, ID: id})
}

// Update handles PUT /api/plots/{id}. The image part is optional; when
// omitted the stored image is retained.
func (h *PlotHandler) Update(w http.ResponseWriter, r *http.Request) {
	in, img, err := parsePlotForm(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.PlotService.Update(r.Context(), id, in, img); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, State{Success: true, Message: service.MsgPlotUpdated, ID: id})
}

// Delete handles DELETE /api/plots/{id}.
func (h *PlotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.PlotService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, State{Success: true, Message: service.MsgPlotDeleted})
}
