package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/plotvista/plotvista/internal/apperr"
	"github.com/plotvista/plotvista/internal/models"
	"github.com/plotvista/plotvista/internal/service"
	"github.com/plotvista/plotvista/internal/validation"
)

// fakePlotService implements PlotService for testing.
type fakePlotService struct {
	createID  string
	createErr error
	updateErr error
	deleteErr error
	plots     []models.Plot
	listErr   error
	getPlot   models.Plot
	getErr    error

	gotInput validation.PlotInput
	gotImage validation.ImageUpload
}

func (f *fakePlotService) Create(ctx context.Context, in validation.PlotInput, img validation.ImageUpload) (string, error) {
	f.gotInput = in
	f.gotImage = img
	return f.createID, f.createErr
}

func (f *fakePlotService) Update(ctx context.Context, id string, in validation.PlotInput, img validation.ImageUpload) error {
	f.gotInput = in
	f.gotImage = img
	return f.updateErr
}

func (f *fakePlotService) Delete(ctx context.Context, id string) error {
	return f.deleteErr
}

func (f *fakePlotService) List(ctx context.Context) ([]models.Plot, error) {
	return f.plots, f.listErr
}

func (f *fakePlotService) Get(ctx context.Context, id string) (models.Plot, error) {
	return f.getPlot, f.getErr
}

// plotForm builds a multipart body with the given fields and an optional
// image part.
func plotForm(t *testing.T, fields map[string]string, image []byte, contentType string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if image != nil {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", `form-data; name="imageUrl"; filename="plot.png"`)
		hdr.Set("Content-Type", contentType)
		part, err := mw.CreatePart(hdr)
		if err != nil {
			t.Fatalf("create image part: %v", err)
		}
		if _, err := part.Write(image); err != nil {
			t.Fatalf("write image: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, mw.FormDataContentType()
}

func validPlotFields() map[string]string {
	return map[string]string{
		"plotNumber":  "A-101",
		"villageName": "Greenfield",
		"areaName":    "North Sector",
		"plotSize":    "2400 sqft",
		"plotFacing":  "East",
		"price":       "2400000",
	}
}

func TestPlotHandler_Create(t *testing.T) {
	tests := []struct {
		name         string
		fields       map[string]string
		image        []byte
		imageType    string
		service      *fakePlotService
		expectedCode int
	}{
		{
			name:         "success",
			fields:       validPlotFields(),
			image:        []byte("png bytes"),
			imageType:    "image/png",
			service:      &fakePlotService{createID: "p1"},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "bad price value",
			fields:       map[string]string{"plotNumber": "A-101", "price": "not-a-number"},
			image:        []byte("png bytes"),
			imageType:    "image/png",
			service:      &fakePlotService{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "validation failure from pipeline",
			fields:       validPlotFields(),
			image:        []byte("png bytes"),
			imageType:    "image/png",
			service:      &fakePlotService{createErr: apperr.Validation("Failed to create plot. Please check all text fields.", map[string][]string{"plotNumber": {"Plot number is required."}})},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "duplicate is conflict",
			fields:       validPlotFields(),
			image:        []byte("png bytes"),
			imageType:    "image/png",
			service:      &fakePlotService{createErr: apperr.Conflict(service.MsgPlotExists)},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := plotForm(t, tt.fields, tt.image, tt.imageType)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/plots", body)
			req.Header.Set("Content-Type", contentType)

			h := &PlotHandler{PlotService: tt.service}
			h.Create(rec, req)
			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, res.StatusCode)
			}

			var state State
			if err := json.NewDecoder(res.Body).Decode(&state); err != nil {
				t.Fatalf("failed to decode JSON: %v", err)
			}
			if tt.expectedCode == http.StatusCreated {
				if !state.Success || state.ID != "p1" {
					t.Errorf("state = %+v", state)
				}
			} else if state.Success {
				t.Errorf("failure response must not report success: %+v", state)
			}
		})
	}
}

func TestPlotHandler_CreateParsesForm(t *testing.T) {
	svc := &fakePlotService{createID: "p1"}
	body, contentType := plotForm(t, validPlotFields(), []byte("png bytes"), "image/png")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/plots", body)
	req.Header.Set("Content-Type", contentType)

	h := &PlotHandler{PlotService: svc}
	h.Create(rec, req)

	if svc.gotInput.PlotNumber != "A-101" || svc.gotInput.VillageName != "Greenfield" {
		t.Errorf("input = %+v", svc.gotInput)
	}
	if svc.gotInput.Price == nil || *svc.gotInput.Price != 2400000 {
		t.Errorf("Price = %v; want 2400000", svc.gotInput.Price)
	}
	if string(svc.gotImage.Data) != "png bytes" || svc.gotImage.ContentType != "image/png" {
		t.Errorf("image = %+v", svc.gotImage)
	}
}

func TestPlotHandler_UpdateWithoutImage(t *testing.T) {
	svc := &fakePlotService{}
	fields := validPlotFields()
	delete(fields, "price")
	body, contentType := plotForm(t, fields, nil, "")

	router := chi.NewRouter()
	h := &PlotHandler{PlotService: svc}
	router.Put("/api/plots/{id}", h.Update)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/plots/p1", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(svc.gotImage.Data) != 0 {
		t.Errorf("omitted image part must reach the pipeline empty, got %d bytes", len(svc.gotImage.Data))
	}
}

func TestPlotHandler_List(t *testing.T) {
	svc := &fakePlotService{plots: []models.Plot{{ID: "p1"}, {ID: "p2"}}}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/plots", nil)

	h := &PlotHandler{PlotService: svc}
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var plots []models.Plot
	if err := json.NewDecoder(rec.Body).Decode(&plots); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if len(plots) != 2 {
		t.Errorf("expected 2 plots, got %d", len(plots))
	}
}

func TestPlotHandler_ListEmptyIsArray(t *testing.T) {
	svc := &fakePlotService{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/plots", nil)

	h := &PlotHandler{PlotService: svc}
	h.List(rec, req)

	if got := rec.Body.String(); !bytes.Contains([]byte(got), []byte("[]")) {
		t.Errorf("empty list must render as a JSON array, got %q", got)
	}
}

func TestPlotHandler_GetNotFound(t *testing.T) {
	svc := &fakePlotService{getErr: apperr.NotFound(service.MsgPlotNotFound)}
	router := chi.NewRouter()
	h := &PlotHandler{PlotService: svc}
	router.Get("/api/plots/{id}", h.Get)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/plots/ghost", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte(service.MsgPlotNotFound)) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestPlotHandler_ValidationErrorsOnWire(t *testing.T) {
	fields := map[string][]string{"imageUrl": {validation.MsgImageRequired}}
	svc := &fakePlotService{createErr: apperr.Validation(validation.MsgImageRequired, fields)}

	body, contentType := plotForm(t, validPlotFields(), nil, "")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/plots", body)
	req.Header.Set("Content-Type", contentType)

	h := &PlotHandler{PlotService: svc}
	h.Create(rec, req)

	var state State
	if err := json.NewDecoder(rec.Body).Decode(&state); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if got := state.Errors["imageUrl"]; len(got) != 1 || got[0] != validation.MsgImageRequired {
		t.Errorf("Errors = %v", state.Errors)
	}
}
