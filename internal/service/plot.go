package service

import (
	"context"
	"encoding/base64"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/plotvista/plotvista/internal/apperr"
	"github.com/plotvista/plotvista/internal/models"
	"github.com/plotvista/plotvista/internal/store"
	"github.com/plotvista/plotvista/internal/validation"
	"github.com/plotvista/plotvista/internal/views"
)

// PlotRepository defines the persistence operations required by the
// plot pipeline.
type PlotRepository interface {
	Plots(ctx context.Context) ([]models.Plot, error)
	CreatePlot(ctx context.Context, p models.Plot) error
	UpdatePlot(ctx context.Context, p models.Plot) error
	DeletePlot(ctx context.Context, id string) error
}

// PlotService implements create/update/delete and the read accessors
// for plot listings.
type PlotService struct {
	repo  PlotRepository
	views ViewInvalidator
	log   *zap.Logger
}

// NewPlotService constructs a PlotService.
func NewPlotService(repo PlotRepository, v ViewInvalidator, log *zap.Logger) *PlotService {
	return &PlotService{repo: repo, views: v, log: log}
}

// digitRun matches the first run of digits in a plot size string.
// "2400 sqft" yields 2400; "40x60 ft" yields 40, not the area. The
// heuristic is preserved deliberately.
var digitRun = regexp.MustCompile(`\d+`)

// derivePricePerSqft returns round(price / leading numeric size token),
// or nil when price is absent/zero or no digit run exists.
func derivePricePerSqft(price *float64, plotSize string) *float64 {
	if price == nil || *price == 0 {
		return nil
	}
	run := digitRun.FindString(plotSize)
	if run == "" {
		return nil
	}
	size, err := strconv.Atoi(run)
	if err != nil || size == 0 {
		return nil
	}
	v := math.Round(*price / float64(size))
	return &v
}

// dataURL encodes an uploaded image into a self-contained
// data:<type>;base64,<payload> string.
func dataURL(img validation.ImageUpload) string {
	return "data:" + img.ContentType + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}

// hasDuplicatePlot reports whether another plot (excluding excludeID)
// already uses the same plot number in the same village,
// case-insensitively.
func hasDuplicatePlot(plots []models.Plot, plotNumber, villageName, excludeID string) bool {
	for _, p := range plots {
		if p.ID != excludeID &&
			strings.EqualFold(p.PlotNumber, plotNumber) &&
			strings.EqualFold(p.VillageName, villageName) {
			return true
		}
	}
	return false
}

// Create validates fields and the required image, enforces the
// (plotNumber, villageName) uniqueness invariant, derives pricePerSqft,
// persists the new plot, and signals the listing views stale. It
// returns the assigned id.
func (s *PlotService) Create(ctx context.Context, in validation.PlotInput, img validation.ImageUpload) (string, error) {
	if fields := validation.Check(in); fields != nil {
		return "", apperr.Validation(msgPlotCheckFieldsCreate, fields)
	}
	if len(img.Data) == 0 {
		return "", apperr.Validation(validation.MsgImageRequired,
			map[string][]string{"imageUrl": {validation.MsgImageRequired}})
	}
	if msgs := validation.CheckImage(img); len(msgs) > 0 {
		return "", apperr.Validation(msgPlotImageInvalid, map[string][]string{"imageUrl": msgs})
	}

	plots, err := s.repo.Plots(ctx)
	if err != nil {
		s.log.Error("listing plots for duplicate check", zap.Error(err))
		return "", apperr.Internal(err)
	}
	if hasDuplicatePlot(plots, in.PlotNumber, in.VillageName, "") {
		return "", apperr.Conflict(MsgPlotExists)
	}

	status := in.Status
	if status == "" {
		status = models.StatusAvailable
	}
	p := models.Plot{
		ID:              uuid.NewString(),
		PlotNumber:      in.PlotNumber,
		VillageName:     in.VillageName,
		AreaName:        in.AreaName,
		PlotSize:        in.PlotSize,
		PlotFacing:      in.PlotFacing,
		ImageURL:        dataURL(img),
		ImageHint:       "custom upload",
		Description:     in.Description,
		Price:           in.Price,
		PricePerSqft:    derivePricePerSqft(in.Price, in.PlotSize),
		PriceNegotiable: in.PriceNegotiable,
		Status:          status,
	}
	if err := s.repo.CreatePlot(ctx, p); err != nil {
		s.log.Error("persisting plot", zap.Error(err))
		return "", apperr.Internal(err)
	}

	s.views.Invalidate(views.Dashboard, views.Plots)
	return p.ID, nil
}

// Update applies the same validation and uniqueness rules as Create,
// excluding the record's own id from the uniqueness scan. A supplied
// image replaces the stored one; an omitted image leaves it unchanged.
// The mutation is all-or-nothing: nothing persists unless every check
// passes.
func (s *PlotService) Update(ctx context.Context, id string, in validation.PlotInput, img validation.ImageUpload) error {
	if fields := validation.Check(in); fields != nil {
		return apperr.Validation(msgPlotCheckFieldsUpdate, fields)
	}

	plots, err := s.repo.Plots(ctx)
	if err != nil {
		s.log.Error("listing plots for update", zap.Error(err))
		return apperr.Internal(err)
	}
	if hasDuplicatePlot(plots, in.PlotNumber, in.VillageName, id) {
		return apperr.Conflict(MsgPlotExistsOther)
	}

	var existing *models.Plot
	for i := range plots {
		if plots[i].ID == id {
			existing = &plots[i]
			break
		}
	}
	if existing == nil {
		return apperr.NotFound(MsgPlotNotFound)
	}

	status := in.Status
	if status == "" {
		status = existing.Status
	}
	if status == "" {
		status = models.StatusAvailable
	}
	updated := models.Plot{
		ID:              id,
		PlotNumber:      in.PlotNumber,
		VillageName:     in.VillageName,
		AreaName:        in.AreaName,
		PlotSize:        in.PlotSize,
		PlotFacing:      in.PlotFacing,
		ImageURL:        existing.ImageURL,
		ImageHint:       existing.ImageHint,
		Description:     in.Description,
		Price:           in.Price,
		PricePerSqft:    derivePricePerSqft(in.Price, in.PlotSize),
		PriceNegotiable: in.PriceNegotiable,
		Status:          status,
	}

	if len(img.Data) > 0 {
		if msgs := validation.CheckImage(img); len(msgs) > 0 {
			return apperr.Validation(msgPlotImageUpdate, map[string][]string{"imageUrl": msgs})
		}
		updated.ImageURL = dataURL(img)
		updated.ImageHint = "custom upload"
	}

	if err := s.repo.UpdatePlot(ctx, updated); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound(MsgPlotNotFound)
		}
		s.log.Error("persisting plot update", zap.Error(err))
		return apperr.Internal(err)
	}

	s.views.Invalidate(views.Dashboard, views.Plots,
		views.Plots+"/"+id, views.Plots+"/"+id+"/edit")
	return nil
}

// Delete removes a plot by id.
func (s *PlotService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeletePlot(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound(MsgPlotNotFound)
		}
		s.log.Error("deleting plot", zap.Error(err))
		return apperr.Internal(err)
	}
	s.views.Invalidate(views.Dashboard, views.Plots)
	return nil
}

// List returns all plots, newest first.
func (s *PlotService) List(ctx context.Context) ([]models.Plot, error) {
	plots, err := s.repo.Plots(ctx)
	if err != nil {
		s.log.Error("listing plots", zap.Error(err))
		return nil, apperr.Internal(err)
	}
	reversed := make([]models.Plot, len(plots))
	for i, p := range plots {
		reversed[len(plots)-1-i] = p
	}
	return reversed, nil
}

// Get returns the plot with the given id.
func (s *PlotService) Get(ctx context.Context, id string) (models.Plot, error) {
	plots, err := s.repo.Plots(ctx)
	if err != nil {
		s.log.Error("fetching plot", zap.Error(err))
		return models.Plot{}, apperr.Internal(err)
	}
	for _, p := range plots {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Plot{}, apperr.NotFound(MsgPlotNotFound)
}
