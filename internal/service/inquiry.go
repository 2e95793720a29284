package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/plotvista/plotvista/internal/apperr"
	"github.com/plotvista/plotvista/internal/models"
	"github.com/plotvista/plotvista/internal/validation"
	"github.com/plotvista/plotvista/internal/views"
)

// InquiryRepository defines the persistence operations required by the
// inquiry pipeline.
type InquiryRepository interface {
	Inquiries(ctx context.Context) ([]models.Inquiry, error)
	CreateInquiry(ctx context.Context, inq models.Inquiry) error
}

// InquiryService implements the public contact-a-plot form. Inquiries
// have no uniqueness constraint: multiple inquiries per email and plot
// are allowed.
type InquiryService struct {
	repo  InquiryRepository
	views ViewInvalidator
	log   *zap.Logger
}

// NewInquiryService constructs an InquiryService.
func NewInquiryService(repo InquiryRepository, v ViewInvalidator, log *zap.Logger) *InquiryService {
	return &InquiryService{repo: repo, views: v, log: log}
}

// Create validates and persists a new inquiry with the receipt time.
func (s *InquiryService) Create(ctx context.Context, in validation.InquiryInput) (string, error) {
	if fields := validation.Check(in); fields != nil {
		return "", apperr.Validation(MsgInvalidInput, fields)
	}

	inq := models.Inquiry{
		ID:         uuid.NewString(),
		PlotNumber: in.PlotNumber,
		Name:       in.Name,
		Email:      in.Email,
		Message:    in.Message,
		ReceivedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateInquiry(ctx, inq); err != nil {
		s.log.Error("persisting inquiry", zap.Error(err))
		return "", apperr.Internal(err)
	}

	s.views.Invalidate(views.DashboardInquiries)
	return inq.ID, nil
}

// List returns all inquiries, newest first.
func (s *InquiryService) List(ctx context.Context) ([]models.Inquiry, error) {
	inquiries, err := s.repo.Inquiries(ctx)
	if err != nil {
		s.log.Error("listing inquiries", zap.Error(err))
		return nil, apperr.Internal(err)
	}
	reversed := make([]models.Inquiry, len(inquiries))
	for i, inq := range inquiries {
		reversed[len(inquiries)-1-i] = inq
	}
	return reversed, nil
}
