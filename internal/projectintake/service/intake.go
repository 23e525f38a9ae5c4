package service

import (
	"context"
	"errors"
	"time"

	"agencysite/internal/projectintake/publisher"
	"agencysite/internal/projectintake/validator"
	"agencysite/pkg/config"
	apperrors "agencysite/pkg/errors"
	"agencysite/pkg/model"
	"agencysite/pkg/sanitizer"

	"github.com/google/uuid"
)

const AcknowledgementMessage = "Thank you! Your intake form has been submitted. We'll review it and get back to you soon."

type SubmitResult struct {
	Reference string `json:"reference"`
	Message   string `json:"message"`
}

type ProjectIntakeService interface {
	Choices() model.ProjectIntakeChoices
	Submit(ctx context.Context, intake *model.ProjectIntake) (*SubmitResult, error)
}

type Option func(*projectIntakeService)

func WithClock(now func() time.Time) Option {
	return func(s *projectIntakeService) {
		if now != nil {
			s.now = now
		}
	}
}

type projectIntakeService struct {
	validator *validator.IntakeValidator
	publisher publisher.Publisher
	cfg       *config.Config
	now       func() time.Time
}

func NewProjectIntakeService(
	validator *validator.IntakeValidator,
	publisher publisher.Publisher,
	cfg *config.Config,
	opts ...Option,
) ProjectIntakeService {
	s := &projectIntakeService{
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *projectIntakeService) Choices() model.ProjectIntakeChoices {
	return model.IntakeChoices()
}

// Submit validates the trimmed intake, escapes its free text and hands it to
// the publisher. A publish failure fails the submission.
func (s *projectIntakeService) Submit(ctx context.Context, intake *model.ProjectIntake) (*SubmitResult, error) {
	if intake == nil {
		return nil, apperrors.InvalidInput("Project intake body is required")
	}

	normalized := normalize(*intake)

	if err := s.validator.Validate(&normalized); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			s.cfg.Log.Warn("Project intake validation failed", "fields", fieldNames(verrs))
			return nil, apperrors.Validation("Invalid project intake", verrs...)
		}
		return nil, apperrors.Internal("Failed to validate project intake", err)
	}

	event := model.ProjectIntakeSubmitted{
		Reference:   uuid.New().String(),
		Intake:      escape(normalized),
		SubmittedAt: s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.cfg.Log.Error("Failed to publish project intake",
			"reference", event.Reference,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to submit project intake", err)
	}

	return &SubmitResult{
		Reference: event.Reference,
		Message:   AcknowledgementMessage,
	}, nil
}

func normalize(in model.ProjectIntake) model.ProjectIntake {
	return model.ProjectIntake{
		BusinessName:       sanitizer.Trim(in.BusinessName),
		ContactName:        sanitizer.Trim(in.ContactName),
		Email:              sanitizer.NormalizeEmail(in.Email),
		Phone:              sanitizer.Trim(in.Phone),
		WebsiteType:        sanitizer.Trim(in.WebsiteType),
		Timeline:           sanitizer.Trim(in.Timeline),
		Budget:             sanitizer.Trim(in.Budget),
		ProjectDescription: sanitizer.Trim(in.ProjectDescription),
		AdditionalNotes:    sanitizer.Trim(in.AdditionalNotes),
	}
}

// escape neutralizes markup in free text. Select values are already known
// catalog IDs and the email passed validation.
func escape(in model.ProjectIntake) model.ProjectIntake {
	out := in
	out.BusinessName = sanitizer.EscapeHTML(in.BusinessName)
	out.ContactName = sanitizer.EscapeHTML(in.ContactName)
	out.Phone = sanitizer.EscapeHTML(in.Phone)
	out.ProjectDescription = sanitizer.EscapeHTML(in.ProjectDescription)
	out.AdditionalNotes = sanitizer.EscapeHTML(in.AdditionalNotes)
	return out
}

func fieldNames(errs validator.ValidationErrors) []string {
	names := make([]string, len(errs))
	for i, e := range errs {
		names[i] = e.Field
	}
	return names
}
