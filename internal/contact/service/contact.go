package service

import (
	"context"
	"errors"
	"time"

	"agencysite/internal/contact/recorder"
	"agencysite/internal/contact/validator"
	"agencysite/pkg/config"
	apperrors "agencysite/pkg/errors"
	"agencysite/pkg/model"
	"agencysite/pkg/sanitizer"

	"github.com/google/uuid"
)

const AcknowledgementMessage = "Thank you for contacting us!"

type Acknowledgement struct {
	Message string `json:"message"`
}

type ContactService interface {
	Submit(ctx context.Context, msg *model.ContactMessage) (*Acknowledgement, error)
}

type contactService struct {
	validator *validator.ContactValidator
	recorder  recorder.Recorder
	cfg       *config.Config
	now       func() time.Time
}

func NewContactService(
	validator *validator.ContactValidator,
	recorder recorder.Recorder,
	cfg *config.Config,
) ContactService {
	return &contactService{
		validator: validator,
		recorder:  recorder,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Submit normalizes msg in place, validates it, and records the sender.
// Free text from the message never reaches the recorder or the log.
func (s *contactService) Submit(ctx context.Context, msg *model.ContactMessage) (*Acknowledgement, error) {
	if msg == nil {
		return nil, apperrors.Internal("Contact message is nil", nil)
	}

	s.sanitize(msg)

	if err := s.validator.Validate(msg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			s.cfg.Log.Warn("Contact validation failed", "fields", fieldNames(verrs))
			return nil, apperrors.Validation("Invalid contact message", verrs...)
		}
		return nil, apperrors.Internal("Failed to validate contact message", err)
	}

	submission := model.ContactSubmission{
		ID:          uuid.New().String(),
		Email:       msg.Email,
		SubmittedAt: s.now().UTC(),
	}
	if err := s.recorder.Record(ctx, submission); err != nil {
		s.cfg.Log.Error("Failed to record contact submission", "id", submission.ID, "error", err)
		return nil, apperrors.Internal("Failed to record contact submission", err)
	}

	return &Acknowledgement{Message: AcknowledgementMessage}, nil
}

func (s *contactService) sanitize(msg *model.ContactMessage) {
	msg.Name = sanitizer.SanitizeText(msg.Name)
	msg.Email = sanitizer.NormalizeEmail(msg.Email)
	msg.Message = sanitizer.SanitizeText(msg.Message)
}

func fieldNames(errs validator.ValidationErrors) []string {
	names := make([]string, len(errs))
	for i, e := range errs {
		names[i] = e.Field
	}
	return names
}
