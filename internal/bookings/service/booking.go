package service

import (
	"context"
	"errors"
	"time"

	bookingserrors "agencysite/internal/bookings/errors"
	"agencysite/internal/bookings/intake"
	"agencysite/internal/bookings/publisher"
	"agencysite/internal/bookings/validator"
	"agencysite/pkg/config"
	apperrors "agencysite/pkg/errors"
	httputil "agencysite/pkg/http"
	"agencysite/pkg/model"

	"github.com/google/uuid"
)

// SubmitResult is what a caller learns about an accepted booking.
type SubmitResult struct {
	Reference string               `json:"reference"`
	Submitted bool                 `json:"submitted"`
	Request   model.BookingRequest `json:"request"`
}

type DateAvailability struct {
	Date       string `json:"date"`
	Selectable bool   `json:"selectable"`
}

type BookingService interface {
	Services() []model.Service
	TimeSlots() []string
	DateAvailability(date string) (*DateAvailability, error)
	Submit(ctx context.Context, form *model.BookingForm) (*SubmitResult, error)
}

type Option func(*bookingService)

// WithClock overrides the clock handed to each intake session.
func WithClock(now func() time.Time) Option {
	return func(s *bookingService) {
		if now != nil {
			s.now = now
		}
	}
}

type bookingService struct {
	validator *validator.BookingValidator
	publisher publisher.Publisher
	cfg       *config.Config
	now       func() time.Time
}

func NewBookingService(
	validator *validator.BookingValidator,
	publisher publisher.Publisher,
	cfg *config.Config,
	opts ...Option,
) BookingService {
	s := &bookingService{
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

func (s *bookingService) newSession() *intake.Session {
	return intake.NewSession(
		intake.WithClock(s.now),
		intake.WithLocation(s.cfg.BookingLocation),
	)
}

func (s *bookingService) Services() []model.Service {
	return intake.Services()
}

func (s *bookingService) TimeSlots() []string {
	return intake.TimeSlots()
}

func (s *bookingService) DateAvailability(date string) (*DateAvailability, error) {
	session := s.newSession()
	d, err := httputil.ParseDate(date, session.Location())
	if err != nil {
		return nil, err
	}
	return &DateAvailability{
		Date:       d.Format(httputil.DateLayout),
		Selectable: session.IsDateSelectable(d),
	}, nil
}

// Submit replays the posted form into a fresh intake session and submits it.
// A publish failure is logged and does not fail the submission.
func (s *bookingService) Submit(ctx context.Context, form *model.BookingForm) (*SubmitResult, error) {
	if form == nil {
		return nil, apperrors.InvalidInput("Booking request body is required")
	}

	if err := s.validator.Validate(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			s.cfg.Log.Warn("Booking validation failed", "fields", fieldNames(verrs))
			return nil, apperrors.Validation("Invalid booking request", verrs...)
		}
		return nil, apperrors.Internal("Failed to validate booking request", err)
	}

	session := s.newSession()
	if err := s.apply(session, form); err != nil {
		return nil, err
	}

	request, err := session.Submit()
	if err != nil {
		var precondition *bookingserrors.PreconditionError
		if errors.As(err, &precondition) {
			s.cfg.Log.Warn("Booking submitted before it was complete", "missing", precondition.Missing)
			return nil, apperrors.PreconditionFailed("Booking request is incomplete", err).
				WithDetails(map[string]any{"missing": precondition.Missing})
		}
		return nil, apperrors.Internal("Failed to submit booking request", err)
	}

	event := model.BookingSubmitted{
		Reference:   uuid.New().String(),
		Request:     request,
		SubmittedAt: s.now().UTC(),
	}
	if svc, ok := model.LookupService(request.Service); ok {
		event.ServiceName = svc.Label
	}
	if request.Date != nil {
		event.Date = request.Date.In(session.Location()).Format(httputil.DateLayout)
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.cfg.Log.Error("Failed to publish booking request",
			"reference", event.Reference,
			"error", err,
		)
	}

	return &SubmitResult{
		Reference: event.Reference,
		Submitted: session.Submitted(),
		Request:   request,
	}, nil
}

func (s *bookingService) apply(session *intake.Session, form *model.BookingForm) error {
	fields := []struct {
		field intake.Field
		value string
	}{
		{intake.FieldFirstName, form.FirstName},
		{intake.FieldLastName, form.LastName},
		{intake.FieldEmail, form.Email},
		{intake.FieldPhone, form.Phone},
		{intake.FieldService, form.Service},
		{intake.FieldTime, form.Time},
		{intake.FieldMessage, form.Message},
	}
	for _, f := range fields {
		if err := session.SetField(f.field, f.value); err != nil {
			return apperrors.Internal("Failed to apply booking field", err)
		}
	}

	if form.Date == "" {
		return nil
	}
	date, err := httputil.ParseDate(form.Date, session.Location())
	if err != nil {
		return apperrors.Validation("Invalid booking request", apperrors.FieldError{
			Field:   string(intake.FieldDate),
			Message: "Date must be in YYYY-MM-DD format",
		})
	}
	if err := session.SelectDate(date); err != nil {
		if errors.Is(err, bookingserrors.ErrDateNotSelectable) {
			s.cfg.Log.Warn("Booking date not selectable")
			return apperrors.Validation("Invalid booking request", apperrors.FieldError{
				Field:   string(intake.FieldDate),
				Message: "Date must be today or later and fall on a weekday",
			})
		}
		return apperrors.Internal("Failed to apply booking date", err)
	}
	return nil
}

func fieldNames(errs validator.ValidationErrors) []string {
	names := make([]string, len(errs))
	for i, e := range errs {
		names[i] = e.Field
	}
	return names
}
