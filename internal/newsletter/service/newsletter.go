package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"agencysite/internal/newsletter/store"
	"agencysite/pkg/config"
	apperrors "agencysite/pkg/errors"
	"agencysite/pkg/model"
	"agencysite/pkg/sanitizer"

	"github.com/go-playground/validator/v10"
)

const (
	SubscribedMessage        = "Thank you for subscribing!"
	AlreadySubscribedMessage = "You are already subscribed to our newsletter!"
	ReactivatedMessage       = "Welcome back! Your newsletter subscription has been reactivated."
	UnsubscribedMessage      = "You have been unsubscribed from our newsletter."

	invalidEmailMessage = "Valid email required"
)

type Result struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	// Created is set when a new subscription was stored.
	Created bool `json:"-"`
}

type NewsletterService interface {
	Subscribe(ctx context.Context, req *model.NewsletterRequest) (*Result, error)
	Unsubscribe(ctx context.Context, req *model.NewsletterRequest) (*Result, error)
}

type newsletterService struct {
	validate *validator.Validate
	store    store.Store
	cfg      *config.Config
	now      func() time.Time
}

func NewNewsletterService(store store.Store, cfg *config.Config) NewsletterService {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		return name
	})

	return &newsletterService{
		validate: v,
		store:    store,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *newsletterService) Subscribe(ctx context.Context, req *model.NewsletterRequest) (*Result, error) {
	email, err := s.checkEmail(req)
	if err != nil {
		return nil, err
	}

	outcome, err := s.store.Subscribe(ctx, email, s.now().UTC())
	if err != nil {
		s.cfg.Log.Error("Failed to store newsletter subscription", "error", err)
		return nil, apperrors.Internal("Failed to subscribe to newsletter", err)
	}
	s.cfg.Log.Info("Newsletter subscription", "email", email, "outcome", outcome.String())

	result := &Result{Status: outcome.String()}
	switch outcome {
	case store.Subscribed:
		result.Message = SubscribedMessage
		result.Created = true
	case store.Reactivated:
		result.Message = ReactivatedMessage
	default:
		result.Message = AlreadySubscribedMessage
	}
	return result, nil
}

// Unsubscribe answers the same way whether or not email was subscribed.
func (s *newsletterService) Unsubscribe(ctx context.Context, req *model.NewsletterRequest) (*Result, error) {
	email, err := s.checkEmail(req)
	if err != nil {
		return nil, err
	}

	removed, err := s.store.Unsubscribe(ctx, email, s.now().UTC())
	if err != nil {
		s.cfg.Log.Error("Failed to remove newsletter subscription", "error", err)
		return nil, apperrors.Internal("Failed to unsubscribe from newsletter", err)
	}
	s.cfg.Log.Info("Newsletter unsubscribe", "email", email, "was_active", removed)

	return &Result{Status: "unsubscribed", Message: UnsubscribedMessage}, nil
}

func (s *newsletterService) checkEmail(req *model.NewsletterRequest) (string, error) {
	if req == nil {
		return "", apperrors.InvalidInput("Newsletter request body is required")
	}

	normalized := model.NewsletterRequest{Email: sanitizer.NormalizeEmail(req.Email)}
	if err := s.validate.Struct(normalized); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return "", apperrors.Validation("Invalid newsletter request", apperrors.FieldError{
				Field:   "email",
				Message: invalidEmailMessage,
			})
		}
		return "", apperrors.Internal("Failed to validate newsletter request", err)
	}
	return normalized.Email, nil
}
