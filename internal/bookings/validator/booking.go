package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	apperrors "agencysite/pkg/errors"
	"agencysite/pkg/logger"
	"agencysite/pkg/model"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

type ValidationErrors []apperrors.FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	custom := map[string]validator.Func{
		"catalog_service": validateCatalogService,
		"time_slot":       validateTimeSlot,
		"booking_date":    validateBookingDate,
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatal("Failed to register booking validator",
				"tag", tag,
				"error", err,
			)
		}
	}

	log.Debug("Booking validator initialized successfully")

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func validateCatalogService(fl validator.FieldLevel) bool {
	_, ok := model.LookupService(fl.Field().String())
	return ok
}

func validateTimeSlot(fl validator.FieldLevel) bool {
	return model.IsTimeSlot(fl.Field().String())
}

func validateBookingDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(dateLayout, fl.Field().String())
	return err == nil
}

// Validate checks catalog membership and the date layout of a submitted
// form. Presence of required fields is the intake session's concern.
func (v *BookingValidator) Validate(form *model.BookingForm) error {
	if err := v.validate.Struct(form); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "catalog_service":
			message = "Service must be one of the offered services"
		case "time_slot":
			message = "Time must be one of the available time slots"
		case "booking_date":
			message = "Date must be in YYYY-MM-DD format"
		}

		validationErrors = append(validationErrors, apperrors.FieldError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
