package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "agencysite/pkg/errors"
	"agencysite/pkg/logger"
	"agencysite/pkg/model"

	"github.com/go-playground/validator/v10"
)

// fieldMessages holds the one reason shown per field, whichever rule failed.
var fieldMessages = map[string]string{
	"name":    "Name is required",
	"email":   "Valid email required",
	"message": "Message is required",
}

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

type ContactValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewContactValidator(log *logger.Logger) *ContactValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	log.Debug("Contact validator initialized successfully")

	return &ContactValidator{
		validate: v,
		logger:   log,
	}
}

// Validate reports every failing field in declaration order. Values are
// expected to be normalized already.
func (v *ContactValidator) Validate(msg *model.ContactMessage) error {
	if err := v.validate.Struct(msg); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors
	for _, err := range errs {
		message, ok := fieldMessages[err.Field()]
		if !ok {
			message = err.Error()
		}
		validationErrors = append(validationErrors, apperrors.FieldError{
			Field:   err.Field(),
			Message: message,
		})
	}
	return validationErrors
}
