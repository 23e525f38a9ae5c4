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

var fieldLabels = map[string]string{
	"businessName":       "Business name",
	"contactName":        "Contact name",
	"email":              "Email",
	"phone":              "Phone",
	"websiteType":        "Website type",
	"timeline":           "Project timeline",
	"budget":             "Budget range",
	"projectDescription": "Project description",
	"additionalNotes":    "Additional notes",
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

type IntakeValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewIntakeValidator(log *logger.Logger) *IntakeValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	custom := map[string]validator.Func{
		"website_type":     choiceValidator(model.LookupWebsiteType),
		"project_timeline": choiceValidator(model.LookupTimeline),
		"budget_range":     choiceValidator(model.LookupBudget),
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatal("Failed to register project intake validator",
				"tag", tag,
				"error", err,
			)
		}
	}

	log.Debug("Project intake validator initialized successfully")

	return &IntakeValidator{
		validate: v,
		logger:   log,
	}
}

func choiceValidator(lookup func(string) (model.Choice, bool)) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, ok := lookup(fl.Field().String())
		return ok
	}
}

// Validate reports every failing field in declaration order. Values are
// expected to be trimmed but not yet escaped.
func (v *IntakeValidator) Validate(intake *model.ProjectIntake) error {
	if err := v.validate.Struct(intake); err != nil {
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
		label, ok := fieldLabels[err.Field()]
		if !ok {
			label = err.Field()
		}

		var message string
		switch err.Tag() {
		case "required":
			message = label + " is required"
		case "email":
			message = "Valid email required"
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters long", label, err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters long", label, err.Param())
		case "website_type", "project_timeline", "budget_range":
			message = label + " must be one of the listed options"
		default:
			message = err.Error()
		}

		validationErrors = append(validationErrors, apperrors.FieldError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
