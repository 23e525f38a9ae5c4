package validator

import (
	"errors"
	"testing"

	"agencysite/pkg/logger"
	"agencysite/pkg/model"
)

func TestBookingValidator_Validate(t *testing.T) {
	v := NewBookingValidator(logger.Discard())

	tests := []struct {
		name       string
		form       *model.BookingForm
		wantFields []string
	}{
		{
			name: "complete valid form",
			form: &model.BookingForm{
				FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Phone: "555",
				Service: "website-design", Date: "2026-10-20", Time: "9:00 AM",
			},
		},
		{
			name: "empty optional selections pass",
			form: &model.BookingForm{},
		},
		{
			name: "email and phone format are not checked",
			form: &model.BookingForm{Email: "nope", Phone: "call me"},
		},
		{
			name:       "unknown service",
			form:       &model.BookingForm{Service: "logo-design"},
			wantFields: []string{"service"},
		},
		{
			name:       "unknown time slot",
			form:       &model.BookingForm{Time: "8:00 AM"},
			wantFields: []string{"time"},
		},
		{
			name:       "bad date layout",
			form:       &model.BookingForm{Date: "10/20/2026"},
			wantFields: []string{"date"},
		},
		{
			name:       "several problems reported together in field order",
			form:       &model.BookingForm{Service: "x", Date: "soon", Time: "noon"},
			wantFields: []string{"service", "date", "time"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.form)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}

			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %T: %v", err, err)
			}
			if len(verrs) != len(tt.wantFields) {
				t.Fatalf("expected %d errors, got %d: %v", len(tt.wantFields), len(verrs), verrs)
			}
			for i, field := range tt.wantFields {
				if verrs[i].Field != field {
					t.Errorf("error %d: expected field %q, got %q", i, field, verrs[i].Field)
				}
				if verrs[i].Message == "" {
					t.Errorf("error %d: expected a human readable message", i)
				}
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	if got := (ValidationErrors{}).Error(); got != "" {
		t.Errorf("empty ValidationErrors.Error() = %q, want empty", got)
	}

	errs := ValidationErrors{{Field: "service", Message: "bad"}}
	want := "validation failed: 1 error(s): [service: bad]"
	if got := errs.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
