package validator

import (
	"errors"
	"strings"
	"testing"

	"agencysite/pkg/logger"
	"agencysite/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIntake() *model.ProjectIntake {
	return &model.ProjectIntake{
		BusinessName:       "Grey Bakery",
		ContactName:        "Jane Doe",
		Email:              "jane@example.com",
		WebsiteType:        "ecommerce",
		Timeline:           "1-2months",
		Budget:             "2500-5000",
		ProjectDescription: "An online shop for our breads and cakes.",
	}
}

func TestIntakeValidator_Validate(t *testing.T) {
	v := NewIntakeValidator(logger.Discard())

	tests := []struct {
		name     string
		mutate   func(*model.ProjectIntake)
		wantErrs map[string]string
	}{
		{
			name:   "valid intake",
			mutate: func(*model.ProjectIntake) {},
		},
		{
			name: "optional fields within bounds",
			mutate: func(i *model.ProjectIntake) {
				i.Phone = "555-0100"
				i.AdditionalNotes = strings.Repeat("n", 1000)
			},
		},
		{
			name: "missing required fields",
			mutate: func(i *model.ProjectIntake) {
				i.BusinessName = ""
				i.WebsiteType = ""
			},
			wantErrs: map[string]string{
				"businessName": "Business name is required",
				"websiteType":  "Website type is required",
			},
		},
		{
			name: "length bounds",
			mutate: func(i *model.ProjectIntake) {
				i.ContactName = "J"
				i.Phone = strings.Repeat("5", 21)
				i.ProjectDescription = "too short"
			},
			wantErrs: map[string]string{
				"contactName":        "Contact name must be at least 2 characters long",
				"phone":              "Phone must be at most 20 characters long",
				"projectDescription": "Project description must be at least 20 characters long",
			},
		},
		{
			name: "unknown choices and bad email",
			mutate: func(i *model.ProjectIntake) {
				i.Email = "jane"
				i.Timeline = "yesterday"
				i.Budget = "priceless"
			},
			wantErrs: map[string]string{
				"email":    "Valid email required",
				"timeline": "Project timeline must be one of the listed options",
				"budget":   "Budget range must be one of the listed options",
			},
		},
		{
			name: "length counts characters not bytes",
			mutate: func(i *model.ProjectIntake) {
				i.BusinessName = strings.Repeat("é", 100)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intake := validIntake()
			tt.mutate(intake)

			err := v.Validate(intake)
			if len(tt.wantErrs) == 0 {
				assert.NoError(t, err)
				return
			}

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %T", err)
			got := make(map[string]string, len(verrs))
			for _, e := range verrs {
				got[e.Field] = e.Message
			}
			assert.Equal(t, tt.wantErrs, got)
		})
	}
}

func TestIntakeValidator_FieldOrder(t *testing.T) {
	v := NewIntakeValidator(logger.Discard())

	err := v.Validate(&model.ProjectIntake{})

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	var fields []string
	for _, e := range verrs {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{
		"businessName", "contactName", "email", "websiteType", "timeline", "budget", "projectDescription",
	}, fields)
}
