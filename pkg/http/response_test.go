package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperrors "agencysite/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name: "validation renders field list",
			err: apperrors.Validation("invalid",
				apperrors.FieldError{Field: "name", Message: "Name is required"}),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":[{"field":"name","message":"Name is required"}]}`,
		},
		{
			name:       "validation without fields renders empty list",
			err:        apperrors.Validation("invalid"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":[]}`,
		},
		{
			name:       "internal hides cause",
			err:        apperrors.Internal("recorder exploded", errors.New("secret dsn")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
		{
			name:       "plain error is internal",
			err:        errors.New("unexpected"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
		{
			name: "precondition keeps details",
			err: apperrors.PreconditionFailed("booking request is incomplete", nil).
				WithDetails(map[string]any{"missing": []string{"phone"}}),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"booking request is incomplete","details":{"missing":["phone"]}}`,
		},
		{
			name:       "invalid input",
			err:        apperrors.InvalidInput("bad date"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"bad date"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			require.NoError(t, WriteError(w, tt.err))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.NotContains(t, w.Body.String(), "secret")
		})
	}
}

func TestWriteMessage(t *testing.T) {
	w := httptest.NewRecorder()
	require.NoError(t, WriteMessage(w, "Thank you for contacting us!"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Thank you for contacting us!"}`, w.Body.String())
}

func TestMediaType(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(""))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")

	assert.Equal(t, ContentTypeForm, MediaType(r))
	assert.True(t, IsFormRequest(r))

	r.Header.Set("Content-Type", "application/json")
	assert.False(t, IsFormRequest(r))

	r.Header.Del("Content-Type")
	assert.Equal(t, "", MediaType(r))
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("test", -5*3600)

	d, err := ParseDate("2026-10-16", loc)
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.October, d.Month())
	assert.Equal(t, 16, d.Day())
	assert.Equal(t, loc, d.Location())

	_, err = ParseDate("16/10/2026", loc)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidInput, apperrors.AsAppError(err).Code)
}
