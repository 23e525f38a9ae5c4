package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"time"

	apperrors "agencysite/pkg/errors"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"

	// DateLayout is the calendar-date wire format used by the booking API.
	DateLayout = "2006-01-02"
)

// MediaType returns the request's media type without parameters.
func MediaType(r *http.Request) string {
	header := r.Header.Get("Content-Type")
	if header == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return mt
}

func IsFormRequest(r *http.Request) bool {
	return MediaType(r) == ContentTypeForm
}

// DecodeJSON decodes the request body into v. The returned error is not an
// AppError; callers decide how a malformed body is surfaced.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("empty request body")
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD calendar date in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	d, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return time.Time{}, apperrors.InvalidInput("invalid date format, must be YYYY-MM-DD: " + value)
	}
	return d, nil
}
