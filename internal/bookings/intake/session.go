// Package intake models one consultation-booking form session: the request
// being filled in, which dates may be picked, when the request may be
// submitted, and the Editing/Submitted lifecycle.
//
// A Session is owned by exactly one caller and is not safe for concurrent use.
package intake

import (
	"fmt"
	"time"

	bookingserrors "agencysite/internal/bookings/errors"
	"agencysite/pkg/model"
)

// Field names a BookingRequest field. Values match the JSON field names.
type Field string

const (
	FieldFirstName Field = "firstName"
	FieldLastName  Field = "lastName"
	FieldEmail     Field = "email"
	FieldPhone     Field = "phone"
	FieldService   Field = "service"
	FieldDate      Field = "date"
	FieldTime      Field = "time"
	FieldMessage   Field = "message"
)

// requiredFields gates CanSubmit, in form order.
var requiredFields = []Field{FieldFirstName, FieldLastName, FieldEmail, FieldPhone, FieldService}

type State int

const (
	StateEditing State = iota
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type Option func(*Session)

// WithClock overrides the source of "now" used for date eligibility.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the zone whose calendar defines "today".
func WithLocation(loc *time.Location) Option {
	return func(s *Session) {
		if loc != nil {
			s.loc = loc
		}
	}
}

type Session struct {
	request model.BookingRequest
	state   State
	now     func() time.Time
	loc     *time.Location
}

func NewSession(opts ...Option) *Session {
	s := &Session{
		now: time.Now,
		loc: time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetField stores value into one field without checking its content.
// String fields take a string; the date takes time.Time, *time.Time, or nil
// to clear it.
func (s *Session) SetField(field Field, value any) error {
	if field == FieldDate {
		return s.setDate(value)
	}

	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: %s expects a string, got %T", bookingserrors.ErrInvalidFieldValue, field, value)
	}

	switch field {
	case FieldFirstName:
		s.request.FirstName = str
	case FieldLastName:
		s.request.LastName = str
	case FieldEmail:
		s.request.Email = str
	case FieldPhone:
		s.request.Phone = str
	case FieldService:
		s.request.Service = str
	case FieldTime:
		s.request.Time = str
	case FieldMessage:
		s.request.Message = str
	default:
		return fmt.Errorf("%w: %q", bookingserrors.ErrUnknownField, field)
	}
	return nil
}

func (s *Session) setDate(value any) error {
	switch v := value.(type) {
	case nil:
		s.request.Date = nil
	case time.Time:
		s.request.Date = &v
	case *time.Time:
		if v == nil {
			s.request.Date = nil
			return nil
		}
		d := *v
		s.request.Date = &d
	default:
		return fmt.Errorf("%w: %s expects a time.Time, got %T", bookingserrors.ErrInvalidFieldValue, FieldDate, value)
	}
	return nil
}

// SelectService sets the service only if id is in the catalog.
func (s *Session) SelectService(id string) error {
	if _, ok := model.LookupService(id); !ok {
		return fmt.Errorf("%w: %q", bookingserrors.ErrUnknownService, id)
	}
	return s.SetField(FieldService, id)
}

// SelectTimeSlot sets the time only if label is a bookable slot.
func (s *Session) SelectTimeSlot(label string) error {
	if !model.IsTimeSlot(label) {
		return fmt.Errorf("%w: %q", bookingserrors.ErrUnknownTimeSlot, label)
	}
	return s.SetField(FieldTime, label)
}

// SelectDate sets the date only if the picker would offer it.
func (s *Session) SelectDate(date time.Time) error {
	if !s.IsDateSelectable(date) {
		return fmt.Errorf("%w: %s", bookingserrors.ErrDateNotSelectable, date.In(s.loc).Format("2006-01-02"))
	}
	return s.SetField(FieldDate, date)
}

func (s *Session) IsDateSelectable(candidate time.Time) bool {
	return IsDateSelectable(candidate, s.now(), s.loc)
}

// CanSubmit reports whether every required field is non-empty. Content is
// not checked.
func (s *Session) CanSubmit() bool {
	return len(s.MissingFields()) == 0
}

// MissingFields lists the empty required fields in form order.
func (s *Session) MissingFields() []Field {
	var missing []Field
	for _, f := range requiredFields {
		if s.stringField(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// Submit moves the session to Submitted and returns the completed request.
// The date is not re-checked here; a date that was selectable when picked
// is accepted even if the day has since passed.
func (s *Session) Submit() (model.BookingRequest, error) {
	if s.state == StateSubmitted {
		return model.BookingRequest{}, bookingserrors.ErrAlreadySubmitted
	}

	if missing := s.MissingFields(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, f := range missing {
			names[i] = string(f)
		}
		return model.BookingRequest{}, &bookingserrors.PreconditionError{Missing: names}
	}

	s.state = StateSubmitted
	return s.request.Clone(), nil
}

// Reset clears the request back to the empty initial state.
func (s *Session) Reset() {
	s.request = model.BookingRequest{}
	s.state = StateEditing
}

func (s *Session) Submitted() bool {
	return s.state == StateSubmitted
}

func (s *Session) State() State {
	return s.state
}

// Request returns a copy of the request as currently filled in.
func (s *Session) Request() model.BookingRequest {
	return s.request.Clone()
}

func (s *Session) Location() *time.Location {
	return s.loc
}

func (s *Session) stringField(f Field) string {
	switch f {
	case FieldFirstName:
		return s.request.FirstName
	case FieldLastName:
		return s.request.LastName
	case FieldEmail:
		return s.request.Email
	case FieldPhone:
		return s.request.Phone
	case FieldService:
		return s.request.Service
	case FieldTime:
		return s.request.Time
	case FieldMessage:
		return s.request.Message
	}
	return ""
}

// Services returns the ordered service catalog.
func Services() []model.Service {
	return model.ServiceCatalog()
}

// TimeSlots returns the ordered bookable time labels.
func TimeSlots() []string {
	return model.TimeSlots()
}
