package model

import (
	"time"
)

// Service is one entry of the consultation service catalog.
type Service struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Price string `json:"price"`
}

// BookingRequest is a consultation request as captured by the booking form.
// Date is a calendar date; its time of day carries no meaning.
type BookingRequest struct {
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Service   string     `json:"service"`
	Date      *time.Time `json:"date,omitempty"`
	Time      string     `json:"time"`
	Message   string     `json:"message"`
}

// Clone returns a deep copy so callers never share the Date pointer.
func (b BookingRequest) Clone() BookingRequest {
	out := b
	if b.Date != nil {
		d := *b.Date
		out.Date = &d
	}
	return out
}

// BookingSubmitted is the event handed to the booking transport.
type BookingSubmitted struct {
	Reference   string         `json:"reference"`
	Request     BookingRequest `json:"request"`
	ServiceName string         `json:"serviceName,omitempty"`
	Date        string         `json:"date,omitempty"`
	SubmittedAt time.Time      `json:"submittedAt"`
}

var serviceCatalog = []Service{
	{ID: "website-design", Label: "Website Design & Development", Price: "$2,500 - $5,000"},
	{ID: "website-redesign", Label: "Website Redesign", Price: "$1,500 - $3,500"},
	{ID: "seo-audit", Label: "SEO Audit & Optimization", Price: "$500 - $1,200"},
	{ID: "maintenance", Label: "Website Maintenance", Price: "$200 - $500/month"},
	{ID: "consultation", Label: "Strategy Consultation", Price: "FREE - $300"},
}

var timeSlots = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
}

// ServiceCatalog returns the ordered service catalog. The slice is a copy.
func ServiceCatalog() []Service {
	out := make([]Service, len(serviceCatalog))
	copy(out, serviceCatalog)
	return out
}

// TimeSlots returns the ordered bookable time labels. The slice is a copy.
func TimeSlots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}

func LookupService(id string) (Service, bool) {
	for _, s := range serviceCatalog {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

func IsTimeSlot(label string) bool {
	for _, slot := range timeSlots {
		if slot == label {
			return true
		}
	}
	return false
}

// BookingForm is the wire shape of a booking submission. Only catalog
// membership and the date layout are checked by tags; everything else is
// taken as typed.
type BookingForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Service   string `json:"service" validate:"omitempty,catalog_service"`
	Date      string `json:"date" validate:"omitempty,booking_date"`
	Time      string `json:"time" validate:"omitempty,time_slot"`
	Message   string `json:"message"`
}
