package model

import (
	"testing"
	"time"
)

func TestServiceCatalog(t *testing.T) {
	catalog := ServiceCatalog()

	wantIDs := []string{"website-design", "website-redesign", "seo-audit", "maintenance", "consultation"}
	if len(catalog) != len(wantIDs) {
		t.Fatalf("expected %d services, got %d", len(wantIDs), len(catalog))
	}
	for i, id := range wantIDs {
		if catalog[i].ID != id {
			t.Errorf("service %d: expected %q, got %q", i, id, catalog[i].ID)
		}
		if catalog[i].Label == "" || catalog[i].Price == "" {
			t.Errorf("service %q must have label and price", id)
		}
	}

	catalog[0].ID = "mutated"
	if ServiceCatalog()[0].ID != "website-design" {
		t.Error("ServiceCatalog must return a copy")
	}
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()

	want := []string{"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM", "1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM"}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(slots))
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot %d: expected %q, got %q", i, want[i], slots[i])
		}
	}

	slots[0] = "8:00 AM"
	if TimeSlots()[0] != "9:00 AM" {
		t.Error("TimeSlots must return a copy")
	}
}

func TestLookupService(t *testing.T) {
	s, ok := LookupService("seo-audit")
	if !ok || s.Label != "SEO Audit & Optimization" {
		t.Errorf("expected seo-audit lookup to succeed, got %+v, %v", s, ok)
	}

	if _, ok := LookupService("SEO-AUDIT"); ok {
		t.Error("lookup must be exact")
	}
	if _, ok := LookupService(""); ok {
		t.Error("empty id must not match")
	}
}

func TestIsTimeSlot(t *testing.T) {
	if !IsTimeSlot("12:00 PM") {
		t.Error("12:00 PM is a slot")
	}
	for _, label := range []string{"", "6:00 PM", "9:00AM", "8:00 AM"} {
		if IsTimeSlot(label) {
			t.Errorf("%q must not be a slot", label)
		}
	}
}

func TestBookingRequest_Clone(t *testing.T) {
	d := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	orig := BookingRequest{FirstName: "Jane", Date: &d}

	clone := orig.Clone()
	*clone.Date = clone.Date.AddDate(0, 0, 1)

	if !orig.Date.Equal(d) {
		t.Error("mutating the clone's date must not affect the original")
	}
	if clone.FirstName != "Jane" {
		t.Errorf("expected first name to be copied, got %q", clone.FirstName)
	}

	empty := BookingRequest{}.Clone()
	if empty.Date != nil {
		t.Error("nil date must stay nil")
	}
}

func TestIntakeChoices(t *testing.T) {
	choices := IntakeChoices()

	if len(choices.WebsiteTypes) != 5 || len(choices.Timelines) != 5 || len(choices.Budgets) != 5 {
		t.Fatalf("expected five options per list, got %+v", choices)
	}
	if _, ok := LookupWebsiteType("ecommerce"); !ok {
		t.Error("ecommerce must be a website type")
	}
	if _, ok := LookupTimeline("1-2weeks"); !ok {
		t.Error("1-2weeks must be a timeline")
	}
	if b, ok := LookupBudget("over10000"); !ok || b.Label != "Over $10,000" {
		t.Errorf("unexpected budget lookup: %+v %v", b, ok)
	}
	if _, ok := LookupBudget(""); ok {
		t.Error("empty budget must not match")
	}

	choices.Budgets[0].ID = "mutated"
	if IntakeChoices().Budgets[0].ID != "under1000" {
		t.Error("IntakeChoices must return copies")
	}
}
