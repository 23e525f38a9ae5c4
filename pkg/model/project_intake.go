package model

import "time"

// Choice is one option of a project intake select list.
type Choice struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ProjectIntakeChoices groups the select lists of the project intake form.
type ProjectIntakeChoices struct {
	WebsiteTypes []Choice `json:"websiteTypes"`
	Timelines    []Choice `json:"timelines"`
	Budgets      []Choice `json:"budgets"`
}

var websiteTypes = []Choice{
	{ID: "business", Label: "Business Website"},
	{ID: "ecommerce", Label: "E-commerce Store"},
	{ID: "portfolio", Label: "Portfolio Site"},
	{ID: "blog", Label: "Blog/Content Site"},
	{ID: "other", Label: "Other"},
}

var timelines = []Choice{
	{ID: "asap", Label: "ASAP (Rush Fee May Apply)"},
	{ID: "1-2weeks", Label: "1-2 Weeks"},
	{ID: "3-4weeks", Label: "3-4 Weeks"},
	{ID: "1-2months", Label: "1-2 Months"},
	{ID: "flexible", Label: "Flexible"},
}

var budgets = []Choice{
	{ID: "under1000", Label: "Under $1,000"},
	{ID: "1000-2500", Label: "$1,000 - $2,500"},
	{ID: "2500-5000", Label: "$2,500 - $5,000"},
	{ID: "5000-10000", Label: "$5,000 - $10,000"},
	{ID: "over10000", Label: "Over $10,000"},
}

// IntakeChoices returns copies of every project intake select list.
func IntakeChoices() ProjectIntakeChoices {
	return ProjectIntakeChoices{
		WebsiteTypes: copyChoices(websiteTypes),
		Timelines:    copyChoices(timelines),
		Budgets:      copyChoices(budgets),
	}
}

func LookupWebsiteType(id string) (Choice, bool) { return lookupChoice(websiteTypes, id) }

func LookupTimeline(id string) (Choice, bool) { return lookupChoice(timelines, id) }

func LookupBudget(id string) (Choice, bool) { return lookupChoice(budgets, id) }

func lookupChoice(choices []Choice, id string) (Choice, bool) {
	for _, c := range choices {
		if c.ID == id {
			return c, true
		}
	}
	return Choice{}, false
}

func copyChoices(in []Choice) []Choice {
	out := make([]Choice, len(in))
	copy(out, in)
	return out
}

// ProjectIntake is a prospective client's project brief. Length bounds count
// characters of the trimmed input, before any escaping.
type ProjectIntake struct {
	BusinessName       string `json:"businessName" bson:"business_name" validate:"required,min=2,max=100"`
	ContactName        string `json:"contactName" bson:"contact_name" validate:"required,min=2,max=100"`
	Email              string `json:"email" bson:"email" validate:"required,email"`
	Phone              string `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,max=20"`
	WebsiteType        string `json:"websiteType" bson:"website_type" validate:"required,website_type"`
	Timeline           string `json:"timeline" bson:"timeline" validate:"required,project_timeline"`
	Budget             string `json:"budget" bson:"budget" validate:"required,budget_range"`
	ProjectDescription string `json:"projectDescription" bson:"project_description" validate:"required,min=20,max=2000"`
	AdditionalNotes    string `json:"additionalNotes,omitempty" bson:"additional_notes,omitempty" validate:"omitempty,max=1000"`
}

// ProjectIntakeSubmitted is the event handed to the project intake transport.
// Free text in Intake is already HTML-escaped.
type ProjectIntakeSubmitted struct {
	Reference   string        `json:"reference"`
	Intake      ProjectIntake `json:"intake"`
	SubmittedAt time.Time     `json:"submittedAt"`
}
