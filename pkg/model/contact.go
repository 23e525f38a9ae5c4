package model

import "time"

// ContactMessage is a message posted to the public contact form.
type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// ContactSubmission records that a contact message arrived. It deliberately
// carries no free text from the message.
type ContactSubmission struct {
	ID          string    `json:"id" bson:"_id"`
	Email       string    `json:"email" bson:"email"`
	SubmittedAt time.Time `json:"submitted_at" bson:"submitted_at"`
}

// NewsletterSubscription is keyed by the normalized email address.
type NewsletterSubscription struct {
	Email        string    `json:"email" bson:"_id"`
	Active       bool      `json:"active" bson:"active"`
	SubscribedAt time.Time `json:"subscribed_at" bson:"subscribed_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// NewsletterRequest is the body of a subscribe or unsubscribe call.
type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}
