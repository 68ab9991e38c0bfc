package models

import "time"

// ContactMessage is a contact form submission. It is not persisted;
// the relay hands it to the mail queue and returns an acknowledgment.
type ContactMessage struct {
	ID      string    `json:"id" bson:"-"`
	Name    string    `json:"name" validate:"required,min=2,max=100"`
	Email   string    `json:"email" validate:"required,email"`
	Message string    `json:"message" validate:"required,min=1,max=5000"`
	SentAt  time.Time `json:"sentAt"`
}
