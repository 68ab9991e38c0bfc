package models

import "time"

// Review is a customer review. New reviews always start unapproved and
// only become publicly visible after an admin approves them; approval
// is one-way, deletion is the only reversal.
type Review struct {
	ID           string    `json:"id" bson:"_id,omitempty" validate:"omitempty,uuid"`
	CustomerName string    `json:"customerName" bson:"customerName" validate:"required,min=2,max=100"`
	Rating       int       `json:"rating" bson:"rating" validate:"required,min=1,max=5"`
	Comment      string    `json:"comment" bson:"comment" validate:"required,max=2000"`
	Date         time.Time `json:"date" bson:"date"`
	Approved     bool      `json:"approved" bson:"approved"`
}
