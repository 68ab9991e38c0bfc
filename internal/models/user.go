package models

import "time"

// Roles a user account can hold. The role is assigned at creation
// (registration always yields a customer) and never changes afterwards.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User represents an account that can sign in to the storefront.
type User struct {
	ID        string    `json:"id" bson:"_id,omitempty" validate:"omitempty,uuid"`
	Username  string    `json:"username" bson:"username" validate:"required,min=3,max=100"`
	Email     string    `json:"email" bson:"email" validate:"required,email"`
	Password  string    `bson:"password" validate:"required,min=6"` // no json tag, never echoed back populated
	Role      string    `json:"role" bson:"role"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
