package models

import "time"

// Address is a postal address embedded in the business info document.
type Address struct {
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	Zip     string `json:"zip" bson:"zip"`
	Country string `json:"country" bson:"country"`
}

// Coordinates locate the store for the map widget on the public site.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// BusinessHours holds one opening-hours string per weekday.
type BusinessHours struct {
	Monday    string `json:"monday" bson:"monday"`
	Tuesday   string `json:"tuesday" bson:"tuesday"`
	Wednesday string `json:"wednesday" bson:"wednesday"`
	Thursday  string `json:"thursday" bson:"thursday"`
	Friday    string `json:"friday" bson:"friday"`
	Saturday  string `json:"saturday" bson:"saturday"`
	Sunday    string `json:"sunday" bson:"sunday"`
}

// BusinessInfoKey is the fixed value of the Key field. A unique index
// on the field makes the collection a true singleton: concurrent
// create-if-absent calls collapse onto one document.
const BusinessInfoKey = "business_info"

// BusinessInfo is the singleton document describing the store itself.
type BusinessInfo struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Key         string        `json:"-" bson:"key,omitempty"`
	Name        string        `json:"name" bson:"name" validate:"required"`
	Description string        `json:"description" bson:"description" validate:"required"`
	Address     Address       `json:"address" bson:"address"`
	Coordinates Coordinates   `json:"coordinates" bson:"coordinates"`
	Phone       string        `json:"phone" bson:"phone"`
	Email       string        `json:"email" bson:"email" validate:"omitempty,email"`
	Hours       BusinessHours `json:"hours" bson:"hours"`
	Logo        string        `json:"logo" bson:"logo"`
	HeroImage   string        `json:"heroImage" bson:"heroImage"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// DefaultBusinessInfo returns the document provisioned on first read
// so the public site never renders a missing-business-info state.
func DefaultBusinessInfo() *BusinessInfo {
	return &BusinessInfo{
		Key:         BusinessInfoKey,
		Name:        "Hardware Boutique",
		Description: "Your one-stop shop for all hardware needs",
		Address: Address{
			Street:  "123 Main Street",
			City:    "Springfield",
			State:   "IL",
			Zip:     "62701",
			Country: "USA",
		},
		Coordinates: Coordinates{Lat: 39.7817, Lng: -89.6501},
		Phone:       "(555) 123-4567",
		Email:       "info@hardwareboutique.com",
		Hours: BusinessHours{
			Monday:    "8:00 AM - 6:00 PM",
			Tuesday:   "8:00 AM - 6:00 PM",
			Wednesday: "8:00 AM - 6:00 PM",
			Thursday:  "8:00 AM - 6:00 PM",
			Friday:    "8:00 AM - 6:00 PM",
			Saturday:  "9:00 AM - 5:00 PM",
			Sunday:    "Closed",
		},
	}
}

// BusinessInfoUpdate carries a partial update of the singleton. Only
// submitted fields are overwritten.
type BusinessInfoUpdate struct {
	Name        *string        `json:"name" validate:"omitempty,min=1"`
	Description *string        `json:"description" validate:"omitempty,min=1"`
	Address     *Address       `json:"address"`
	Coordinates *Coordinates   `json:"coordinates"`
	Phone       *string        `json:"phone"`
	Email       *string        `json:"email" validate:"omitempty,email"`
	Hours       *BusinessHours `json:"hours"`
	Logo        *string        `json:"logo"`
	HeroImage   *string        `json:"heroImage"`
}

// Apply copies the submitted fields onto info, leaving the rest untouched.
func (u *BusinessInfoUpdate) Apply(info *BusinessInfo) {
	if u.Name != nil {
		info.Name = *u.Name
	}
	if u.Description != nil {
		info.Description = *u.Description
	}
	if u.Address != nil {
		info.Address = *u.Address
	}
	if u.Coordinates != nil {
		info.Coordinates = *u.Coordinates
	}
	if u.Phone != nil {
		info.Phone = *u.Phone
	}
	if u.Email != nil {
		info.Email = *u.Email
	}
	if u.Hours != nil {
		info.Hours = *u.Hours
	}
	if u.Logo != nil {
		info.Logo = *u.Logo
	}
	if u.HeroImage != nil {
		info.HeroImage = *u.HeroImage
	}
}
