package models

import "time"

// Product is a catalog item sold by the store.
type Product struct {
	ID          string    `json:"id" bson:"_id,omitempty" validate:"omitempty,uuid"`
	Name        string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Description string    `json:"description" bson:"description" validate:"required,max=2000"`
	Price       float64   `json:"price" bson:"price" validate:"gte=0"`
	Category    string    `json:"category" bson:"category" validate:"required,max=100"`
	Image       string    `json:"image" bson:"image" validate:"omitempty,url"`
	InStock     bool      `json:"inStock" bson:"inStock"`
	Quantity    int       `json:"quantity" bson:"quantity" validate:"gte=0"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ProductUpdate carries a partial product update. Nil fields keep the
// stored value, so update semantics stay merge-only regardless of how
// the store applies the write.
type ProductUpdate struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Category    *string  `json:"category" validate:"omitempty,max=100"`
	Image       *string  `json:"image" validate:"omitempty,url"`
	InStock     *bool    `json:"inStock"`
	Quantity    *int     `json:"quantity" validate:"omitempty,gte=0"`
}

// Apply copies the submitted fields onto p, leaving the rest untouched.
func (u *ProductUpdate) Apply(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Image != nil {
		p.Image = *u.Image
	}
	if u.InStock != nil {
		p.InStock = *u.InStock
	}
	if u.Quantity != nil {
		p.Quantity = *u.Quantity
	}
}
