package model

import "github.com/google/uuid"

// Card is a membership/loyalty card presented at sale time.
type Card struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

// CardProduct is a running tab entry on a card prior to checkout.
// At most one row exists per (card, product); repeated adds accumulate quantity.
type CardProduct struct {
	BaseModel
	CardID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_card_product" json:"card_id"`
	Card      *Card     `gorm:"foreignKey:CardID" json:"-"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_card_product" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int       `gorm:"not null" json:"quantity"`
}

// AddCardProductRequest is the body of POST /cards/:card_id/products.
type AddCardProductRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"uuid_required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}
