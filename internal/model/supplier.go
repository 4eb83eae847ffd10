package model

import "github.com/google/uuid"

type Supplier struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`

	// Relasi
	Products []Product `gorm:"many2many:supplier_products;" json:"products,omitempty"`
}

// SupplierRequest carries the supplier name and the products it supplies.
type SupplierRequest struct {
	Name       string      `json:"name" validate:"required"`
	ProductIDs []uuid.UUID `json:"product_ids"`
}
