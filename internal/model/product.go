package model

type Product struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null;default:0" json:"price" validate:"gte=0"`
	// Units on hand. Mutated only by the sale workflow (decrement) and restock (increment).
	Quantity int `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`

	// Relasi
	Suppliers []Supplier `gorm:"many2many:supplier_products;" json:"suppliers,omitempty"`
}

// RestockRequest adds units to a product's stock.
type RestockRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// UpdateProductRequest covers the descriptive fields only; quantity is
// owned by sales and restocks.
type UpdateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
}
