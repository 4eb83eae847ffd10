package model

import (
	"time"

	"github.com/google/uuid"
)

// Sale is one completed checkout. It is created atomically with its line
// items and is immutable afterwards.
type Sale struct {
	BaseModel
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index" json:"employee_id"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	CardID     uuid.UUID `gorm:"type:uuid;not null;index" json:"card_id"`
	Card       *Card     `gorm:"foreignKey:CardID" json:"-"`
	Total      float64   `gorm:"not null;default:0" json:"total"`

	LineItems []SaleLineItem `gorm:"foreignKey:SaleID" json:"line_items,omitempty"`
}

// SaleLineItem snapshots one (product, quantity) pair at sale time.
// Quantity and UnitPrice are frozen here so historical sales stay accurate
// when the product is later modified.
type SaleLineItem struct {
	BaseModel
	SaleID    uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	UnitPrice float64   `gorm:"not null" json:"unit_price"`
}

// CreateSaleRequest is the body of POST /sales.
type CreateSaleRequest struct {
	EmployeeID uuid.UUID       `json:"employee_id" validate:"uuid_required"`
	CardID     uuid.UUID       `json:"card_id" validate:"uuid_required"`
	Products   []SaleItemInput `json:"products" validate:"dive"`
}

type SaleItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"uuid_required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// SaleProductResponse resolves name/price from the product's current
// descriptive fields; quantity is the sale-time snapshot.
type SaleProductResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
}

type SaleEmployeeResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

type SaleResponse struct {
	ID        uuid.UUID             `json:"id"`
	Total     float64               `json:"total"`
	Employee  *SaleEmployeeResponse `json:"employee,omitempty"`
	Products  []SaleProductResponse `json:"products"`
	CreatedAt time.Time             `json:"created_at"`
}

// ToResponse converts Sale (with Employee and LineItems.Product preloaded)
// to the API representation.
func (s *Sale) ToResponse() SaleResponse {
	resp := SaleResponse{
		ID:        s.ID,
		Total:     s.Total,
		Products:  make([]SaleProductResponse, 0, len(s.LineItems)),
		CreatedAt: s.CreatedAt,
	}

	if s.Employee != nil {
		resp.Employee = &SaleEmployeeResponse{
			ID:   s.Employee.ID,
			Name: s.Employee.Name,
			Role: s.Employee.Role,
		}
	}

	for _, item := range s.LineItems {
		p := SaleProductResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.UnitPrice,
		}
		if item.Product != nil {
			p.Name = item.Product.Name
			p.Price = item.Product.Price
		}
		resp.Products = append(resp.Products, p)
	}

	return resp
}
