package model

// Employee is the operator recorded on each sale.
type Employee struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Role string `gorm:"type:varchar(100)" json:"role"`
}
