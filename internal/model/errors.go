package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidInput marks malformed or failed-validation request bodies.
var ErrInvalidInput = errors.New("invalid input")

// NotFoundError reports a missing entity by kind and ID.
type NotFoundError struct {
	Entity string
	ID     uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Entity, e.ID)
}

func NewNotFound(entity string, id uuid.UUID) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// InsufficientStockError is returned when a sale requests more units than
// a product has on hand.
type InsufficientStockError struct {
	ProductID uuid.UUID
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: available %d, requested %d",
		e.ProductID, e.Available, e.Requested)
}
