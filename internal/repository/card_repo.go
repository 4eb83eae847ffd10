package repository

import (
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CardRepository interface {
	Create(card *model.Card) error
	FindAll() ([]model.Card, error)
	FindByID(id uuid.UUID) (*model.Card, error)
	Update(card *model.Card) error
}

type cardRepo struct {
	db *gorm.DB
}

func NewCardRepo(db *gorm.DB) CardRepository {
	return &cardRepo{db}
}

func (r *cardRepo) Create(card *model.Card) error {
	return r.db.Create(card).Error
}

func (r *cardRepo) FindAll() ([]model.Card, error) {
	var cards []model.Card
	err := r.db.Find(&cards).Error
	return cards, err
}

func (r *cardRepo) FindByID(id uuid.UUID) (*model.Card, error) {
	var card model.Card
	if err := r.db.First(&card, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *cardRepo) Update(card *model.Card) error {
	return r.db.Save(card).Error
}

type CardProductRepository interface {
	// FindForUpdate locks the (card, product) row so concurrent adds
	// accumulate instead of clobbering each other.
	FindForUpdate(tx *gorm.DB, cardID, productID uuid.UUID) (*model.CardProduct, error)
	Create(tx *gorm.DB, item *model.CardProduct) error
	UpdateQuantity(tx *gorm.DB, id uuid.UUID, quantity int) error

	FindByID(id uuid.UUID) (*model.CardProduct, error)
	FindByCard(cardID uuid.UUID) ([]model.CardProduct, error)
}

type cardProductRepo struct {
	db *gorm.DB
}

func NewCardProductRepo(db *gorm.DB) CardProductRepository {
	return &cardProductRepo{db}
}

func (r *cardProductRepo) FindForUpdate(tx *gorm.DB, cardID, productID uuid.UUID) (*model.CardProduct, error) {
	var item model.CardProduct
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("card_id = ? AND product_id = ?", cardID, productID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cardProductRepo) Create(tx *gorm.DB, item *model.CardProduct) error {
	return tx.Create(item).Error
}

func (r *cardProductRepo) UpdateQuantity(tx *gorm.DB, id uuid.UUID, quantity int) error {
	return tx.Model(&model.CardProduct{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

func (r *cardProductRepo) FindByID(id uuid.UUID) (*model.CardProduct, error) {
	var item model.CardProduct
	if err := r.db.Preload("Product").First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cardProductRepo) FindByCard(cardID uuid.UUID) ([]model.CardProduct, error) {
	var items []model.CardProduct
	err := r.db.Preload("Product").
		Where("card_id = ?", cardID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}
