package repository

import (
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByIDs(ids []uuid.UUID) ([]model.Product, error)

	// Transaction-scoped operations used by the sale workflow, restock,
	// and descriptive updates.
	Save(tx *gorm.DB, product *model.Product) error
	FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Product, error)
	UpdateQuantity(tx *gorm.DB, id uuid.UUID, quantity int) error

	Stats() (*ProductStats, error)
}

// ProductStats for the overview endpoint
type ProductStats struct {
	TotalProducts int64   `json:"total_products"`
	LowStockCount int64   `json:"low_stock_count"`
	Valuation     float64 `json:"inventory_valuation"`
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByIDs(ids []uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("id IN ?", ids).Find(&products).Error
	return products, err
}

func (r *productRepo) Save(tx *gorm.DB, product *model.Product) error {
	return tx.Save(product).Error
}

// FindByIDForUpdate locks the product row so concurrent sales against the
// same product serialize their stock checks.
func (r *productRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateQuantity menerima tx agar bisa berjalan dalam transaksi
func (r *productRepo) UpdateQuantity(tx *gorm.DB, id uuid.UUID, quantity int) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

func (r *productRepo) Stats() (*ProductStats, error) {
	var stats ProductStats

	if err := r.db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).Where("quantity < ?", 10).
		Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(quantity * price), 0)").
		Scan(&stats.Valuation).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
