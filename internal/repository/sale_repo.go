package repository

import (
	"time"

	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	// Transaction-scoped writes used by the sale workflow.
	Create(tx *gorm.DB, sale *model.Sale) error
	CreateLineItem(tx *gorm.DB, item *model.SaleLineItem) error
	UpdateTotal(tx *gorm.DB, id uuid.UUID, total float64) error

	FindByID(id uuid.UUID) (*model.Sale, error)
	FindAll() ([]model.Sale, error)

	// Aggregates for the stats endpoints.
	Summary() (*SaleSummary, error)
	RevenueByDay(startDate, endDate time.Time) ([]DailyRevenue, error)
}

// DailyRevenue untuk chart data
type DailyRevenue struct {
	Date    string  `json:"date"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

type SaleSummary struct {
	TotalSales   int64   `json:"total_sales"`
	TotalRevenue float64 `json:"total_revenue"`
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) Create(tx *gorm.DB, sale *model.Sale) error {
	return tx.Create(sale).Error
}

func (r *saleRepo) CreateLineItem(tx *gorm.DB, item *model.SaleLineItem) error {
	return tx.Create(item).Error
}

func (r *saleRepo) UpdateTotal(tx *gorm.DB, id uuid.UUID, total float64) error {
	return tx.Model(&model.Sale{}).
		Where("id = ?", id).
		Update("total", total).Error
}

func (r *saleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.Preload("Employee").
		Preload("LineItems").
		Preload("LineItems.Product").
		First(&sale, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepo) FindAll() ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Preload("Employee").
		Preload("LineItems").
		Preload("LineItems.Product").
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) Summary() (*SaleSummary, error) {
	var summary SaleSummary

	if err := r.db.Model(&model.Sale{}).Count(&summary.TotalSales).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Sale{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&summary.TotalRevenue).Error; err != nil {
		return nil, err
	}

	return &summary, nil
}

func (r *saleRepo) RevenueByDay(startDate, endDate time.Time) ([]DailyRevenue, error) {
	var results []DailyRevenue

	rows, err := r.db.Model(&model.Sale{}).
		Select(`
			DATE(created_at) as date,
			COUNT(*) as sales,
			COALESCE(SUM(total), 0) as revenue
		`).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data DailyRevenue
		if err := rows.Scan(&data.Date, &data.Sales, &data.Revenue); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}
