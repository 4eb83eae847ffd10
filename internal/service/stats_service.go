package service

import (
	"time"

	"go-pos-backend/internal/repository"
)

type StatsService interface {
	GetOverview() (*Overview, error)
	GetRevenue(days int) ([]repository.DailyRevenue, error)
}

// Overview combines product and sale aggregates for the dashboard.
type Overview struct {
	TotalProducts      int64   `json:"total_products"`
	LowStockCount      int64   `json:"low_stock_count"`
	InventoryValuation float64 `json:"inventory_valuation"`
	TotalSales         int64   `json:"total_sales"`
	TotalRevenue       float64 `json:"total_revenue"`
}

type statsService struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
}

func NewStatsService(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) StatsService {
	return &statsService{productRepo: productRepo, saleRepo: saleRepo}
}

func (s *statsService) GetOverview() (*Overview, error) {
	productStats, err := s.productRepo.Stats()
	if err != nil {
		return nil, err
	}
	saleSummary, err := s.saleRepo.Summary()
	if err != nil {
		return nil, err
	}

	return &Overview{
		TotalProducts:      productStats.TotalProducts,
		LowStockCount:      productStats.LowStockCount,
		InventoryValuation: productStats.Valuation,
		TotalSales:         saleSummary.TotalSales,
		TotalRevenue:       saleSummary.TotalRevenue,
	}, nil
}

func (s *statsService) GetRevenue(days int) ([]repository.DailyRevenue, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	return s.saleRepo.RevenueByDay(startDate, endDate)
}
