package service

import (
	"errors"
	"fmt"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/ws"
	"go-pos-backend/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SaleService orchestrates one sale as a single atomic unit: validate the
// referenced entities, decrement stock under row locks, snapshot line
// items, and accumulate the total. All of it commits together or not at all.
type SaleService interface {
	CreateSale(req *model.CreateSaleRequest) (*model.Sale, error)
	GetAllSales() ([]model.Sale, error)
	GetSaleByID(id uuid.UUID) (*model.Sale, error)
}

type saleService struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	employeeRepo repository.EmployeeRepository
	cardRepo     repository.CardRepository
	txm          repository.TxManager
	hub          *ws.Hub
	logger       *zap.Logger
}

func NewSaleService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	employeeRepo repository.EmployeeRepository,
	cardRepo repository.CardRepository,
	txm repository.TxManager,
	hub *ws.Hub,
	logger *zap.Logger,
) SaleService {
	return &saleService{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		employeeRepo: employeeRepo,
		cardRepo:     cardRepo,
		txm:          txm,
		hub:          hub,
		logger:       logger,
	}
}

func (s *saleService) CreateSale(req *model.CreateSaleRequest) (*model.Sale, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'",
			model.ErrInvalidInput, first.FailedField, first.Tag)
	}

	// Fail fast on the referenced entities before opening the transaction.
	if _, err := s.employeeRepo.FindByID(req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.NewNotFound("employee", req.EmployeeID)
		}
		return nil, err
	}
	if _, err := s.cardRepo.FindByID(req.CardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.NewNotFound("card", req.CardID)
		}
		return nil, err
	}

	sale := &model.Sale{
		EmployeeID: req.EmployeeID,
		CardID:     req.CardID,
		Total:      0,
	}

	err := s.txm.Do(func(tx *gorm.DB) error {
		if err := s.saleRepo.Create(tx, sale); err != nil {
			return err
		}

		var total float64
		for _, item := range req.Products {
			// Lock the product row; concurrent sales on the same product
			// serialize their stock checks here.
			product, err := s.productRepo.FindByIDForUpdate(tx, item.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return model.NewNotFound("product", item.ProductID)
				}
				return err
			}

			if product.Quantity < item.Quantity {
				return &model.InsufficientStockError{
					ProductID: product.ID,
					Available: product.Quantity,
					Requested: item.Quantity,
				}
			}

			if err := s.productRepo.UpdateQuantity(tx, product.ID, product.Quantity-item.Quantity); err != nil {
				return err
			}

			total += product.Price * float64(item.Quantity)

			lineItem := &model.SaleLineItem{
				SaleID:    sale.ID,
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.Price,
			}
			if err := s.saleRepo.CreateLineItem(tx, lineItem); err != nil {
				return err
			}
		}

		sale.Total = total
		return s.saleRepo.UpdateTotal(tx, sale.ID, total)
	})
	if err != nil {
		var notFound *model.NotFoundError
		var insufficient *model.InsufficientStockError
		if !errors.As(err, &notFound) && !errors.As(err, &insufficient) {
			s.logger.Error("sale transaction failed",
				zap.String("employee_id", req.EmployeeID.String()),
				zap.String("card_id", req.CardID.String()),
				zap.Error(err))
		}
		return nil, err
	}

	created, err := s.saleRepo.FindByID(sale.ID)
	if err != nil {
		s.logger.Error("failed to reload sale", zap.String("sale_id", sale.ID.String()), zap.Error(err))
		return nil, err
	}

	s.logger.Info("sale created",
		zap.String("sale_id", created.ID.String()),
		zap.Float64("total", created.Total),
		zap.Int("line_items", len(created.LineItems)))

	if s.hub != nil {
		go s.hub.Publish(ws.Event{
			Type:    "stock_update",
			Action:  "sale_created",
			Payload: created.ToResponse(),
			Message: fmt.Sprintf("sale %s completed for %.2f", created.ID, created.Total),
		})
	}

	return created, nil
}

func (s *saleService) GetAllSales() ([]model.Sale, error) {
	return s.saleRepo.FindAll()
}

func (s *saleService) GetSaleByID(id uuid.UUID) (*model.Sale, error) {
	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.NewNotFound("sale", id)
		}
		return nil, err
	}
	return sale, nil
}
