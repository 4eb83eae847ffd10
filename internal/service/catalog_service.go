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

// CatalogService covers product and supplier management. Product quantity
// is only touched here through Restock; sales own the decrement path.
type CatalogService interface {
	CreateProduct(product *model.Product) error
	GetAllProducts() ([]model.Product, error)
	GetProductByID(id uuid.UUID) (*model.Product, error)
	UpdateProduct(id uuid.UUID, req *model.UpdateProductRequest) (*model.Product, error)
	Restock(id uuid.UUID, req *model.RestockRequest) (*model.Product, error)

	CreateSupplier(req *model.SupplierRequest) (*model.Supplier, error)
	GetAllSuppliers() ([]model.Supplier, error)
	GetSupplierByID(id uuid.UUID) (*model.Supplier, error)
	UpdateSupplier(id uuid.UUID, req *model.SupplierRequest) (*model.Supplier, error)
}

type catalogService struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	txm          repository.TxManager
	hub          *ws.Hub
	logger       *zap.Logger
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	txm repository.TxManager,
	hub *ws.Hub,
	logger *zap.Logger,
) CatalogService {
	return &catalogService{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		txm:          txm,
		hub:          hub,
		logger:       logger,
	}
}

func validationError(errs []*validator.FieldError) error {
	first := errs[0]
	return fmt.Errorf("%w: field '%s' failed on tag '%s'",
		model.ErrInvalidInput, first.FailedField, first.Tag)
}

func (s *catalogService) CreateProduct(product *model.Product) error {
	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		return validationError(errs)
	}

	if err := s.productRepo.Create(product); err != nil {
		return err
	}

	if s.hub != nil {
		go s.hub.Publish(ws.Event{
			Type:    "stock_update",
			Action:  "product_created",
			Payload: product,
			Message: fmt.Sprintf("product '%s' created", product.Name),
		})
	}

	return nil
}

func (s *catalogService) GetAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *catalogService) GetProductByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.NewNotFound("product", id)
		}
		return nil, err
	}
	return product, nil
}

// UpdateProduct changes descriptive fields only. Quantity never moves
// here, so a price edit can't race a sale's stock decrement.
func (s *catalogService) UpdateProduct(id uuid.UUID, req *model.UpdateProductRequest) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	var updated *model.Product
	err := s.txm.Do(func(tx *gorm.DB) error {
		product, err := s.productRepo.FindByIDForUpdate(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.NewNotFound("product", id)
			}
			return err
		}

		product.Name = req.Name
		product.Description = req.Description
		product.Price = req.Price

		if err := s.productRepo.Save(tx, product); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.hub != nil {
		go s.hub.Publish(ws.Event{
			Type:    "stock_update",
			Action:  "product_updated",
			Payload: updated,
			Message: fmt.Sprintf("product '%s' updated", updated.Name),
		})
	}

	return updated, nil
}

// Restock is the only quantity increment path.
func (s *catalogService) Restock(id uuid.UUID, req *model.RestockRequest) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	var restocked *model.Product
	err := s.txm.Do(func(tx *gorm.DB) error {
		product, err := s.productRepo.FindByIDForUpdate(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.NewNotFound("product", id)
			}
			return err
		}

		newQuantity := product.Quantity + req.Quantity
		if err := s.productRepo.UpdateQuantity(tx, product.ID, newQuantity); err != nil {
			return err
		}

		product.Quantity = newQuantity
		restocked = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("product restocked",
		zap.String("product_id", restocked.ID.String()),
		zap.Int("added", req.Quantity),
		zap.Int("quantity", restocked.Quantity))

	if s.hub != nil {
		go s.hub.Publish(ws.Event{
			Type:    "stock_update",
			Action:  "product_restocked",
			Payload: restocked,
			Message: fmt.Sprintf("%d units of '%s' added", req.Quantity, restocked.Name),
		})
	}

	return restocked, nil
}

func (s *catalogService) CreateSupplier(req *model.SupplierRequest) (*model.Supplier, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	products, err := s.resolveProducts(req.ProductIDs)
	if err != nil {
		return nil, err
	}

	supplier := &model.Supplier{Name: req.Name}
	if err := s.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	if len(products) > 0 {
		if err := s.supplierRepo.ReplaceProducts(supplier, products); err != nil {
			return nil, err
		}
		supplier.Products = products
	}

	return supplier, nil
}

func (s *catalogService) GetAllSuppliers() ([]model.Supplier, error) {
	return s.supplierRepo.FindAll()
}

func (s *catalogService) GetSupplierByID(id uuid.UUID) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.NewNotFound("supplier", id)
		}
		return nil, err
	}
	return supplier, nil
}

func (s *catalogService) UpdateSupplier(id uuid.UUID, req *model.SupplierRequest) (*model.Supplier, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	supplier, err := s.GetSupplierByID(id)
	if err != nil {
		return nil, err
	}

	products, err := s.resolveProducts(req.ProductIDs)
	if err != nil {
		return nil, err
	}

	supplier.Name = req.Name
	if err := s.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	if err := s.supplierRepo.ReplaceProducts(supplier, products); err != nil {
		return nil, err
	}
	supplier.Products = products

	return supplier, nil
}

// resolveProducts loads the referenced products, failing on the first
// missing ID.
func (s *catalogService) resolveProducts(ids []uuid.UUID) ([]model.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	products, err := s.productRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]bool, len(products))
	for _, p := range products {
		found[p.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return nil, model.NewNotFound("product", id)
		}
	}

	return products, nil
}
