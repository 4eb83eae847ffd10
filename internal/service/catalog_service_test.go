package service

import (
	"testing"

	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

type fakeSupplierRepo struct {
	suppliers map[uuid.UUID]model.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: map[uuid.UUID]model.Supplier{}}
}

func (r *fakeSupplierRepo) Create(supplier *model.Supplier) error {
	if supplier.ID == uuid.Nil {
		supplier.ID = uuid.New()
	}
	r.suppliers[supplier.ID] = *supplier
	return nil
}

func (r *fakeSupplierRepo) FindAll() ([]model.Supplier, error) {
	out := make([]model.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSupplierRepo) FindByID(id uuid.UUID) (*model.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *fakeSupplierRepo) Update(supplier *model.Supplier) error {
	r.suppliers[supplier.ID] = *supplier
	return nil
}

func (r *fakeSupplierRepo) ReplaceProducts(supplier *model.Supplier, products []model.Product) error {
	s := r.suppliers[supplier.ID]
	s.Products = products
	r.suppliers[supplier.ID] = s
	return nil
}

type catalogFixture struct {
	svc       CatalogService
	products  *fakeProductRepo
	suppliers *fakeSupplierRepo
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()

	products := newFakeProductRepo()
	suppliers := newFakeSupplierRepo()
	txm := newFakeTxManager(products)

	return &catalogFixture{
		svc:       NewCatalogService(products, suppliers, txm, nil, zaptest.NewLogger(t)),
		products:  products,
		suppliers: suppliers,
	}
}

func TestCreateProduct_Validates(t *testing.T) {
	f := newCatalogFixture(t)

	err := f.svc.CreateProduct(&model.Product{Name: "", Price: 10})
	require.ErrorIs(t, err, model.ErrInvalidInput)

	err = f.svc.CreateProduct(&model.Product{Name: "Coffee", Price: -1})
	require.ErrorIs(t, err, model.ErrInvalidInput)

	err = f.svc.CreateProduct(&model.Product{Name: "Coffee", Price: 10, Quantity: 5})
	require.NoError(t, err)
}

func TestUpdateProduct_LeavesQuantityAlone(t *testing.T) {
	f := newCatalogFixture(t)
	product := model.Product{Name: "Coffee", Price: 10, Quantity: 5}
	require.NoError(t, f.products.Create(&product))

	updated, err := f.svc.UpdateProduct(product.ID, &model.UpdateProductRequest{
		Name:        "Coffee Beans",
		Description: "whole beans",
		Price:       12.5,
	})
	require.NoError(t, err)

	assert.Equal(t, "Coffee Beans", updated.Name)
	assert.Equal(t, 12.5, updated.Price)
	assert.Equal(t, 5, updated.Quantity)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	f := newCatalogFixture(t)

	_, err := f.svc.UpdateProduct(uuid.New(), &model.UpdateProductRequest{Name: "X"})
	var notFound *model.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "product", notFound.Entity)
}

func TestRestock_IncrementsQuantity(t *testing.T) {
	f := newCatalogFixture(t)
	product := model.Product{Name: "Coffee", Price: 10, Quantity: 5}
	require.NoError(t, f.products.Create(&product))

	restocked, err := f.svc.Restock(product.ID, &model.RestockRequest{Quantity: 7})
	require.NoError(t, err)
	assert.Equal(t, 12, restocked.Quantity)

	stored, _ := f.products.FindByID(product.ID)
	assert.Equal(t, 12, stored.Quantity)
}

func TestRestock_Invalid(t *testing.T) {
	f := newCatalogFixture(t)
	product := model.Product{Name: "Coffee", Price: 10, Quantity: 5}
	require.NoError(t, f.products.Create(&product))

	_, err := f.svc.Restock(product.ID, &model.RestockRequest{Quantity: 0})
	require.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = f.svc.Restock(uuid.New(), &model.RestockRequest{Quantity: 1})
	var notFound *model.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestCreateSupplier_WithProducts(t *testing.T) {
	f := newCatalogFixture(t)
	product := model.Product{Name: "Coffee", Price: 10, Quantity: 5}
	require.NoError(t, f.products.Create(&product))

	supplier, err := f.svc.CreateSupplier(&model.SupplierRequest{
		Name:       "Acme Beans",
		ProductIDs: []uuid.UUID{product.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Beans", supplier.Name)
	require.Len(t, supplier.Products, 1)
	assert.Equal(t, product.ID, supplier.Products[0].ID)
}

func TestCreateSupplier_UnknownProduct(t *testing.T) {
	f := newCatalogFixture(t)

	_, err := f.svc.CreateSupplier(&model.SupplierRequest{
		Name:       "Acme Beans",
		ProductIDs: []uuid.UUID{uuid.New()},
	})

	var notFound *model.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "product", notFound.Entity)
	assert.Empty(t, f.suppliers.suppliers)
}
