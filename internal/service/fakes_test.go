package service

import (
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory fakes standing in for the gorm repositories. The fake tx
// manager snapshots repo state before the callback and restores it on
// error, mirroring a database rollback.

type snapshotter interface {
	snapshot() func()
}

type fakeTxManager struct {
	repos []snapshotter
}

func newFakeTxManager(repos ...snapshotter) repository.TxManager {
	return &fakeTxManager{repos: repos}
}

func (m *fakeTxManager) Do(fn func(tx *gorm.DB) error) error {
	restores := make([]func(), 0, len(m.repos))
	for _, r := range m.repos {
		restores = append(restores, r.snapshot())
	}
	if err := fn(nil); err != nil {
		for _, restore := range restores {
			restore()
		}
		return err
	}
	return nil
}

// ---- products ----

type fakeProductRepo struct {
	products map[uuid.UUID]model.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uuid.UUID]model.Product{}}
}

func (r *fakeProductRepo) snapshot() func() {
	saved := make(map[uuid.UUID]model.Product, len(r.products))
	for id, p := range r.products {
		saved[id] = p
	}
	return func() { r.products = saved }
}

func (r *fakeProductRepo) Create(product *model.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) FindAll() ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *fakeProductRepo) FindByIDs(ids []uuid.UUID) ([]model.Product, error) {
	var out []model.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Save(tx *gorm.DB, product *model.Product) error {
	r.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	return r.FindByID(id)
}

func (r *fakeProductRepo) UpdateQuantity(tx *gorm.DB, id uuid.UUID, quantity int) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Quantity = quantity
	r.products[id] = p
	return nil
}

func (r *fakeProductRepo) Stats() (*repository.ProductStats, error) {
	stats := &repository.ProductStats{}
	for _, p := range r.products {
		stats.TotalProducts++
		if p.Quantity < 10 {
			stats.LowStockCount++
		}
		stats.Valuation += float64(p.Quantity) * p.Price
	}
	return stats, nil
}

// ---- employees ----

type fakeEmployeeRepo struct {
	employees map[uuid.UUID]model.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: map[uuid.UUID]model.Employee{}}
}

func (r *fakeEmployeeRepo) Create(employee *model.Employee) error {
	if employee.ID == uuid.Nil {
		employee.ID = uuid.New()
	}
	r.employees[employee.ID] = *employee
	return nil
}

func (r *fakeEmployeeRepo) FindAll() ([]model.Employee, error) {
	out := make([]model.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) FindByID(id uuid.UUID) (*model.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (r *fakeEmployeeRepo) Update(employee *model.Employee) error {
	r.employees[employee.ID] = *employee
	return nil
}

// ---- cards ----

type fakeCardRepo struct {
	cards map[uuid.UUID]model.Card
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{cards: map[uuid.UUID]model.Card{}}
}

func (r *fakeCardRepo) Create(card *model.Card) error {
	if card.ID == uuid.Nil {
		card.ID = uuid.New()
	}
	r.cards[card.ID] = *card
	return nil
}

func (r *fakeCardRepo) FindAll() ([]model.Card, error) {
	out := make([]model.Card, 0, len(r.cards))
	for _, c := range r.cards {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCardRepo) FindByID(id uuid.UUID) (*model.Card, error) {
	c, ok := r.cards[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *fakeCardRepo) Update(card *model.Card) error {
	r.cards[card.ID] = *card
	return nil
}

// ---- card products ----

type fakeCardProductRepo struct {
	items    map[uuid.UUID]model.CardProduct
	products *fakeProductRepo
}

func newFakeCardProductRepo(products *fakeProductRepo) *fakeCardProductRepo {
	return &fakeCardProductRepo{items: map[uuid.UUID]model.CardProduct{}, products: products}
}

func (r *fakeCardProductRepo) snapshot() func() {
	saved := make(map[uuid.UUID]model.CardProduct, len(r.items))
	for id, i := range r.items {
		saved[id] = i
	}
	return func() { r.items = saved }
}

func (r *fakeCardProductRepo) FindForUpdate(tx *gorm.DB, cardID, productID uuid.UUID) (*model.CardProduct, error) {
	for _, item := range r.items {
		if item.CardID == cardID && item.ProductID == productID {
			found := item
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCardProductRepo) Create(tx *gorm.DB, item *model.CardProduct) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = *item
	return nil
}

func (r *fakeCardProductRepo) UpdateQuantity(tx *gorm.DB, id uuid.UUID, quantity int) error {
	item, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.Quantity = quantity
	r.items[id] = item
	return nil
}

func (r *fakeCardProductRepo) FindByID(id uuid.UUID) (*model.CardProduct, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if p, err := r.products.FindByID(item.ProductID); err == nil {
		item.Product = p
	}
	return &item, nil
}

func (r *fakeCardProductRepo) FindByCard(cardID uuid.UUID) ([]model.CardProduct, error) {
	var out []model.CardProduct
	for _, item := range r.items {
		if item.CardID == cardID {
			if p, err := r.products.FindByID(item.ProductID); err == nil {
				item.Product = p
			}
			out = append(out, item)
		}
	}
	return out, nil
}

// ---- sales ----

type fakeSaleRepo struct {
	sales     map[uuid.UUID]model.Sale
	lineItems []model.SaleLineItem
	employees *fakeEmployeeRepo
	products  *fakeProductRepo
}

func newFakeSaleRepo(employees *fakeEmployeeRepo, products *fakeProductRepo) *fakeSaleRepo {
	return &fakeSaleRepo{
		sales:     map[uuid.UUID]model.Sale{},
		employees: employees,
		products:  products,
	}
}

func (r *fakeSaleRepo) snapshot() func() {
	savedSales := make(map[uuid.UUID]model.Sale, len(r.sales))
	for id, s := range r.sales {
		savedSales[id] = s
	}
	savedItems := make([]model.SaleLineItem, len(r.lineItems))
	copy(savedItems, r.lineItems)
	return func() {
		r.sales = savedSales
		r.lineItems = savedItems
	}
}

func (r *fakeSaleRepo) Create(tx *gorm.DB, sale *model.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	sale.CreatedAt = time.Now()
	r.sales[sale.ID] = *sale
	return nil
}

func (r *fakeSaleRepo) CreateLineItem(tx *gorm.DB, item *model.SaleLineItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.lineItems = append(r.lineItems, *item)
	return nil
}

func (r *fakeSaleRepo) UpdateTotal(tx *gorm.DB, id uuid.UUID, total float64) error {
	sale, ok := r.sales[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	sale.Total = total
	r.sales[id] = sale
	return nil
}

func (r *fakeSaleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	sale, ok := r.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if e, err := r.employees.FindByID(sale.EmployeeID); err == nil {
		sale.Employee = e
	}
	for _, item := range r.lineItems {
		if item.SaleID == id {
			if p, err := r.products.FindByID(item.ProductID); err == nil {
				item.Product = p
			}
			sale.LineItems = append(sale.LineItems, item)
		}
	}
	return &sale, nil
}

func (r *fakeSaleRepo) FindAll() ([]model.Sale, error) {
	out := make([]model.Sale, 0, len(r.sales))
	for id := range r.sales {
		s, err := r.FindByID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSaleRepo) Summary() (*repository.SaleSummary, error) {
	summary := &repository.SaleSummary{}
	for _, s := range r.sales {
		summary.TotalSales++
		summary.TotalRevenue += s.Total
	}
	return summary, nil
}

func (r *fakeSaleRepo) RevenueByDay(startDate, endDate time.Time) ([]repository.DailyRevenue, error) {
	byDay := map[string]*repository.DailyRevenue{}
	for _, s := range r.sales {
		if s.CreatedAt.Before(startDate) || s.CreatedAt.After(endDate) {
			continue
		}
		day := s.CreatedAt.Format("2006-01-02")
		if byDay[day] == nil {
			byDay[day] = &repository.DailyRevenue{Date: day}
		}
		byDay[day].Sales++
		byDay[day].Revenue += s.Total
	}
	out := make([]repository.DailyRevenue, 0, len(byDay))
	for _, d := range byDay {
		out = append(out, *d)
	}
	return out, nil
}
