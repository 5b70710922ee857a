// Package storetest provides in-memory store implementations for tests.
// They mirror the transactional semantics of the MySQL stores, including
// the conditional stock decrement on order creation.
package storetest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/matthieukhl/storefront/internal/models"
	"github.com/matthieukhl/storefront/internal/store"
)

type ProductStore struct {
	mu       sync.Mutex
	seq      int64
	products map[int64]models.Product
}

func NewProductStore() *ProductStore {
	return &ProductStore{products: make(map[int64]models.Product)}
}

func (s *ProductStore) GetAll(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Product
	for id := int64(1); id <= s.seq; id++ {
		if p, ok := s.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *ProductStore) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (s *ProductStore) Create(ctx context.Context, p *models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: product name required", store.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	p.ID = s.seq
	s.products[p.ID] = *p
	return nil
}

func (s *ProductStore) Update(ctx context.Context, p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[p.ID]; !ok {
		return store.ErrNotFound
	}
	s.products[p.ID] = *p
	return nil
}

func (s *ProductStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *ProductStore) Search(ctx context.Context, keyword string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keyword = strings.ToLower(keyword)
	out := []models.Product{}
	for id := int64(1); id <= s.seq; id++ {
		p, ok := s.products[id]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(p.Name), keyword) ||
			strings.Contains(strings.ToLower(p.Description), keyword) ||
			strings.Contains(strings.ToLower(p.Category), keyword) {
			out = append(out, p)
		}
	}
	return out, nil
}

// applyDecrements checks every line item against current stock and applies
// all decrements only if the whole set fits, mirroring the transactional
// all-or-nothing behavior of the MySQL order store.
func (s *ProductStore) applyDecrements(items []models.OrderItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		p, ok := s.products[item.ProductID]
		if !ok || p.Stock < item.Quantity {
			return fmt.Errorf("product %d: %w", item.ProductID, store.ErrInsufficientStock)
		}
	}
	for _, item := range items {
		p := s.products[item.ProductID]
		p.Stock -= item.Quantity
		s.products[item.ProductID] = p
	}
	return nil
}

type OrderStore struct {
	mu       sync.Mutex
	seq      int64
	itemSeq  int64
	orders   map[int64]models.Order
	products *ProductStore
}

// NewOrderStore creates an in-memory order store that decrements stock in
// the given product store on Create.
func NewOrderStore(products *ProductStore) *OrderStore {
	return &OrderStore{orders: make(map[int64]models.Order), products: products}
}

func (s *OrderStore) Create(ctx context.Context, o *models.Order) error {
	if len(o.Items) == 0 {
		return fmt.Errorf("%w: order requires at least one item", store.ErrInvalidInput)
	}

	if err := s.products.applyDecrements(o.Items); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	o.ID = s.seq
	for i := range o.Items {
		s.itemSeq++
		o.Items[i].ID = s.itemSeq
		o.Items[i].OrderID = o.ID
	}

	stored := *o
	stored.Items = append([]models.OrderItem(nil), o.Items...)
	s.orders[o.ID] = stored
	return nil
}

func (s *OrderStore) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	o.Items = append([]models.OrderItem(nil), o.Items...)
	return &o, nil
}

func (s *OrderStore) GetAll(ctx context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Order
	for id := int64(1); id <= s.seq; id++ {
		if o, ok := s.orders[id]; ok {
			o.Items = append([]models.OrderItem(nil), o.Items...)
			out = append(out, o)
		}
	}
	return out, nil
}

// Compile-time interface checks
var (
	_ store.ProductStore = (*ProductStore)(nil)
	_ store.OrderStore   = (*OrderStore)(nil)
)
