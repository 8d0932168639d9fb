package storage

import (
	"sort"
	"sync"

	"restaurant-digital/restaurant-svc/internal/domain"
)

type itemKey struct {
	category domain.Category
	id       int64
}

// MemoryRepository keeps the catalog and the orders in process memory.
// Values are copied on the way in and out.
type MemoryRepository struct {
	mu     sync.RWMutex
	items  map[itemKey]domain.MenuItem
	orders map[int64]domain.Order
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items:  make(map[itemKey]domain.MenuItem),
		orders: make(map[int64]domain.Order),
	}
}

func copyItem(item domain.MenuItem) domain.MenuItem {
	if item.Promotion != nil {
		promo := *item.Promotion
		item.Promotion = &promo
	}
	return item
}

func copyOrder(order domain.Order) domain.Order {
	lines := make([]domain.CartLine, len(order.Items))
	for i, line := range order.Items {
		line.Item = copyItem(line.Item)
		lines[i] = line
	}
	order.Items = lines
	if order.DeliveryLocation != nil {
		location := *order.DeliveryLocation
		order.DeliveryLocation = &location
	}
	return order
}

func (r *MemoryRepository) ListItems(category domain.Category) ([]domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := []domain.MenuItem{}
	for key, item := range r.items {
		if key.category == category {
			items = append(items, copyItem(item))
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *MemoryRepository) GetItem(category domain.Category, id int64) (*domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemKey{category, id}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	item = copyItem(item)
	return &item, nil
}

func (r *MemoryRepository) CreateItem(item *domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[itemKey{item.Category, item.ID}] = copyItem(*item)
	return nil
}

func (r *MemoryRepository) UpdateItem(item *domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := itemKey{item.Category, item.ID}
	if _, ok := r.items[key]; !ok {
		return domain.ErrNotFound
	}
	r.items[key] = copyItem(*item)
	return nil
}

func (r *MemoryRepository) DeleteItem(category domain.Category, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := itemKey{category, id}
	if _, ok := r.items[key]; !ok {
		return 0, nil
	}
	delete(r.items, key)
	return 1, nil
}

func (r *MemoryRepository) CreateOrder(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = copyOrder(*order)
	return nil
}

func (r *MemoryRepository) GetOrder(id int64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	order = copyOrder(order)
	return &order, nil
}

func (r *MemoryRepository) ListOrders() ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, copyOrder(order))
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (r *MemoryRepository) UpdateOrder(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.ID]; !ok {
		return domain.ErrNotFound
	}
	r.orders[order.ID] = copyOrder(*order)
	return nil
}
