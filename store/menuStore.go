package store

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"go-restaurant-operations/models"
)

// MenuCatalog owns the menu item records. Items are indexed by id and by
// name; both indexes are updated under the same lock so they never diverge.
type MenuCatalog struct {
	mu      sync.RWMutex
	byID    map[int]*models.MenuItem
	nameIdx map[string]int
	order   []int // insertion order of ids, for List
}

func NewMenuCatalog() *MenuCatalog {
	return &MenuCatalog{
		byID:    make(map[int]*models.MenuItem),
		nameIdx: make(map[string]int),
	}
}

// AddItem inserts a new menu item. Both the id and the name must be unused.
func (m *MenuCatalog) AddItem(item models.MenuItem) (models.MenuItem, error) {
	if item.ID <= 0 {
		return models.MenuItem{}, fmt.Errorf("menu item id %d: %w", item.ID, ErrInvalidArgument)
	}
	if item.Name == "" {
		return models.MenuItem{}, fmt.Errorf("menu item name is empty: %w", ErrInvalidArgument)
	}
	if item.Price.IsNegative() {
		return models.MenuItem{}, fmt.Errorf("menu item price %s: %w", item.Price, ErrInvalidArgument)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[item.ID]; ok {
		return models.MenuItem{}, fmt.Errorf("menu item id %d: %w", item.ID, ErrDuplicateID)
	}
	if _, ok := m.nameIdx[item.Name]; ok {
		return models.MenuItem{}, fmt.Errorf("menu item name %q: %w", item.Name, ErrDuplicateName)
	}

	stored := item
	m.byID[item.ID] = &stored
	m.nameIdx[item.Name] = item.ID
	m.order = append(m.order, item.ID)
	return stored, nil
}

// UpdatePrice changes the price of an existing item in place. Orders are
// unaffected: lines snapshot the price at the time they are added.
func (m *MenuCatalog) UpdatePrice(id int, newPrice decimal.Decimal) (models.MenuItem, error) {
	if newPrice.IsNegative() {
		return models.MenuItem{}, fmt.Errorf("price %s: %w", newPrice, ErrInvalidArgument)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.byID[id]
	if !ok {
		return models.MenuItem{}, fmt.Errorf("menu item %d: %w", id, ErrNotFound)
	}
	item.Price = newPrice
	return *item, nil
}

// Find looks up an item by id or by name. Exactly one key must be given;
// a name is first resolved to an id through the name index.
func (m *MenuCatalog) Find(id *int, name *string) (models.MenuItem, error) {
	if (id == nil) == (name == nil) {
		return models.MenuItem{}, fmt.Errorf("exactly one of id or name must be set: %w", ErrInvalidArgument)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	key := 0
	if name != nil {
		resolved, ok := m.nameIdx[*name]
		if !ok {
			return models.MenuItem{}, fmt.Errorf("menu item %q: %w", *name, ErrNotFound)
		}
		key = resolved
	} else {
		key = *id
	}

	item, ok := m.byID[key]
	if !ok {
		return models.MenuItem{}, fmt.Errorf("menu item %d: %w", key, ErrNotFound)
	}
	return *item, nil
}

// PriceOf returns the current price of an item.
func (m *MenuCatalog) PriceOf(id int) (decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.byID[id]
	if !ok {
		return decimal.Zero, fmt.Errorf("menu item %d: %w", id, ErrNotFound)
	}
	return item.Price, nil
}

// List returns a copy of all items in insertion order.
func (m *MenuCatalog) List() []models.MenuItem {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]models.MenuItem, 0, len(m.order))
	for _, id := range m.order {
		items = append(items, *m.byID[id])
	}
	return items
}
