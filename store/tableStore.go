package store

import (
	"fmt"
	"sync"

	"go-restaurant-operations/models"
)

// TableRegistry owns the dining tables and their occupancy status.
// Allowed transitions: FREE -> RESERVED -> OCCUPIED -> FREE, plus the
// walk-in shortcut FREE -> OCCUPIED. Release is valid from any status.
type TableRegistry struct {
	mu     sync.RWMutex
	tables map[int]*models.Table
	order  []int
}

func NewTableRegistry() *TableRegistry {
	return &TableRegistry{tables: make(map[int]*models.Table)}
}

// AddTable registers a new table. New tables start FREE.
func (r *TableRegistry) AddTable(table models.Table) (models.Table, error) {
	if table.Number <= 0 {
		return models.Table{}, fmt.Errorf("table number %d: %w", table.Number, ErrInvalidArgument)
	}
	if table.Capacity <= 0 {
		return models.Table{}, fmt.Errorf("table capacity %d: %w", table.Capacity, ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tables[table.Number]; ok {
		return models.Table{}, fmt.Errorf("table %d: %w", table.Number, ErrDuplicateID)
	}
	stored := table
	stored.Status = models.TableStatusFree
	r.tables[table.Number] = &stored
	r.order = append(r.order, table.Number)
	return stored, nil
}

// Reserve moves a FREE table to RESERVED.
func (r *TableRegistry) Reserve(tableNumber int) (models.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	table, ok := r.tables[tableNumber]
	if !ok {
		return models.Table{}, fmt.Errorf("table %d: %w", tableNumber, ErrNotFound)
	}
	if table.Status != models.TableStatusFree {
		return models.Table{}, fmt.Errorf("table %d is %s: %w", tableNumber, table.Status, ErrInvalidState)
	}
	table.Status = models.TableStatusReserved
	return *table, nil
}

// Occupy moves a FREE or RESERVED table to OCCUPIED.
func (r *TableRegistry) Occupy(tableNumber int) (models.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	table, ok := r.tables[tableNumber]
	if !ok {
		return models.Table{}, fmt.Errorf("table %d: %w", tableNumber, ErrNotFound)
	}
	if table.Status == models.TableStatusOccupied {
		return models.Table{}, fmt.Errorf("table %d is %s: %w", tableNumber, table.Status, ErrInvalidState)
	}
	table.Status = models.TableStatusOccupied
	return *table, nil
}

// Release moves a table back to FREE from any status.
func (r *TableRegistry) Release(tableNumber int) (models.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	table, ok := r.tables[tableNumber]
	if !ok {
		return models.Table{}, fmt.Errorf("table %d: %w", tableNumber, ErrNotFound)
	}
	table.Status = models.TableStatusFree
	return *table, nil
}

// Get returns a copy of one table.
func (r *TableRegistry) Get(tableNumber int) (models.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table, ok := r.tables[tableNumber]
	if !ok {
		return models.Table{}, fmt.Errorf("table %d: %w", tableNumber, ErrNotFound)
	}
	return *table, nil
}

// List returns a copy of all tables in insertion order.
func (r *TableRegistry) List() []models.Table {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tables := make([]models.Table, 0, len(r.order))
	for _, number := range r.order {
		tables = append(tables, *r.tables[number])
	}
	return tables
}

// ListFree returns a copy of the tables currently FREE, in insertion order.
func (r *TableRegistry) ListFree() []models.Table {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var free []models.Table
	for _, number := range r.order {
		if table := r.tables[number]; table.Status == models.TableStatusFree {
			free = append(free, *table)
		}
	}
	return free
}
