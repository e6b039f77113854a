package store

import (
	"fmt"
	"sync"
	"time"

	"go-restaurant-operations/models"
)

// OrderLedger owns every order and its lines. Orders move
// CREATED -> IN_PROGRESS -> BILLED -> PAID, or from CREATED/IN_PROGRESS to
// CANCELLED; BILLED and PAID are only ever set through the BillingEngine.
//
// Where table state must stay consistent with order state (creating an
// order, manually releasing a table), the ledger holds its own lock across
// the call into the registry. The nesting is always ledger then table and
// the registry never calls back into the ledger, so there is no deadlock.
type OrderLedger struct {
	mu     sync.RWMutex
	orders map[int]*models.Order
	order  []int
	nextID int

	menu   *MenuCatalog
	tables *TableRegistry
}

func NewOrderLedger(menu *MenuCatalog, tables *TableRegistry) *OrderLedger {
	return &OrderLedger{
		orders: make(map[int]*models.Order),
		nextID: 1,
		menu:   menu,
		tables: tables,
	}
}

// CreateOrder opens a new order for a customer and seats it at the given
// table. The table must be FREE or RESERVED; it becomes OCCUPIED here.
func (l *OrderLedger) CreateOrder(customerID, tableNumber int) (models.Order, error) {
	if customerID <= 0 {
		return models.Order{}, fmt.Errorf("customer id %d: %w", customerID, ErrInvalidArgument)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Occupying the table is the validation: NotFound for an unknown table,
	// InvalidState when it is already OCCUPIED. The ledger lock is held
	// across occupy and insert so a racing manual release cannot free the
	// table between the two steps.
	if _, err := l.tables.Occupy(tableNumber); err != nil {
		return models.Order{}, err
	}

	ord := &models.Order{
		ID:          l.nextID,
		CustomerID:  customerID,
		TableNumber: tableNumber,
		Status:      models.OrderStatusCreated,
		CreatedAt:   time.Now(),
	}
	l.nextID++
	l.orders[ord.ID] = ord
	l.order = append(l.order, ord.ID)
	return snapshotOrder(ord), nil
}

// AddLine appends one line to an open order. The current menu price is
// captured into the line; later price edits do not touch existing lines.
// The first line moves the order from CREATED to IN_PROGRESS.
func (l *OrderLedger) AddLine(orderID, menuItemID, quantity int) (models.Order, error) {
	if quantity <= 0 {
		return models.Order{}, fmt.Errorf("quantity %d: %w", quantity, ErrInvalidArgument)
	}

	price, err := l.menu.PriceOf(menuItemID)
	if err != nil {
		return models.Order{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	ord, ok := l.orders[orderID]
	if !ok {
		return models.Order{}, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}
	if err := ensureOpen(ord); err != nil {
		return models.Order{}, err
	}

	ord.Lines = append(ord.Lines, models.OrderLine{
		MenuItemID: menuItemID,
		Quantity:   quantity,
		UnitPrice:  price,
	})
	if ord.Status == models.OrderStatusCreated {
		ord.Status = models.OrderStatusInProgress
	}
	return snapshotOrder(ord), nil
}

// AddLines appends a batch of lines all-or-nothing. Every line is validated
// and priced before the order is touched, so a bad line leaves the order
// exactly as it was.
func (l *OrderLedger) AddLines(orderID int, lines []models.OrderLine) (models.Order, error) {
	if len(lines) == 0 {
		return models.Order{}, fmt.Errorf("no lines given: %w", ErrInvalidArgument)
	}

	priced := make([]models.OrderLine, 0, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return models.Order{}, fmt.Errorf("quantity %d for item %d: %w", line.Quantity, line.MenuItemID, ErrInvalidArgument)
		}
		price, err := l.menu.PriceOf(line.MenuItemID)
		if err != nil {
			return models.Order{}, err
		}
		priced = append(priced, models.OrderLine{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			UnitPrice:  price,
		})
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	ord, ok := l.orders[orderID]
	if !ok {
		return models.Order{}, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}
	if err := ensureOpen(ord); err != nil {
		return models.Order{}, err
	}

	ord.Lines = append(ord.Lines, priced...)
	if ord.Status == models.OrderStatusCreated {
		ord.Status = models.OrderStatusInProgress
	}
	return snapshotOrder(ord), nil
}

// CancelOrder closes an order that has not been billed and frees its table.
func (l *OrderLedger) CancelOrder(orderID int) (models.Order, error) {
	l.mu.Lock()
	ord, ok := l.orders[orderID]
	if !ok {
		l.mu.Unlock()
		return models.Order{}, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}
	if err := ensureOpen(ord); err != nil {
		l.mu.Unlock()
		return models.Order{}, err
	}
	ord.Status = models.OrderStatusCancelled
	tableNumber := ord.TableNumber
	cancelled := snapshotOrder(ord)
	l.mu.Unlock()

	if _, err := l.tables.Release(tableNumber); err != nil {
		return models.Order{}, err
	}
	return cancelled, nil
}

// GetOrder returns a copy of one order, lines included.
func (l *OrderLedger) GetOrder(orderID int) (models.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ord, ok := l.orders[orderID]
	if !ok {
		return models.Order{}, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}
	return snapshotOrder(ord), nil
}

// FindActiveOrdersForCustomer returns the customer's CREATED and
// IN_PROGRESS orders in creation order.
func (l *OrderLedger) FindActiveOrdersForCustomer(customerID int) []models.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var active []models.Order
	for _, id := range l.order {
		ord := l.orders[id]
		if ord.CustomerID != customerID {
			continue
		}
		if ord.Status == models.OrderStatusCreated || ord.Status == models.OrderStatusInProgress {
			active = append(active, snapshotOrder(ord))
		}
	}
	return active
}

// ReleaseTable is the manual override: it frees a table only while no
// non-terminal order references it. The ledger lock is held across the
// active-order check and the release so a concurrent CreateOrder cannot
// occupy the table between the two steps.
func (l *OrderLedger) ReleaseTable(tableNumber int) (models.Table, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, ord := range l.orders {
		if ord.TableNumber != tableNumber {
			continue
		}
		switch ord.Status {
		case models.OrderStatusCreated, models.OrderStatusInProgress, models.OrderStatusBilled:
			return models.Table{}, fmt.Errorf("table %d has an active order: %w", tableNumber, ErrInvalidState)
		}
	}
	return l.tables.Release(tableNumber)
}

// beginBilling performs the one-shot IN_PROGRESS -> BILLED transition and
// hands back a frozen copy of the lines. An order that never received a
// line is still CREATED and cannot be billed. Because the transition
// succeeds at most once per order, it also guarantees at most one bill.
func (l *OrderLedger) beginBilling(orderID int) ([]models.OrderLine, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ord, ok := l.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}
	if ord.Status != models.OrderStatusInProgress {
		return nil, fmt.Errorf("order %d is %s: %w", orderID, ord.Status, ErrInvalidState)
	}
	ord.Status = models.OrderStatusBilled

	lines := make([]models.OrderLine, len(ord.Lines))
	copy(lines, ord.Lines)
	return lines, nil
}

// markPaid moves a BILLED order to PAID and returns its table number so the
// caller can release the table afterwards.
func (l *OrderLedger) markPaid(orderID int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ord, ok := l.orders[orderID]
	if !ok {
		return 0, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}
	if ord.Status != models.OrderStatusBilled {
		return 0, fmt.Errorf("order %d is %s: %w", orderID, ord.Status, ErrInvalidState)
	}
	ord.Status = models.OrderStatusPaid
	return ord.TableNumber, nil
}

// ensureOpen rejects line mutation and cancellation on terminal or billed
// orders. Lines are frozen the moment a bill exists.
func ensureOpen(ord *models.Order) error {
	switch ord.Status {
	case models.OrderStatusCreated, models.OrderStatusInProgress:
		return nil
	default:
		return fmt.Errorf("order %d is %s: %w", ord.ID, ord.Status, ErrInvalidState)
	}
}

func snapshotOrder(ord *models.Order) models.Order {
	out := *ord
	out.Lines = make([]models.OrderLine, len(ord.Lines))
	copy(out.Lines, ord.Lines)
	return out
}
