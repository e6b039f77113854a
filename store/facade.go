package store

import (
	"fmt"

	"github.com/shopspring/decimal"

	"go-restaurant-operations/models"
)

// Config carries the optional construction-time seed data: tables and menu
// items that should exist before the first request.
type Config struct {
	Tables    []models.Table    `json:"tables"`
	MenuItems []models.MenuItem `json:"menu_items"`
}

// Operations wires the stores together and exposes the use-case level
// calls. Each call validates before it mutates and reports the first
// failure; where a use case spans stores, the commit points are bill
// generation and settlement (see BillingEngine).
type Operations struct {
	menu    *MenuCatalog
	tables  *TableRegistry
	ledger  *OrderLedger
	billing *BillingEngine
}

// NewOperations builds the full store graph and applies the seed config.
// Seed entries fail the constructor rather than being silently skipped.
func NewOperations(cfg Config) (*Operations, error) {
	menu := NewMenuCatalog()
	tables := NewTableRegistry()
	ledger := NewOrderLedger(menu, tables)
	billing := NewBillingEngine(ledger, tables)

	for _, table := range cfg.Tables {
		if _, err := tables.AddTable(table); err != nil {
			return nil, fmt.Errorf("seed table %d: %w", table.Number, err)
		}
	}
	for _, item := range cfg.MenuItems {
		if _, err := menu.AddItem(item); err != nil {
			return nil, fmt.Errorf("seed menu item %q: %w", item.Name, err)
		}
	}

	return &Operations{
		menu:    menu,
		tables:  tables,
		ledger:  ledger,
		billing: billing,
	}, nil
}

// Menu catalog.

func (o *Operations) AddMenuItem(item models.MenuItem) (models.MenuItem, error) {
	return o.menu.AddItem(item)
}

func (o *Operations) UpdateMenuPrice(id int, newPrice decimal.Decimal) (models.MenuItem, error) {
	return o.menu.UpdatePrice(id, newPrice)
}

func (o *Operations) FindMenuItem(id *int, name *string) (models.MenuItem, error) {
	return o.menu.Find(id, name)
}

func (o *Operations) ListMenu() []models.MenuItem {
	return o.menu.List()
}

// Tables.

func (o *Operations) AddTable(table models.Table) (models.Table, error) {
	return o.tables.AddTable(table)
}

func (o *Operations) ReserveTable(tableNumber int) (models.Table, error) {
	return o.tables.Reserve(tableNumber)
}

// ReleaseTable is the manual override. A table still referenced by a
// non-terminal order cannot be released this way; the order has to be
// cancelled or settled instead. The check and the release run under the
// ledger lock so a racing CreateOrder cannot slip between them.
func (o *Operations) ReleaseTable(tableNumber int) (models.Table, error) {
	return o.ledger.ReleaseTable(tableNumber)
}

func (o *Operations) GetTable(tableNumber int) (models.Table, error) {
	return o.tables.Get(tableNumber)
}

func (o *Operations) ListTables() []models.Table {
	return o.tables.List()
}

func (o *Operations) ListFreeTables() []models.Table {
	return o.tables.ListFree()
}

// Orders.

func (o *Operations) CreateOrder(customerID, tableNumber int) (models.Order, error) {
	return o.ledger.CreateOrder(customerID, tableNumber)
}

func (o *Operations) AddOrderLine(orderID, menuItemID, quantity int) (models.Order, error) {
	return o.ledger.AddLine(orderID, menuItemID, quantity)
}

func (o *Operations) CancelOrder(orderID int) (models.Order, error) {
	return o.ledger.CancelOrder(orderID)
}

func (o *Operations) GetOrder(orderID int) (models.Order, error) {
	return o.ledger.GetOrder(orderID)
}

func (o *Operations) FindActiveOrdersForCustomer(customerID int) []models.Order {
	return o.ledger.FindActiveOrdersForCustomer(customerID)
}

// PlaceOrderAndBill appends a batch of lines to an order and bills it in
// one call. The batch is all-or-nothing: one bad line means no lines are
// persisted and no bill exists. Bill generation is the commit point.
func (o *Operations) PlaceOrderAndBill(orderID int, lines []models.OrderLine) (models.Bill, error) {
	if _, err := o.ledger.AddLines(orderID, lines); err != nil {
		return models.Bill{}, err
	}
	return o.billing.GenerateBill(orderID)
}

// Billing.

func (o *Operations) GenerateBill(orderID int) (models.Bill, error) {
	return o.billing.GenerateBill(orderID)
}

func (o *Operations) SettleBill(billID int, paymentMethod string) (models.Bill, error) {
	return o.billing.SettleBill(billID, paymentMethod)
}

func (o *Operations) GetBill(billID int) (models.Bill, error) {
	return o.billing.GetBill(billID)
}

func (o *Operations) GetBillForOrder(orderID int) (models.Bill, error) {
	return o.billing.GetBillForOrder(orderID)
}
