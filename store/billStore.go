package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"go-restaurant-operations/models"
)

// BillingEngine creates at most one bill per order and records settlement.
// Totals are decimal arithmetic over the order's frozen line snapshots;
// live menu prices are never consulted here.
type BillingEngine struct {
	mu      sync.RWMutex
	bills   map[int]*models.Bill
	byOrder map[int]int // order id -> bill id
	nextID  int

	ledger *OrderLedger
	tables *TableRegistry
}

func NewBillingEngine(ledger *OrderLedger, tables *TableRegistry) *BillingEngine {
	return &BillingEngine{
		bills:   make(map[int]*models.Bill),
		byOrder: make(map[int]int),
		nextID:  1,
		ledger:  ledger,
		tables:  tables,
	}
}

// GenerateBill bills an IN_PROGRESS order. The ledger's one-shot transition
// to BILLED is the commit point: once it succeeds the order's lines are
// frozen and exactly one bill is created for it.
func (b *BillingEngine) GenerateBill(orderID int) (models.Bill, error) {
	lines, err := b.ledger.beginBilling(orderID)
	if err != nil {
		return models.Bill{}, err
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	bill := &models.Bill{
		ID:            b.nextID,
		OrderID:       orderID,
		Total:         total,
		PaymentStatus: models.BillStatusPending,
		CreatedAt:     time.Now(),
	}
	b.nextID++
	b.bills[bill.ID] = bill
	b.byOrder[orderID] = bill.ID
	return *bill, nil
}

// SettleBill records payment on a PENDING bill, moves the order to PAID and
// frees its table. Settlement is the second commit point: once the bill is
// marked PAID the follow-up order and table updates always apply.
func (b *BillingEngine) SettleBill(billID int, paymentMethod string) (models.Bill, error) {
	if paymentMethod == "" {
		return models.Bill{}, fmt.Errorf("payment method is empty: %w", ErrInvalidArgument)
	}

	b.mu.Lock()
	bill, ok := b.bills[billID]
	if !ok {
		b.mu.Unlock()
		return models.Bill{}, fmt.Errorf("bill %d: %w", billID, ErrNotFound)
	}
	if bill.PaymentStatus == models.BillStatusPaid {
		b.mu.Unlock()
		return models.Bill{}, fmt.Errorf("bill %d already paid: %w", billID, ErrInvalidState)
	}
	now := time.Now()
	bill.PaymentStatus = models.BillStatusPaid
	bill.PaymentMethod = paymentMethod
	bill.PaidAt = &now
	settled := *bill
	b.mu.Unlock()

	// The PENDING -> PAID flip above is the commit point. A billed order is
	// always BILLED and its table always exists, so these follow-ups cannot
	// fail; if one somehow does, the settled bill is still returned so the
	// caller never sees a paid settlement reported as lost.
	tableNumber, err := b.ledger.markPaid(settled.OrderID)
	if err != nil {
		return settled, fmt.Errorf("order update after settlement: %w", err)
	}
	if _, err := b.tables.Release(tableNumber); err != nil {
		return settled, fmt.Errorf("table release after settlement: %w", err)
	}
	return settled, nil
}

// GetBill returns a copy of one bill.
func (b *BillingEngine) GetBill(billID int) (models.Bill, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	bill, ok := b.bills[billID]
	if !ok {
		return models.Bill{}, fmt.Errorf("bill %d: %w", billID, ErrNotFound)
	}
	return *bill, nil
}

// GetBillForOrder returns the bill created for an order, if any.
func (b *BillingEngine) GetBillForOrder(orderID int) (models.Bill, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	billID, ok := b.byOrder[orderID]
	if !ok {
		return models.Bill{}, fmt.Errorf("no bill for order %d: %w", orderID, ErrNotFound)
	}
	return *b.bills[billID], nil
}
