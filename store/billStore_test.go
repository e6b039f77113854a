package store

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"

	"go-restaurant-operations/models"
)

func TestGenerateBill(t *testing.T) {
	_, _, ledger, billing := newTestStores(t)
	order, _ := ledger.CreateOrder(42, 5)
	ledger.AddLine(order.ID, 1, 2) // Pizza 10.00 x2
	ledger.AddLine(order.ID, 2, 1) // Soda 2.50 x1

	bill, err := billing.GenerateBill(order.ID)
	if err != nil {
		t.Fatalf("generate bill failed: %v", err)
	}
	if !bill.Total.Equal(decimal.RequireFromString("22.50")) {
		t.Errorf("expected total 22.50, got %s", bill.Total)
	}
	if bill.PaymentStatus != models.BillStatusPending {
		t.Errorf("expected PENDING, got %s", bill.PaymentStatus)
	}

	stored, _ := ledger.GetOrder(order.ID)
	if stored.Status != models.OrderStatusBilled {
		t.Errorf("expected order BILLED, got %s", stored.Status)
	}
}

// generateBill succeeds exactly once per order.
func TestGenerateBill_OneShot(t *testing.T) {
	_, _, ledger, billing := newTestStores(t)
	order, _ := ledger.CreateOrder(42, 5)
	ledger.AddLine(order.ID, 1, 1)

	if _, err := billing.GenerateBill(order.ID); err != nil {
		t.Fatalf("first bill failed: %v", err)
	}
	if _, err := billing.GenerateBill(order.ID); !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState on second bill, got: %v", err)
	}
}

// An order with no lines never reached IN_PROGRESS and cannot be billed.
func TestGenerateBill_EmptyOrder(t *testing.T) {
	_, _, ledger, billing := newTestStores(t)
	order, _ := ledger.CreateOrder(42, 5)

	if _, err := billing.GenerateBill(order.ID); !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState for empty order, got: %v", err)
	}
	if _, err := billing.GenerateBill(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown order, got: %v", err)
	}
}

// The total recorded at generation time survives a later menu price edit.
func TestGenerateBill_TotalFromSnapshots(t *testing.T) {
	menu, _, ledger, billing := newTestStores(t)
	order, _ := ledger.CreateOrder(42, 5)
	ledger.AddLine(order.ID, 1, 3)

	menu.UpdatePrice(1, decimal.RequireFromString("50.00"))

	bill, err := billing.GenerateBill(order.ID)
	if err != nil {
		t.Fatalf("generate bill failed: %v", err)
	}
	if !bill.Total.Equal(decimal.RequireFromString("30.00")) {
		t.Errorf("expected total 30.00 from snapshot prices, got %s", bill.Total)
	}
}

func TestSettleBill_RoundTrip(t *testing.T) {
	_, tables, ledger, billing := newTestStores(t)
	order, _ := ledger.CreateOrder(42, 5)
	ledger.AddLine(order.ID, 1, 2)
	ledger.AddLine(order.ID, 2, 1)

	bill, _ := billing.GenerateBill(order.ID)

	settled, err := billing.SettleBill(bill.ID, "CASH")
	if err != nil {
		t.Fatalf("settle failed: %v", err)
	}
	if settled.PaymentStatus != models.BillStatusPaid {
		t.Errorf("expected PAID, got %s", settled.PaymentStatus)
	}
	if settled.PaymentMethod != "CASH" {
		t.Errorf("expected method CASH, got %s", settled.PaymentMethod)
	}
	if settled.PaidAt == nil {
		t.Error("expected settlement timestamp")
	}

	fetched, err := billing.GetBill(bill.ID)
	if err != nil {
		t.Fatalf("get bill failed: %v", err)
	}
	if fetched.PaymentStatus != models.BillStatusPaid {
		t.Errorf("expected stored bill PAID, got %s", fetched.PaymentStatus)
	}
	if !fetched.Total.Equal(bill.Total) {
		t.Errorf("total changed across settlement: %s vs %s", fetched.Total, bill.Total)
	}

	stored, _ := ledger.GetOrder(order.ID)
	if stored.Status != models.OrderStatusPaid {
		t.Errorf("expected order PAID, got %s", stored.Status)
	}
	table, _ := tables.Get(5)
	if table.Status != models.TableStatusFree {
		t.Errorf("expected table FREE after settlement, got %s", table.Status)
	}
}

func TestSettleBill_Errors(t *testing.T) {
	_, _, ledger, billing := newTestStores(t)
	order, _ := ledger.CreateOrder(42, 5)
	ledger.AddLine(order.ID, 1, 1)
	bill, _ := billing.GenerateBill(order.ID)

	if _, err := billing.SettleBill(bill.ID, ""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for empty method, got: %v", err)
	}
	if _, err := billing.SettleBill(999, "CASH"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}

	if _, err := billing.SettleBill(bill.ID, "CASH"); err != nil {
		t.Fatalf("settle failed: %v", err)
	}
	if _, err := billing.SettleBill(bill.ID, "CARD"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState settling twice, got: %v", err)
	}
}

func TestGetBillForOrder(t *testing.T) {
	_, _, ledger, billing := newTestStores(t)
	order, _ := ledger.CreateOrder(42, 5)
	ledger.AddLine(order.ID, 2, 4)

	if _, err := billing.GetBillForOrder(order.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound before billing, got: %v", err)
	}

	bill, _ := billing.GenerateBill(order.ID)
	byOrder, err := billing.GetBillForOrder(order.ID)
	if err != nil {
		t.Fatalf("get bill for order failed: %v", err)
	}
	if byOrder.ID != bill.ID {
		t.Errorf("expected bill %d, got %d", bill.ID, byOrder.ID)
	}
}

// Settlement is a commit point: once the bill flips to PAID it stays PAID
// and is returned to the caller even when a follow-up step fails. The
// doctored bill points at an order that was never billed, forcing the
// post-commit order update to fail.
func TestSettleBill_CommitPointSurvivesFollowUpFailure(t *testing.T) {
	_, _, ledger, billing := newTestStores(t)
	order, _ := ledger.CreateOrder(42, 5) // stays CREATED

	billing.bills[77] = &models.Bill{
		ID:            77,
		OrderID:       order.ID,
		Total:         decimal.RequireFromString("5.00"),
		PaymentStatus: models.BillStatusPending,
	}
	billing.byOrder[order.ID] = 77

	settled, err := billing.SettleBill(77, "CASH")
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected follow-up ErrInvalidState for an unbilled order, got: %v", err)
	}
	if settled.PaymentStatus != models.BillStatusPaid {
		t.Errorf("expected returned bill PAID, got %s", settled.PaymentStatus)
	}

	stored, getErr := billing.GetBill(77)
	if getErr != nil {
		t.Fatalf("get bill failed: %v", getErr)
	}
	if stored.PaymentStatus != models.BillStatusPaid {
		t.Errorf("expected stored bill PAID after commit, got %s", stored.PaymentStatus)
	}
}

// Concurrent GenerateBill calls on one order: exactly one wins.
func TestGenerateBill_Concurrent(t *testing.T) {
	_, _, ledger, billing := newTestStores(t)
	order, _ := ledger.CreateOrder(42, 5)
	ledger.AddLine(order.ID, 1, 1)

	const n = 20
	var successCount atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := billing.GenerateBill(order.ID); err == nil {
				successCount.Add(1)
			}
		}()
	}
	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("expected exactly 1 successful bill, got %d", successCount.Load())
	}
}
