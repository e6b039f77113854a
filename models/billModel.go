package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill payment statuses.
const (
	BillStatusPending = "PENDING"
	BillStatusPaid    = "PAID"
)

// Bill is created once per order at billing time. Total is computed from
// the order's frozen lines and never recomputed from live menu prices.
// Only the payment fields change after creation.
type Bill struct {
	ID            int             `json:"bill_id"`
	OrderID       int             `json:"order_id"`
	Total         decimal.Decimal `json:"total"`
	PaymentStatus string          `json:"payment_status"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
}
