package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. CREATED -> IN_PROGRESS -> BILLED -> PAID is the only
// forward path; CREATED and IN_PROGRESS may also go to CANCELLED.
const (
	OrderStatusCreated    = "CREATED"
	OrderStatusInProgress = "IN_PROGRESS"
	OrderStatusBilled     = "BILLED"
	OrderStatusPaid       = "PAID"
	OrderStatusCancelled  = "CANCELLED"
)

// OrderLine keeps the unit price that was current when the line was added.
// Later menu price edits must not change what an existing order owes.
type OrderLine struct {
	MenuItemID int             `json:"menu_item_id" validate:"required,min=1"`
	Quantity   int             `json:"quantity" validate:"required,min=1"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

type Order struct {
	ID          int         `json:"order_id"`
	CustomerID  int         `json:"customer_id" validate:"required,min=1"`
	TableNumber int         `json:"table_number" validate:"required,min=1"`
	Status      string      `json:"status"`
	Lines       []OrderLine `json:"lines"`
	CreatedAt   time.Time   `json:"created_at"`
}

// TotalAmount sums quantity times snapshotted unit price over all lines.
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}
