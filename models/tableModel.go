package models

// Table statuses. Transitions go through the TableRegistry only.
const (
	TableStatusFree     = "FREE"
	TableStatusReserved = "RESERVED"
	TableStatusOccupied = "OCCUPIED"
)

type Table struct {
	Number   int    `json:"table_number" validate:"required,min=1"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
	Status   string `json:"status"`
}
