package models

import (
	"github.com/shopspring/decimal"
)

// Menu item categories. The category set is fixed; new dishes must pick one.
const (
	CategoryStarter    = "STARTER"
	CategoryMainCourse = "MAIN_COURSE"
	CategoryDessert    = "DESSERT"
	CategoryBeverage   = "BEVERAGE"
)

type MenuItem struct {
	ID       int             `json:"id" validate:"required,min=1"`
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category" validate:"required,oneof=STARTER MAIN_COURSE DESSERT BEVERAGE"`
}
