package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string
	Name        string
	Description *string
	Price       decimal.Decimal
	CategoryID  *string
	SKU         string
	CreatedAt   time.Time

	// DTO / Join
	CategoryName *string
}

type Category struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
}
