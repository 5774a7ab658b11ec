package sale

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type Sale struct {
	ID             string
	InvoiceNumber  string
	UserID         string
	CustomerName   string
	SaleDate       time.Time
	TotalAmount    decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	PaymentMethod  string
	Status         Status
	Notes          *string
	CreatedAt      time.Time

	Items []SaleItem
}

type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	CreatedAt time.Time

	// DTO / Join
	ProductName *string
}

// LineTotal is unit_price x quantity.
func (i SaleItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// DailyTotals is the raw aggregate of one calendar day of sales.
type DailyTotals struct {
	TotalSales decimal.Decimal
	Count      int64
}
