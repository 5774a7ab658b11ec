package sale

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/money"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// SALE DTOs
// ========================================

type SaleItemRequest struct {
	ProductID string           `json:"productId" validate:"required"`
	Quantity  int              `json:"quantity" validate:"gte=1"`
	Price     *decimal.Decimal `json:"price,omitempty"`
}

type CreateSaleRequest struct {
	SaleDate      string            `json:"saleDate" validate:"required"`
	CustomerName  string            `json:"customerName" validate:"required,max=255"`
	ProductItems  []SaleItemRequest `json:"productItems" validate:"required,min=1,dive"`
	PaymentMethod string            `json:"paymentMethod" validate:"required,max=50"`
	Notes         *string           `json:"notes,omitempty"`
	InvoiceNumber *string           `json:"invoiceNumber,omitempty"`
}

func (r *CreateSaleRequest) Validate() error {
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	errs := validator.Struct(r)

	if r.SaleDate != "" {
		if _, ok := validator.ParseDateOrDateTime(r.SaleDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "saleDate",
				Message: "saleDate must be YYYY-MM-DD or an ISO8601 timestamp",
			})
		}
	}

	for _, item := range r.ProductItems {
		if item.Price != nil && !money.IsValidAmount(*item.Price) {
			errs = append(errs, validator.ValidationError{
				Field:   "productItems",
				Message: "price must not be negative and may have at most 2 decimal places",
			})
			break
		}
	}

	if r.InvoiceNumber != nil && !invoicePattern.MatchString(*r.InvoiceNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "invoiceNumber",
			Message: "invoiceNumber must match INV-YYYYMMDD-XXXXXX",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SaleItemResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	ProductName *string `json:"productName,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	LineTotal   float64 `json:"lineTotal"`
}

type SaleResponse struct {
	ID             string             `json:"id"`
	InvoiceNumber  string             `json:"invoiceNumber"`
	CustomerName   string             `json:"customerName"`
	SaleDate       string             `json:"saleDate"`
	Subtotal       float64            `json:"subtotal"`
	TaxAmount      float64            `json:"taxAmount"`
	DiscountAmount float64            `json:"discountAmount"`
	TotalAmount    float64            `json:"totalAmount"`
	PaymentMethod  string             `json:"paymentMethod"`
	Status         Status             `json:"status"`
	Notes          *string            `json:"notes"`
	Items          []SaleItemResponse `json:"items,omitempty"`
	CreatedAt      string             `json:"createdAt"`
}

type ListSaleResponse struct {
	Sales      []SaleResponse `json:"sales"`
	TotalCount int64          `json:"totalCount"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
}

type DailyStatsResponse struct {
	Date             string  `json:"date"`
	TotalSales       float64 `json:"totalSales"`
	FormattedTotal   string  `json:"formattedTotal"`
	TransactionCount int64   `json:"transactionCount"`
	AverageSale      float64 `json:"averageSale"`
}

type SaleService interface {
	// Create computes totals, assigns an invoice number when absent and stores
	// the sale together with its items in one transaction
	Create(ctx context.Context, req CreateSaleRequest) (SaleResponse, error)

	// Get returns one sale; staff may only read their own
	Get(ctx context.Context, id string) (SaleResponse, error)

	// Recent lists sales newest first; admins see everyone's
	Recent(ctx context.Context, params pagination.Params) (ListSaleResponse, error)

	// DailyStats aggregates the sales of date (YYYY-MM-DD, empty for today)
	DailyStats(ctx context.Context, date string) (DailyStatsResponse, error)
}
