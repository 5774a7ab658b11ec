package sale

import (
	"context"
	"time"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
)

// SaleRepository defines data access for sales and their line items.
type SaleRepository interface {
	// GetByID returns the sale with its items, or nil when it does not exist
	GetByID(ctx context.Context, id string) (*Sale, error)

	// ListByUserID returns a page of the user's sales, newest first, plus the total count
	ListByUserID(ctx context.Context, userID string, params pagination.Params) ([]Sale, int64, error)

	// List returns a page of all sales, newest first, plus the total count
	List(ctx context.Context, params pagination.Params) ([]Sale, int64, error)

	// Create inserts the sale row only; items are stored with CreateItem.
	// Fails with ErrInvoiceNumberExists on a duplicate invoice number.
	Create(ctx context.Context, newSale Sale) (Sale, error)

	CreateItem(ctx context.Context, item SaleItem) (SaleItem, error)
	ListItems(ctx context.Context, saleID string) ([]SaleItem, error)

	// GetDailyTotals sums total_amount over sales dated within date's calendar day
	GetDailyTotals(ctx context.Context, date time.Time) (DailyTotals, error)
}
