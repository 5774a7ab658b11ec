package sale

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/product"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/sale"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/money"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store   *memory.Store
	svc     *SaleServiceImpl
	product product.Product
	staff   context.Context
	other   context.Context
	admin   context.Context
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	p, err := store.Products().Create(ctx, product.Product{Name: "Widget", SKU: "WID-1", Price: decimal.NewFromInt(100)})
	require.NoError(t, err)

	svc := NewSaleService(store, store.Sales(), store.Products(), money.NewFormatter("id", "Rp"), DefaultTaxRate)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local) }

	return fixture{
		store:   store,
		svc:     svc,
		product: p,
		staff:   auth.WithProfile(ctx, auth.Profile{ID: "staff-1", Username: "staff", Role: user.RoleStaff}),
		other:   auth.WithProfile(ctx, auth.Profile{ID: "staff-2", Username: "other", Role: user.RoleStaff}),
		admin:   auth.WithProfile(ctx, auth.Profile{ID: "admin-1", Username: "admin", Role: user.RoleAdmin}),
	}
}

func (f fixture) request(items ...sale.SaleItemRequest) sale.CreateSaleRequest {
	return sale.CreateSaleRequest{
		SaleDate:      "2024-03-15",
		CustomerName:  "Acme",
		ProductItems:  items,
		PaymentMethod: "cash",
	}
}

func TestSaleService_Create(t *testing.T) {
	f := newFixture(t)

	price := decimal.NewFromInt(50)
	resp, err := f.svc.Create(f.staff, f.request(
		sale.SaleItemRequest{ProductID: f.product.ID, Quantity: 2},
		sale.SaleItemRequest{ProductID: f.product.ID, Quantity: 1, Price: &price},
	))
	require.NoError(t, err)

	assert.True(t, sale.IsValidInvoiceNumber(resp.InvoiceNumber))
	assert.Contains(t, resp.InvoiceNumber, "INV-20240315-")
	assert.Equal(t, 250.0, resp.Subtotal)
	assert.Equal(t, 27.5, resp.TaxAmount)
	assert.Equal(t, 0.0, resp.DiscountAmount)
	assert.Equal(t, 277.5, resp.TotalAmount)
	assert.Equal(t, sale.StatusCompleted, resp.Status)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, 100.0, resp.Items[0].UnitPrice)
	assert.Equal(t, 50.0, resp.Items[1].UnitPrice)

	stored, err := f.store.Sales().GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "staff-1", stored.UserID)
	assert.Len(t, stored.Items, 2)
}

func TestSaleService_CreateValidation(t *testing.T) {
	f := newFixture(t)

	t.Run("empty items", func(t *testing.T) {
		_, err := f.svc.Create(f.staff, f.request())
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "productItems")
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := f.svc.Create(f.staff, f.request(sale.SaleItemRequest{ProductID: f.product.ID, Quantity: 0}))
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
	})

	t.Run("sub-cent price", func(t *testing.T) {
		price := decimal.RequireFromString("9.999")
		_, err := f.svc.Create(f.staff, f.request(sale.SaleItemRequest{ProductID: f.product.ID, Quantity: 3, Price: &price}))
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "productItems")

		_, total, err := f.store.Sales().List(context.Background(), pagination.New(1, 10))
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("unknown product stores nothing", func(t *testing.T) {
		_, err := f.svc.Create(f.staff, f.request(sale.SaleItemRequest{ProductID: "missing", Quantity: 1}))
		assert.ErrorIs(t, err, product.ErrProductNotFound)

		_, total, err := f.store.Sales().List(context.Background(), pagination.New(1, 10))
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("no profile", func(t *testing.T) {
		_, err := f.svc.Create(context.Background(), f.request(sale.SaleItemRequest{ProductID: f.product.ID, Quantity: 1}))
		assert.ErrorIs(t, err, auth.ErrNotAuthenticated)
	})
}

func TestSaleService_CreateCentPrecision(t *testing.T) {
	f := newFixture(t)

	price := decimal.RequireFromString("9.990")
	resp, err := f.svc.Create(f.staff, f.request(sale.SaleItemRequest{ProductID: f.product.ID, Quantity: 3, Price: &price}))
	require.NoError(t, err)
	assert.Equal(t, 29.97, resp.Subtotal)
	assert.Equal(t, 3.3, resp.TaxAmount)
	assert.Equal(t, 33.27, resp.TotalAmount)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 9.99, resp.Items[0].UnitPrice)
}

func TestSaleService_DuplicateInvoice(t *testing.T) {
	f := newFixture(t)

	invoice := "INV-20240315-ABC123"
	req := f.request(sale.SaleItemRequest{ProductID: f.product.ID, Quantity: 1})
	req.InvoiceNumber = &invoice

	_, err := f.svc.Create(f.staff, req)
	require.NoError(t, err)

	_, err = f.svc.Create(f.staff, req)
	assert.ErrorIs(t, err, sale.ErrInvoiceNumberExists)

	_, total, err := f.store.Sales().List(context.Background(), pagination.New(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestSaleService_RecentVisibility(t *testing.T) {
	f := newFixture(t)

	for _, ctx := range []context.Context{f.staff, f.staff, f.other} {
		_, err := f.svc.Create(ctx, f.request(sale.SaleItemRequest{ProductID: f.product.ID, Quantity: 1}))
		require.NoError(t, err)
	}

	mine, err := f.svc.Recent(f.staff, pagination.New(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(2), mine.TotalCount)
	assert.Len(t, mine.Sales, 2)

	all, err := f.svc.Recent(f.admin, pagination.New(1, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.TotalCount)
	assert.Len(t, all.Sales, 2)

	_, err = f.svc.Get(f.other, mine.Sales[0].ID)
	assert.ErrorIs(t, err, sale.ErrSaleAccessDenied)

	got, err := f.svc.Get(f.admin, mine.Sales[0].ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)

	_, err = f.svc.Get(f.admin, "missing")
	assert.ErrorIs(t, err, sale.ErrSaleNotFound)
}

func TestSaleService_DailyStats(t *testing.T) {
	f := newFixture(t)

	empty, err := f.svc.DailyStats(f.staff, "")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", empty.Date)
	assert.Equal(t, int64(0), empty.TransactionCount)
	assert.Equal(t, 0.0, empty.AverageSale)

	for q := 1; q <= 2; q++ {
		_, err := f.svc.Create(f.staff, f.request(sale.SaleItemRequest{ProductID: f.product.ID, Quantity: q}))
		require.NoError(t, err)
	}

	stats, err := f.svc.DailyStats(f.staff, "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TransactionCount)
	assert.Equal(t, 333.0, stats.TotalSales)
	assert.Equal(t, 166.5, stats.AverageSale)
	assert.Contains(t, stats.FormattedTotal, "Rp")

	_, err = f.svc.DailyStats(f.staff, "15/03/2024")
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
