package sale

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/product"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/sale"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/money"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/repository"
	"github.com/shopspring/decimal"
)

const maxInvoiceAttempts = 3

type SaleServiceImpl struct {
	tx        repository.Transactor
	sales     sale.SaleRepository
	products  product.ProductRepository
	formatter *money.Formatter
	taxRate   decimal.Decimal
	now       func() time.Time
}

func NewSaleService(
	tx repository.Transactor,
	sales sale.SaleRepository,
	products product.ProductRepository,
	formatter *money.Formatter,
	taxRate decimal.Decimal,
) *SaleServiceImpl {
	return &SaleServiceImpl{
		tx:        tx,
		sales:     sales,
		products:  products,
		formatter: formatter,
		taxRate:   taxRate,
		now:       time.Now,
	}
}

// Create implements sale.SaleService.
func (s *SaleServiceImpl) Create(ctx context.Context, req sale.CreateSaleRequest) (sale.SaleResponse, error) {
	if err := req.Validate(); err != nil {
		return sale.SaleResponse{}, err
	}

	profile, err := auth.MustProfile(ctx)
	if err != nil {
		return sale.SaleResponse{}, err
	}

	saleDate, _ := validator.ParseDateOrDateTime(req.SaleDate)

	items := make([]sale.SaleItem, 0, len(req.ProductItems))
	for _, reqItem := range req.ProductItems {
		p, err := s.products.GetByID(ctx, reqItem.ProductID)
		if err != nil {
			return sale.SaleResponse{}, fmt.Errorf("failed to get product %s: %w", reqItem.ProductID, err)
		}
		if p == nil {
			return sale.SaleResponse{}, product.ErrProductNotFound
		}

		price := p.Price
		if reqItem.Price != nil {
			price = *reqItem.Price
		}
		name := p.Name
		items = append(items, sale.SaleItem{
			ProductID:   p.ID,
			Quantity:    reqItem.Quantity,
			UnitPrice:   price,
			ProductName: &name,
		})
	}

	totals := CalculateTotals(items, s.taxRate)

	var created sale.Sale
	for attempt := 1; ; attempt++ {
		invoiceNumber, err := s.invoiceNumber(req, saleDate)
		if err != nil {
			return sale.SaleResponse{}, err
		}

		err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
			newSale, err := s.sales.Create(ctx, sale.Sale{
				InvoiceNumber:  invoiceNumber,
				UserID:         profile.ID,
				CustomerName:   req.CustomerName,
				SaleDate:       saleDate,
				TotalAmount:    totals.Total,
				TaxAmount:      totals.Tax,
				DiscountAmount: totals.Discount,
				PaymentMethod:  req.PaymentMethod,
				Status:         sale.StatusCompleted,
				Notes:          req.Notes,
			})
			if err != nil {
				return err
			}

			for _, item := range items {
				item.SaleID = newSale.ID
				stored, err := s.sales.CreateItem(ctx, item)
				if err != nil {
					return err
				}
				stored.ProductName = item.ProductName
				newSale.Items = append(newSale.Items, stored)
			}

			created = newSale
			return nil
		})
		if err == nil {
			break
		}

		if errors.Is(err, sale.ErrInvoiceNumberExists) && req.InvoiceNumber == nil {
			if attempt < maxInvoiceAttempts {
				slog.Warn("invoice number collision, retrying", "invoice_number", invoiceNumber, "attempt", attempt)
				continue
			}
			return sale.SaleResponse{}, sale.ErrInvoiceNumberConflict
		}
		return sale.SaleResponse{}, err
	}

	return toSaleResponse(created), nil
}

func (s *SaleServiceImpl) invoiceNumber(req sale.CreateSaleRequest, saleDate time.Time) (string, error) {
	if req.InvoiceNumber != nil {
		return *req.InvoiceNumber, nil
	}
	return GenerateInvoiceNumber(saleDate)
}

// Get implements sale.SaleService.
func (s *SaleServiceImpl) Get(ctx context.Context, id string) (sale.SaleResponse, error) {
	profile, err := auth.MustProfile(ctx)
	if err != nil {
		return sale.SaleResponse{}, err
	}

	found, err := s.sales.GetByID(ctx, id)
	if err != nil {
		return sale.SaleResponse{}, fmt.Errorf("failed to get sale: %w", err)
	}
	if found == nil {
		return sale.SaleResponse{}, sale.ErrSaleNotFound
	}
	if !profile.IsAdmin() && found.UserID != profile.ID {
		return sale.SaleResponse{}, sale.ErrSaleAccessDenied
	}

	return toSaleResponse(*found), nil
}

// Recent implements sale.SaleService.
func (s *SaleServiceImpl) Recent(ctx context.Context, params pagination.Params) (sale.ListSaleResponse, error) {
	params = pagination.New(params.Page, params.Limit)

	profile, err := auth.MustProfile(ctx)
	if err != nil {
		return sale.ListSaleResponse{}, err
	}

	var (
		sales []sale.Sale
		total int64
	)
	if profile.IsAdmin() {
		sales, total, err = s.sales.List(ctx, params)
	} else {
		sales, total, err = s.sales.ListByUserID(ctx, profile.ID, params)
	}
	if err != nil {
		return sale.ListSaleResponse{}, fmt.Errorf("failed to list sales: %w", err)
	}

	resp := sale.ListSaleResponse{
		Sales:      make([]sale.SaleResponse, 0, len(sales)),
		TotalCount: total,
		Page:       params.Page,
		Limit:      params.Limit,
	}
	for _, item := range sales {
		resp.Sales = append(resp.Sales, toSaleResponse(item))
	}
	return resp, nil
}

// DailyStats implements sale.SaleService.
func (s *SaleServiceImpl) DailyStats(ctx context.Context, date string) (sale.DailyStatsResponse, error) {
	day := s.now()
	if date != "" {
		parsed, ok := validator.IsValidDate(date)
		if !ok {
			return sale.DailyStatsResponse{}, validator.ValidationErrors{
				{Field: "date", Message: "date must be in YYYY-MM-DD format"},
			}
		}
		day = parsed
	}

	totals, err := s.sales.GetDailyTotals(ctx, day)
	if err != nil {
		return sale.DailyStatsResponse{}, fmt.Errorf("failed to get daily totals: %w", err)
	}
	summary := SummarizeDaily(totals)

	return sale.DailyStatsResponse{
		Date:             utils.StartOfDay(day).Format(utils.DateLayout),
		TotalSales:       summary.Total.InexactFloat64(),
		FormattedTotal:   s.formatter.Format(summary.Total),
		TransactionCount: summary.Count,
		AverageSale:      summary.Average.InexactFloat64(),
	}, nil
}

func toSaleResponse(s sale.Sale) sale.SaleResponse {
	subtotal := s.TotalAmount.Sub(s.TaxAmount).Add(s.DiscountAmount)

	resp := sale.SaleResponse{
		ID:             s.ID,
		InvoiceNumber:  s.InvoiceNumber,
		CustomerName:   s.CustomerName,
		SaleDate:       s.SaleDate.Format(time.RFC3339),
		Subtotal:       subtotal.InexactFloat64(),
		TaxAmount:      s.TaxAmount.InexactFloat64(),
		DiscountAmount: s.DiscountAmount.InexactFloat64(),
		TotalAmount:    s.TotalAmount.InexactFloat64(),
		PaymentMethod:  s.PaymentMethod,
		Status:         s.Status,
		Notes:          s.Notes,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
	}
	for _, item := range s.Items {
		resp.Items = append(resp.Items, sale.SaleItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.InexactFloat64(),
			LineTotal:   item.LineTotal().InexactFloat64(),
		})
	}
	return resp
}
