package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/sale"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

type saleRepository struct {
	store *Store
}

func cloneSale(s sale.Sale) sale.Sale {
	s.Notes = cloneString(s.Notes)
	s.Items = nil
	return s
}

func cloneSaleItem(i sale.SaleItem) sale.SaleItem {
	i.ProductName = cloneString(i.ProductName)
	return i
}

func (r *saleRepository) GetByID(ctx context.Context, id string) (*sale.Sale, error) {
	var found *sale.Sale
	err := r.store.read(ctx, func(st *state) error {
		s, ok := st.sales[id]
		if !ok {
			return nil
		}
		c := cloneSale(s)
		c.Items = itemsOf(st, id)
		found = &c
		return nil
	})
	return found, err
}

func (r *saleRepository) ListByUserID(ctx context.Context, userID string, params pagination.Params) ([]sale.Sale, int64, error) {
	return r.list(ctx, func(s sale.Sale) bool { return s.UserID == userID }, params)
}

func (r *saleRepository) List(ctx context.Context, params pagination.Params) ([]sale.Sale, int64, error) {
	return r.list(ctx, func(sale.Sale) bool { return true }, params)
}

func (r *saleRepository) list(ctx context.Context, match func(sale.Sale) bool, params pagination.Params) ([]sale.Sale, int64, error) {
	var matched []sale.Sale
	err := r.store.read(ctx, func(st *state) error {
		for _, s := range st.sales {
			if match(s) {
				matched = append(matched, cloneSale(s))
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	sortNewestFirst(matched, func(s sale.Sale) (time.Time, string) { return s.CreatedAt, s.ID })
	return pagination.Slice(matched, params), int64(len(matched)), nil
}

func (r *saleRepository) Create(ctx context.Context, newSale sale.Sale) (sale.Sale, error) {
	var created sale.Sale
	err := r.store.write(ctx, func(st *state) error {
		for _, s := range st.sales {
			if s.InvoiceNumber == newSale.InvoiceNumber {
				return sale.ErrInvoiceNumberExists
			}
		}

		created = cloneSale(newSale)
		created.ID = newID()
		created.CreatedAt = r.store.now()
		if created.Status == "" {
			created.Status = sale.StatusCompleted
		}
		st.sales[created.ID] = created
		return nil
	})
	if err != nil {
		return sale.Sale{}, err
	}
	return cloneSale(created), nil
}

func (r *saleRepository) CreateItem(ctx context.Context, item sale.SaleItem) (sale.SaleItem, error) {
	var created sale.SaleItem
	err := r.store.write(ctx, func(st *state) error {
		created = cloneSaleItem(item)
		created.ID = newID()
		created.CreatedAt = r.store.now()
		created.ProductName = nil
		st.saleItems[created.ID] = created
		return nil
	})
	if err != nil {
		return sale.SaleItem{}, err
	}
	return cloneSaleItem(created), nil
}

func (r *saleRepository) ListItems(ctx context.Context, saleID string) ([]sale.SaleItem, error) {
	var items []sale.SaleItem
	err := r.store.read(ctx, func(st *state) error {
		items = itemsOf(st, saleID)
		return nil
	})
	return items, err
}

// itemsOf returns the sale's items in insertion order with product names joined.
func itemsOf(st *state, saleID string) []sale.SaleItem {
	items := []sale.SaleItem{}
	for _, i := range st.saleItems {
		if i.SaleID != saleID {
			continue
		}
		c := cloneSaleItem(i)
		if p, ok := st.products[i.ProductID]; ok {
			name := p.Name
			c.ProductName = &name
		}
		items = append(items, c)
	}
	sort.Slice(items, func(a, b int) bool {
		if !items[a].CreatedAt.Equal(items[b].CreatedAt) {
			return items[a].CreatedAt.Before(items[b].CreatedAt)
		}
		return items[a].ID < items[b].ID
	})
	return items
}

func (r *saleRepository) GetDailyTotals(ctx context.Context, date time.Time) (sale.DailyTotals, error) {
	start, end := utils.DayRange(date)

	totals := sale.DailyTotals{TotalSales: decimal.Zero}
	err := r.store.read(ctx, func(st *state) error {
		for _, s := range st.sales {
			if s.SaleDate.Before(start) || s.SaleDate.After(end) {
				continue
			}
			totals.TotalSales = totals.TotalSales.Add(s.TotalAmount)
			totals.Count++
		}
		return nil
	})
	return totals, err
}
