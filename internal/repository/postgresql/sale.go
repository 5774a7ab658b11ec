package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/sale"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/utils"
	"github.com/jackc/pgx/v5"
)

type saleRepositoryImpl struct {
	db *database.DB
}

func NewSaleRepository(db *database.DB) sale.SaleRepository {
	return &saleRepositoryImpl{db: db}
}

const saleColumns = `id, invoice_number, user_id, customer_name, sale_date, total_amount, tax_amount,
	discount_amount, payment_method, status, notes, created_at`

func scanSale(row pgx.Row) (sale.Sale, error) {
	var s sale.Sale
	err := row.Scan(
		&s.ID,
		&s.InvoiceNumber,
		&s.UserID,
		&s.CustomerName,
		&s.SaleDate,
		&s.TotalAmount,
		&s.TaxAmount,
		&s.DiscountAmount,
		&s.PaymentMethod,
		&s.Status,
		&s.Notes,
		&s.CreatedAt,
	)
	return s, err
}

// GetByID implements sale.SaleRepository.
func (r *saleRepositoryImpl) GetByID(ctx context.Context, id string) (*sale.Sale, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`

	s, err := scanSale(q.QueryRow(ctx, query, id))
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sale by id: %w", err)
	}

	items, err := r.ListItems(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Items = items

	return &s, nil
}

// ListByUserID implements sale.SaleRepository.
func (r *saleRepositoryImpl) ListByUserID(ctx context.Context, userID string, params pagination.Params) ([]sale.Sale, int64, error) {
	return r.list(ctx, &userID, params)
}

// List implements sale.SaleRepository.
func (r *saleRepositoryImpl) List(ctx context.Context, params pagination.Params) ([]sale.Sale, int64, error) {
	return r.list(ctx, nil, params)
}

func (r *saleRepositoryImpl) list(ctx context.Context, userID *string, params pagination.Params) ([]sale.Sale, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := ""
	args := []interface{}{}
	if userID != nil {
		whereClause = "WHERE user_id = $1"
		args = append(args, *userID)
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM sales `+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sales: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM sales
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, saleColumns, whereClause, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset())

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	sales := make([]sale.Sale, 0, params.Limit)
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate sales: %w", err)
	}

	return sales, total, nil
}

// Create implements sale.SaleRepository.
func (r *saleRepositoryImpl) Create(ctx context.Context, newSale sale.Sale) (sale.Sale, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sales (
			invoice_number, user_id, customer_name, sale_date, total_amount, tax_amount,
			discount_amount, payment_method, status, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + saleColumns

	created, err := scanSale(q.QueryRow(ctx, query,
		newSale.InvoiceNumber,
		newSale.UserID,
		newSale.CustomerName,
		newSale.SaleDate,
		newSale.TotalAmount,
		newSale.TaxAmount,
		newSale.DiscountAmount,
		newSale.PaymentMethod,
		newSale.Status,
		newSale.Notes,
	))
	if err != nil {
		if name, ok := constraintViolation(err, codeUniqueViolation); ok && name == "uk_sales_invoice_number" {
			return sale.Sale{}, sale.ErrInvoiceNumberExists
		}
		return sale.Sale{}, fmt.Errorf("failed to create sale: %w", err)
	}

	return created, nil
}

// CreateItem implements sale.SaleRepository.
func (r *saleRepositoryImpl) CreateItem(ctx context.Context, item sale.SaleItem) (sale.SaleItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sale_items (sale_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, unit_price, created_at
	`

	created := item
	if err := q.QueryRow(ctx, query, item.SaleID, item.ProductID, item.Quantity, item.UnitPrice).
		Scan(&created.ID, &created.UnitPrice, &created.CreatedAt); err != nil {
		return sale.SaleItem{}, fmt.Errorf("failed to create sale item: %w", err)
	}

	return created, nil
}

// ListItems implements sale.SaleRepository.
func (r *saleRepositoryImpl) ListItems(ctx context.Context, saleID string) ([]sale.SaleItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT si.id, si.sale_id, si.product_id, si.quantity, si.unit_price, si.created_at, p.name
		FROM sale_items si
		LEFT JOIN products p ON p.id = si.product_id
		WHERE si.sale_id = $1
		ORDER BY si.created_at ASC, si.id ASC
	`

	rows, err := q.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sale items: %w", err)
	}
	defer rows.Close()

	items := []sale.SaleItem{}
	for rows.Next() {
		var item sale.SaleItem
		if err := rows.Scan(
			&item.ID,
			&item.SaleID,
			&item.ProductID,
			&item.Quantity,
			&item.UnitPrice,
			&item.CreatedAt,
			&item.ProductName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sale item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sale items: %w", err)
	}

	return items, nil
}

// GetDailyTotals implements sale.SaleRepository.
func (r *saleRepositoryImpl) GetDailyTotals(ctx context.Context, date time.Time) (sale.DailyTotals, error) {
	q := GetQuerier(ctx, r.db)

	start, end := utils.DayRange(date)

	query := `
		SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM sales
		WHERE sale_date >= $1 AND sale_date <= $2
	`

	var totals sale.DailyTotals
	if err := q.QueryRow(ctx, query, start, end).Scan(&totals.TotalSales, &totals.Count); err != nil {
		return sale.DailyTotals{}, fmt.Errorf("failed to get daily totals: %w", err)
	}
	return totals, nil
}
