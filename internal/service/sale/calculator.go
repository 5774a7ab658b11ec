package sale

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/sale"
	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the VAT applied to every sale subtotal.
var DefaultTaxRate = decimal.RequireFromString("0.11")

const invoiceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Totals is the money breakdown of one sale.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// CalculateTotals sums unit_price x quantity over items and applies taxRate.
// Discounts are not supported and always zero.
func CalculateTotals(items []sale.SaleItem, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	tax := subtotal.Mul(taxRate).Round(2)
	discount := decimal.Zero

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: discount,
		Total:    subtotal.Add(tax).Sub(discount),
	}
}

// GenerateInvoiceNumber returns INV-YYYYMMDD-XXXXXX where X is drawn from
// uppercase letters and digits.
func GenerateInvoiceNumber(saleDate time.Time) (string, error) {
	suffix := make([]byte, 6)
	max := big.NewInt(int64(len(invoiceAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate invoice suffix: %w", err)
		}
		suffix[i] = invoiceAlphabet[n.Int64()]
	}
	return fmt.Sprintf("INV-%s-%s", saleDate.Format("20060102"), suffix), nil
}

// DailySummary is DailyTotals plus the average sale.
type DailySummary struct {
	Total   decimal.Decimal
	Count   int64
	Average decimal.Decimal
}

// SummarizeDaily derives the average sale; it is zero when there were no sales.
func SummarizeDaily(totals sale.DailyTotals) DailySummary {
	average := decimal.Zero
	if totals.Count > 0 {
		average = totals.TotalSales.Div(decimal.NewFromInt(totals.Count)).Round(2)
	}
	return DailySummary{
		Total:   totals.TotalSales,
		Count:   totals.Count,
		Average: average,
	}
}
