package sale

import "regexp"

var invoicePattern = regexp.MustCompile(`^INV-\d{8}-[A-Z0-9]{6}$`)

// IsValidInvoiceNumber reports whether s has the INV-YYYYMMDD-XXXXXX shape.
func IsValidInvoiceNumber(s string) bool {
	return invoicePattern.MatchString(s)
}
