package sale

import "errors"

var (
	ErrSaleNotFound          = errors.New("sale not found")
	ErrInvoiceNumberExists   = errors.New("invoice number already exists")
	ErrInvoiceNumberConflict = errors.New("could not generate a unique invoice number")
	ErrSaleAccessDenied      = errors.New("you can only view your own sales")
)
