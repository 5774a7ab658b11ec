package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/product"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/sale"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/workreport"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
// Anything unrecognized is logged and answered with a generic 500.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrMalformedToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrIdentityNoEmail),
		errors.Is(err, auth.ErrUserNotRegistered),
		errors.Is(err, auth.ErrNotAuthenticated):
		Unauthorized(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists),
		errors.Is(err, user.ErrUsernameExists):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrSelfRegistrationOnly),
		errors.Is(err, user.ErrRoleAssignmentDenied):
		Forbidden(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrNotCheckedIn),
		errors.Is(err, attendance.ErrAlreadyCheckedOut),
		errors.Is(err, attendance.ErrInvalidCheckOut):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Sale domain errors
	case errors.Is(err, sale.ErrSaleNotFound):
		NotFound(w, "Sale not found")
	case errors.Is(err, sale.ErrInvoiceNumberExists):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, sale.ErrSaleAccessDenied):
		Forbidden(w, err.Error())

	// Product domain errors
	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, product.ErrCategoryNotFound),
		errors.Is(err, product.ErrSKUExists):
		BadRequest(w, err.Error(), nil)

	// Work report domain errors
	case errors.Is(err, workreport.ErrWorkReportNotFound):
		NotFound(w, "Work report not found")
	case errors.Is(err, workreport.ErrNotReportOwner):
		Forbidden(w, err.Error())

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
