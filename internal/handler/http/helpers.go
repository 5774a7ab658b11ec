package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/validator"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into dst, answering 400 itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Debug(op+" decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

// paginationFromQuery reads ?page and ?limit. Missing, unparsable or
// non-positive values fall back to the defaults; a limit above
// pagination.MaxLimit or a page past pagination.MaxPage is rejected.
func paginationFromQuery(r *http.Request) (pagination.Params, error) {
	page := pagination.DefaultPage
	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			page = pageNum
		}
	}

	limit := pagination.DefaultLimit
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			limit = limitNum
		}
	}

	var errs validator.ValidationErrors
	if limit > pagination.MaxLimit {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: fmt.Sprintf("must be at most %d", pagination.MaxLimit),
		})
	} else if page > pagination.MaxPage(limit) {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: fmt.Sprintf("must be at most %d for limit %d", pagination.MaxPage(limit), limit),
		})
	}
	if len(errs) > 0 {
		return pagination.Params{}, errs
	}

	return pagination.New(page, limit), nil
}
