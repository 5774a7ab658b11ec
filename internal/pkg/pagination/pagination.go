package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// MaxWindow bounds page*limit, the number of rows a page reaches into.
	MaxWindow = 10000
)

// Params is a normalized page request. Pages are 1-based.
type Params struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// MaxPage is the deepest page reachable with limit inside MaxWindow.
func MaxPage(limit int) int {
	if limit < 1 {
		limit = DefaultLimit
	}
	return max(MaxWindow/limit, 1)
}

// New normalizes page and limit: non-positive values fall back to the defaults,
// limit is capped at MaxLimit and page at MaxPage(limit).
func New(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if page > MaxPage(limit) {
		page = MaxPage(limit)
	}
	return Params{Page: page, Limit: limit}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// End is the exclusive upper bound of the page inside the full result set.
func (p Params) End() int {
	return p.Page * p.Limit
}

// Slice returns items[(page-1)*limit : min(len, page*limit)], or an empty slice past the end.
func Slice[T any](items []T, p Params) []T {
	start := min(max(p.Offset(), 0), len(items))
	end := min(max(p.End(), start), len(items))
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
