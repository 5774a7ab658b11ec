package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	assert.Equal(t, Params{Page: 1, Limit: 10}, New(0, 0))
	assert.Equal(t, Params{Page: 1, Limit: 10}, New(-3, -1))
	assert.Equal(t, Params{Page: 2, Limit: 100}, New(2, 500))
	assert.Equal(t, 20, New(3, 10).Offset())
}

func TestNew_CapsPageToWindow(t *testing.T) {
	tests := []struct {
		page, limit int
		want        Params
	}{
		{page: 4611686018427387905, limit: 2, want: Params{Page: 5000, Limit: 2}},
		{page: math.MaxInt, limit: 100, want: Params{Page: 100, Limit: 100}},
		{page: 100, limit: 100, want: Params{Page: 100, Limit: 100}},
		{page: 3333, limit: 3, want: Params{Page: 3333, Limit: 3}},
	}
	for _, tt := range tests {
		p := New(tt.page, tt.limit)
		assert.Equal(t, tt.want, p)
		assert.LessOrEqual(t, p.End(), MaxWindow)
		assert.GreaterOrEqual(t, p.Offset(), 0)
	}
}

func TestMaxPage(t *testing.T) {
	assert.Equal(t, 1000, MaxPage(10))
	assert.Equal(t, 100, MaxPage(100))
	assert.Equal(t, 1000, MaxPage(0))
}

func TestSlice_MatchesWindow(t *testing.T) {
	for n := 0; n <= 25; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		for page := 1; page <= 4; page++ {
			for _, limit := range []int{1, 3, 10} {
				p := New(page, limit)
				got := Slice(items, p)

				start := (page - 1) * limit
				end := min(n, page*limit)
				if start >= n {
					assert.Empty(t, got, "n=%d page=%d limit=%d", n, page, limit)
					continue
				}
				assert.Equal(t, items[start:end], got, "n=%d page=%d limit=%d", n, page, limit)
			}
		}
	}
}

func TestSlice_ClampsOutOfRangeBounds(t *testing.T) {
	items := []int{1, 2, 3}

	// Raw params whose products overflow int.
	overflowing := Params{Page: 4611686018427387905, Limit: 2}
	assert.NotPanics(t, func() {
		assert.Empty(t, Slice(items, overflowing))
	})

	assert.Empty(t, Slice(items, Params{Page: -1, Limit: 2}))
	assert.Equal(t, []int{3}, Slice(items, Params{Page: 2, Limit: 2}))
}
