// Package memory provides an in-process repository.Store. It keeps every
// entity in maps guarded by a single RWMutex and hands out copies, so callers
// never share state with the store.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/product"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/sale"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/workreport"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/repository"
	"github.com/google/uuid"
)

type state struct {
	users       map[string]user.User
	attendances map[string]attendance.Attendance
	sales       map[string]sale.Sale
	saleItems   map[string]sale.SaleItem
	products    map[string]product.Product
	categories  map[string]product.Category
	workReports map[string]workreport.WorkReport
}

func newState() state {
	return state{
		users:       map[string]user.User{},
		attendances: map[string]attendance.Attendance{},
		sales:       map[string]sale.Sale{},
		saleItems:   map[string]sale.SaleItem{},
		products:    map[string]product.Product{},
		categories:  map[string]product.Category{},
		workReports: map[string]workreport.WorkReport{},
	}
}

// clone copies the maps. Stored values are never mutated in place, so a
// shallow copy of each value is enough.
func (s state) clone() state {
	return state{
		users:       cloneMap(s.users),
		attendances: cloneMap(s.attendances),
		sales:       cloneMap(s.sales),
		saleItems:   cloneMap(s.saleItems),
		products:    cloneMap(s.products),
		categories:  cloneMap(s.categories),
		workReports: cloneMap(s.workReports),
	}
}

func cloneMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type txKey struct{}

type transaction struct {
	store *Store
	state state
}

// Store is the in-memory repository.Store.
type Store struct {
	mu    sync.RWMutex
	state state
	nowFn func() time.Time

	users       *userRepository
	attendances *attendanceRepository
	sales       *saleRepository
	products    *productRepository
	workReports *workReportRepository
}

var _ repository.Store = (*Store)(nil)

type Option func(*Store)

// WithClock overrides the clock used for created_at / updated_at.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.nowFn = now }
}

func NewStore(opts ...Option) *Store {
	s := &Store{state: newState(), nowFn: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.users = &userRepository{store: s}
	s.attendances = &attendanceRepository{store: s}
	s.sales = &saleRepository{store: s}
	s.products = &productRepository{store: s}
	s.workReports = &workReportRepository{store: s}
	return s
}

func (s *Store) Users() user.UserRepository                   { return s.users }
func (s *Store) Attendances() attendance.AttendanceRepository { return s.attendances }
func (s *Store) Sales() sale.SaleRepository                   { return s.sales }
func (s *Store) Products() product.ProductRepository          { return s.products }
func (s *Store) WorkReports() workreport.WorkReportRepository { return s.workReports }

func (s *Store) Close() {}

// WithinTransaction runs fn against a private copy of the state while holding
// the write lock and publishes the copy only when fn succeeds.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := s.txFrom(ctx); ok {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &transaction{store: s, state: s.state.clone()}
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	s.state = tx.state
	return nil
}

func (s *Store) txFrom(ctx context.Context) (*transaction, bool) {
	tx, ok := ctx.Value(txKey{}).(*transaction)
	if !ok || tx.store != s {
		return nil, false
	}
	return tx, true
}

// read runs fn against the state visible to ctx.
func (s *Store) read(ctx context.Context, fn func(st *state) error) error {
	if tx, ok := s.txFrom(ctx); ok {
		return fn(&tx.state)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&s.state)
}

func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if tx, ok := s.txFrom(ctx); ok {
		return fn(&tx.state)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.state)
}

func (s *Store) now() time.Time {
	return s.nowFn()
}

// newID returns a time-ordered UUID so that ties on timestamps still sort by
// insertion order.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// sortNewestFirst orders items by ts desc, then id desc.
func sortNewestFirst[T any](items []T, key func(T) (time.Time, string)) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return idi > idj
	})
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTime(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
