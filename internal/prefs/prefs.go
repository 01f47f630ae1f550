// Package prefs remembers how each user last arranged each data table.
package prefs

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vangoframework/hotelier/internal/table"
)

// ErrInvalidKey is returned for an empty user or table key.
var ErrInvalidKey = errors.New("user and table keys are required")

// View is a saved table arrangement. Page is not saved: a restored table
// always opens on its first page.
type View struct {
	PageSize  int
	Sort      table.SortState
	Search    string
	UpdatedAt time.Time
}

// FromQuery captures the savable parts of a table query.
func FromQuery(q table.Query) View {
	return View{
		PageSize: q.PageSize,
		Sort:     q.Sort,
		Search:   q.Search,
	}
}

// Apply lays the view over defaults and returns a query on page 1.
// A zero page size keeps the default.
func (v View) Apply(defaults table.Query) table.Query {
	q := defaults
	q.Page = 1
	if v.PageSize > 0 {
		q.PageSize = table.ClampPageSize(v.PageSize)
	}
	q.Sort = v.Sort
	q.Search = v.Search
	return q
}

// Store persists views per user and table.
type Store interface {
	Get(ctx context.Context, userKey, tableID string) (View, bool, error)
	Save(ctx context.Context, userKey, tableID string, v View) error
	Delete(ctx context.Context, userKey, tableID string) error
}

// MemoryStore keeps views in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	views map[string]View
	now   func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{views: make(map[string]View), now: time.Now}
}

func memoryKey(userKey, tableID string) string {
	return userKey + "\x00" + tableID
}

func (s *MemoryStore) Get(_ context.Context, userKey, tableID string) (View, bool, error) {
	if userKey == "" || tableID == "" {
		return View{}, false, ErrInvalidKey
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.views[memoryKey(userKey, tableID)]
	return v, ok, nil
}

func (s *MemoryStore) Save(_ context.Context, userKey, tableID string, v View) error {
	if userKey == "" || tableID == "" {
		return ErrInvalidKey
	}
	v.UpdatedAt = s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[memoryKey(userKey, tableID)] = v
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, userKey, tableID string) error {
	if userKey == "" || tableID == "" {
		return ErrInvalidKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, memoryKey(userKey, tableID))
	return nil
}
