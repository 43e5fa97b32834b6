package session

//go:generate mockgen -source=store.go -destination=mock_store.go -package=session

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/filipedpsilva/counter/errs"
	"github.com/filipedpsilva/counter/widget"
)

// Store keeps one widget per page visit.
type Store interface {
	Create() (string, *widget.Widget)
	Get(id string) (*widget.Widget, error)
	Delete(id string)
	Len() int
}

// CacheStore holds widgets in memory. A widget that is not touched for the
// TTL is dropped.
type CacheStore struct {
	ttl     time.Duration
	widgets *cache.Cache
}

func NewCacheStore(ttl, cleanupInterval time.Duration) *CacheStore {
	return &CacheStore{
		ttl:     ttl,
		widgets: cache.New(ttl, cleanupInterval),
	}
}

func (s *CacheStore) Create() (string, *widget.Widget) {
	id := uuid.NewString()
	w := widget.New()
	s.widgets.Set(id, w, s.ttl)
	return id, w
}

// Get returns the widget and pushes its expiry back by another TTL.
func (s *CacheStore) Get(id string) (*widget.Widget, error) {
	v, ok := s.widgets.Get(id)
	if !ok {
		return nil, errs.NewNotFoundError("counter " + id + " not found")
	}
	w := v.(*widget.Widget)
	s.widgets.Set(id, w, s.ttl)
	return w, nil
}

func (s *CacheStore) Delete(id string) {
	s.widgets.Delete(id)
}

func (s *CacheStore) Len() int {
	return s.widgets.ItemCount()
}
