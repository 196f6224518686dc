package generation

import (
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// StoredImage is an image held behind an ephemeral handle.
type StoredImage struct {
	Handle    string
	Image     Image
	CreatedAt time.Time
}

// ImageStore keeps generated images until their handle is released. Entries
// older than TTL are dropped on the next Put.
type ImageStore struct {
	mu    sync.Mutex
	items map[string]StoredImage
	ttl   time.Duration
	now   func() time.Time
}

func NewImageStore(ttl time.Duration) *ImageStore {
	return &ImageStore{
		items: map[string]StoredImage{},
		ttl:   ttl,
		now:   time.Now,
	}
}

// Put stores img under a new handle.
func (s *ImageStore) Put(img Image) StoredImage {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.ttl > 0 {
		for h, it := range s.items {
			if now.Sub(it.CreatedAt) > s.ttl {
				delete(s.items, h)
			}
		}
	}

	it := StoredImage{Handle: bson.NewObjectID().Hex(), Image: img, CreatedAt: now}
	s.items[it.Handle] = it
	return it
}

func (s *ImageStore) Get(handle string) (StoredImage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[handle]
	return it, ok
}

// Release frees handle. Releasing an unknown handle is a no-op.
func (s *ImageStore) Release(handle string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.items[handle]
	delete(s.items, handle)
	return ok
}

func (s *ImageStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// ImageSession owns at most one handle at a time. Replacing the handle or
// closing the session releases the previous one.
type ImageSession struct {
	mu      sync.Mutex
	store   *ImageStore
	current string
	closed  bool
}

func NewImageSession(store *ImageStore) *ImageSession {
	return &ImageSession{store: store}
}

// Replace makes handle current and releases the superseded one. On a closed
// session handle is released instead and Replace reports false.
func (s *ImageSession) Replace(handle string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		s.store.Release(handle)
		return false
	}
	if s.current != "" && s.current != handle {
		s.store.Release(s.current)
	}
	s.current = handle
	return true
}

func (s *ImageSession) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Close releases the current handle and refuses later ones. It is safe to
// call more than once.
func (s *ImageSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.current != "" {
		s.store.Release(s.current)
		s.current = ""
	}
}
