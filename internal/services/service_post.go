package services

import (
	"context"
	"log"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"content-planner/internal/apperrors"
	"content-planner/internal/models"
	"content-planner/internal/utils"
)

// PostStore loads and rewrites the whole post collection.
type PostStore interface {
	Load(ctx context.Context) ([]models.Post, error)
	SaveAll(ctx context.Context, posts []models.Post) error
}

// PostService owns the in-memory post collection. The collection is loaded
// once and written back in full after every mutation.
type PostService struct {
	mu    sync.Mutex
	store PostStore
	posts []models.Post
	newID func() string
}

func NewPostService(ctx context.Context, store PostStore) (*PostService, error) {
	posts, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return &PostService{
		store: store,
		posts: posts,
		newID: func() string { return bson.NewObjectID().Hex() },
	}, nil
}

// List returns a copy of all posts in insertion order.
func (s *PostService) List() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Post, len(s.posts))
	for i, p := range s.posts {
		out[i] = clonePost(p)
	}
	return out
}

func (s *PostService) Get(id string) (models.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return clonePost(s.posts[i]), true
	}
	return models.Post{}, false
}

// Create validates draft, assigns an id when absent and appends it.
func (s *PostService) Create(ctx context.Context, draft models.Post) (models.Post, error) {
	p := normalize(draft)
	if err := Validate(p); err != nil {
		return models.Post{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" || s.indexOf(p.ID) >= 0 {
		p.ID = s.newID()
	}
	s.posts = append(s.posts, p)
	s.persist(ctx)
	return clonePost(p), nil
}

// Update replaces the post with the given id. The id in the body is ignored.
func (s *PostService) Update(ctx context.Context, id string, post models.Post) (models.Post, error) {
	p := normalize(post)
	p.ID = id
	if err := Validate(p); err != nil {
		return models.Post{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Post{}, apperrors.ErrPostNotFound
	}
	s.posts[i] = p
	s.persist(ctx)
	return clonePost(p), nil
}

// Delete removes the post with the given id. Unknown ids are a no-op and
// report false.
func (s *PostService) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.posts = append(s.posts[:i], s.posts[i+1:]...)
	s.persist(ctx)
	return true
}

// AppendToDescription appends text to the description of post id.
func (s *PostService) AppendToDescription(ctx context.Context, id, text string) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Post{}, apperrors.ErrPostNotFound
	}
	s.posts[i].Description = utils.AppendText(s.posts[i].Description, text)
	s.persist(ctx)
	return clonePost(s.posts[i]), nil
}

// persist must be called with mu held. Storage failures are logged and the
// in-memory collection stays authoritative.
func (s *PostService) persist(ctx context.Context) {
	if err := s.store.SaveAll(ctx, s.posts); err != nil {
		log.Printf("[WARN] save posts: %v", err)
	}
}

func (s *PostService) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.posts {
		if s.posts[i].ID == id {
			return i
		}
	}
	return -1
}

func normalize(p models.Post) models.Post {
	p.ID = strings.TrimSpace(p.ID)
	p.Title = strings.TrimSpace(p.Title)
	p.Category = strings.TrimSpace(p.Category)
	p.Frequency = models.Frequency(strings.ToLower(strings.TrimSpace(string(p.Frequency))))
	p.PostTime = strings.TrimSpace(p.PostTime)
	if p.PostTime == "" {
		p.PostTime = models.DefaultPostTime
	}
	p.Platforms = models.NormalizePlatforms(p.Platforms)
	return p
}

// Validate checks the fields a post needs before it can be stored.
func Validate(p models.Post) error {
	if p.Title == "" {
		return apperrors.Invalid("title", "title is required")
	}
	if !p.Frequency.Valid() {
		return apperrors.Invalid("frequency", "frequency must be one of once, daily, weekly, monthly")
	}
	if p.StartDate.IsZero() {
		return apperrors.Invalid("startDate", "start date is required")
	}
	if !p.StartDate.Valid() {
		return apperrors.Invalid("startDate", "start date is not a calendar day")
	}
	if !models.ValidPostTime(p.PostTime) {
		return apperrors.Invalid("postTime", "post time must be HH:MM")
	}
	for _, pl := range p.Platforms {
		if !pl.Valid() {
			return apperrors.Invalid("platforms", "unknown platform "+string(pl))
		}
	}
	return nil
}

func clonePost(p models.Post) models.Post {
	p.Platforms = append([]models.Platform{}, p.Platforms...)
	return p
}
