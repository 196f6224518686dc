package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"content-planner/internal/models"
)

// DefaultPostsKey is the key holding the serialized post collection.
const DefaultPostsKey = "posts"

// PostRepository persists the full post collection as one JSON array.
type PostRepository struct {
	kv  KeyValue
	key string
}

func NewPostRepository(kv KeyValue, key string) *PostRepository {
	if key == "" {
		key = DefaultPostsKey
	}
	return &PostRepository{kv: kv, key: key}
}

// Load returns the stored collection. An absent or unreadable blob yields an
// empty collection; Load never fails.
func (r *PostRepository) Load(ctx context.Context) ([]models.Post, error) {
	raw, found, err := r.kv.Get(ctx, r.key)
	if err != nil {
		log.Printf("[WARN] load %q: %v; starting empty", r.key, err)
		return []models.Post{}, nil
	}
	if !found || raw == "" {
		return []models.Post{}, nil
	}

	var posts []models.Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		log.Printf("[WARN] corrupt %q blob: %v; starting empty", r.key, err)
		return []models.Post{}, nil
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

// SaveAll overwrites the stored collection.
func (r *PostRepository) SaveAll(ctx context.Context, posts []models.Post) error {
	if posts == nil {
		posts = []models.Post{}
	}
	raw, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("encode posts: %w", err)
	}
	return r.kv.Set(ctx, r.key, string(raw))
}
