package services

import (
	"context"
	"strings"
	"sync"

	"content-planner/internal/apperrors"
	"content-planner/internal/generation"
	"content-planner/internal/models"
	"content-planner/internal/utils"
)

// DefaultSession is used when the caller does not name a session.
const DefaultSession = "default"

type HashtagGenerator interface {
	GenerateHashtags(ctx context.Context, description string) (string, error)
}

type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (generation.Image, error)
}

type HashtagResult struct {
	Hashtags string   `json:"hashtags"`
	Tags     []string `json:"tags"`
}

// GenerationService fronts the two generation capabilities and owns the
// generated images until their sessions release them. Hashtag drafting has
// one busy flag; image rendering has one per session.
type GenerationService struct {
	hashtags HashtagGenerator
	images   ImageGenerator

	hashtagAssist Assist

	store    *generation.ImageStore
	mu       sync.Mutex
	sessions map[string]*imageSlot
}

// imageSlot is one session's image state.
type imageSlot struct {
	assist Assist
	images *generation.ImageSession
}

func NewGenerationService(h HashtagGenerator, i ImageGenerator, store *generation.ImageStore) *GenerationService {
	return &GenerationService{
		hashtags: h,
		images:   i,
		store:    store,
		sessions: map[string]*imageSlot{},
	}
}

// GenerateHashtags drafts hashtags for description. A blank description is
// rejected before the busy flag and error slot are touched.
func (s *GenerationService) GenerateHashtags(ctx context.Context, description string) (HashtagResult, error) {
	if strings.TrimSpace(description) == "" {
		return HashtagResult{}, apperrors.Invalid("description", "description is required")
	}

	var res HashtagResult
	err := s.hashtagAssist.Run(func() error {
		text, err := s.hashtags.GenerateHashtags(ctx, description)
		if err != nil {
			return err
		}
		res = HashtagResult{Hashtags: text, Tags: utils.ExtractHashtags(text)}
		return nil
	})
	return res, err
}

func (s *GenerationService) HashtagStatus() AssistStatus {
	return s.hashtagAssist.Status()
}

// GenerateImage renders prompt and makes the result the current image of
// session, releasing the one it supersedes. If ctx is done by the time the
// image arrives, the image is released at once and ctx's error returned.
func (s *GenerationService) GenerateImage(ctx context.Context, session, prompt string) (generation.StoredImage, error) {
	if strings.TrimSpace(prompt) == "" {
		return generation.StoredImage{}, apperrors.Invalid("prompt", "prompt is required")
	}

	slot := s.slot(session)
	var stored generation.StoredImage
	err := slot.assist.Run(func() error {
		img, err := s.images.GenerateImage(ctx, prompt)
		if err != nil {
			return err
		}
		it := s.store.Put(img)
		if err := ctx.Err(); err != nil {
			s.store.Release(it.Handle)
			return err
		}
		if !slot.images.Replace(it.Handle) {
			return apperrors.ErrImageNotFound
		}
		stored = it
		return nil
	})
	return stored, err
}

// ImageStatus reports the image busy flag and error slot of session.
func (s *GenerationService) ImageStatus(session string) AssistStatus {
	s.mu.Lock()
	slot, ok := s.sessions[sessionName(session)]
	s.mu.Unlock()
	if !ok {
		return AssistStatus{}
	}
	return slot.assist.Status()
}

func (s *GenerationService) Image(handle string) (generation.StoredImage, error) {
	it, ok := s.store.Get(handle)
	if !ok {
		return generation.StoredImage{}, apperrors.ErrImageNotFound
	}
	return it, nil
}

// ReleaseImage frees one handle. Unknown handles report false.
func (s *GenerationService) ReleaseImage(handle string) bool {
	return s.store.Release(handle)
}

// CloseSession releases the session's current image and forgets it. An
// image still being rendered for it is released when it arrives.
func (s *GenerationService) CloseSession(session string) {
	session = sessionName(session)
	s.mu.Lock()
	slot, ok := s.sessions[session]
	delete(s.sessions, session)
	s.mu.Unlock()
	if ok {
		slot.images.Close()
	}
}

// Close releases every session; used on shutdown.
func (s *GenerationService) Close() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = map[string]*imageSlot{}
	s.mu.Unlock()
	for _, slot := range sessions {
		slot.images.Close()
	}
}

func (s *GenerationService) slot(session string) *imageSlot {
	session = sessionName(session)
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.sessions[session]
	if !ok {
		slot = &imageSlot{images: generation.NewImageSession(s.store)}
		s.sessions[session] = slot
	}
	return slot
}

func sessionName(session string) string {
	if session == "" {
		return DefaultSession
	}
	return session
}

// AppendHashtags drafts hashtags from the post's description and appends
// them to it.
func (s *GenerationService) AppendHashtags(ctx context.Context, posts *PostService, id string) (models.Post, error) {
	p, ok := posts.Get(id)
	if !ok {
		return models.Post{}, apperrors.ErrPostNotFound
	}
	res, err := s.GenerateHashtags(ctx, p.Description)
	if err != nil {
		return models.Post{}, err
	}
	return posts.AppendToDescription(ctx, id, res.Hashtags)
}
