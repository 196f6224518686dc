package generation

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-planner/internal/apperrors"
)

func TestGenerateHashtags(t *testing.T) {
	var gotPath, gotKey string
	var gotBody geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"  #launch #product "},{"text":"#news\n"}]}}]}`)
	}))
	defer srv.Close()

	c := &HashtagClient{APIKey: "k", BaseURL: srv.URL}
	got, err := c.GenerateHashtags(context.Background(), "We launched a product")
	require.NoError(t, err)

	assert.Equal(t, "#launch #product #news", got)
	assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", gotPath)
	assert.Equal(t, "k", gotKey)
	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "user", gotBody.Contents[0].Role)
	assert.Contains(t, gotBody.Contents[0].Parts[0].Text, "We launched a product")
}

func TestGenerateHashtagsErrors(t *testing.T) {
	ctx := context.Background()

	_, err := (&HashtagClient{APIKey: "k"}).GenerateHashtags(ctx, "  ")
	assert.True(t, apperrors.IsValidation(err))

	_, err = (&HashtagClient{}).GenerateHashtags(ctx, "text")
	assert.True(t, apperrors.IsConfig(err))

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error":{"code":403,"message":"API key not valid"}}`)
	}))
	defer failing.Close()

	_, err = (&HashtagClient{APIKey: "k", BaseURL: failing.URL}).GenerateHashtags(ctx, "text")
	var remote *apperrors.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusForbidden, remote.Status)
	assert.Equal(t, "API key not valid", remote.Message)

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"candidates":[]}`)
	}))
	defer empty.Close()

	_, err = (&HashtagClient{APIKey: "k", BaseURL: empty.URL}).GenerateHashtags(ctx, "text")
	assert.True(t, apperrors.IsRemote(err))
}

func TestGenerateImage(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\nfake")
	var gotAuth, gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}))
	defer srv.Close()

	c := &ImageClient{APIKey: "hf", BaseURL: srv.URL}
	img, err := c.GenerateImage(context.Background(), "a cat")
	require.NoError(t, err)

	assert.Equal(t, png, img.Data)
	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, "Bearer hf", gotAuth)
	assert.Equal(t, "/models/black-forest-labs/FLUX.1-dev", gotPath)
	assert.Equal(t, "a cat", gotBody["inputs"])
	assert.Equal(t, map[string]any{"num_inference_steps": float64(30), "guidance_scale": 7.5}, gotBody["parameters"])
}

func TestGenerateImageErrors(t *testing.T) {
	ctx := context.Background()

	_, err := (&ImageClient{APIKey: "hf"}).GenerateImage(ctx, "")
	assert.True(t, apperrors.IsValidation(err))

	_, err = (&ImageClient{}).GenerateImage(ctx, "a cat")
	assert.True(t, apperrors.IsConfig(err))

	loading := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"error":"Model is currently loading"}`)
	}))
	defer loading.Close()

	_, err = (&ImageClient{APIKey: "hf", BaseURL: loading.URL}).GenerateImage(ctx, "a cat")
	var remote *apperrors.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusServiceUnavailable, remote.Status)
	assert.Equal(t, "Model is currently loading", remote.Message)

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer empty.Close()

	_, err = (&ImageClient{APIKey: "hf", BaseURL: empty.URL}).GenerateImage(ctx, "a cat")
	assert.True(t, apperrors.IsRemote(err))
}

func TestGenerateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&ImageClient{APIKey: "hf", BaseURL: "http://127.0.0.1:1"}).GenerateImage(ctx, "a cat")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestImageStore(t *testing.T) {
	store := NewImageStore(time.Minute)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	put := store.Put(Image{Data: []byte("one"), ContentType: "image/png"})
	h1 := put.Handle
	assert.Equal(t, now, put.CreatedAt)
	got, ok := store.Get(h1)
	require.True(t, ok)
	assert.Equal(t, []byte("one"), got.Image.Data)

	assert.True(t, store.Release(h1))
	assert.False(t, store.Release(h1))
	_, ok = store.Get(h1)
	assert.False(t, ok)

	old := store.Put(Image{Data: []byte("old")}).Handle
	now = now.Add(2 * time.Minute)
	fresh := store.Put(Image{Data: []byte("fresh")}).Handle

	_, ok = store.Get(old)
	assert.False(t, ok, "expired entry is swept on put")
	_, ok = store.Get(fresh)
	assert.True(t, ok)
	assert.Equal(t, 1, store.Len())
}

func TestImageSessionReleasesSuperseded(t *testing.T) {
	store := NewImageStore(0)
	sess := NewImageSession(store)

	first := store.Put(Image{Data: []byte("1")}).Handle
	assert.True(t, sess.Replace(first))
	second := store.Put(Image{Data: []byte("2")}).Handle
	assert.True(t, sess.Replace(second))

	_, ok := store.Get(first)
	assert.False(t, ok)
	assert.Equal(t, second, sess.Current())

	sess.Close()
	sess.Close()
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, sess.Current())

	late := store.Put(Image{Data: []byte("3")})
	assert.False(t, sess.Replace(late.Handle))
	assert.Equal(t, 0, store.Len())
}
