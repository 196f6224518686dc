package bootstrap

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-planner/config"
	"content-planner/internal/models"
	"content-planner/internal/repository"
	"content-planner/internal/utils"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:          "3000",
		StorageDriver: config.DriverSQLite,
		SQLitePath:    filepath.Join(t.TempDir(), "planner.db"),
		StorageKey:    "posts",
		CORSOrigins:   "*",
	}
}

func TestOpenStoreSQLite(t *testing.T) {
	ctx := context.Background()
	kv, err := OpenStore(ctx, testConfig(t))
	require.NoError(t, err)
	defer kv.Close()

	require.IsType(t, &repository.SQLiteKV{}, kv)
	require.NoError(t, kv.Set(ctx, "k", "v"))
	v, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestOpenStoreMemoryAndUnknown(t *testing.T) {
	cfg := testConfig(t)
	cfg.StorageDriver = config.DriverMemory
	kv, err := OpenStore(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &repository.MemoryKV{}, kv)

	cfg.StorageDriver = "redis"
	_, err = OpenStore(context.Background(), cfg)
	assert.Error(t, err)
}

func TestNewAppServesHealthAndAPI(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.StorageDriver = config.DriverMemory
	kv, err := OpenStore(ctx, cfg)
	require.NoError(t, err)

	deps, err := NewDeps(ctx, cfg, kv)
	require.NoError(t, err)
	app := NewApp(cfg, deps)

	resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "ok", string(body))

	resp, err = app.Test(httptest.NewRequest("GET", "/posts", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// No API key configured: the hashtag call fails before any network use.
	req := httptest.NewRequest("POST", "/generate/hashtags", strings.NewReader(`{"description":"new sneakers"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}

func TestListenAddr(t *testing.T) {
	assert.Equal(t, ":3000", ListenAddr(config.Config{Port: "3000"}))
	assert.Equal(t, "127.0.0.1:8080", ListenAddr(config.Config{Port: "127.0.0.1:8080"}))
}

func TestUpdatedPostKeepsIDAcrossRequests(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	kv, err := OpenStore(ctx, cfg)
	require.NoError(t, err)
	defer kv.Close()
	deps, err := NewDeps(ctx, cfg, kv)
	require.NoError(t, err)
	app := NewApp(cfg, deps)

	send := func(method, path, body string) (int, []byte) {
		var r io.Reader
		if body != "" {
			r = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, path, r)
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		out, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, out
	}

	post := `{"title":"Tips","description":"d","frequency":"weekly","startDate":"2024-03-15","platforms":["twitter"]}`
	status, body := send("POST", "/posts", post)
	require.Equal(t, 201, status, string(body))
	var created models.Post
	require.NoError(t, json.Unmarshal(body, &created))

	status, _ = send("PUT", "/posts/"+created.ID, strings.Replace(post, "Tips", "Tips v2", 1))
	require.Equal(t, 200, status)

	for i := 0; i < 5; i++ {
		send("GET", "/posts/zzzzzzzzzzzzzzzzzzzzzzzz", "")
	}

	status, body = send("GET", "/posts/"+created.ID, "")
	require.Equal(t, 200, status, string(body))
	var got models.Post
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Tips v2", got.Title)

	// The id written to the store is the same one.
	stored, err := repository.NewPostRepository(kv, cfg.StorageKey).Load(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, created.ID, stored[0].ID)

	status, _ = send("GET", "/posts/zzzzzzzzzzzzzzzzzzzzzzzz", "")
	assert.Equal(t, 404, status)
}

func TestNewDepsAppliesProfanityWords(t *testing.T) {
	cfg := testConfig(t)
	cfg.StorageDriver = config.DriverMemory
	cfg.ProfanityWords = []string{"rivalco"}
	t.Cleanup(func() { utils.SetExtraBannedWords(nil) })

	_, err := NewDeps(context.Background(), cfg, repository.NewMemoryKV())
	require.NoError(t, err)
	assert.Equal(t, []string{"#ok"}, utils.ExtractHashtags("#RivalCo #ok"))
}
