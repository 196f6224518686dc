package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := parse(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.Equal(t, "planner.db", cfg.SQLitePath)
	assert.Equal(t, "posts", cfg.StorageKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, "black-forest-labs/FLUX.1-dev", cfg.HuggingFaceModel)
	assert.Equal(t, time.Duration(0), cfg.GenerationTimeout)
	assert.Equal(t, 30*time.Minute, cfg.ImageTTL)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.AuthEnabled())
}

func TestParseOverrides(t *testing.T) {
	cfg, err := parse(map[string]string{
		"PORT":               "8080",
		"STORAGE_DRIVER":     " Mongo ",
		"MONGO_URI":          "mongodb://db:27017",
		"GENERATION_TIMEOUT": "45s",
		"JWT_SECRET":         "s3cret",
		"PROFANITY_WORDS":    "rivalco,spam",
	})
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverMongo, cfg.StorageDriver)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, 45*time.Second, cfg.GenerationTimeout)
	assert.True(t, cfg.AuthEnabled())
	assert.Equal(t, []string{"rivalco", "spam"}, cfg.ProfanityWords)
}

func TestValidate(t *testing.T) {
	base := Config{StorageDriver: DriverMemory}
	require.NoError(t, base.Validate())

	bad := base
	bad.StorageDriver = "postgres"
	assert.ErrorContains(t, bad.Validate(), "STORAGE_DRIVER")

	half := base
	half.AdminPasswordHash = "$2a$10$abc"
	assert.ErrorContains(t, half.Validate(), "JWT_SECRET")

	neg := base
	neg.ImageTTL = -time.Second
	assert.Error(t, neg.Validate())
}

func TestParseRejectsBadDuration(t *testing.T) {
	_, err := parse(map[string]string{"TOKEN_TTL": "forever"})
	assert.ErrorContains(t, err, "parse env")
}

func TestParseReadsProcessEnv(t *testing.T) {
	t.Setenv("STORAGE_KEY", "planner-posts")
	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "planner-posts", cfg.StorageKey)
}
