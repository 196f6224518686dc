package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	Port string `env:"PORT" envDefault:"3000"`

	StorageDriver   string `env:"STORAGE_DRIVER" envDefault:"sqlite"`
	MongoURI        string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB         string `env:"MONGO_DB" envDefault:"content_planner"`
	MongoCollection string `env:"MONGO_COLLECTION" envDefault:"kv"`
	SQLitePath      string `env:"SQLITE_PATH" envDefault:"planner.db"`
	StorageKey      string `env:"STORAGE_KEY" envDefault:"posts"`

	GeminiAPIKey       string        `env:"GEMINI_API_KEY"`
	GeminiModel        string        `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	GeminiBaseURL      string        `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	HuggingFaceAPIKey  string        `env:"HUGGINGFACE_API_KEY"`
	HuggingFaceModel   string        `env:"HUGGINGFACE_MODEL" envDefault:"black-forest-labs/FLUX.1-dev"`
	HuggingFaceBaseURL string        `env:"HUGGINGFACE_BASE_URL" envDefault:"https://api-inference.huggingface.co"`
	GenerationTimeout  time.Duration `env:"GENERATION_TIMEOUT" envDefault:"0s"`
	ImageTTL           time.Duration `env:"IMAGE_TTL" envDefault:"30m"`

	JWTSecret         string        `env:"JWT_SECRET"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
	TokenTTL          time.Duration `env:"TOKEN_TTL" envDefault:"12h"`

	// Extra words dropped from generated hashtag tags, comma-separated.
	ProfanityWords []string `env:"PROFANITY_WORDS" envSeparator:","`

	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"*"`
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
	return Parse()
}

// Parse reads Config from the process environment only.
func Parse() (Config, error) {
	return parse(env.ToMap(os.Environ()))
}

func parse(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StorageDriver {
	case DriverSQLite, DriverMongo, DriverMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER %q: want sqlite, mongo or memory", c.StorageDriver)
	}
	if c.AdminPasswordHash != "" && c.JWTSecret == "" {
		return errors.New("ADMIN_PASSWORD_HASH is set but JWT_SECRET is empty")
	}
	if c.GenerationTimeout < 0 || c.ImageTTL < 0 || c.TokenTTL < 0 {
		return errors.New("durations must not be negative")
	}
	return nil
}

// AuthEnabled reports whether planner routes require a bearer token.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}
