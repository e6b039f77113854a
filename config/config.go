package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"go-restaurant-operations/store"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	SeedFile       string
}

// Load reads the environment (after an optional .env file) and returns the
// server configuration. Every key has a default so an empty environment
// still boots.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8000"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:9000"), ","),
		SeedFile:       getEnv("SEED_FILE", ""),
	}
}

// LoadSeed parses the optional seed file into the store config. With no
// seed file configured the engine starts with empty tables and menu.
func (c *Config) LoadSeed() (store.Config, error) {
	if c.SeedFile == "" {
		return store.Config{}, nil
	}

	data, err := os.ReadFile(c.SeedFile)
	if err != nil {
		return store.Config{}, fmt.Errorf("reading seed file: %w", err)
	}
	var seed store.Config
	if err := json.Unmarshal(data, &seed); err != nil {
		return store.Config{}, fmt.Errorf("parsing seed file %s: %w", c.SeedFile, err)
	}
	return seed, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
