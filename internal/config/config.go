package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ProjectID   string
	Region      string
	LogLevel    string
	VertexModel string
	Timezone    string
	Port        string
}

func New() *Config {
	// Local development only; in Cloud Run the env is injected.
	_ = godotenv.Load()

	return &Config{
		ProjectID:   os.Getenv("PROJECTID"),
		Region:      os.Getenv("REGION"),
		LogLevel:    os.Getenv("LOGLEVEL"),
		VertexModel: os.Getenv("VERTEXMODEL"),
		Timezone:    os.Getenv("TIMEZONE"),
		Port:        getDefault("PORT", "8080"),
	}
}

// Location resolves the configured timezone for month bucketing, falling
// back to UTC.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
