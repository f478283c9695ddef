package config

import (
	"os"
	"strings"
)

// Config keeps runtime settings for the planner server.
type Config struct {
	ServerAddress string
	DatabaseURL   string
	APIToken      string
	CORSOrigins   []string
	Debug         bool
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		ServerAddress: strings.TrimSpace(os.Getenv("SERVER_ADDRESS")),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		APIToken:      strings.TrimSpace(os.Getenv("API_TOKEN")),
		CORSOrigins:   splitList(os.Getenv("CORS_ORIGINS")),
		Debug:         parseBool(os.Getenv("DEBUG")),
	}

	if cfg.ServerAddress == "" {
		cfg.ServerAddress = ":8080"
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "data/planner.db"
	}

	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "t", "true", "yes", "on":
		return true
	}
	return false
}
