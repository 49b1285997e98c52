// Package config reads process settings from the environment, optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"escaperoom/pkg/engine/input"
)

// Config holds settings for both the room service and the game client
type Config struct {
	Port      int
	AssetsDir string
	PublicDir string

	ServerURL    string
	StartRoom    string
	PlayerID     string
	FetchTimeout time.Duration // 0 means no timeout

	LocalesDir string
	Language   string

	LogLevel  string
	LogFormat string
	LogFile   string

	// KeyBindings rebinds letter keys on top of the arrow and WASD defaults
	KeyBindings map[string]input.Direction
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		Port:       3000,
		AssetsDir:  "assets",
		PublicDir:  "public",
		ServerURL:  defaultServerURL(),
		StartRoom:  "room1",
		PlayerID:   "player1",
		LocalesDir: "locales",
		Language:   "en_GB",
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load reads .env files (missing files are not an error) and then the environment.
// With no files given it looks for ".env" in the working directory.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function such as os.LookupEnv
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = port
	}
	if v, ok := lookup("FETCH_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("invalid FETCH_TIMEOUT %q", v)
		}
		cfg.FetchTimeout = d
	}

	if v, ok := lookup("KEY_BINDINGS"); ok && v != "" {
		b, err := input.ParseBindings(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid KEY_BINDINGS: %w", err)
		}
		cfg.KeyBindings = b
	}

	str("ASSETS_DIR", &cfg.AssetsDir)
	str("PUBLIC_DIR", &cfg.PublicDir)
	str("SERVER_URL", &cfg.ServerURL)
	str("START_ROOM", &cfg.StartRoom)
	str("PLAYER_ID", &cfg.PlayerID)
	str("LOCALES_DIR", &cfg.LocalesDir)
	str("LANGUAGE", &cfg.Language)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FORMAT", &cfg.LogFormat)
	str("LOG_FILE", &cfg.LogFile)

	return cfg, nil
}

// ListenAddr returns the address the room service binds to
func (c Config) ListenAddr() string {
	return ":" + strconv.Itoa(c.Port)
}
