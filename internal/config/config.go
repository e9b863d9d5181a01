package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Console describes the HTTP console configuration.
type Console struct {
	BindAddr     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxBodyBytes int64

	Keywords Keywords
	Charts   Charts
}

// Keywords bounds the "how many keywords" stepper.
type Keywords struct {
	Default int
	Min     int
	Max     int
	MinLen  int
}

// Clamp maps a raw stepper value into [Min, Max]. Empty or unparsable
// input falls back to Default.
func (k Keywords) Clamp(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return k.Default
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return k.Default
	}
	return k.ClampInt(value)
}

// ClampInt is Clamp for an already parsed value.
func (k Keywords) ClampInt(value int) int {
	if value < k.Min {
		return k.Min
	}
	if value > k.Max {
		return k.Max
	}
	return value
}

// Charts holds the canvas size of rendered charts.
type Charts struct {
	Width  string
	Height string
}

// LoadConsole builds a Console config from environment variables. Values
// from the dotenv file named by CONSOLE_ENV_FILE (default ".env") are
// loaded first without overriding variables that are already set.
func LoadConsole() (*Console, error) {
	if err := loadDotEnv(getEnv("CONSOLE_ENV_FILE", ".env")); err != nil {
		return nil, err
	}

	c := &Console{
		BindAddr:     getEnv("CONSOLE_BIND_ADDR", "0.0.0.0:8501"),
		ReadTimeout:  getDuration("CONSOLE_READ_TIMEOUT", "10s"),
		WriteTimeout: getDuration("CONSOLE_WRITE_TIMEOUT", "30s"),
		MaxBodyBytes: int64(getInt("CONSOLE_MAX_BODY_BYTES", 1<<20)),
		Keywords: Keywords{
			Default: getInt("CONSOLE_KEYWORDS_DEFAULT", 5),
			Min:     getInt("CONSOLE_KEYWORDS_MIN", 5),
			Max:     getInt("CONSOLE_KEYWORDS_MAX", 15),
			MinLen:  getInt("CONSOLE_KEYWORD_MIN_LEN", 1),
		},
		Charts: Charts{
			Width:  getEnv("CONSOLE_CHART_WIDTH", "600px"),
			Height: getEnv("CONSOLE_CHART_HEIGHT", "400px"),
		},
	}

	if c.Keywords.Min <= 0 {
		return nil, fmt.Errorf("CONSOLE_KEYWORDS_MIN must be positive")
	}
	if c.Keywords.Max < c.Keywords.Min {
		return nil, fmt.Errorf("CONSOLE_KEYWORDS_MAX cannot be lower than CONSOLE_KEYWORDS_MIN")
	}
	if c.Keywords.Default < c.Keywords.Min || c.Keywords.Default > c.Keywords.Max {
		return nil, fmt.Errorf("CONSOLE_KEYWORDS_DEFAULT must be within [%d, %d]", c.Keywords.Min, c.Keywords.Max)
	}
	if c.Keywords.MinLen < 0 {
		return nil, fmt.Errorf("CONSOLE_KEYWORD_MIN_LEN cannot be negative")
	}
	if c.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("CONSOLE_MAX_BODY_BYTES must be positive")
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 {
		return nil, fmt.Errorf("CONSOLE_READ_TIMEOUT and CONSOLE_WRITE_TIMEOUT must be positive")
	}

	return c, nil
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key, fallback string) time.Duration {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		fd, ferr := time.ParseDuration(fallback)
		if ferr != nil {
			panic(fmt.Sprintf("invalid fallback duration %q: %v", fallback, ferr))
		}
		return fd
	}
	return d
}
