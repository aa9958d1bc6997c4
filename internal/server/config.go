package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/iwvelando/quote-engine/internal/config"
	"github.com/iwvelando/quote-engine/internal/lead"
	"github.com/iwvelando/quote-engine/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address     string               `yaml:"address"`
	MaxBodySize string               `yaml:"maxBodySize"`
	Logging     config.LoggingConfig `yaml:"logging"`
	Store       lead.StoreConfig     `yaml:"store"`
	RateLimit   RateLimitConfig      `yaml:"rateLimit"`

	bodySizeBytes int64
	rateWindow    time.Duration
}

// RateLimitConfig bounds how many requests one client may make per window.
// Requests <= 0 disables limiting.
type RateLimitConfig struct {
	Requests int    `yaml:"requests"`
	Window   string `yaml:"window"`
}

func defaultConfig() *Config {
	window, _ := time.ParseDuration(constants.DefaultRateLimitWindow)
	return &Config{
		Address:     constants.DefaultServerAddress,
		MaxBodySize: fmt.Sprintf("%d", constants.DefaultMaxBodySizeBytes),
		Logging:     config.LoggingConfig{},
		Store:       lead.DefaultStoreConfig(),
		RateLimit: RateLimitConfig{
			Requests: constants.DefaultRateLimitRequests,
			Window:   constants.DefaultRateLimitWindow,
		},
		bodySizeBytes: constants.DefaultMaxBodySizeBytes,
		rateWindow:    window,
	}
}

// LoadConfig loads the server configuration from YAML. If the file does not exist,
// defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from QUOTE_* environment variables. lookup is
// normally os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	set("QUOTE_SERVER_ADDRESS", &c.Address)
	set("QUOTE_MAX_BODY_SIZE", &c.MaxBodySize)
	set("QUOTE_LOG_LEVEL", &c.Logging.Level)
	set("QUOTE_LOG_FORMAT", &c.Logging.Format)
	set("QUOTE_STORE_DRIVER", &c.Store.Driver)
	set("QUOTE_SQLITE_PATH", &c.Store.SQLite.Path)
	set("QUOTE_REDIS_ADDR", &c.Store.Redis.Address)
	set("QUOTE_REDIS_PASSWORD", &c.Store.Redis.Password)
	set("QUOTE_REDIS_KEY_PREFIX", &c.Store.Redis.KeyPrefix)
	set("QUOTE_RATE_LIMIT_WINDOW", &c.RateLimit.Window)

	if v, ok := lookup("QUOTE_REDIS_DB"); ok && v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid QUOTE_REDIS_DB %q: %w", v, err)
		}
		c.Store.Redis.DB = db
	}
	if v, ok := lookup("QUOTE_RATE_LIMIT_REQUESTS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid QUOTE_RATE_LIMIT_REQUESTS %q: %w", v, err)
		}
		c.RateLimit.Requests = n
	}

	return c.normalize()
}

// BodySizeBytes returns the configured request body limit in bytes.
func (c *Config) BodySizeBytes() int64 {
	return c.bodySizeBytes
}

// RateWindow returns the parsed rate limit window.
func (c *Config) RateWindow() time.Duration {
	return c.rateWindow
}

func (c *Config) normalize() error {
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}

	sizeStr := strings.TrimSpace(c.MaxBodySize)
	if sizeStr == "" {
		c.bodySizeBytes = constants.DefaultMaxBodySizeBytes
		c.MaxBodySize = fmt.Sprintf("%d", constants.DefaultMaxBodySizeBytes)
	} else {
		bytes, err := ParseSize(sizeStr)
		if err != nil {
			return err
		}
		if bytes <= 0 {
			bytes = constants.DefaultMaxBodySizeBytes
		}
		c.bodySizeBytes = bytes
	}

	window := strings.TrimSpace(c.RateLimit.Window)
	if window == "" {
		window = constants.DefaultRateLimitWindow
		c.RateLimit.Window = window
	}
	d, err := time.ParseDuration(window)
	if err != nil {
		return fmt.Errorf("invalid rate limit window %q: %w", window, err)
	}
	if d <= 0 {
		return fmt.Errorf("rate limit window must be positive, got %s", window)
	}
	c.rateWindow = d

	switch c.Store.Driver {
	case "":
		c.Store.Driver = constants.StoreDriverMemory
	case constants.StoreDriverMemory, constants.StoreDriverSQLite, constants.StoreDriverRedis:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	return nil
}

// ParseSize converts a human-friendly byte string (e.g., "256K", "10M") into bytes.
func ParseSize(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return constants.DefaultMaxBodySizeBytes, nil
	}

	upper := strings.ToUpper(trimmed)
	idx := len(upper)
	for idx > 0 && !unicode.IsDigit(rune(upper[idx-1])) {
		idx--
	}
	if idx == 0 {
		return 0, fmt.Errorf("invalid size: %s", value)
	}
	numPart := strings.TrimSpace(upper[:idx])
	unitPart := strings.TrimSpace(upper[idx:])

	n, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", value, err)
	}

	var multiplier int64
	switch unitPart {
	case "", "B":
		multiplier = 1
	case "K", "KB":
		multiplier = 1024
	case "M", "MB":
		multiplier = 1024 * 1024
	case "G", "GB":
		multiplier = 1024 * 1024 * 1024
	default:
		return 0, fmt.Errorf("unsupported size unit %q", unitPart)
	}

	result := n * multiplier
	if result < 0 {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return result, nil
}
