package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// AppConfig holds environment driven configuration values.
type AppConfig struct {
	AppPort            string
	RateLimitPerMinute int
	AllowedOrigins     []string
	// Gin framework configuration
	GinMode string
	GinPath string
	// Form rules
	NoteLimitChars     int
	MaxLogoBytes       int64
	NoticeTTLMillis    int
	SubmitResetSeconds int
	// Logging configuration
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

var cfg AppConfig
var loaded bool

// Load loads the application configuration. It should be called once during
// boot. Precedence: config/config.json -> defaults -> environment overrides.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	_ = loadJSONConfig(filepath.Join("config", "config.json"), &cfg)
	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

// loadJSONConfig reads a JSON file into cfg if present. Returns error only
// for invalid JSON. Supports both grouped sections and flat keys.
func loadJSONConfig(path string, out *AppConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return nil // silently ignore missing file
	}
	defer f.Close()

	var raw map[string]any
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return err
	}

	getString := func(m map[string]any, key string) string {
		if s, ok := m[key].(string); ok {
			return s
		}
		return ""
	}
	getInt := func(m map[string]any, key string) int {
		switch t := m[key].(type) {
		case float64:
			return int(t)
		case int:
			return t
		}
		return 0
	}
	getBool := func(m map[string]any, key string) bool {
		b, _ := m[key].(bool)
		return b
	}
	getStringSlice := func(m map[string]any, key string) []string {
		arr, ok := m[key].([]any)
		if !ok {
			return nil
		}
		res := make([]string, 0, len(arr))
		for _, it := range arr {
			if s, ok := it.(string); ok {
				res = append(res, s)
			}
		}
		return res
	}

	if app, ok := raw["app"].(map[string]any); ok {
		out.AppPort = getString(app, "AppPort")
		if v := getInt(app, "RateLimitPerMinute"); v != 0 {
			out.RateLimitPerMinute = v
		}
		if list := getStringSlice(app, "AllowedOrigins"); len(list) > 0 {
			out.AllowedOrigins = list
		}
	}

	if fm, ok := raw["form"].(map[string]any); ok {
		if v := getInt(fm, "NoteLimitChars"); v != 0 {
			out.NoteLimitChars = v
		}
		if v := getInt(fm, "MaxLogoBytes"); v != 0 {
			out.MaxLogoBytes = int64(v)
		}
		if v := getInt(fm, "NoticeTTLMillis"); v != 0 {
			out.NoticeTTLMillis = v
		}
		if v := getInt(fm, "SubmitResetSeconds"); v != 0 {
			out.SubmitResetSeconds = v
		}
	}

	if lg, ok := raw["log"].(map[string]any); ok {
		if v := getString(lg, "Level"); v != "" {
			out.LogLevel = v
		}
		if v := getString(lg, "Path"); v != "" {
			out.LogPath = v
		}
		if v := getString(lg, "GinMode"); v != "" {
			out.GinMode = v
		}
		if v := getString(lg, "GinPath"); v != "" {
			out.GinPath = v
		}
		if v := getInt(lg, "MaxSizeMB"); v != 0 {
			out.LogMaxSizeMB = v
		}
		if v := getInt(lg, "MaxBackups"); v != 0 {
			out.LogMaxBackups = v
		}
		if v := getInt(lg, "MaxAgeDays"); v != 0 {
			out.LogMaxAgeDays = v
		}
		out.LogCompress = getBool(lg, "Compress")
	}

	// Flat keys for backward compatibility
	if v, ok := raw["AppPort"].(string); ok && out.AppPort == "" {
		out.AppPort = v
	}
	if v, ok := raw["GinMode"].(string); ok && out.GinMode == "" {
		out.GinMode = v
	}
	if v, ok := raw["GinPath"].(string); ok && out.GinPath == "" {
		out.GinPath = v
	}
	if v, ok := raw["RateLimitPerMinute"].(float64); ok && out.RateLimitPerMinute == 0 {
		out.RateLimitPerMinute = int(v)
	}
	if v, ok := raw["NoteLimitChars"].(float64); ok && out.NoteLimitChars == 0 {
		out.NoteLimitChars = int(v)
	}
	if v, ok := raw["MaxLogoBytes"].(float64); ok && out.MaxLogoBytes == 0 {
		out.MaxLogoBytes = int64(v)
	}
	if v, ok := raw["NoticeTTLMillis"].(float64); ok && out.NoticeTTLMillis == 0 {
		out.NoticeTTLMillis = int(v)
	}
	if v, ok := raw["SubmitResetSeconds"].(float64); ok && out.SubmitResetSeconds == 0 {
		out.SubmitResetSeconds = int(v)
	}
	if v, ok := raw["AllowedOrigins"].([]any); ok && len(out.AllowedOrigins) == 0 {
		for _, it := range v {
			if s, ok := it.(string); ok {
				out.AllowedOrigins = append(out.AllowedOrigins, s)
			}
		}
	}
	if v, ok := raw["LogLevel"].(string); ok && out.LogLevel == "" {
		out.LogLevel = v
	}
	if v, ok := raw["LogPath"].(string); ok && out.LogPath == "" {
		out.LogPath = v
	}

	return nil
}

// applyDefaults sets sane defaults for zero-value fields.
func applyDefaults(c *AppConfig) {
	if c.AppPort == "" {
		c.AppPort = "8080"
	}
	if c.GinMode == "" {
		c.GinMode = "release"
	}
	if c.GinPath == "" {
		c.GinPath = "logs/go_gin.log"
	}
	if c.RateLimitPerMinute == 0 {
		c.RateLimitPerMinute = 60
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	if c.NoteLimitChars == 0 {
		c.NoteLimitChars = 5000
	}
	if c.MaxLogoBytes == 0 {
		c.MaxLogoBytes = 5 * 1024 * 1024
	}
	if c.NoticeTTLMillis == 0 {
		c.NoticeTTLMillis = 3000
	}
	if c.SubmitResetSeconds == 0 {
		c.SubmitResetSeconds = 10
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogMaxSizeMB == 0 {
		c.LogMaxSizeMB = 100
	}
	if c.LogMaxBackups == 0 {
		c.LogMaxBackups = 3
	}
	if c.LogMaxAgeDays == 0 {
		c.LogMaxAgeDays = 7
	}
}

// applyEnvOverrides maps known environment variables onto config values.
func applyEnvOverrides(c *AppConfig) {
	if v := getEnv("APP_PORT", ""); v != "" {
		c.AppPort = v
	}
	if v := getEnv("GIN_MODE", ""); v != "" {
		c.GinMode = v
	}
	if v := getEnv("GIN_PATH", ""); v != "" {
		c.GinPath = v
	}
	if v := getEnv("RATE_LIMIT_PER_MINUTE", ""); v != "" {
		c.RateLimitPerMinute = mustParseInt(v)
	}
	if v := getEnv("CORS_ALLOWED_ORIGINS", ""); v != "" {
		c.AllowedOrigins = splitAndTrim(v)
	}
	if v := getEnv("NOTE_LIMIT_CHARS", ""); v != "" {
		c.NoteLimitChars = mustParseInt(v)
	}
	if v := getEnv("MAX_LOGO_BYTES", ""); v != "" {
		c.MaxLogoBytes = int64(mustParseInt(v))
	}
	if v := getEnv("NOTICE_TTL_MILLIS", ""); v != "" {
		c.NoticeTTLMillis = mustParseInt(v)
	}
	if v := getEnv("SUBMIT_RESET_SECONDS", ""); v != "" {
		c.SubmitResetSeconds = mustParseInt(v)
	}
	if v := getEnv("LOG_LEVEL", ""); v != "" {
		c.LogLevel = v
	}
	if v := getEnv("LOG_PATH", ""); v != "" {
		c.LogPath = v
	}
	if v := getEnv("LOG_MAX_SIZE_MB", ""); v != "" {
		c.LogMaxSizeMB = mustParseInt(v)
	}
	if v := getEnv("LOG_MAX_BACKUPS", ""); v != "" {
		c.LogMaxBackups = mustParseInt(v)
	}
	if v := getEnv("LOG_MAX_AGE_DAYS", ""); v != "" {
		c.LogMaxAgeDays = mustParseInt(v)
	}
	if v := getEnv("LOG_COMPRESS", ""); v != "" {
		c.LogCompress = v == "true"
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func mustParseInt(val string) int {
	i, err := strconv.Atoi(val)
	if err != nil {
		log.Fatalf("invalid integer value %s: %v", val, err)
	}
	return i
}

func splitAndTrim(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
