package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// Data sources the API can serve from.
const (
	SourceCSV       = "csv"
	SourceFirestore = "firestore"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	Port                string
	GinMode             string
	LogMode             string
	DataSource          string
	DatasetPath         string
	StrictLoad          bool
	FirebaseProjectID   string
	FirebaseCredsBase64 string
	FirebaseCredsFile   string
	FirestoreCollection string
	FirestoreRefresh    time.Duration
	RedisURL            string
	CacheTTL            time.Duration
	AllowedOrigins      string
	TraceEnabled        bool
	TraceEndpoint       string
	TraceSampleRatio    float64
}

// Load reads environment variables into a Config with sensible defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:                getEnv("PORT", "8080"),
		GinMode:             getEnv("GIN_MODE", "release"),
		LogMode:             getEnv("LOG_MODE", "production"),
		DataSource:          strings.ToLower(getEnv("DATA_SOURCE", SourceCSV)),
		DatasetPath:         getEnv("DATASET_PATH", "dataset_looker_student_social_media_clean.csv"),
		FirebaseProjectID:   strings.TrimSpace(os.Getenv("FIREBASE_PROJECT_ID")),
		FirebaseCredsBase64: strings.TrimSpace(os.Getenv("FIREBASE_CREDS_BASE64")),
		FirebaseCredsFile:   strings.TrimSpace(os.Getenv("FIREBASE_CREDS_FILE")),
		FirestoreCollection: getEnv("FIRESTORE_COLLECTION", "student_responses"),
		RedisURL:            strings.TrimSpace(os.Getenv("REDIS_URL")),
		AllowedOrigins:      strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")),
		TraceEndpoint:       strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")),
	}

	strict, err := parseBoolEnv("STRICT_LOAD", false)
	if err != nil {
		return Config{}, fmt.Errorf("parse STRICT_LOAD: %w", err)
	}
	cfg.StrictLoad = strict

	if cfg.FirestoreRefresh, err = parseDurationEnv("FIRESTORE_REFRESH", 5*time.Minute); err != nil {
		return Config{}, fmt.Errorf("parse FIRESTORE_REFRESH: %w", err)
	}
	if cfg.CacheTTL, err = parseDurationEnv("CACHE_TTL", 5*time.Minute); err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}

	if cfg.TraceEnabled, err = parseBoolEnv("OTEL_ENABLED", false); err != nil {
		return Config{}, fmt.Errorf("parse OTEL_ENABLED: %w", err)
	}
	if cfg.TraceSampleRatio, err = parseRatioEnv("OTEL_SAMPLER_RATIO", 0.1); err != nil {
		return Config{}, fmt.Errorf("parse OTEL_SAMPLER_RATIO: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate ensures required fields are present. Firebase settings are only
// required when Firestore is the data source.
func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	switch c.DataSource {
	case SourceCSV:
		if c.DatasetPath == "" {
			return errors.New("DATASET_PATH is required")
		}
	case SourceFirestore:
		if err := c.ValidateFirestore(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("DATA_SOURCE must be %q or %q, got %q", SourceCSV, SourceFirestore, c.DataSource)
	}
	if c.FirestoreRefresh <= 0 {
		return errors.New("FIRESTORE_REFRESH must be positive")
	}
	if c.CacheTTL <= 0 {
		return errors.New("CACHE_TTL must be positive")
	}
	return nil
}

// ValidateFirestore checks the settings needed to open a Firestore client.
func (c Config) ValidateFirestore() error {
	if c.FirebaseProjectID == "" {
		return errors.New("FIREBASE_PROJECT_ID is required")
	}
	if c.FirebaseCredsBase64 == "" && c.FirebaseCredsFile == "" {
		return errors.New("provide FIREBASE_CREDS_BASE64 or FIREBASE_CREDS_FILE for Firestore auth")
	}
	if c.FirestoreCollection == "" {
		return errors.New("FIRESTORE_COLLECTION is required")
	}
	return nil
}

// FirebaseCredentialsJSON returns the service account JSON bytes and the source used.
func (c Config) FirebaseCredentialsJSON() ([]byte, string, error) {
	if c.FirebaseCredsBase64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(c.FirebaseCredsBase64)
		if err != nil {
			return nil, "base64", fmt.Errorf("decode FIREBASE_CREDS_BASE64: %w", err)
		}
		return decoded, "base64", nil
	}
	if c.FirebaseCredsFile != "" {
		data, err := os.ReadFile(c.FirebaseCredsFile)
		if err != nil {
			return nil, "file", fmt.Errorf("read FIREBASE_CREDS_FILE: %w", err)
		}
		return data, "file", nil
	}
	return nil, "", errors.New("no firebase credentials found")
}

// Origins splits ALLOWED_ORIGINS into a list. Empty means local development
// origins only.
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getEnv(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}

func parseBoolEnv(key string, defaultVal bool) (bool, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultVal, nil
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return false, err
	}
	return parsed, nil
}

func parseDurationEnv(key string, defaultVal time.Duration) (time.Duration, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultVal, nil
	}
	return time.ParseDuration(val)
}

// parseRatioEnv reads a sampling ratio, clamped to [0, 1].
func parseRatioEnv(key string, defaultVal float64) (float64, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, err
	}
	return math.Max(0, math.Min(1, f)), nil
}
