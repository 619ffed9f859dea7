package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Location    LocationConfig    `yaml:"location"`
	Ephemeris   EphemerisConfig   `yaml:"ephemeris"`
	Corpus      CorpusConfig      `yaml:"corpus"`
	Matching    MatchingConfig    `yaml:"matching"`
	DigestCache DigestCacheConfig `yaml:"digestCache"`
	JanamPatri  JanamPatriConfig  `yaml:"janamPatri"`
	RunLog      RunLogConfig      `yaml:"runLog"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// LocationConfig is the observer location every panchang is computed for.
type LocationConfig struct {
	Name           string  `yaml:"name"`
	Latitude       float64 `yaml:"latitude"`
	Longitude      float64 `yaml:"longitude"`
	UTCOffsetHours float64 `yaml:"utcOffsetHours"`
}

// EphemerisConfig points at the planetary position API.
type EphemerisConfig struct {
	APIBaseURL string        `yaml:"apiBaseUrl"`
	Timeout    time.Duration `yaml:"timeout"`
}

// CorpusConfig selects where verse records are loaded from.
type CorpusConfig struct {
	Source         string            `yaml:"source"`
	Path           string            `yaml:"path"`
	DefaultVerseID string            `yaml:"defaultVerseId"`
	Postgres       PostgresConfig    `yaml:"postgres"`
	Object         ObjectStoreConfig `yaml:"object"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// ObjectStoreConfig contains S3-compatible connection settings.
type ObjectStoreConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Key       string `yaml:"key"`
	Region    string `yaml:"region"`
}

// MatchingConfig selects the verse scoring backend.
type MatchingConfig struct {
	Backend   string `yaml:"backend"`
	Dimension int    `yaml:"dimension"`
}

// DigestCacheConfig controls caching of assembled weekly digests.
type DigestCacheConfig struct {
	Valkey ValkeyConfig  `yaml:"valkey"`
	TTL    time.Duration `yaml:"ttl"`
}

// ValkeyConfig contains connection information for cache storage.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// JanamPatriConfig holds the configured individual's birth details.
type JanamPatriConfig struct {
	Enabled    bool           `yaml:"enabled"`
	BirthDate  string         `yaml:"birthDate"`
	BirthTime  string         `yaml:"birthTime"`
	BirthPlace LocationConfig `yaml:"birthPlace"`
	Override   OverrideConfig `yaml:"override"`
	VerseTopK  int            `yaml:"verseTopK"`
}

// OverrideConfig bypasses the ephemeris with known chart values.
type OverrideConfig struct {
	Nakshatra string `yaml:"nakshatra"`
	Rashi     string `yaml:"rashi"`
}

// RunLogConfig controls the JSONL run record sink.
type RunLogConfig struct {
	Path string `yaml:"path"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("LOCATION_NAME"); v != "" {
		cfg.Location.Name = v
	}
	if v := os.Getenv("LOCATION_LATITUDE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Location.Latitude = parsed
		}
	}
	if v := os.Getenv("LOCATION_LONGITUDE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Location.Longitude = parsed
		}
	}
	if v := os.Getenv("LOCATION_UTC_OFFSET"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Location.UTCOffsetHours = parsed
		}
	}
	if v := os.Getenv("EPHEMERIS_API_BASE_URL"); v != "" {
		cfg.Ephemeris.APIBaseURL = v
	}
	if v := os.Getenv("EPHEMERIS_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Ephemeris.Timeout = parsed
		}
	}
	if v := os.Getenv("CORPUS_SOURCE"); v != "" {
		cfg.Corpus.Source = v
	}
	if v := os.Getenv("CORPUS_PATH"); v != "" {
		cfg.Corpus.Path = v
	}
	if v := os.Getenv("CORPUS_DEFAULT_VERSE_ID"); v != "" {
		cfg.Corpus.DefaultVerseID = v
	}
	if v := os.Getenv("CORPUS_POSTGRES_DSN"); v != "" {
		cfg.Corpus.Postgres.DSN = v
	}
	if v := os.Getenv("CORPUS_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Corpus.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("CORPUS_OBJECT_ENDPOINT"); v != "" {
		cfg.Corpus.Object.Endpoint = v
	}
	if v := os.Getenv("CORPUS_OBJECT_ACCESS_KEY"); v != "" {
		cfg.Corpus.Object.AccessKey = v
	}
	if v := os.Getenv("CORPUS_OBJECT_SECRET_KEY"); v != "" {
		cfg.Corpus.Object.SecretKey = v
	}
	if v := os.Getenv("CORPUS_OBJECT_BUCKET"); v != "" {
		cfg.Corpus.Object.Bucket = v
	}
	if v := os.Getenv("CORPUS_OBJECT_KEY"); v != "" {
		cfg.Corpus.Object.Key = v
	}
	if v := os.Getenv("MATCHING_BACKEND"); v != "" {
		cfg.Matching.Backend = v
	}
	if v := os.Getenv("MATCHING_DIMENSION"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Matching.Dimension = parsed
		}
	}
	if v := os.Getenv("DIGEST_CACHE_VALKEY_ENABLED"); v != "" {
		cfg.DigestCache.Valkey.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("DIGEST_CACHE_VALKEY_ADDR"); v != "" {
		cfg.DigestCache.Valkey.Addr = v
	}
	if v := os.Getenv("DIGEST_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.DigestCache.TTL = parsed
		}
	}
	if v := os.Getenv("JANAM_PATRI_ENABLED"); v != "" {
		cfg.JanamPatri.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("JANAM_PATRI_BIRTH_DATE"); v != "" {
		cfg.JanamPatri.BirthDate = v
	}
	if v := os.Getenv("JANAM_PATRI_BIRTH_TIME"); v != "" {
		cfg.JanamPatri.BirthTime = v
	}
	if v := os.Getenv("RUN_LOG_PATH"); v != "" {
		cfg.RunLog.Path = v
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		Location: LocationConfig{
			Name:           "New Jersey, USA",
			Latitude:       40.0583,
			Longitude:      -74.4057,
			UTCOffsetHours: -5,
		},
		Ephemeris: EphemerisConfig{
			APIBaseURL: "https://api.swisseph.example.com/v1",
			Timeout:    10 * time.Second,
		},
		Corpus: CorpusConfig{
			Source:         "file",
			Path:           "configs/verses.json",
			DefaultVerseID: "bg-2-47",
			Postgres: PostgresConfig{
				MaxConns: 4,
				MinConns: 0,
			},
			Object: ObjectStoreConfig{
				Region: "us-east-1",
			},
		},
		Matching: MatchingConfig{
			Backend:   "token",
			Dimension: 32,
		},
		DigestCache: DigestCacheConfig{
			TTL: 6 * time.Hour,
		},
		JanamPatri: JanamPatriConfig{
			Enabled:   false,
			VerseTopK: 5,
		},
		RunLog: RunLogConfig{
			Path: "data/runs.jsonl",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		return errors.New("location.latitude must be between -90 and 90")
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		return errors.New("location.longitude must be between -180 and 180")
	}
	if c.Location.UTCOffsetHours < -12 || c.Location.UTCOffsetHours > 14 {
		return errors.New("location.utcOffsetHours must be between -12 and 14")
	}
	if c.Ephemeris.APIBaseURL == "" {
		return errors.New("ephemeris.apiBaseUrl cannot be empty")
	}
	if c.Ephemeris.Timeout <= 0 {
		return errors.New("ephemeris.timeout must be positive")
	}
	switch c.Corpus.Source {
	case "file":
		if strings.TrimSpace(c.Corpus.Path) == "" {
			return errors.New("corpus.path cannot be empty for the file source")
		}
	case "postgres":
		if strings.TrimSpace(c.Corpus.Postgres.DSN) == "" {
			return errors.New("corpus.postgres.dsn cannot be empty for the postgres source")
		}
	case "object":
		if strings.TrimSpace(c.Corpus.Object.Endpoint) == "" {
			return errors.New("corpus.object.endpoint cannot be empty for the object source")
		}
		if strings.TrimSpace(c.Corpus.Object.Bucket) == "" || strings.TrimSpace(c.Corpus.Object.Key) == "" {
			return errors.New("corpus.object.bucket and corpus.object.key cannot be empty for the object source")
		}
	default:
		return fmt.Errorf("corpus.source must be file, postgres, or object, got %q", c.Corpus.Source)
	}
	switch c.Matching.Backend {
	case "token", "vector":
	default:
		return fmt.Errorf("matching.backend must be token or vector, got %q", c.Matching.Backend)
	}
	if c.Matching.Backend == "vector" && c.Matching.Dimension <= 0 {
		return errors.New("matching.dimension must be positive for the vector backend")
	}
	if c.DigestCache.Valkey.Enabled && strings.TrimSpace(c.DigestCache.Valkey.Addr) == "" {
		return errors.New("digestCache.valkey.addr cannot be empty when the valkey cache is enabled")
	}
	if c.DigestCache.TTL < 0 {
		return errors.New("digestCache.ttl cannot be negative")
	}
	if c.JanamPatri.Enabled {
		if c.JanamPatri.BirthDate == "" || c.JanamPatri.BirthTime == "" {
			return errors.New("janamPatri.birthDate and janamPatri.birthTime cannot be empty when enabled")
		}
		if c.JanamPatri.VerseTopK <= 0 {
			return errors.New("janamPatri.verseTopK must be positive")
		}
	}
	if strings.TrimSpace(c.RunLog.Path) == "" {
		return errors.New("runLog.path cannot be empty")
	}
	return nil
}
