package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port string `yaml:"port"`

	// Auth
	APIKey string `yaml:"api_key"`

	// Apify actor runs
	ApifyBaseURL string `yaml:"apify_base_url"`
	ApifyAPIKey  string `yaml:"apify_api_key"`
	MockScraper  bool   `yaml:"mock_scraper"`

	// Sheets export gateway
	SheetsURL    string `yaml:"sheets_url"`
	SheetsAPIKey string `yaml:"sheets_api_key"`

	// Lead storage
	DBPath string `yaml:"db_path"`

	// Worker pool
	WorkerCount  int `yaml:"worker_count"`
	MaxQueueSize int `yaml:"max_queue_size"`

	// Upload limits
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	// Job state
	JobTTL time.Duration `yaml:"job_ttl"`

	// Pricing overrides (compute units per profile)
	LinkedInCURate  float64 `yaml:"linkedin_cu_rate"`
	InstagramCURate float64 `yaml:"instagram_cu_rate"`

	// CORS
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Load reads the optional YAML config file named by LEADKIT_CONFIG,
// then applies environment overrides and defaults.
func Load() Config {
	var cfg Config

	if path := os.Getenv("LEADKIT_CONFIG"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(data, &cfg)
		}
	}

	cfg.Port = envOr("PORT", orStr(cfg.Port, "8090"))
	cfg.APIKey = envOr("LEADKIT_API_KEY", cfg.APIKey)

	cfg.ApifyBaseURL = envOr("APIFY_BASE_URL", orStr(cfg.ApifyBaseURL, "https://api.apify.com"))
	cfg.ApifyAPIKey = envOr("APIFY_API_KEY", cfg.ApifyAPIKey)
	cfg.MockScraper = envBool("MOCK_SCRAPER", cfg.MockScraper || cfg.ApifyAPIKey == "")

	cfg.SheetsURL = envOr("SHEETS_URL", cfg.SheetsURL)
	cfg.SheetsAPIKey = envOr("SHEETS_API_KEY", cfg.SheetsAPIKey)

	cfg.DBPath = envOr("DB_PATH", orStr(cfg.DBPath, "leadkit.db"))

	cfg.WorkerCount = envInt("WORKER_COUNT", cfg.WorkerCount)
	cfg.MaxQueueSize = envInt("MAX_QUEUE_SIZE", cfg.MaxQueueSize)

	cfg.MaxUploadBytes = envInt64("MAX_UPLOAD_BYTES", cfg.MaxUploadBytes)

	cfg.JobTTL = envDuration("JOB_TTL", cfg.JobTTL)

	cfg.LinkedInCURate = envFloat("LINKEDIN_CU_RATE", cfg.LinkedInCURate)
	cfg.InstagramCURate = envFloat("INSTAGRAM_CU_RATE", cfg.InstagramCURate)

	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitOrigins(v)
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760 // 10MB
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.LinkedInCURate <= 0 {
		cfg.LinkedInCURate = 0.05
	}
	if cfg.InstagramCURate <= 0 {
		cfg.InstagramCURate = 0.03
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"http://localhost:5173"}
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("LEADKIT_API_KEY is required")
	}
	if !c.MockScraper && c.ApifyAPIKey == "" {
		return fmt.Errorf("APIFY_API_KEY is required unless MOCK_SCRAPER is enabled")
	}
	return nil
}

func splitOrigins(v string) []string {
	var out []string
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func orStr(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
