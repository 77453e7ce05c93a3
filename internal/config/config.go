package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// OutputRootDir is where generated files land. Empty means the current
	// working directory. Relative paths are resolved against it at call time.
	OutputRootDir string

	DatabaseURL string

	Storage StorageConfig
	S3      S3Config
	LLM     LLMConfig
}

type StorageConfig struct {
	// Type is FILE or S3.
	Type string
	// TrackingDisabled skips catalog registration entirely.
	TrackingDisabled bool
}

type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type LLMConfig struct {
	Provider  string
	Model     string
	APIKey    string
	MaxTokens int
}

// Load reads configuration from the environment, layering a .env file under
// any variables already set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	storageType := strings.ToUpper(firstNonEmpty(strings.TrimSpace(os.Getenv("STORAGE_TYPE")), "FILE"))
	provider := strings.ToLower(firstNonEmpty(strings.TrimSpace(os.Getenv("LLM_PROVIDER")), "gemini"))

	maxTokens := 4096
	if raw := strings.TrimSpace(os.Getenv("MAX_TOKEN_LIMIT")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			maxTokens = v
		}
	}

	return &Config{
		OutputRootDir: strings.TrimSpace(os.Getenv("RESOURCES_OUTPUT_ROOT_DIR")),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Storage: StorageConfig{
			Type:             storageType,
			TrackingDisabled: parseBool(os.Getenv("RESOURCE_TRACKING_DISABLED"), false),
		},
		S3: S3Config{
			Endpoint:  strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
			Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("S3_REGION")), "us-east-1"),
			AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
			SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
			Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("S3_BUCKET")), "codeforge-resources"),
			UseSSL:    parseBool(os.Getenv("S3_USE_SSL"), true),
		},
		LLM: LLMConfig{
			Provider:  provider,
			Model:     firstNonEmpty(strings.TrimSpace(os.Getenv("LLM_MODEL")), defaultModel(provider)),
			APIKey:    strings.TrimSpace(os.Getenv("LLM_API_KEY")),
			MaxTokens: maxTokens,
		},
	}, nil
}

// CanUseS3 reports whether the S3 block is complete enough to build a client.
func (c S3Config) CanUseS3() bool {
	return c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != "" && c.Bucket != ""
}

func defaultModel(provider string) string {
	if provider == "groq" {
		return "llama-3.3-70b-versatile"
	}
	return "gemini-2.5-flash"
}

func parseBool(raw string, fallback bool) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
