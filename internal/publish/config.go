package publish

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the S3 destination for rendered files.
type Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
	Prefix    string
}

// Enabled reports whether uploads are configured at all.
func (c *Config) Enabled() bool { return c.Bucket != "" }

// Helper to get environment variables with a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// LoadConfig reads <rootDir>/.env when present (existing environment wins), then the S3_* variables.
func LoadConfig(rootDir string) *Config {
	_ = godotenv.Load(filepath.Join(rootDir, ".env"))
	return &Config{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    getEnv("S3_REGION", "us-east-1"),
		Bucket:    os.Getenv("S3_BUCKET"),
		Prefix:    getEnv("S3_PREFIX", "renders"),
	}
}
