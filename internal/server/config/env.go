package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration values from environment variables. A .env
// file in the working directory is loaded first if present; real environment
// variables take precedence over it.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString(&config.EndpointAddrHTTP, "HTTP_ADDR")
	setString(&config.DatabaseDSN, "DATABASE_DSN")
	setString(&config.SecretKey, "SECRET_KEY")
	setString(&config.RateProviderBaseURL, "RATE_PROVIDER_BASE_URL")
	setString(&config.S3RootUser, "S3_ROOT_USER")
	setString(&config.S3RootPassword, "S3_ROOT_PASSWORD")
	setString(&config.S3Bucket, "S3_BUCKET")
	setString(&config.S3Region, "S3_REGION")
	setString(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")

	if v := os.Getenv("RATE_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.RateRequestTimeout = d
		}
	}
}
