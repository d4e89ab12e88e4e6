package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if cfg.EndpointAddrHTTP != ":8080" {
		t.Errorf("unexpected default addr: %s", cfg.EndpointAddrHTTP)
	}
	if cfg.RateProviderBaseURL == "" {
		t.Error("rate provider base URL must have a default")
	}
	if cfg.RateRequestTimeout != 5*time.Second {
		t.Errorf("unexpected default timeout: %v", cfg.RateRequestTimeout)
	}
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("DATABASE_DSN", "postgres://env")
	t.Setenv("RATE_REQUEST_TIMEOUT", "2s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	if cfg.EndpointAddrHTTP != ":9999" {
		t.Errorf("env addr not applied: %s", cfg.EndpointAddrHTTP)
	}
	if cfg.DatabaseDSN != "postgres://env" {
		t.Errorf("env DSN not applied: %s", cfg.DatabaseDSN)
	}
	if cfg.RateRequestTimeout != 2*time.Second {
		t.Errorf("env timeout not applied: %v", cfg.RateRequestTimeout)
	}
}

func TestParseEnv_EmptyValuesKeepDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	if cfg.SecretKey != "secretKey" {
		t.Errorf("default secret must survive empty env: %s", cfg.SecretKey)
	}
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"expenso", "-a", ":7070", "-t", "3", "-x", "http://rates.local"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	if cfg.EndpointAddrHTTP != ":7070" {
		t.Errorf("flag addr not applied: %s", cfg.EndpointAddrHTTP)
	}
	if cfg.RateRequestTimeout != 3*time.Second {
		t.Errorf("flag timeout not applied: %v", cfg.RateRequestTimeout)
	}
	if cfg.RateProviderBaseURL != "http://rates.local" {
		t.Errorf("flag base URL not applied: %s", cfg.RateProviderBaseURL)
	}
}

func TestParseJson(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	body := `{
		"endpoint_addr_http": ":6060",
		"database_dsn": "postgres://json",
		"secret_key": "k",
		"rate_provider_base_url": "http://json.rates",
		"rate_request_timeout": "4s",
		"s3_root_user": "u",
		"s3_root_password": "p",
		"s3_bucket": "b",
		"s3_region": "r",
		"s3_base_endpoint": "http://s3"
	}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"expenso", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	if cfg.EndpointAddrHTTP != ":6060" {
		t.Errorf("json addr not applied: %s", cfg.EndpointAddrHTTP)
	}
	if cfg.RateRequestTimeout != 4*time.Second {
		t.Errorf("json timeout not applied: %v", cfg.RateRequestTimeout)
	}
}

func TestParseJson_NoFileFlag(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"expenso"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	if cfg.DatabaseDSN == "" {
		t.Error("defaults must survive when no JSON file is given")
	}
}
