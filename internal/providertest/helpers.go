package providertest

import (
	"time"

	"crimson-hq/crimson/pkg/providers"
)

// TestConfig returns a provider configuration suitable for tests.
func TestConfig(name string) providers.Config {
	return providers.Config{
		Name:                name,
		BaseURL:             "http://localhost:8080",
		APIKey:              "test-key",
		Model:               "test-model",
		Timeout:             5 * time.Second,
		ProbeTimeout:        500 * time.Millisecond,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     30 * time.Second,
	}
}

// TestConfigWithURL returns a test config pointing at a specific base URL.
func TestConfigWithURL(name, baseURL string) providers.Config {
	config := TestConfig(name)
	config.BaseURL = baseURL
	return config
}
