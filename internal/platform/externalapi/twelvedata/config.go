// Package twelvedata provides a client for the Twelve Data stock market API.
package twelvedata

import (
	"time"

	"ohlc_backend/internal/platform/config"
)

// Config holds configuration for the Twelve Data API client.
type Config struct {
	TwelveDataAPIKey string        // API key for authentication
	BaseURL          string        // Base URL for the API (e.g., "https://api.twelvedata.com")
	Timeout          time.Duration // HTTP request timeout
}

// ConfigFrom builds the adapter config from the provider section.
func ConfigFrom(p config.ProviderConfig) Config {
	return Config{
		TwelveDataAPIKey: p.TwelveData.APIKey,
		BaseURL:          p.TwelveData.BaseURL,
		Timeout:          p.Timeout,
	}
}
