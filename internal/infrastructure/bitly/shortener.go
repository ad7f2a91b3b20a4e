package bitly

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"rsstweetbot/internal/domain/repository"
)

const defaultEndpoint = "https://api-ssl.bitly.com/v3/shorten"

type Config struct {
	// Secret-store names holding the bitly credentials.
	LoginParam  string
	APIKeyParam string
	// Endpoint overrides the shorten endpoint, for tests.
	Endpoint string
}

type shortener struct {
	secrets repository.SecretRepository
	cfg     Config
	client  *http.Client
}

func NewShortener(secrets repository.SecretRepository, cfg Config) repository.Shortener {
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	return &shortener{
		secrets: secrets,
		cfg:     cfg,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type shortenResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
}

// Shorten calls the shortening API once, no retries. Callers degrade any
// error to an empty short URL.
func (s *shortener) Shorten(ctx context.Context, longURL string) (string, error) {
	login, err := s.secrets.Get(ctx, s.cfg.LoginParam)
	if err != nil {
		return "", err
	}
	apiKey, err := s.secrets.Get(ctx, s.cfg.APIKeyParam)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("login", login)
	params.Set("apiKey", apiKey)
	params.Set("longUrl", longURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create shorten request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call shortening API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("shortening API returned non-OK status: %d", resp.StatusCode)
	}

	var parsed shortenResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("unexpected data from shortening API: %w", err)
	}
	if parsed.Data.URL == "" {
		return "", fmt.Errorf("shortening API response missing short url")
	}

	return parsed.Data.URL, nil
}
