package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rsstweetbot/internal/domain/entity"
	"rsstweetbot/internal/domain/repository"

	"github.com/dghubble/oauth1"
	"github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://api.twitter.com/1.1"

type Config struct {
	// Secret-store names holding the OAuth1 credentials.
	ConsumerKeyParam    string
	ConsumerSecretParam string
	AccessTokenParam    string
	AccessSecretParam   string
	// BaseURL overrides the API base, for tests.
	BaseURL string
}

type statusRepository struct {
	secrets repository.SecretRepository
	cfg     Config

	// Signed client, built once on first publish and reused for the run.
	client *http.Client
}

func NewStatusRepository(secrets repository.SecretRepository, cfg Config) repository.Publisher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &statusRepository{secrets: secrets, cfg: cfg}
}

type statusResponse struct {
	CreatedAt string `json:"created_at"`
}

// Publish submits one status update. Failures are folded into the returned
// result so a bad post is recorded, not raised.
func (r *statusRepository) Publish(ctx context.Context, status string) entity.PublishResult {
	client, err := r.signedClient(ctx)
	if err != nil {
		logrus.WithError(err).Error("problem resolving publish credentials")
		return entity.PublishFailure(err)
	}

	form := url.Values{}
	form.Set("status", status)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.BaseURL+"/statuses/update.json", strings.NewReader(form.Encode()))
	if err != nil {
		return entity.PublishFailure(fmt.Errorf("failed to create publish request: %w", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := client.Do(req)
	if err != nil {
		return entity.PublishFailure(fmt.Errorf("failed to call publish API: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entity.PublishFailure(fmt.Errorf("publish API returned non-OK status: %d", resp.StatusCode))
	}

	var parsed statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return entity.PublishFailure(fmt.Errorf("unexpected data from publish API: %w", err))
	}

	return entity.PublishSuccess(parsed.CreatedAt)
}

// signedClient resolves the four credentials as one batched lookup and builds
// the OAuth1-signed client.
func (r *statusRepository) signedClient(ctx context.Context) (*http.Client, error) {
	if r.client != nil {
		return r.client, nil
	}

	names := []string{
		r.cfg.ConsumerKeyParam,
		r.cfg.ConsumerSecretParam,
		r.cfg.AccessTokenParam,
		r.cfg.AccessSecretParam,
	}
	values, err := r.secrets.GetMany(ctx, names)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		if values[name] == "" {
			return nil, fmt.Errorf("%w: %s", repository.ErrSecretUnavailable, name)
		}
	}

	config := oauth1.NewConfig(values[r.cfg.ConsumerKeyParam], values[r.cfg.ConsumerSecretParam])
	token := oauth1.NewToken(values[r.cfg.AccessTokenParam], values[r.cfg.AccessSecretParam])

	r.client = config.Client(oauth1.NoContext, token)
	r.client.Timeout = 30 * time.Second
	return r.client, nil
}
