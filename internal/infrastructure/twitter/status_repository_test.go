package twitter

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rsstweetbot/internal/domain/repository"
)

type fakeSecrets struct {
	values       map[string]string
	getManyCalls int
}

func (f *fakeSecrets) Get(ctx context.Context, name string) (string, error) {
	value, ok := f.values[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", repository.ErrSecretUnavailable, name)
	}
	return value, nil
}

func (f *fakeSecrets) GetMany(ctx context.Context, names []string) (map[string]string, error) {
	f.getManyCalls++
	values := make(map[string]string, len(names))
	for _, name := range names {
		value, err := f.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		values[name] = value
	}
	return values, nil
}

func testConfig(baseURL string) Config {
	return Config{
		ConsumerKeyParam:    "/app/consumer.key",
		ConsumerSecretParam: "/app/consumer.secret",
		AccessTokenParam:    "/app/access.token",
		AccessSecretParam:   "/app/access.secret",
		BaseURL:             baseURL,
	}
}

func testSecrets() *fakeSecrets {
	return &fakeSecrets{values: map[string]string{
		"/app/consumer.key":    "ck",
		"/app/consumer.secret": "cs",
		"/app/access.token":    "at",
		"/app/access.secret":   "as",
	}}
}

func TestPublish_Success(t *testing.T) {
	var gotStatus, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/statuses/update.json" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		gotStatus = r.PostFormValue("status")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":1050118621198921728,"created_at":"Wed Oct 10 20:19:24 +0000 2018"}`)
	}))
	defer server.Close()

	p := NewStatusRepository(testSecrets(), testConfig(server.URL))

	result := p.Publish(context.Background(), "New release #NEWS #ME http://bit.ly/abc")
	if !result.Succeeded() {
		t.Fatalf("expected success, got status %q", result.Status)
	}
	if result.Created != "Wed Oct 10 20:19:24 +0000 2018" {
		t.Errorf("unexpected created timestamp: %q", result.Created)
	}

	if gotStatus != "New release #NEWS #ME http://bit.ly/abc" {
		t.Errorf("unexpected status form value: %q", gotStatus)
	}
	if !strings.HasPrefix(gotAuth, "OAuth ") {
		t.Errorf("expected an OAuth1-signed request, got Authorization %q", gotAuth)
	}
}

func TestPublish_APIFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"errors":[{"code":187,"message":"Status is a duplicate."}]}`)
	}))
	defer server.Close()

	p := NewStatusRepository(testSecrets(), testConfig(server.URL))

	result := p.Publish(context.Background(), "New release")
	if result.Succeeded() {
		t.Fatal("expected a failure result")
	}
	if result.Created != "" {
		t.Errorf("failure must carry no timestamp, got %q", result.Created)
	}
	if !strings.Contains(result.Status, "403") {
		t.Errorf("expected the failure description to mention the status code, got %q", result.Status)
	}
}

func TestPublish_SecretUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("the publish API must not be called without credentials")
	}))
	defer server.Close()

	secrets := &fakeSecrets{values: map[string]string{}}
	p := NewStatusRepository(secrets, testConfig(server.URL))

	result := p.Publish(context.Background(), "New release")
	if result.Succeeded() {
		t.Fatal("expected a failure result")
	}
}

func TestPublish_SessionCachedAcrossCalls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"created_at":"Wed Oct 10 20:19:24 +0000 2018"}`)
	}))
	defer server.Close()

	secrets := testSecrets()
	p := NewStatusRepository(secrets, testConfig(server.URL))

	for i := 0; i < 3; i++ {
		if result := p.Publish(context.Background(), fmt.Sprintf("post %d", i)); !result.Succeeded() {
			t.Fatalf("publish %d failed: %q", i, result.Status)
		}
	}

	if secrets.getManyCalls != 1 {
		t.Errorf("expected a single batched credential lookup per run, got %d", secrets.getManyCalls)
	}
}

func TestPublish_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer server.Close()

	p := NewStatusRepository(testSecrets(), testConfig(server.URL))

	if result := p.Publish(context.Background(), "New release"); result.Succeeded() {
		t.Fatal("expected a failure result on malformed response body")
	}
}
