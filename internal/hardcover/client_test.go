package hardcover

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookhaven/internal/config"
	"bookhaven/internal/log"

	"github.com/pkg/errors"
)

// Initialize the logger and config
func init() {
	config.Opts = config.GetDefaultOptions()
	config.Opts.LogFile = "/tmp/bookhaven-test.log"
	log.Logger = log.NewLogger()
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("test-token")
	client.endpoint = server.URL
	return client, server
}

func TestSearchWithoutToken(t *testing.T) {
	client := NewClient("")
	_, err := client.Search(context.Background(), "dune", ModeBooks, 5)
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("Expected ErrNotConfigured, got %v", err)
	}
}

func TestAuthorizationHeader(t *testing.T) {
	var got string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{"data": {"search": {"results": {"hits": []}}}}`))
	})

	if _, err := client.Search(context.Background(), "dune", ModeBooks, 5); err != nil {
		t.Fatal(err)
	}
	if got != "Bearer test-token" {
		t.Fatalf("Expected bearer header, got %q", got)
	}

	// An already-prefixed token must not be doubled.
	client.token = "Bearer raw"
	if _, err := client.Search(context.Background(), "dune", ModeBooks, 5); err != nil {
		t.Fatal(err)
	}
	if got != "Bearer raw" {
		t.Fatalf("Expected prefix preserved, got %q", got)
	}
}

func TestSearchTransportError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Search(context.Background(), "dune", ModeBooks, 5)
	var remote *RemoteError
	if !errors.As(err, &remote) || remote.Kind != KindTransport {
		t.Fatalf("Expected transport error, got %v", err)
	}
}

func TestSearchGraphQLError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors": [{"message": "rate limited"}]}`))
	})

	_, err := client.Search(context.Background(), "dune", ModeBooks, 5)
	var remote *RemoteError
	if !errors.As(err, &remote) || remote.Kind != KindAPI {
		t.Fatalf("Expected api error, got %v", err)
	}
	if remote.Message != "rate limited" {
		t.Fatalf("Expected remote message to surface, got %q", remote.Message)
	}
}

func TestSearchInBandError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"search": {"error": "index unavailable"}}}`))
	})

	_, err := client.Search(context.Background(), "dune", ModeBooks, 5)
	var remote *RemoteError
	if !errors.As(err, &remote) || remote.Kind != KindAPI {
		t.Fatalf("Expected api error, got %v", err)
	}
	if remote.Message != "index unavailable" {
		t.Fatalf("Expected in-band message to surface, got %q", remote.Message)
	}
}

func TestSearchTimeout(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`{"data": {"search": {"results": {"hits": []}}}}`))
	})
	client.timeout = 50 * time.Millisecond

	_, err := client.Search(context.Background(), "dune", ModeBooks, 5)
	if !IsTimeout(err) {
		t.Fatalf("Expected timeout error, got %v", err)
	}
}
