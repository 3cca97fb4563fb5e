package hardcover

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"bookhaven/internal/log"
	"bookhaven/internal/metrics"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	graphQLURL = "https://api.hardcover.app/v1/graphql"

	// Every remote call is bounded by this deadline; the remote service is
	// not retried.
	requestTimeout = 10 * time.Second
)

// Client talks to the Hardcover GraphQL endpoint. It holds no per-call
// state, every request is independent.
type Client struct {
	httpClient *http.Client
	token      string

	// Overridable in tests.
	endpoint string
	timeout  time.Duration
}

func NewClient(token string) *Client {
	return &Client{
		httpClient: &http.Client{},
		token:      strings.TrimSpace(token),
		endpoint:   graphQLURL,
		timeout:    requestTimeout,
	}
}

// authorization builds the bearer header. A missing token is a fatal
// configuration error, never retried.
func (c *Client) authorization() (string, error) {
	if c.token == "" {
		return "", ErrNotConfigured
	}
	if strings.HasPrefix(c.token, "Bearer ") {
		return c.token, nil
	}
	return "Bearer " + c.token, nil
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// execute posts one GraphQL query and unwraps the envelope. Non-2xx
// responses and a populated errors array are both failures; failureMsg is
// the generic message used when the remote gives no readable one.
func (c *Client) execute(ctx context.Context, operation, query string, variables map[string]any, failureMsg string) (json.RawMessage, error) {
	authorization, err := c.authorization()
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode graphql request")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build graphql request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authorization)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			metrics.HardcoverRequestsTotal.WithLabelValues(operation, "timeout").Inc()
			return nil, remoteWrap(KindTimeout, err, failureMsg+" timed out")
		}
		metrics.HardcoverRequestsTotal.WithLabelValues(operation, "transport").Inc()
		return nil, remoteWrap(KindTransport, err, failureMsg+" failed")
	}
	defer resp.Body.Close()

	var envelope graphQLResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&envelope)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.HardcoverRequestsTotal.WithLabelValues(operation, "transport").Inc()
		log.Warn("Hardcover request failed",
			zap.String("operation", operation),
			zap.Int("status_code", resp.StatusCode),
		)
		return nil, remoteErr(KindTransport, failureMsg+" failed")
	}
	if decodeErr != nil {
		metrics.HardcoverRequestsTotal.WithLabelValues(operation, "transport").Inc()
		return nil, remoteWrap(KindTransport, decodeErr, failureMsg+" returned an unreadable response")
	}

	if len(envelope.Errors) > 0 {
		metrics.HardcoverRequestsTotal.WithLabelValues(operation, "api_error").Inc()
		message := envelope.Errors[0].Message
		if message == "" {
			message = failureMsg + " failed"
		}
		return nil, remoteErr(KindAPI, message)
	}

	metrics.HardcoverRequestsTotal.WithLabelValues(operation, "ok").Inc()
	log.Debug("Hardcover request completed",
		zap.String("operation", operation),
		zap.Duration("elapsed", time.Since(start)),
	)
	return envelope.Data, nil
}
