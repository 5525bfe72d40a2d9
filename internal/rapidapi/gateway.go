package rapidapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	headerKey        = "X-RapidAPI-Key"
	headerHost       = "X-RapidAPI-Host"
	defaultUserAgent = "reps/0.1"
	maxBodyBytes     = 32 << 20
)

// Credentials are the static headers attached to every request.
type Credentials struct {
	Key  string
	Host string
}

// Gateway performs authenticated GET requests against one RapidAPI host.
// It never returns an error; every outcome is a Result.
type Gateway struct {
	creds     Credentials
	http      *http.Client
	userAgent string
	timeout   time.Duration
	logger    *zap.Logger
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Gateway) {
		if client != nil {
			g.http = client
		}
	}
}

// WithLogger sets the logger used for the failure trace.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Gateway) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithTimeout bounds each request. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		g.timeout = d
	}
}

// New builds a Gateway for the given credentials.
func New(creds Credentials, opts ...Option) *Gateway {
	g := &Gateway{
		creds: Credentials{
			Key:  strings.TrimSpace(creds.Key),
			Host: strings.TrimSpace(creds.Host),
		},
		http:      &http.Client{},
		userAgent: defaultUserAgent,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.timeout > 0 {
		client := *g.http
		client.Timeout = g.timeout
		g.http = &client
	}
	return g
}

// Get fetches rawURL and returns the body once it is known to be valid JSON.
func (g *Gateway) Get(ctx context.Context, rawURL string) Result[json.RawMessage] {
	requestID := uuid.NewString()
	started := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return g.fail(requestID, &Failure{Reason: ReasonTransport, URL: rawURL, Err: fmt.Errorf("create request: %w", err)})
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set(headerKey, g.creds.Key)
	req.Header.Set(headerHost, g.creds.Host)

	resp, err := g.http.Do(req)
	if err != nil {
		return g.fail(requestID, &Failure{Reason: ReasonTransport, URL: rawURL, Err: err})
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return g.fail(requestID, &Failure{Reason: ReasonHTTPStatus, URL: rawURL, Status: resp.StatusCode})
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return g.fail(requestID, &Failure{Reason: ReasonTransport, URL: rawURL, Status: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)})
	}
	if !json.Valid(body) {
		return g.fail(requestID, &Failure{Reason: ReasonDecode, URL: rawURL, Status: resp.StatusCode, Err: errors.New("body is not valid JSON")})
	}

	g.logger.Debug("gateway request",
		zap.String("request_id", requestID),
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("latency", time.Since(started)),
	)
	return Ok(json.RawMessage(body))
}

func (g *Gateway) fail(requestID string, f *Failure) Result[json.RawMessage] {
	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.String("url", f.URL),
		zap.String("reason", string(f.Reason)),
		zap.Bool("retryable", f.Retryable()),
	}
	if f.Status != 0 {
		fields = append(fields, zap.Int("status", f.Status))
	}
	if f.Err != nil {
		fields = append(fields, zap.Error(f.Err))
	}
	g.logger.Warn("gateway request failed", fields...)
	return Fail[json.RawMessage](f)
}

// List fetches rawURL and decodes a JSON array of T. Any other top-level
// shape is a ReasonShape failure.
func List[T any](ctx context.Context, g *Gateway, rawURL string) Result[[]T] {
	raw := g.Get(ctx, rawURL)
	body, ok := raw.Value()
	if !ok {
		return Fail[[]T](raw.Failure())
	}
	if leading(body) != '[' {
		return Fail[[]T](g.shape(rawURL, fmt.Errorf("want array, got %s", describe(body))))
	}
	out := []T{}
	if err := json.Unmarshal(body, &out); err != nil {
		return Fail[[]T](g.shape(rawURL, err))
	}
	return Ok(out)
}

// Object fetches rawURL and decodes a JSON object into T.
func Object[T any](ctx context.Context, g *Gateway, rawURL string) Result[T] {
	raw := g.Get(ctx, rawURL)
	body, ok := raw.Value()
	if !ok {
		return Fail[T](raw.Failure())
	}
	if leading(body) != '{' {
		return Fail[T](g.shape(rawURL, fmt.Errorf("want object, got %s", describe(body))))
	}
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return Fail[T](g.shape(rawURL, err))
	}
	return Ok(out)
}

func (g *Gateway) shape(rawURL string, err error) *Failure {
	f := &Failure{Reason: ReasonShape, URL: rawURL, Status: http.StatusOK, Err: err}
	g.logger.Warn("gateway response shape mismatch",
		zap.String("url", rawURL),
		zap.String("reason", string(f.Reason)),
		zap.Error(err),
	)
	return f
}

func leading(body []byte) byte {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

func describe(body []byte) string {
	switch leading(body) {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 'n':
		return "null"
	case 't', 'f':
		return "boolean"
	case 0:
		return "empty body"
	default:
		return "number"
	}
}
