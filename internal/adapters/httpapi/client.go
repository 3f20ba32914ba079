package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"careerpath/internal/application"
	"careerpath/internal/domain"
	"careerpath/internal/ports"
)

const (
	defaultTimeout = 15 * time.Second
	maxErrorBody   = 4 << 10
)

// Client talks to the career-path backend
type Client struct {
	// Base URL of the API, e.g. http://localhost:8000/api/v1
	BaseURL string

	// Bearer token, sent when non-empty
	AuthToken string

	client  *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// WithRateLimit caps outgoing requests per second. Zero disables the limit.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithHTTPClient replaces the underlying transport client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithLogger sets the logger
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a new API client
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		AuthToken: token,
		client:    &http.Client{Timeout: defaultTimeout},
		limiter:   rate.NewLimiter(rate.Limit(5), 10),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetProject fetches one project by id.
// A success status with a null or id-less body is reported as not found.
func (c *Client) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	var p *domain.Project
	if err := c.do(ctx, "get project", http.MethodGet, "/projects/"+url.PathEscape(id), nil, &p); err != nil {
		return nil, err
	}
	if p == nil || strings.TrimSpace(p.ID) == "" {
		return nil, &application.BackendError{Op: "get project", Status: http.StatusNotFound, Body: "empty project payload"}
	}
	return p, nil
}

// ListDomainProjects lists a domain's projects, asking the backend to
// generate them when generate is set
func (c *Client) ListDomainProjects(ctx context.Context, domainID string, generate bool) ([]domain.Project, error) {
	path := "/projects/domain/" + url.PathEscape(domainID) + "/projects"
	if generate {
		path += "?generate=true"
	}

	var projects []domain.Project
	if err := c.do(ctx, "list domain projects", http.MethodGet, path, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

type generateDomainsRequest struct {
	IkigaiSummary string `json:"ikigai_summary"`
}

// GenerateDomains asks the backend to suggest domains for an ikigai summary.
// The backend answers with either a bare array or {"domains": [...]}.
func (c *Client) GenerateDomains(ctx context.Context, ikigaiSummary string) ([]domain.Domain, error) {
	var raw json.RawMessage
	req := generateDomainsRequest{IkigaiSummary: ikigaiSummary}
	if err := c.do(ctx, "generate domains", http.MethodPost, "/projects/domains/generate", req, &raw); err != nil {
		return nil, err
	}

	var domains []domain.Domain
	if err := json.Unmarshal(raw, &domains); err == nil {
		return domains, nil
	}

	var wrapped struct {
		Domains []domain.Domain `json:"domains"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("generate domains: failed to decode response: %w", err)
	}
	return wrapped.Domains, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: failed to encode request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AuthToken)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("%s: %w", op, err)
		}
		return fmt.Errorf("%s: %w: %w", op, application.ErrBackendUnavailable, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Debug("failed to close response body", zap.Error(err))
		}
	}()

	c.log.Debug("backend request",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &application.BackendError{Op: op, Status: resp.StatusCode, Body: errorDetail(data)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", op, err)
	}
	return nil
}

// errorDetail pulls the "detail" message out of an error body when there is one
func errorDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return strings.TrimSpace(string(body))
}

var _ ports.ProjectBackend = (*Client)(nil)
