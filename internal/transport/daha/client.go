// Package daha implements the HTTP client for the remote DAHA course
// catalog API.
package daha

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/daha-edu/coursegate/internal/domain"
	"github.com/daha-edu/coursegate/internal/domain/course"
	"github.com/daha-edu/coursegate/internal/domain/filter"
	"github.com/daha-edu/coursegate/internal/metrics"
)

const coursesPath = "/api/courses"

// Client talks to the catalog over JSON HTTP. Transport errors, non-2xx
// responses and malformed payloads all surface as *domain.CatalogError so
// callers can tell catalog trouble from programming errors.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limit      int
	logger     *zap.Logger
}

// Config holds the catalog client settings.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// Limit caps the number of courses requested per call.
	Limit  int
	Logger *zap.Logger
}

// NewClient creates a catalog client. The base URL is required.
func NewClient(cfg *Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: catalog base URL required", domain.ErrInvalidConfig)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		limit:      cfg.Limit,
		logger:     logger,
	}, nil
}

// coursesEnvelope is the wire format of the course listing endpoint.
type coursesEnvelope struct {
	Courses []course.Course `json:"courses"`
	Total   int             `json:"total,omitempty"`
}

// Courses fetches courses constrained by the given query parameters.
func (c *Client) Courses(ctx context.Context, params filter.Params) ([]course.Course, error) {
	return c.fetch(ctx, "courses", params)
}

// AllCourses fetches the unconstrained course list.
func (c *Client) AllCourses(ctx context.Context) ([]course.Course, error) {
	return c.fetch(ctx, "all_courses", filter.Params{})
}

// Ping probes catalog reachability with a minimal listing request.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+coursesPath, nil)
	if err != nil {
		return fmt.Errorf("build ping request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewCatalogError(0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.NewCatalogError(resp.StatusCode, resp.Status)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, operation string, params filter.Params) ([]course.Course, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+coursesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	c.setHeaders(req)

	query := req.URL.Query()
	if params.CategoryID > 0 {
		query.Set("category_id", strconv.Itoa(params.CategoryID))
	}
	if params.Level != "" {
		query.Set("level", params.Level)
	}
	if params.GradeID > 0 {
		query.Set("grade_id", strconv.Itoa(params.GradeID))
	}
	if c.limit > 0 {
		query.Set("limit", strconv.Itoa(c.limit))
	}
	req.URL.RawQuery = query.Encode()

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		metrics.CatalogRequestsTotal.WithLabelValues(operation, "error").Inc()
		metrics.CatalogErrorsTotal.WithLabelValues(operation, "transport").Inc()
		return nil, domain.NewCatalogError(0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.CatalogRequestsTotal.WithLabelValues(operation, "error").Inc()
		metrics.CatalogErrorsTotal.WithLabelValues(operation, "http_status").Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, domain.NewCatalogError(resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var envelope coursesEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		metrics.CatalogRequestsTotal.WithLabelValues(operation, "error").Inc()
		metrics.CatalogErrorsTotal.WithLabelValues(operation, "bad_payload").Inc()
		return nil, domain.NewCatalogError(0, "malformed catalog payload: "+err.Error())
	}

	metrics.CatalogRequestsTotal.WithLabelValues(operation, "success").Inc()
	metrics.CatalogRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())

	c.logger.Debug("catalog fetch",
		zap.String("operation", operation),
		zap.Int("courses", len(envelope.Courses)),
		zap.Duration("latency", duration),
	)
	return envelope.Courses, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
}
