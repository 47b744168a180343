// Package client talks to a running studyplan HTTP service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/AnuSaha545/ai-study-planner-agent/internal/outline"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/workflow"
)

// DefaultTimeout bounds a whole request, body included.
const DefaultTimeout = 30 * time.Second

var (
	ErrConnection = errors.New("cannot connect to API")
	ErrTimeout    = errors.New("API request timed out")
)

// ValidationError is a 422 reply. Detail is the server's message.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// APIError is any other non-2xx reply.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Detail)
}

// PlanRequest is the POST /plan body.
type PlanRequest struct {
	Subjects    []string `json:"subjects"`
	Hours       float64  `json:"hours"`
	DaysPerWeek int      `json:"days_per_week"`
	StartTime   string   `json:"start_time,omitempty"`
}

// Health is the GET /health reply.
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Client is a JSON client for the service.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New creates a Client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: DefaultTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Plan calls POST /plan.
func (c *Client) Plan(ctx context.Context, req PlanRequest) (*workflow.Result, error) {
	var out workflow.Result
	if err := c.do(ctx, http.MethodPost, "/plan", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Outlines calls POST /outline.
func (c *Client) Outlines(ctx context.Context, subjects []string) (map[string]*outline.SubjectOutline, error) {
	var out struct {
		Outlines map[string]*outline.SubjectOutline `json:"outlines"`
	}
	body := map[string][]string{"subjects": subjects}
	if err := c.do(ctx, http.MethodPost, "/outline", body, &out); err != nil {
		return nil, err
	}
	return out.Outlines, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.transportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := errorDetail(data)
		if resp.StatusCode == http.StatusUnprocessableEntity {
			return &ValidationError{Detail: detail}
		}
		return &APIError{StatusCode: resp.StatusCode, Detail: detail}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *Client) transportError(err error) error {
	if isTimeout(err) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w at %s: %v", ErrConnection, c.baseURL, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// errorDetail pulls "detail" out of an error body, falling back to the raw text.
func errorDetail(data []byte) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Detail != "" {
		return body.Detail
	}
	return strings.TrimSpace(string(data))
}
