// Package client provides a typed client of the jobs REST API and the views on top of it.
// Views hold fetch state the way UI data hooks do: list view with optimistic reorder
// and rollback, single job view with not-found handling.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/requester"
	"github.com/go-pkgz/requester/middleware"

	"github.com/umputun/talentflow/app/enums"
	"github.com/umputun/talentflow/app/jobs"
)

const maxResponseSize = 8 * 1024 * 1024

// ErrNotFound returned (wrapped in APIError) for 404 responses
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx response of the API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return http.StatusText(e.StatusCode)
	}
	return e.Message
}

// Unwrap returns ErrNotFound for 404 responses
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

// Transient reports server-side failures worth a retry
func (e *APIError) Transient() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// Client makes calls to the jobs API
type Client struct {
	baseURL  string
	http     *http.Client
	user     string
	password string
	rq       *requester.Requester
}

// Option func type
type Option func(c *Client)

// WithHTTPClient sets custom http client, i.e. with timeout
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithBasicAuth sets credentials for write endpoints
func WithBasicAuth(user, password string) Option {
	return func(c *Client) {
		c.user = user
		c.password = password
	}
}

// New makes client for the server at baseURL, i.e. http://localhost:8080
func New(baseURL string, opts ...Option) *Client {
	res := &Client{baseURL: strings.TrimSuffix(baseURL, "/"), http: &http.Client{}}
	for _, opt := range opts {
		opt(res)
	}
	mw := []middleware.RoundTripperHandler{
		middleware.Header("Accept", "application/json"),
		middleware.Header("Content-Type", "application/json"),
	}
	if res.user != "" {
		mw = append(mw, middleware.BasicAuth(res.user, res.password))
	}
	res.rq = requester.New(*res.http, mw...)
	return res
}

// ListJobs returns a page of jobs
func (c *Client) ListJobs(ctx context.Context, q jobs.Query) (jobs.Page, error) {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Status.String() != "" {
		params.Set("status", q.Status.String())
	}
	var res jobs.Page
	err := c.do(ctx, http.MethodGet, "/api/jobs", params, nil, &res)
	return res, err
}

// GetJob returns job by id or slug
func (c *Client) GetJob(ctx context.Context, idOrSlug string) (jobs.Job, error) {
	var res jobs.Job
	err := c.do(ctx, http.MethodGet, "/api/jobs/"+url.PathEscape(idOrSlug), nil, nil, &res)
	return res, err
}

// CreateJob creates a new job
func (c *Client) CreateJob(ctx context.Context, in jobs.Input) (jobs.Job, error) {
	var res jobs.Job
	err := c.do(ctx, http.MethodPost, "/api/jobs", nil, in, &res)
	return res, err
}

// UpdateJob sends partial update of the job
func (c *Client) UpdateJob(ctx context.Context, id string, upd jobs.Update) (jobs.Job, error) {
	var res jobs.Job
	err := c.do(ctx, http.MethodPut, "/api/jobs/"+url.PathEscape(id), nil, upd, &res)
	return res, err
}

// UpdateStatus archives or restores the job
func (c *Client) UpdateStatus(ctx context.Context, id string, status enums.JobStatus) (jobs.Job, error) {
	var res jobs.Job
	body := struct {
		Status enums.JobStatus `json:"status"`
	}{Status: status}
	err := c.do(ctx, http.MethodPatch, "/api/jobs/"+url.PathEscape(id)+"/status", nil, body, &res)
	return res, err
}

// ReorderJobs sets the order of jobs, returns the full collection
func (c *Client) ReorderJobs(ctx context.Context, ids []string) ([]jobs.Job, error) {
	if ids == nil {
		ids = []string{}
	}
	var res []jobs.Job
	body := struct {
		JobIDs []string `json:"jobIds"`
	}{JobIDs: ids}
	err := c.do(ctx, http.MethodPost, "/api/jobs/reorder", nil, body, &res)
	return res, err
}

// do sends request with optional JSON body and decodes JSON response into result.
// Non-2xx responses returned as *APIError with the server's error message.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, result any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reqBody io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	resp, err := c.rq.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send %s %s: %w", method, path, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("[WARN] failed to close response body: %v", closeErr)
		}
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read response of %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(data, &errResp); err == nil {
			apiErr.Message = errResp.Error
		}
		return apiErr
	}

	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("failed to decode response of %s %s: %w", method, path, err)
	}
	return nil
}
