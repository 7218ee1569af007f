// Package api talks to the upload server's REST endpoints.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/kamal-hamza/updeck/internal/core/domain"
	"github.com/kamal-hamza/updeck/internal/logging"
)

const (
	filesPath   = "/api/files"
	uploadsPath = "/uploads/"
)

// StatusError is returned when the server answers with a non-2xx status
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Options configures a Client
type Options struct {
	BaseURL      string
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	Logger       *logging.Logger
}

// Client implements ports.FileClient over HTTP
type Client struct {
	httpClient *http.Client
	onceClient *http.Client
	baseURL    string
	log        *logging.Logger
}

// NewClient creates a client for the server at opts.BaseURL
func NewClient(opts Options) (*Client, error) {
	base := strings.TrimSuffix(strings.TrimSpace(opts.BaseURL), "/")
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid server URL %q", opts.BaseURL)
	}

	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}

	return &Client{
		httpClient: newHTTPClient(opts, log, opts.RetryMax),
		// deletes are not idempotent from the user's side: a retry after a
		// lost answer reports a file that is already gone as a failure
		onceClient: newHTTPClient(opts, log, 0),
		baseURL:    base,
		log:        log,
	}, nil
}

func newHTTPClient(opts Options, log *logging.Logger, retryMax int) *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = retryMax
	if opts.RetryWaitMin > 0 {
		retryClient.RetryWaitMin = opts.RetryWaitMin
	}
	if opts.RetryWaitMax > 0 {
		retryClient.RetryWaitMax = opts.RetryWaitMax
	}
	retryClient.Logger = &retryLogger{log: log}
	// hand the last response back so callers see the real status
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	httpClient := retryClient.StandardClient()
	if opts.Timeout > 0 {
		httpClient.Timeout = opts.Timeout
	}
	return httpClient
}

// BaseURL returns the normalized server URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches every uploaded file
func (c *Client) List(ctx context.Context) ([]domain.FileRecord, error) {
	resp, err := c.do(ctx, c.httpClient, http.MethodGet, c.baseURL+filesPath)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var records []domain.FileRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode file list: %w", err)
	}

	c.log.Debug().Int("count", len(records)).Msg("listed files")
	return records, nil
}

// deleteResponse is the body of DELETE /api/files/:filename
type deleteResponse struct {
	Success bool `json:"success"`
}

// Remove deletes filename on the server, without retrying. Only a 2xx answer whose body is
// {"success": true} counts as a deletion.
func (c *Client) Remove(ctx context.Context, filename string) (bool, error) {
	target := c.baseURL + filesPath + "/" + url.PathEscape(filename)

	resp, err := c.do(ctx, c.onceClient, http.MethodDelete, target)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		c.log.Warn().Err(err).Str("filename", filename).Msg("delete rejected")
		return false, err
	}

	var body deleteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.log.Warn().Err(err).Str("filename", filename).Msg("unreadable delete response")
		return false, nil
	}

	c.log.Info().Str("filename", filename).Bool("success", body.Success).Msg("delete")
	return body.Success, nil
}

// AssetURL returns the public URL of a stored file
func (c *Client) AssetURL(filename string) string {
	return c.baseURL + uploadsPath + url.PathEscape(filename)
}

// Fetch downloads at most limit bytes of filename. A limit <= 0 reads everything.
func (c *Client) Fetch(ctx context.Context, filename string, limit int64) ([]byte, error) {
	resp, err := c.do(ctx, c.httpClient, http.MethodGet, c.AssetURL(filename))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var r io.Reader = resp.Body
	if limit > 0 {
		r = io.LimitReader(resp.Body, limit)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return data, nil
}

// Ping checks that the file listing endpoint answers
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.List(ctx)
	return err
}

func (c *Client) do(ctx context.Context, client *http.Client, method, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("url", target).Msg("request failed")
		return nil, fmt.Errorf("%s %s: %w", method, target, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request")
	return resp, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	return &StatusError{
		Method:     resp.Request.Method,
		URL:        resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
	}
}

// retryLogger implements retryablehttp.LeveledLogger on top of zerolog
type retryLogger struct {
	log *logging.Logger
}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.Error().Fields(keysAndValues).Msg(msg)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.Warn().Fields(keysAndValues).Msg(msg)
}
