// Package gateway is the single point of contact with the admin backend. It
// owns the bearer token session, builds every request, classifies every
// response, and raises the session-expiry event on a 401.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/bipulsingh126/biziwit-admin/session"
)

const (
	defaultTimeout = 30 * time.Second
	trendingMarker = "trending"
)

// Client issues all HTTP requests to the backend. Construct with New; the
// zero value is not usable.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Session
	logger     zerolog.Logger

	onSessionExpired func()
	expiredLock      sync.Mutex
	expiredFired     bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default transport. The provided client should
// carry a cookie jar if the backend relies on credentialed requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger attaches a logger for per-request debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithOnSessionExpired registers the host application's reaction to a 401.
// The gateway only raises the event; a browser host would reload, a CLI would
// prompt for re-authentication. Fired at most once per configured token even
// when several in-flight requests hit 401 together.
func WithOnSessionExpired(fn func()) Option {
	return func(c *Client) { c.onSessionExpired = fn }
}

// New builds a gateway Client for the given base URL and session.
func New(baseURL string, sess *session.Session, options ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("[gateway.New] baseURL is required")
	}
	if sess == nil {
		return nil, errors.New("[gateway.New] session is required")
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		session:    sess,
		logger:     zerolog.Nop(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

// ConfigureToken stores a new bearer token, writing it through to the durable
// store, and re-arms the session-expiry guard for the new session.
func (c *Client) ConfigureToken(token string) error {
	if err := c.session.Set(token); err != nil {
		return errors.Wrap(err, "[Client.ConfigureToken] session.Set")
	}
	c.expiredLock.Lock()
	c.expiredFired = false
	c.expiredLock.Unlock()
	return nil
}

// ClearToken removes the bearer token from memory and durable storage.
func (c *Client) ClearToken() error {
	if err := c.session.Clear(); err != nil {
		return errors.Wrap(err, "[Client.ClearToken] session.Clear")
	}
	return nil
}

// Session exposes the underlying session, mainly so hosts can check login
// state at startup.
func (c *Client) Session() *session.Session {
	return c.session
}

// Request describes one backend call. Body and Form are mutually exclusive:
// Body is JSON-encoded, Form is sent as-is with the multipart writer's
// boundary content type.
type Request struct {
	Method string // defaults to GET
	Path   string // e.g. "/api/users"
	Query  Params
	Body   any
	Form   *FormPayload
	Header http.Header
}

// FormPayload is a prepared multipart body. Build one with NewFormPayload.
type FormPayload struct {
	Reader      io.Reader
	ContentType string
}

// Do issues the request and decodes a JSON response into out. Pass a nil out
// to discard the body. Responses with a non-JSON content type are an error
// here; use DoRaw for downloads.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	resp, err := c.send(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if !isJSON(resp.Header.Get("Content-Type")) {
		return errors.Errorf("[Client.Do] unexpected content type %q for %s", resp.Header.Get("Content-Type"), req.Path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "[Client.Do] decode response")
	}
	return nil
}

// DoRaw issues the request and hands back the raw response for non-JSON
// payloads (CSV/XLSX exports, images). The caller owns closing the body.
// Error classification is identical to Do.
func (c *Client) DoRaw(ctx context.Context, req Request) (*http.Response, error) {
	return c.send(ctx, req)
}

func (c *Client) send(ctx context.Context, req Request) (*http.Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	fullURL, err := c.buildURL(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	contentType := ""
	switch {
	case req.Form != nil:
		body = req.Form.Reader
		contentType = req.Form.ContentType
	case req.Body != nil:
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, errors.Wrap(err, "[Client.send] marshal body")
		}
		body = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, errors.Wrap(err, "[Client.send] http.NewRequestWithContext")
	}
	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if token, ok := c.session.Token(); ok {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	httpReq.Header.Set("X-Request-ID", uuid.New().String())

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn().Str("method", method).Str("path", req.Path).Err(err).Msg("request failed")
		return nil, errors.Wrap(ErrNetwork, err.Error())
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request")

	if err := c.checkResponse(req.Path, resp); err != nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		return nil, err
	}
	return resp, nil
}

// checkResponse classifies non-2xx responses. 401 clears the token and raises
// the session-expired event before returning; a trending 404 maps to the
// sentinel callers use for empty state.
func (c *Client) checkResponse(path string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.sessionExpired()
		return ErrSessionExpired
	}

	if resp.StatusCode == http.StatusNotFound && strings.Contains(path, trendingMarker) {
		return ErrTrendingNotFound
	}

	return newStatusError(resp.StatusCode, errorMessage(resp))
}

// sessionExpired clears the token and fires the host callback exactly once
// for the current session, even if several in-flight requests observe the 401
// concurrently.
func (c *Client) sessionExpired() {
	if err := c.session.Clear(); err != nil {
		c.logger.Warn().Err(err).Msg("clearing expired session token")
	}

	c.expiredLock.Lock()
	fired := c.expiredFired
	c.expiredFired = true
	c.expiredLock.Unlock()

	if !fired && c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

// errorMessage pulls a human-readable message out of a JSON error body.
// Backends here use either "message" or "error"; anything else falls back to
// the bare status.
func errorMessage(resp *http.Response) string {
	if !isJSON(resp.Header.Get("Content-Type")) {
		return ""
	}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

func (c *Client) buildURL(path string, params Params) (string, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", errors.Wrap(err, "[Client.buildURL] url.Parse")
	}
	if query := params.Encode(); query != "" {
		u.RawQuery = query
	}
	return u.String(), nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
