// Package api is the single point of contact with the SLVNK backend REST
// API. It wraps net/http with the header discipline the backend expects
// (bearer token, JSON by default, multipart negotiating its own boundary)
// and decodes the backend's success-flag envelopes into typed results, so
// the rest of the application never sees a raw response body.
package api

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
)

// DefaultTimeout matches the backend's expected worst-case response time.
// Requests that exceed it fail like any other transport error.
const DefaultTimeout = 10 * time.Second

// adminHeader is the header the backend uses to gate /admin routes.
// The backend accepts it from any caller; see DESIGN.md for why this is
// preserved rather than fixed here.
const adminHeader = "X-Admin-Request"

// Error is a failure reported by the backend or the transport. Status is
// zero for pure transport failures. Fields carries per-field validation
// messages when the backend supplies them (registration, admin create).
type Error struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("backend: %s (status %d)", e.Message, e.Status)
	}
	return "backend: " + e.Message
}

// IsUnauthorized reports whether err is a 401 from the backend, which every
// caller must treat as "session invalidated".
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// FieldErrors extracts per-field validation messages from err, or nil.
func FieldErrors(err error) map[string]string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Fields
	}
	return nil
}

// Message returns a user-presentable message for any error coming out of
// this package.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "The server took too long to respond. Please try again."
	}
	return "Could not reach the server. Please try again."
}

// envelope is the common part of every backend response body.
type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// Client issues requests against the backend API. It is safe for
// concurrent use.
type Client struct {
	baseURL    string
	mediaURL   string
	httpClient *http.Client
}

// New creates a Client bound to baseURL (e.g. "https://host/api"). A
// timeout of zero selects DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	base := strings.TrimRight(baseURL, "/")
	return &Client{
		baseURL: base,
		// Uploaded images are served from the backend host itself, one
		// path segment above the API prefix.
		mediaURL:   strings.TrimSuffix(base, "/api"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// request describes one outgoing call. Exactly one of jsonBody and
// multipart may be set.
type request struct {
	method    string
	path      string
	query     url.Values
	token     string
	admin     bool
	jsonBody  any
	multipart *multipartBody
}

type multipartBody struct {
	fields url.Values
	file   *Upload
	// fileField is the form name the backend expects for the upload.
	fileField string
}

// do executes req and decodes the response body into out, which must embed
// an envelope (or be *envelope itself). It returns *Error for non-2xx
// responses and for 2xx bodies whose success flag is false.
func (c *Client) do(ctx context.Context, req request, out any) error {
	var (
		body        io.Reader
		contentType string
	)

	switch {
	case req.multipart != nil:
		buf, ct, err := encodeMultipart(req.multipart)
		if err != nil {
			return fmt.Errorf("encoding multipart body: %w", err)
		}
		body = buf
		// The multipart writer picked the boundary; its content type is
		// authoritative and must not be overridden with JSON below.
		contentType = ct
	case req.jsonBody != nil:
		raw, err := json.Marshal(req.jsonBody)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}

	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}
	if req.admin {
		httpReq.Header.Set(adminHeader, "true")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &Error{Message: transportMessage(err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: resp.StatusCode, Message: "unreadable response from server"}
	}

	// Pull out the envelope first so failures carry the server's own
	// message regardless of the expected payload shape.
	var env envelope
	_ = json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &Error{Status: resp.StatusCode, Message: msg, Fields: env.Errors}
	}

	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "request failed"
		}
		return &Error{Status: resp.StatusCode, Message: msg, Fields: env.Errors}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &Error{Status: resp.StatusCode, Message: "malformed response from server"}
		}
	}
	return nil
}

func transportMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return "request timed out"
	}
	return "network error: " + err.Error()
}
