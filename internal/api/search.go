package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Search runs a filtered, paginated profile search. params must already
// contain only the keys the caller wants constrained; the filter model is
// responsible for stripping empty values before they get here.
func (c *Client) Search(ctx context.Context, token string, params url.Values) (*SearchPage, error) {
	var out struct {
		envelope
		Results    []Profile `json:"results"`
		Page       int       `json:"page"`
		Limit      int       `json:"limit"`
		Total      int       `json:"total"`
		TotalPages int       `json:"totalPages"`
	}
	req := request{
		method: http.MethodGet,
		path:   "/profiles/search",
		query:  params,
		token:  token,
	}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &SearchPage{
		Results:    out.Results,
		Page:       out.Page,
		Limit:      out.Limit,
		Total:      out.Total,
		TotalPages: out.TotalPages,
	}, nil
}

// ProfileByID fetches another member's full profile for the detail view.
func (c *Client) ProfileByID(ctx context.Context, token, id string) (*Profile, error) {
	var out struct {
		envelope
		Profile *Profile `json:"profile"`
	}
	req := request{
		method: http.MethodGet,
		path:   "/profiles/" + url.PathEscape(id),
		token:  token,
	}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return out.Profile, nil
}

// Media streams a backend-hosted upload (profile photos). path is the
// filePath the backend reported, e.g. "/uploads/abc.jpg". The caller owns
// the returned body.
func (c *Client) Media(ctx context.Context, path string) (io.ReadCloser, string, error) {
	if path == "" || path[0] != '/' {
		path = "/" + path
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.mediaURL+path, nil)
	if err != nil {
		return nil, "", fmt.Errorf("building media request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", &Error{Message: transportMessage(err)}
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, "", &Error{Status: resp.StatusCode, Message: "media not available"}
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}
