package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Admin endpoints. The backend gates these behind the X-Admin-Request
// header only; there is no verified admin credential on the wire. The
// frontend adds its own password gate in front of these calls, but the
// underlying contract is unchanged (see DESIGN.md).

// AdminListUsers returns one page of the admin user table. filter selects
// the backend's canned views ("recent", "week", "month").
func (c *Client) AdminListUsers(ctx context.Context, page, limit int, filter string) (*SearchPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	if filter != "" {
		query.Set("filter", filter)
	}
	var out struct {
		envelope
		Users      []Profile `json:"users"`
		Page       int       `json:"page"`
		Limit      int       `json:"limit"`
		Total      int       `json:"total"`
		TotalPages int       `json:"totalPages"`
	}
	req := request{method: http.MethodGet, path: "/admin/users", query: query, admin: true}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &SearchPage{
		Results:    out.Users,
		Page:       out.Page,
		Limit:      out.Limit,
		Total:      out.Total,
		TotalPages: out.TotalPages,
	}, nil
}

// AdminUser fetches a single user for the admin detail view.
func (c *Client) AdminUser(ctx context.Context, id string) (*Profile, error) {
	var out struct {
		envelope
		User *Profile `json:"user"`
	}
	req := request{method: http.MethodGet, path: "/admin/users/" + url.PathEscape(id), admin: true}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// AdminCreateUser adds a user from the dashboard's add-user form.
func (c *Client) AdminCreateUser(ctx context.Context, fields map[string]any) (*Profile, error) {
	var out struct {
		envelope
		User *Profile `json:"user"`
	}
	req := request{method: http.MethodPost, path: "/admin/users", jsonBody: fields, admin: true}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// AdminDeleteUser removes a user permanently.
func (c *Client) AdminDeleteUser(ctx context.Context, id string) error {
	req := request{method: http.MethodDelete, path: "/admin/users/" + url.PathEscape(id), admin: true}
	return c.do(ctx, req, nil)
}

// AdminStats fetches the dashboard counters.
func (c *Client) AdminStats(ctx context.Context) (*Stats, error) {
	var out struct {
		envelope
		Stats
	}
	req := request{method: http.MethodGet, path: "/admin/stats", admin: true}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out.Stats, nil
}
